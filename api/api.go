package api

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"time"

	"nestegg/internal"
	"nestegg/internal/app"
	"nestegg/internal/db/models/postgres/public/model"
	"nestegg/internal/logger"
	"nestegg/internal/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApiHandler struct {
	Db                          *sql.DB
	PortfolioService            app.PortfolioService
	Trading212SyncService       app.Trading212SyncService
	TickertapeImportService     app.TickertapeImportService
	SnapshotService             app.SnapshotService
	QuoteRefreshService         app.QuoteRefreshService
	ExchangeRateService         internal.ExchangeRateService
	InvestmentRepository        repository.InvestmentRepository
	MemberRepository            repository.MemberRepository
	HouseholdRepository         repository.HouseholdRepository
	StockSymbolRepository       repository.StockSymbolRepository
	PortfolioSnapshotRepository repository.PortfolioSnapshotRepository
	ApiRequestRepository        repository.ApiRequestRepository
	JwtDecodeToken              string
}

func int64Ptr(i int64) *int64 {
	return &i
}
func int32Ptr(i int32) *int32 {
	return &i
}
func strPtr(s string) *string {
	return &s
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(loggerMiddleware)
	router.Use(m.logRequestMiddlware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to nestegg"})
	})

	router.GET("/currencies", m.listCurrencies)
	router.GET("/currencies/rates", m.getExchangeRates)
	router.POST("/currencies/convert", m.convertCurrency)

	authed := router.Group("/", m.authMiddleware)
	authed.POST("/households", m.createHousehold)
	authed.POST("/households/:householdID/members", m.addMember)
	authed.GET("/households/:householdID/members", m.listMembers)
	authed.GET("/households/:householdID/summary", m.getPortfolioSummary)
	authed.GET("/households/:householdID/investments", m.listInvestments)
	authed.POST("/households/:householdID/investments", m.addInvestment)
	authed.PATCH("/investments/:investmentID", m.updateInvestment)
	authed.DELETE("/investments/:investmentID", m.deleteInvestment)
	authed.DELETE("/members/:memberID/investments", m.clearInvestments)
	authed.POST("/members/:memberID/sync/trading212", m.syncTrading212)
	authed.POST("/members/:memberID/import/tickertape", m.importTickertape)
	authed.POST("/households/:householdID/quotes/refresh", m.refreshQuotes)
	authed.POST("/households/:householdID/snapshots", m.captureSnapshot)
	authed.GET("/households/:householdID/snapshots", m.listSnapshots)
	authed.GET("/symbols", m.listSymbols)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// loggerMiddleware makes logger.FromContext work for everything downstream
// of the router.
func loggerMiddleware(ctx *gin.Context) {
	ctx.Set(logger.ContextKey, logger.New())
	ctx.Next()
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (m ApiHandler) logRequestMiddlware(ctx *gin.Context) {
	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: ctx.Writer}
	ctx.Writer = w

	body, err := ctx.GetRawData()
	if err != nil {
		log.Println(fmt.Errorf("failed to get raw data: %w", err))
	}
	ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

	type memberIdBody struct {
		MemberID uuid.UUID `json:"memberID"`
	}

	reqBody := memberIdBody{}
	_ = json.Unmarshal(body, &reqBody)
	var memberID *uuid.UUID
	if reqBody.MemberID != uuid.Nil {
		memberID = &reqBody.MemberID
	}

	start := time.Now().UTC()
	req, err := m.ApiRequestRepository.Add(m.Db, model.APIRequest{
		UserID:      memberID,
		IPAddress:   strPtr(ctx.ClientIP()),
		Method:      ctx.Request.Method,
		Route:       ctx.Request.URL.Path,
		RequestBody: strPtr(string(body)),
		StartTs:     start,
	})
	if err != nil {
		log.Println(err)
	}

	ctx.Next()

	if req != nil {
		req.DurationMs = int64Ptr(time.Since(start).Milliseconds())
		req.StatusCode = int32Ptr(int32(ctx.Writer.Status()))
		req.ResponseBody = strPtr(w.body.String())

		err = m.ApiRequestRepository.Update(m.Db, *req)
		if err != nil {
			log.Println(err)
		}
	}
}
