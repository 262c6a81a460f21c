package cmd

import (
	"database/sql"
	"fmt"
	"log"

	"nestegg/api"
	"nestegg/internal"
	"nestegg/internal/app"
	"nestegg/internal/repository"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := internal.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	householdRepository := repository.NewHouseholdRepository(dbConn)
	memberRepository := repository.NewMemberRepository(dbConn)
	investmentRepository := repository.NewInvestmentRepository(dbConn)
	stockSymbolRepository := repository.NewStockSymbolRepository(dbConn)
	portfolioSnapshotRepository := repository.NewPortfolioSnapshotRepository(dbConn)
	trading212OrderRepository := repository.NewTrading212OrderRepository(dbConn)
	trading212Repository := repository.NewTrading212Repository(secrets.Trading212.ApiKey, secrets.Trading212.BaseURL)
	quoteRepository := repository.NewQuoteRepository()
	exchangeRateRepository := repository.NewExchangeRateRepository(secrets.ExchangeRateURL)

	exchangeRateService := internal.NewExchangeRateService(exchangeRateRepository)
	normalizer := internal.NewNormalizer(stockSymbolRepository)

	portfolioService := app.NewPortfolioService(
		householdRepository,
		memberRepository,
		investmentRepository,
		exchangeRateService,
		normalizer,
	)
	trading212SyncService := app.NewTrading212SyncService(
		dbConn,
		trading212Repository,
		investmentRepository,
		trading212OrderRepository,
		stockSymbolRepository,
	)
	tickertapeImportService := app.NewTickertapeImportService(dbConn, investmentRepository)
	snapshotService := app.NewSnapshotService(
		dbConn,
		householdRepository,
		memberRepository,
		investmentRepository,
		portfolioSnapshotRepository,
		exchangeRateService,
		normalizer,
	)
	quoteRefreshService := app.NewQuoteRefreshService(investmentRepository, quoteRepository)

	apiHandler := &api.ApiHandler{
		Db:                          dbConn,
		PortfolioService:            portfolioService,
		Trading212SyncService:       trading212SyncService,
		TickertapeImportService:     tickertapeImportService,
		SnapshotService:             snapshotService,
		QuoteRefreshService:         quoteRefreshService,
		ExchangeRateService:         exchangeRateService,
		InvestmentRepository:        investmentRepository,
		MemberRepository:            memberRepository,
		HouseholdRepository:         householdRepository,
		StockSymbolRepository:       stockSymbolRepository,
		PortfolioSnapshotRepository: portfolioSnapshotRepository,
		ApiRequestRepository:        repository.ApiRequestRepositoryHandler{},
		JwtDecodeToken:              secrets.JwtDecodeToken,
	}

	return apiHandler, nil
}
