package api

import (
	"fmt"
	"time"

	"nestegg/internal"
	"nestegg/internal/domain"

	"github.com/gin-gonic/gin"
)

type currencyResponse struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

func (m ApiHandler) listCurrencies(c *gin.Context) {
	out := []currencyResponse{}
	for _, currency := range domain.SupportedCurrencies() {
		out = append(out, currencyResponse{
			Code:   currency.Code.String(),
			Name:   currency.Name,
			Symbol: currency.Symbol,
		})
	}

	c.JSON(200, gin.H{"currencies": out})
}

type exchangeRatesResponse struct {
	Base   string             `json:"base"`
	Rates  map[string]float64 `json:"rates"`
	AsOf   string             `json:"asOf"`
	Source string             `json:"source"`
}

func (m ApiHandler) getExchangeRates(c *gin.Context) {
	table := m.ExchangeRateService.GetRates(c)

	rates := map[string]float64{}
	for code, rate := range table.Rates {
		rates[code.String()] = rate.InexactFloat64()
	}

	c.JSON(200, exchangeRatesResponse{
		Base:   domain.CurrencyUSD.String(),
		Rates:  rates,
		AsOf:   table.AsOf.Format(time.RFC3339),
		Source: table.Source,
	})
}

type convertCurrencyRequest struct {
	Amount       float64 `json:"amount"`
	FromCurrency string  `json:"fromCurrency"`
	ToCurrency   string  `json:"toCurrency"`
}

type convertCurrencyResponse struct {
	Amount          float64 `json:"amount"`
	FromCurrency    string  `json:"fromCurrency"`
	ToCurrency      string  `json:"toCurrency"`
	ConvertedAmount float64 `json:"convertedAmount"`
	RateAsOf        string  `json:"rateAsOf"`
}

func (m ApiHandler) convertCurrency(c *gin.Context) {
	var requestBody convertCurrencyRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(err, c)
		return
	}

	from, err := domain.NewCurrencyCode(requestBody.FromCurrency)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	to, err := domain.NewCurrencyCode(requestBody.ToCurrency)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if requestBody.Amount < 0 {
		returnErrorJsonCode(fmt.Errorf("amount must be non-negative"), c, 400)
		return
	}

	table := m.ExchangeRateService.GetRates(c)
	converted := internal.ConvertFloat(requestBody.Amount, from, to, table)

	c.JSON(200, convertCurrencyResponse{
		Amount:          requestBody.Amount,
		FromCurrency:    from.String(),
		ToCurrency:      to.String(),
		ConvertedAmount: converted,
		RateAsOf:        table.AsOf.Format(time.RFC3339),
	})
}
