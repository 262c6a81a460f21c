package api

import (
	"github.com/gin-gonic/gin"
)

type symbolResponse struct {
	Ticker       string  `json:"ticker"`
	Name         string  `json:"name"`
	ShortName    *string `json:"shortName"`
	Isin         *string `json:"isin"`
	Type         *string `json:"type"`
	CurrencyCode string  `json:"currencyCode"`
}

func (m ApiHandler) listSymbols(c *gin.Context) {
	symbols, err := m.StockSymbolRepository.List()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []symbolResponse{}
	for _, s := range symbols {
		out = append(out, symbolResponse{
			Ticker:       s.Ticker,
			Name:         s.Name,
			ShortName:    s.ShortName,
			Isin:         s.Isin,
			Type:         s.Type,
			CurrencyCode: s.CurrencyCode,
		})
	}

	c.JSON(200, gin.H{"symbols": out})
}
