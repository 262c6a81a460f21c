package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"nestegg/internal/domain"
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRateRepository fetches USD-relative rates from the remote rate API.
// Cache, TTL and fallback policy live in the service layer, not here.
type ExchangeRateRepository interface {
	GetLatestRates(ctx context.Context) (map[domain.CurrencyCode]decimal.Decimal, error)
}

func NewExchangeRateRepository(baseURL string) ExchangeRateRepository {
	if baseURL == "" {
		baseURL = "https://api.exchangerate-api.com/v4/latest/USD"
	}
	return &exchangeRateRepositoryHandler{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

type exchangeRateRepositoryHandler struct {
	BaseURL string
	Client  *http.Client
}

type exchangeRateResponse struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

func (h exchangeRateRepositoryHandler) GetLatestRates(ctx context.Context) (map[domain.CurrencyCode]decimal.Decimal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.BaseURL, nil)
	if err != nil {
		return nil, err
	}
	response, err := h.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}
	if response.StatusCode != 200 {
		return nil, fmt.Errorf("failed with status code %d: %s", response.StatusCode, string(responseBytes))
	}

	responseBody := exchangeRateResponse{}
	err = json.Unmarshal(responseBytes, &responseBody)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rate response: %w", err)
	}
	if len(responseBody.Rates) == 0 {
		return nil, fmt.Errorf("rate response had no rates")
	}

	out := map[domain.CurrencyCode]decimal.Decimal{}
	for _, code := range domain.AllCurrencyCodes() {
		// minor units never come from the remote payload - they get
		// derived from their major counterpart by the service
		if code.IsMinorUnit() {
			continue
		}
		rate, ok := responseBody.Rates[string(code)]
		if !ok {
			continue
		}
		if rate <= 0 {
			return nil, fmt.Errorf("rate response had non-positive rate %f for %s", rate, code)
		}
		out[code] = decimal.NewFromFloat(rate)
	}

	return out, nil
}
