package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"nestegg/internal/logger"
)

const (
	trading212DefaultBaseURL   = "https://live.trading212.com/api/v0"
	trading212OrderPageSize    = 50
	trading212MaxOrderPages    = 500
	instrumentsCacheTTL        = 24 * time.Hour
	trading212PageFetchBackoff = 500 * time.Millisecond
)

type Trading212Position struct {
	Ticker       string  `json:"ticker"`
	Quantity     float64 `json:"quantity"`
	AveragePrice float64 `json:"averagePrice"`
	CurrentPrice float64 `json:"currentPrice"`
	Ppl          float64 `json:"ppl"`
}

type Trading212Instrument struct {
	Ticker       string `json:"ticker"`
	Name         string `json:"name"`
	ShortName    string `json:"shortName"`
	Isin         string `json:"isin"`
	Type         string `json:"type"`
	CurrencyCode string `json:"currencyCode"`
}

type Trading212HistoricalOrder struct {
	ID             int64      `json:"id"`
	Ticker         string     `json:"ticker"`
	Type           string     `json:"type"`
	FillType       string     `json:"fillType"`
	Status         string     `json:"status"`
	FilledQuantity float64    `json:"filledQuantity"`
	FillPrice      float64    `json:"fillPrice"`
	FilledValue    float64    `json:"filledValue"`
	DateCreated    *time.Time `json:"dateCreated"`
	DateExecuted   *time.Time `json:"dateExecuted"`
}

type Trading212Repository interface {
	GetPortfolio(ctx context.Context) ([]Trading212Position, error)
	GetInstruments(ctx context.Context) (map[string]Trading212Instrument, error)
	GetHistoricalOrders(ctx context.Context) ([]Trading212HistoricalOrder, error)
}

type trading212RepositoryHandler struct {
	Client  *http.Client
	BaseURL string
	ApiKey  string

	instrumentsMu     sync.Mutex
	instrumentsCache  map[string]Trading212Instrument
	instrumentsExpiry time.Time
}

func NewTrading212Repository(apiKey, baseURL string) Trading212Repository {
	if baseURL == "" {
		baseURL = trading212DefaultBaseURL
	}
	return &trading212RepositoryHandler{
		Client:  &http.Client{Timeout: 30 * time.Second},
		BaseURL: strings.TrimRight(baseURL, "/"),
		ApiKey:  apiKey,
	}
}

func (h *trading212RepositoryHandler) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to construct trading212 request: %w", err)
	}
	req.Header.Set("Authorization", h.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.Client.Do(req)
	if err != nil {
		return fmt.Errorf("trading212 request %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("trading212 request %s returned status %d: %s", path, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode trading212 response from %s: %w", path, err)
	}

	return nil
}

func (h *trading212RepositoryHandler) GetPortfolio(ctx context.Context) ([]Trading212Position, error) {
	positions := []Trading212Position{}
	if err := h.get(ctx, "/equity/portfolio", &positions); err != nil {
		return nil, err
	}
	return positions, nil
}

func (h *trading212RepositoryHandler) GetInstruments(ctx context.Context) (map[string]Trading212Instrument, error) {
	h.instrumentsMu.Lock()
	defer h.instrumentsMu.Unlock()

	if h.instrumentsCache != nil && time.Now().Before(h.instrumentsExpiry) {
		return h.instrumentsCache, nil
	}

	instruments := []Trading212Instrument{}
	if err := h.get(ctx, "/equity/metadata/instruments", &instruments); err != nil {
		return nil, err
	}

	cache := make(map[string]Trading212Instrument, len(instruments))
	for _, instrument := range instruments {
		cache[instrument.Ticker] = instrument
	}
	h.instrumentsCache = cache
	h.instrumentsExpiry = time.Now().Add(instrumentsCacheTTL)
	logger.FromContext(ctx).Infof("cached %d trading212 instruments", len(cache))

	return cache, nil
}

type trading212OrdersPage struct {
	Items        []Trading212HistoricalOrder `json:"items"`
	NextPagePath *string                     `json:"nextPagePath"`
}

func (h *trading212RepositoryHandler) GetHistoricalOrders(ctx context.Context) ([]Trading212HistoricalOrder, error) {
	log := logger.FromContext(ctx)

	allOrders := []Trading212HistoricalOrder{}
	path := fmt.Sprintf("/equity/history/orders?limit=%d", trading212OrderPageSize)
	for page := 0; page < trading212MaxOrderPages; page++ {
		out := trading212OrdersPage{}
		err := h.get(ctx, path, &out)
		if err != nil {
			// the orders endpoint occasionally 500s deep into pagination;
			// keep what we have rather than failing the whole sync
			if len(allOrders) > 0 {
				log.Warnf("stopping trading212 order pagination after %d orders: %v", len(allOrders), err)
				break
			}
			return nil, err
		}

		allOrders = append(allOrders, out.Items...)
		if out.NextPagePath == nil || len(out.Items) == 0 {
			break
		}
		path = normalizePagePath(*out.NextPagePath)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(trading212PageFetchBackoff):
		}
	}

	log.Infof("fetched %d trading212 historical orders", len(allOrders))
	return allOrders, nil
}

// the cursor path comes back with the /api/v0 prefix the base url already carries
func normalizePagePath(pagePath string) string {
	trimmed := strings.TrimPrefix(pagePath, "/api/v0")
	if !strings.HasPrefix(trimmed, "/") {
		trimmed = "/" + trimmed
	}
	return trimmed
}
