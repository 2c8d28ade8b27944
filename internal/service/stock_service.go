package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"stock-price-proxy/internal/config"
	"stock-price-proxy/internal/logger"
	"stock-price-proxy/internal/models"
)

// UpstreamError represents a non-2xx response from the Entrade API.
// The status code and body text are relayed to the caller.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream responded with status %d: %s", e.StatusCode, e.Body)
}

// StockService issues the outbound call to the Entrade chart API
type StockService struct {
	configuration *config.Config
	logger        *logger.Logger
	httpClient    *http.Client
}

// NewStockService creates a new stock service
func NewStockService(configuration *config.Config, logger *logger.Logger) *StockService {
	return &StockService{
		configuration: configuration,
		logger:        logger,
		// default client settings: no custom timeout, no custom headers
		httpClient: &http.Client{},
	}
}

// BuildURL constructs the upstream URL for a query. Parameter order in the
// query string is fixed and values are substituted as received, so this
// deliberately avoids url.Values (which would sort the keys).
func (stockService *StockService) BuildURL(query models.StockQuery) string {
	return fmt.Sprintf("%s?from=%s&to=%s&symbol=%s&resolution=%s",
		stockService.configuration.UpstreamBaseURL, query.From, query.To, query.Symbol, query.Resolution)
}

// FetchOHLC fetches candle data for the query from the upstream API.
// A non-2xx upstream response is returned as *UpstreamError; transport
// failures and bodies that do not parse as JSON are returned as-is.
func (stockService *StockService) FetchOHLC(ctx context.Context, query models.StockQuery) (any, error) {
	url := stockService.BuildURL(query)
	stockService.logger.Infof("Forwarding request for %s to upstream: %s", query.Symbol, url)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	response, err := stockService.httpClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, &UpstreamError{StatusCode: response.StatusCode, Body: string(body)}
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}

	return payload, nil
}
