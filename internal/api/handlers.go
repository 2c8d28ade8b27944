package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"stock-price-proxy/internal/config"
	"stock-price-proxy/internal/logger"
	"stock-price-proxy/internal/middleware"
	"stock-price-proxy/internal/models"
	"stock-price-proxy/internal/service"
)

// missingParamsMessage is returned whenever any required query parameter
// is absent or empty, regardless of which subset is missing.
const missingParamsMessage = "Missing required query parameters: symbol, from, to, resolution"

// Handlers contains all HTTP handlers
type Handlers struct {
	configuration *config.Config
	logger        *logger.Logger
	stockService  *service.StockService
}

// HandlerConfig groups the dependencies of Handlers
type HandlerConfig struct {
	Configuration *config.Config
	Logger        *logger.Logger
	StockService  *service.StockService
}

// NewHandlers creates a new handlers instance
func NewHandlers(handlerConfig HandlerConfig) *Handlers {
	return &Handlers{
		configuration: handlerConfig.Configuration,
		logger:        handlerConfig.Logger,
		stockService:  handlerConfig.StockService,
	}
}

// SetupRoutes configures all the routes using Gin
func (handlers *Handlers) SetupRoutes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Add custom Gin middleware
	router.Use(middleware.RequestLogger(handlers.logger))
	router.Use(gin.Recovery())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RequestID())
	router.Use(handlers.corsMiddleware())

	router.GET("/api/stock-price", handlers.GetStockPrice)

	return router
}

// GetStockPrice validates the four query parameters, forwards the request to
// the upstream API and relays the outcome.
//
// Endpoint:
// GET /api/stock-price?symbol=FPT&from=1000&to=2000&resolution=D
func (handlers *Handlers) GetStockPrice(context *gin.Context) {
	query := models.StockQuery{
		Symbol:     context.Query("symbol"),
		From:       context.Query("from"),
		To:         context.Query("to"),
		Resolution: context.Query("resolution"),
	}

	handlers.logger.WithFields(logrus.Fields{
		"symbol":     query.Symbol,
		"from":       query.From,
		"to":         query.To,
		"resolution": query.Resolution,
	}).Info("Received stock price request")

	if !query.Complete() {
		handlers.logger.Errorf("Missing query parameters: symbol=%q from=%q to=%q resolution=%q",
			query.Symbol, query.From, query.To, query.Resolution)
		context.JSON(http.StatusBadRequest, models.ErrorResponse{Error: missingParamsMessage})
		return
	}

	requestContext := context.Request.Context()

	payload, fetchError := handlers.stockService.FetchOHLC(requestContext, query)
	if fetchError != nil {
		var upstreamError *service.UpstreamError
		if errors.As(fetchError, &upstreamError) {
			handlers.logger.Errorf("Upstream error for %s: status %d", query.Symbol, upstreamError.StatusCode)
			context.JSON(upstreamError.StatusCode, models.ErrorResponse{
				Error: fmt.Sprintf("Entrade API response for %s not OK: %d - %s",
					query.Symbol, upstreamError.StatusCode, upstreamError.Body),
			})
			return
		}

		handlers.logger.Errorf("Proxy failure for %s: %v", query.Symbol, fetchError)
		context.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: fmt.Sprintf("Failed to fetch data for %s through proxy: %s", query.Symbol, fetchError.Error()),
		})
		return
	}

	handlers.logger.Infof("Successfully fetched data for %s", query.Symbol)
	context.JSON(http.StatusOK, payload)
}

// corsMiddleware adds CORS headers using Gin middleware. The allow-origin
// header is set on every response and names exactly the one configured
// frontend origin; no credentials mode is configured.
func (handlers *Handlers) corsMiddleware() gin.HandlerFunc {
	return func(context *gin.Context) {
		context.Header("Access-Control-Allow-Origin", handlers.configuration.AllowedOrigin)
		context.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		context.Header("Access-Control-Allow-Headers", "Content-Type")

		if context.Request.Method == http.MethodOptions {
			context.AbortWithStatus(http.StatusOK)
			return
		}

		context.Next()
	}
}
