package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/currex/currex_backend/internal/apperrors"
	portssvc "github.com/currex/currex_backend/internal/core/ports/services"
	"github.com/currex/currex_backend/internal/dto"
	"github.com/currex/currex_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	rateService portssvc.ExchangeRateSvcFacade
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(rs portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{rateService: rs}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, rateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(rateService)

	rates := rg.Group("/exchange-rates")
	{
		rates.GET("", h.listExchangeRates)
		rates.GET("/:from/:to", h.getExchangeRate)
		rates.GET("/:from/:to/historical", h.getHistoricalRates)
	}
}

// listExchangeRates godoc
// @Summary List all exchange rates
// @Description Retrieves every stored directional rate, sorted by pair
// @Tags exchange-rates
// @Produce json
// @Success 200 {object} dto.Response{data=[]dto.ExchangeRateResponse}
// @Failure 500 {object} dto.Response
// @Router /exchange-rates [get]
func (h *exchangeRateHandler) listExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rates, err := h.rateService.ListExchangeRates(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list exchange rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Fail("Database error", "Failed to retrieve exchange rates"))
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToListExchangeRateResponse(rates), "Exchange rates retrieved successfully"))
}

// getExchangeRate godoc
// @Summary Resolve one exchange rate
// @Description Resolves the rate for the ordered pair; equal codes yield the identity rate
// @Tags exchange-rates
// @Produce json
// @Param from path string true "Source currency code"
// @Param to path string true "Destination currency code"
// @Success 200 {object} dto.Response{data=dto.ExchangeRateResponse}
// @Failure 400 {object} dto.Response "Invalid currency code"
// @Failure 404 {object} dto.Response "No rate stored for the pair"
// @Failure 500 {object} dto.Response
// @Router /exchange-rates/{from}/{to} [get]
func (h *exchangeRateHandler) getExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from := c.Param("from")
	to := c.Param("to")

	rate, err := h.rateService.GetExchangeRate(c.Request.Context(), from, to)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Invalid currency pair", slog.String("from", from), slog.String("to", to))
			c.JSON(http.StatusBadRequest, dto.Fail("Invalid parameters", "Currency codes must be 3 letters"))
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Exchange rate not found", slog.String("from", from), slog.String("to", to))
			c.JSON(http.StatusNotFound, dto.Fail("Not found", "Exchange rate not found for this pair"))
		default:
			logger.Error("Failed to resolve exchange rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.Fail("Database error", "Failed to retrieve exchange rate"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToExchangeRateResponse(rate), "Exchange rate retrieved successfully"))
}

// getHistoricalRates godoc
// @Summary Get a synthetic historical series
// @Description Generates days+1 points, oldest first, around the current stored rate
// @Tags exchange-rates
// @Produce json
// @Param from path string true "Source currency code"
// @Param to path string true "Destination currency code"
// @Param days query int false "Series length in days (default 30)" minimum(1) maximum(365)
// @Success 200 {object} dto.Response{data=[]domain.RatePoint}
// @Failure 400 {object} dto.Response "Invalid parameters"
// @Failure 404 {object} dto.Response "No rate stored for the pair"
// @Failure 500 {object} dto.Response
// @Router /exchange-rates/{from}/{to}/historical [get]
func (h *exchangeRateHandler) getHistoricalRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from := c.Param("from")
	to := c.Param("to")

	var query dto.HistoricalRateQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Invalid historical query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid parameters", "days must be between 1 and 365"))
		return
	}

	points, err := h.rateService.GetHistoricalRates(c.Request.Context(), from, to, query.Days)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Invalid currency pair", slog.String("from", from), slog.String("to", to))
			c.JSON(http.StatusBadRequest, dto.Fail("Invalid parameters", "Currency codes must be 3 letters"))
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("No base rate for historical series", slog.String("from", from), slog.String("to", to))
			c.JSON(http.StatusNotFound, dto.Fail("Not found", "Exchange rate not found for this pair"))
		default:
			logger.Error("Failed to generate historical rates", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.Fail("Database error", "Failed to retrieve historical rates"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.OK(points, "Historical rates retrieved successfully"))
}
