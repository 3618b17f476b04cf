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

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{currencyService: cs}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:code", h.getCurrencyByCode)
	}
}

// listCurrencies godoc
// @Summary List all currencies
// @Description Retrieves every reference currency, sorted by code
// @Tags currencies
// @Produce json
// @Success 200 {object} dto.Response{data=[]dto.CurrencyResponse}
// @Failure 500 {object} dto.Response
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list currencies", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Fail("Database error", "Failed to retrieve currencies"))
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToListCurrencyResponse(currencies), "Currencies retrieved successfully"))
}

// getCurrencyByCode godoc
// @Summary Get a currency by code
// @Description Retrieves one currency by its 3-letter code, case-insensitively
// @Tags currencies
// @Produce json
// @Param code path string true "Currency code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.Response{data=dto.CurrencyResponse}
// @Failure 404 {object} dto.Response "Currency not found"
// @Failure 500 {object} dto.Response
// @Router /currencies/{code} [get]
func (h *currencyHandler) getCurrencyByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")

	currency, err := h.currencyService.GetCurrencyByCode(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Currency not found", slog.String("currency_code", code))
			c.JSON(http.StatusNotFound, dto.Fail("Not found", "Currency not found"))
		} else {
			logger.Error("Failed to get currency", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.Fail("Database error", "Failed to retrieve currency"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToCurrencyResponse(currency), "Currency retrieved successfully"))
}
