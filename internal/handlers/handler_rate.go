package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/abishekraja/currency_converter_app/internal/apperrors"
	portssvc "github.com/abishekraja/currency_converter_app/internal/core/ports/services"
	"github.com/abishekraja/currency_converter_app/internal/dto"
	"github.com/abishekraja/currency_converter_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// rateHandler handles HTTP requests for live exchange rates.
type rateHandler struct {
	rateService portssvc.RateSvcFacade
}

func newRateHandler(rs portssvc.RateSvcFacade) *rateHandler {
	return &rateHandler{
		rateService: rs,
	}
}

// registerRateRoutes registers routes related to exchange rate lookups.
func registerRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade) {
	h := newRateHandler(rateService)

	rates := rg.Group("/rates")
	{
		rates.GET("/:from", h.getRates)
		rates.GET("/:from/:to", h.convert)
	}
}

// getRates godoc
// @Summary Get all exchange rates for a base currency
// @Description Retrieves the provider's full rate table for one base currency
// @Tags rates
// @Produce  json
// @Param   from path string true "Base currency code (3 letters)"
// @Success 200 {object} map[string]interface{} "success + data"
// @Failure 400 {object} map[string]string "Invalid currency code"
// @Failure 502 {object} map[string]string "Failed to fetch exchange rates"
// @Router /rates/{from} [get]
func (h *rateHandler) getRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from := c.Param("from")

	table, err := h.rateService.GetRates(c.Request.Context(), from)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Currency code must be 3 letters"})
			return
		}
		logger.Error("Failed to fetch rates from provider", slog.String("base", from), slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "Failed to fetch exchange rates",
			"details": errorDetails(err),
		})
		return
	}

	logger.Info("Rates fetched", slog.String("base", table.BaseCode), slog.Int("count", len(table.Rates)))
	c.JSON(http.StatusOK, gin.H{"success": true, "data": dto.ToRateTableResponse(table)})
}

// convert godoc
// @Summary Quote a conversion at the current rate
// @Description Converts an amount between two currencies at the live rate; nothing is persisted
// @Tags rates
// @Produce  json
// @Param   from path string true "Source currency code (3 letters)"
// @Param   to path string true "Target currency code (3 letters)"
// @Param   amount query number false "Amount in source currency" default(1)
// @Success 200 {object} map[string]interface{} "success + data"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 502 {object} map[string]string "Failed to fetch exchange rates"
// @Router /rates/{from}/{to} [get]
func (h *rateHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from := c.Param("from")
	to := c.Param("to")

	amount := 1.0
	if raw := c.Query("amount"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount"})
			return
		}
		amount = parsed
	}

	quote, err := h.rateService.Convert(c.Request.Context(), from, to, amount)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
		default:
			logger.Error("Failed to quote conversion", slog.String("from", from), slog.String("to", to), slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{
				"error":   "Failed to fetch exchange rates",
				"details": errorDetails(err),
			})
		}
		return
	}

	logger.Info("Conversion quoted",
		slog.String("from", quote.FromCurrency),
		slog.String("to", quote.ToCurrency),
		slog.Float64("rate", quote.Rate),
	)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": dto.ToConversionQuoteResponse(quote)})
}
