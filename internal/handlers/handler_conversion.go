package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/abishekraja/currency_converter_app/internal/apperrors"
	portssvc "github.com/abishekraja/currency_converter_app/internal/core/ports/services"
	"github.com/abishekraja/currency_converter_app/internal/dto"
	"github.com/abishekraja/currency_converter_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// conversionHandler handles HTTP requests related to conversion history.
type conversionHandler struct {
	conversionService portssvc.ConversionSvcFacade
}

// newConversionHandler creates a new conversionHandler.
func newConversionHandler(cs portssvc.ConversionSvcFacade) *conversionHandler {
	return &conversionHandler{
		conversionService: cs,
	}
}

// registerConversionRoutes registers routes related to conversion history.
func registerConversionRoutes(rg *gin.RouterGroup, conversionService portssvc.ConversionSvcFacade) {
	h := newConversionHandler(conversionService)

	conversion := rg.Group("/conversion")
	{
		conversion.POST("", h.createConversion)
		conversion.GET("", h.listConversions)
		conversion.DELETE("", h.deleteConversion) // No id segment: rejected with 400
		conversion.DELETE("/:id", h.deleteConversion)
	}
}

// createConversion godoc
// @Summary Record a currency conversion
// @Description Persists one conversion (pair, amount, rate, converted amount) in the history
// @Tags conversion
// @Accept  json
// @Produce  json
// @Param   conversion body dto.CreateConversionRequest true "Conversion details"
// @Success 201 {object} map[string]interface{} "success + data"
// @Failure 400 {object} map[string]string "Missing required fields"
// @Failure 500 {object} map[string]string "Failed to save conversion history"
// @Router /conversion [post]
func (h *conversionHandler) createConversion(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateConversionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateConversion", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	// A zero amount or rate is treated as missing, the same way the web
	// client's truthiness check treats it before submitting.
	if !req.HasRequiredFields() {
		logger.Warn("CreateConversion rejected: missing required fields")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	record, err := h.conversionService.CreateConversion(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create conversion in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to save conversion history",
			"details": errorDetails(err),
		})
		return
	}

	logger.Info("Conversion recorded",
		slog.String("conversion_id", record.ConversionID),
		slog.String("from", record.FromCurrency),
		slog.String("to", record.ToCurrency),
	)
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": dto.ToConversionResponse(record)})
}

// listConversions godoc
// @Summary List recent conversions
// @Description Retrieves the 10 most recent conversion records, newest first
// @Tags conversion
// @Produce  json
// @Success 200 {object} map[string]interface{} "success + data array"
// @Failure 500 {object} map[string]string "Failed to fetch conversion history"
// @Router /conversion [get]
func (h *conversionHandler) listConversions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	records, err := h.conversionService.ListRecentConversions(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list conversions from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to fetch conversion history",
			"details": errorDetails(err),
		})
		return
	}

	logger.Info("Conversions listed", slog.Int("count", len(records)))
	c.JSON(http.StatusOK, gin.H{"success": true, "data": dto.ToListConversionResponse(records)})
}

// deleteConversion godoc
// @Summary Delete a conversion record
// @Description Removes one conversion record by its identifier
// @Tags conversion
// @Produce  json
// @Param   id path string true "Record identifier"
// @Success 200 {object} map[string]interface{} "success + message"
// @Failure 400 {object} map[string]string "Missing record ID"
// @Failure 404 {object} map[string]string "Record not found"
// @Failure 500 {object} map[string]string "Failed to delete conversion record"
// @Router /conversion/{id} [delete]
func (h *conversionHandler) deleteConversion(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	conversionID := c.Param("id")
	if conversionID == "" {
		logger.Warn("DeleteConversion rejected: missing record ID")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing record ID"})
		return
	}

	logger = logger.With(slog.String("conversion_id", conversionID))

	if _, err := h.conversionService.DeleteConversion(c.Request.Context(), conversionID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Conversion record not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			return
		}
		logger.Error("Failed to delete conversion in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to delete conversion record",
			"details": errorDetails(err),
		})
		return
	}

	logger.Info("Conversion record deleted")
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Record deleted successfully"})
}
