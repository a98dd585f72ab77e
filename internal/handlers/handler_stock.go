package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medistock/medicine_stock_app/internal/apperrors"
	portssvc "github.com/medistock/medicine_stock_app/internal/core/ports/services"
	"github.com/medistock/medicine_stock_app/internal/dto"
	"github.com/medistock/medicine_stock_app/internal/middleware"
)

// stockHandler handles HTTP requests for the stock ledger.
type stockHandler struct {
	stockService portssvc.StockSvcFacade
}

// newStockHandler creates a new stockHandler.
func newStockHandler(ss portssvc.StockSvcFacade) *stockHandler {
	return &stockHandler{
		stockService: ss,
	}
}

// RegisterStockRoutes registers the stock ledger routes.
func RegisterStockRoutes(rg *gin.RouterGroup, stockService portssvc.StockSvcFacade) {
	h := newStockHandler(stockService)

	stock := rg.Group("/stock")
	{
		stock.POST("/receive", h.receiveStock)
		stock.GET("", h.listBatches)
		stock.GET("/summary", h.listSummaries)
		stock.GET("/summary/:medicineID", h.getSummary)
	}
}

// receiveStock godoc
// @Summary Record a stock receipt
// @Description Appends a new stock batch; available quantity starts equal to received quantity
// @Tags stock
// @Accept json
// @Produce json
// @Param receipt body dto.ReceiveStockRequest true "Receipt details"
// @Success 201 {object} dto.StockBatchResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Medicine not found"
// @Failure 500 {object} ErrorResponse "Failed to record receipt"
// @Security BearerAuth
// @Router /stock/receive [post]
func (h *stockHandler) receiveStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ReceiveStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for receive stock request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	batch, err := h.stockService.ReceiveStock(c.Request.Context(), req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Medicine not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to record stock receipt", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record stock receipt"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToStockBatchResponse(batch))
}

// listBatches godoc
// @Summary List stock batches
// @Description Retrieves stock batches with medicine details, newest received first
// @Tags stock
// @Produce json
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListStockBatchesResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list batches"
// @Security BearerAuth
// @Router /stock [get]
func (h *stockHandler) listBatches(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	batches, err := h.stockService.ListBatches(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list stock batches", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list stock batches"})
		return
	}

	c.JSON(http.StatusOK, dto.ListStockBatchesResponse{Batches: dto.ToStockBatchResponses(batches)})
}

// listSummaries godoc
// @Summary List stock summaries
// @Description Retrieves per-medicine availability summaries with status bands
// @Tags stock
// @Produce json
// @Success 200 {object} dto.ListStockSummariesResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list summaries"
// @Security BearerAuth
// @Router /stock/summary [get]
func (h *stockHandler) listSummaries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summaries, err := h.stockService.SummaryAll(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list stock summaries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list stock summaries"})
		return
	}

	c.JSON(http.StatusOK, dto.ListStockSummariesResponse{Summaries: dto.ToStockSummaryResponses(summaries)})
}

// getSummary godoc
// @Summary Get a medicine's stock summary
// @Description Retrieves the availability summary for one medicine
// @Tags stock
// @Produce json
// @Param medicineID path string true "Medicine ID"
// @Success 200 {object} dto.StockSummaryResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "No stock recorded for medicine"
// @Failure 500 {object} ErrorResponse "Failed to retrieve summary"
// @Security BearerAuth
// @Router /stock/summary/{medicineID} [get]
func (h *stockHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	medicineID := c.Param("medicineID")

	summary, err := h.stockService.SummaryFor(c.Request.Context(), medicineID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "No stock recorded for medicine"})
			return
		}
		logger.Error("Failed to get stock summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve stock summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToStockSummaryResponse(summary))
}
