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

// distributionHandler handles HTTP requests for the distribution engine.
type distributionHandler struct {
	distributionService portssvc.DistributionSvcFacade
	userService         portssvc.UserReaderSvc
}

// newDistributionHandler creates a new distributionHandler.
func newDistributionHandler(ds portssvc.DistributionSvcFacade, us portssvc.UserReaderSvc) *distributionHandler {
	return &distributionHandler{
		distributionService: ds,
		userService:         us,
	}
}

// registerDistributionRoutes registers the distribution routes.
func registerDistributionRoutes(rg *gin.RouterGroup, distributionService portssvc.DistributionSvcFacade, userService portssvc.UserReaderSvc) {
	h := newDistributionHandler(distributionService, userService)

	distributions := rg.Group("/distributions")
	{
		distributions.POST("", h.distribute)
		distributions.GET("", h.listDistributions)
		distributions.GET("/officers", h.listOfficers)
		distributions.GET("/:id", h.getDistribution)
	}
}

// distribute godoc
// @Summary Distribute stock to an officer
// @Description Atomically deducts stock (oldest batches first) and records the distribution
// @Tags distributions
// @Accept json
// @Produce json
// @Param distribution body dto.DistributeRequest true "Distribution details"
// @Success 201 {object} dto.DistributionResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "Concurrent conflict, retry"
// @Failure 422 {object} ErrorResponse "Insufficient stock"
// @Failure 500 {object} ErrorResponse "Failed to distribute"
// @Security BearerAuth
// @Router /distributions [post]
func (h *distributionHandler) distribute(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.DistributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for distribute request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	distribution, err := h.distributionService.Distribute(c.Request.Context(), req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrInsufficientStock):
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Concurrent stock update, please retry"})
		default:
			logger.Error("Failed to distribute stock", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to distribute stock"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToDistributionResponse(distribution))
}

// listDistributions godoc
// @Summary List distribution history
// @Description Retrieves distribution records with officer and medicine details, newest first
// @Tags distributions
// @Produce json
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListDistributionsResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list distributions"
// @Security BearerAuth
// @Router /distributions [get]
func (h *distributionHandler) listDistributions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	distributions, err := h.distributionService.ListDistributions(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list distributions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list distributions"})
		return
	}

	c.JSON(http.StatusOK, dto.ListDistributionsResponse{Distributions: dto.ToDistributionResponses(distributions)})
}

// getDistribution godoc
// @Summary Get a distribution by ID
// @Description Retrieves a single distribution record
// @Tags distributions
// @Produce json
// @Param id path string true "Distribution ID"
// @Success 200 {object} dto.DistributionResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Distribution not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve distribution"
// @Security BearerAuth
// @Router /distributions/{id} [get]
func (h *distributionHandler) getDistribution(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	distributionID := c.Param("id")

	distribution, err := h.distributionService.GetDistributionByID(c.Request.Context(), distributionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Distribution not found"})
			return
		}
		logger.Error("Failed to get distribution", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve distribution"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDistributionResponse(distribution))
}

// listOfficers godoc
// @Summary List field officers
// @Description Retrieves the active officers a distribution can be assigned to
// @Tags distributions
// @Produce json
// @Success 200 {object} dto.ListUsersResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list officers"
// @Security BearerAuth
// @Router /distributions/officers [get]
func (h *distributionHandler) listOfficers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	officers, err := h.userService.ListOfficers(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list officers", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list officers"})
		return
	}

	c.JSON(http.StatusOK, dto.ListUsersResponse{Users: dto.ToUserResponses(officers)})
}
