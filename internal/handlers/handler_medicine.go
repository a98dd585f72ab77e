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

// medicineHandler handles HTTP requests related to the medicine catalog.
type medicineHandler struct {
	medicineService portssvc.MedicineSvcFacade
}

// newMedicineHandler creates a new medicineHandler.
func newMedicineHandler(ms portssvc.MedicineSvcFacade) *medicineHandler {
	return &medicineHandler{
		medicineService: ms,
	}
}

// registerMedicineRoutes registers all medicine catalog routes. Mutations are
// restricted to admins.
func registerMedicineRoutes(rg *gin.RouterGroup, medicineService portssvc.MedicineSvcFacade, adminOnly gin.HandlerFunc) {
	h := newMedicineHandler(medicineService)

	medicines := rg.Group("/medicines")
	{
		medicines.GET("", h.listMedicines)
		medicines.GET("/:id", h.getMedicine)
		medicines.POST("", adminOnly, h.createMedicine)
		medicines.PUT("/:id", adminOnly, h.updateMedicine)
		medicines.DELETE("/:id", adminOnly, h.deleteMedicine)
	}
}

// createMedicine godoc
// @Summary Create a new medicine
// @Description Adds a new entry to the medicine catalog (admin only)
// @Tags medicines
// @Accept json
// @Produce json
// @Param medicine body dto.CreateMedicineRequest true "Medicine details"
// @Success 201 {object} dto.MedicineResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 500 {object} ErrorResponse "Failed to create medicine"
// @Security BearerAuth
// @Router /medicines [post]
func (h *medicineHandler) createMedicine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateMedicineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create medicine request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	medicine, err := h.medicineService.CreateMedicine(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Medicine already exists"})
			return
		}
		logger.Error("Failed to create medicine", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create medicine"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToMedicineResponse(medicine))
}

// getMedicine godoc
// @Summary Get a medicine by ID
// @Description Retrieves a single medicine catalog entry
// @Tags medicines
// @Produce json
// @Param id path string true "Medicine ID"
// @Success 200 {object} dto.MedicineResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Medicine not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve medicine"
// @Security BearerAuth
// @Router /medicines/{id} [get]
func (h *medicineHandler) getMedicine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	medicineID := c.Param("id")

	medicine, err := h.medicineService.GetMedicineByID(c.Request.Context(), medicineID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Medicine not found"})
			return
		}
		logger.Error("Failed to get medicine", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve medicine"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMedicineResponse(medicine))
}

// listMedicines godoc
// @Summary List medicines
// @Description Retrieves a paginated list of active medicines
// @Tags medicines
// @Produce json
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListMedicinesResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list medicines"
// @Security BearerAuth
// @Router /medicines [get]
func (h *medicineHandler) listMedicines(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	medicines, err := h.medicineService.ListMedicines(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list medicines", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list medicines"})
		return
	}

	c.JSON(http.StatusOK, dto.ListMedicinesResponse{Medicines: dto.ToMedicineResponses(medicines)})
}

// updateMedicine godoc
// @Summary Update a medicine
// @Description Updates fields of an existing catalog entry (admin only)
// @Tags medicines
// @Accept json
// @Produce json
// @Param id path string true "Medicine ID"
// @Param medicine body dto.UpdateMedicineRequest true "Fields to update"
// @Success 200 {object} dto.MedicineResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Medicine not found"
// @Failure 500 {object} ErrorResponse "Failed to update medicine"
// @Security BearerAuth
// @Router /medicines/{id} [put]
func (h *medicineHandler) updateMedicine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	medicineID := c.Param("id")

	var req dto.UpdateMedicineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	medicine, err := h.medicineService.UpdateMedicine(c.Request.Context(), medicineID, req, requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Medicine not found"})
			return
		}
		logger.Error("Failed to update medicine", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update medicine"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMedicineResponse(medicine))
}

// deleteMedicine godoc
// @Summary Deactivate a medicine
// @Description Marks a medicine as inactive; its batches and history remain (admin only)
// @Tags medicines
// @Produce json
// @Param id path string true "Medicine ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Medicine not found"
// @Failure 500 {object} ErrorResponse "Failed to deactivate medicine"
// @Security BearerAuth
// @Router /medicines/{id} [delete]
func (h *medicineHandler) deleteMedicine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	medicineID := c.Param("id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	err := h.medicineService.DeleteMedicine(c.Request.Context(), medicineID, requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Medicine not found"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Medicine is already inactive"})
			return
		}
		logger.Error("Failed to deactivate medicine", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to deactivate medicine"})
		return
	}

	c.Status(http.StatusNoContent)
}
