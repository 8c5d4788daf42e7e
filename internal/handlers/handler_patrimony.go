package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/financasapp/financas_backend/internal/apperrors"
	portssvc "github.com/financasapp/financas_backend/internal/core/ports/services"
	"github.com/financasapp/financas_backend/internal/dto"
	"github.com/financasapp/financas_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// patrimonyHandler handles HTTP requests related to the protected-savings pool.
type patrimonyHandler struct {
	patrimonyService portssvc.PatrimonySvcFacade
}

// registerPatrimonyRoutes registers routes related to patrimony movements.
func registerPatrimonyRoutes(rg *gin.RouterGroup, patrimonyService portssvc.PatrimonySvcFacade) {
	h := &patrimonyHandler{patrimonyService: patrimonyService}

	patrimony := rg.Group("/patrimony")
	{
		patrimony.POST("", h.createMovement)
		patrimony.GET("", h.listMovements)
		patrimony.DELETE("/:id", h.deleteMovement)
	}
}

func (h *patrimonyHandler) createMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePatrimonyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePatrimonyMovement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	movement, err := h.patrimonyService.CreateMovement(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating patrimony movement", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create patrimony movement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create patrimony movement"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToPatrimonyResponse(movement))
}

func (h *patrimonyHandler) listMovements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	movements, err := h.patrimonyService.ListMovements(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list patrimony movements", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list patrimony movements"})
		return
	}

	total, err := h.patrimonyService.Total(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute patrimony total", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute patrimony total"})
		return
	}

	c.JSON(http.StatusOK, dto.ListPatrimonyResponse{
		Movements: dto.ToPatrimonyResponses(movements),
		Total:     total,
	})
}

func (h *patrimonyHandler) deleteMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	patrimonyID := c.Param("id")

	if err := h.patrimonyService.DeleteMovement(c.Request.Context(), patrimonyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Patrimony movement not found"})
		} else {
			logger.Error("Failed to delete patrimony movement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete patrimony movement"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
