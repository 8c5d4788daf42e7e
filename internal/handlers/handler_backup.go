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

// backupHandler handles whole-store export and restore.
type backupHandler struct {
	backupService portssvc.BackupSvcFacade
}

// registerBackupRoutes registers routes related to backups.
func registerBackupRoutes(rg *gin.RouterGroup, backupService portssvc.BackupSvcFacade) {
	h := &backupHandler{backupService: backupService}

	backup := rg.Group("/backup")
	{
		backup.GET("/export", h.exportBackup)
		backup.POST("/import", h.importBackup)
	}
}

func (h *backupHandler) exportBackup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	doc, err := h.backupService.Export(c.Request.Context())
	if err != nil {
		logger.Error("Failed to export backup", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export backup"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="financas-backup.json"`)
	c.JSON(http.StatusOK, doc)
}

func (h *backupHandler) importBackup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var doc dto.BackupDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		logger.Warn("Failed to bind JSON for ImportBackup", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid backup document: " + err.Error()})
		return
	}

	if err := h.backupService.Import(c.Request.Context(), doc); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Rejected backup document", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to restore backup", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to restore backup"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
