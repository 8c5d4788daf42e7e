package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/financasapp/financas_backend/internal/core/ports/services"
	"github.com/financasapp/financas_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// insightHandler handles HTTP requests for the smart insight.
type insightHandler struct {
	insightService portssvc.InsightSvcFacade
}

// registerInsightRoutes registers routes related to insights.
func registerInsightRoutes(rg *gin.RouterGroup, insightService portssvc.InsightSvcFacade) {
	h := &insightHandler{insightService: insightService}

	insights := rg.Group("/insights")
	{
		insights.GET("/smart", h.getSmartInsight)
	}
}

func (h *insightHandler) getSmartInsight(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	insight, err := h.insightService.SmartInsight(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute insight", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute insight"})
		return
	}
	c.JSON(http.StatusOK, insight)
}
