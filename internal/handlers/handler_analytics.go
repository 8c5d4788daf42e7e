package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/financasapp/financas_backend/internal/core/domain"
	portssvc "github.com/financasapp/financas_backend/internal/core/ports/services"
	"github.com/financasapp/financas_backend/internal/dto"
	"github.com/financasapp/financas_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

const defaultComparisonMonths = 6

// analyticsHandler handles HTTP requests for derived figures.
type analyticsHandler struct {
	analyticsService portssvc.AnalyticsSvcFacade
}

// registerAnalyticsRoutes registers routes related to analytics.
func registerAnalyticsRoutes(rg *gin.RouterGroup, analyticsService portssvc.AnalyticsSvcFacade) {
	h := &analyticsHandler{analyticsService: analyticsService}

	analytics := rg.Group("/analytics")
	{
		analytics.GET("/summary", h.getSummary)
		analytics.GET("/forecast", h.getForecast)
		analytics.GET("/monthly", h.getMonthlyComparison)
		analytics.GET("/balance-history", h.getBalanceHistory)
		analytics.GET("/categories", h.getCategoryDistribution)
		analytics.GET("/month-stats", h.getCurrentMonthStats)
	}
}

// windowFromQuery parses the optional `days` and `startDate` query params.
// Absent params mean all history.
func windowFromQuery(c *gin.Context) (domain.Window, bool) {
	var window domain.Window

	if raw := c.Query("days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || days < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a non-negative integer"})
			return window, false
		}
		window.Days = days
	}
	if raw := c.Query("startDate"); raw != "" {
		start, err := time.Parse(dto.DateLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "startDate must be formatted as " + dto.DateLayout})
			return window, false
		}
		window.StartDate = &start
	}
	return window, true
}

func (h *analyticsHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	window, ok := windowFromQuery(c)
	if !ok {
		return
	}

	summary, err := h.analyticsService.Summary(c.Request.Context(), window)
	if err != nil {
		logger.Error("Failed to compute summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *analyticsHandler) getForecast(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	forecast, err := h.analyticsService.Forecast(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute forecast", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute forecast"})
		return
	}
	c.JSON(http.StatusOK, forecast)
}

func (h *analyticsHandler) getMonthlyComparison(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	months := defaultComparisonMonths
	if raw := c.Query("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "months must be a positive integer"})
			return
		}
		months = parsed
	}

	buckets, err := h.analyticsService.MonthlyComparison(c.Request.Context(), months)
	if err != nil {
		logger.Error("Failed to compute monthly comparison", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute monthly comparison"})
		return
	}
	c.JSON(http.StatusOK, buckets)
}

func (h *analyticsHandler) getBalanceHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	window, ok := windowFromQuery(c)
	if !ok {
		return
	}

	points, err := h.analyticsService.BalanceHistory(c.Request.Context(), window)
	if err != nil {
		logger.Error("Failed to compute balance history", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute balance history"})
		return
	}
	c.JSON(http.StatusOK, points)
}

func (h *analyticsHandler) getCategoryDistribution(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	window, ok := windowFromQuery(c)
	if !ok {
		return
	}

	slices, err := h.analyticsService.CategoryDistribution(c.Request.Context(), window)
	if err != nil {
		logger.Error("Failed to compute category distribution", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute category distribution"})
		return
	}
	c.JSON(http.StatusOK, slices)
}

func (h *analyticsHandler) getCurrentMonthStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	stats, err := h.analyticsService.CurrentMonthStats(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute month stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute month stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
