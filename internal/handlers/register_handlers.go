package handlers

import (
	"log/slog"

	portssvc "github.com/financasapp/financas_backend/internal/core/ports/services"
	"github.com/financasapp/financas_backend/internal/middleware"
	"github.com/financasapp/financas_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	registerTransactionRoutes(v1, services.Transaction)
	registerCategoryRoutes(v1, services.Category)
	registerPatrimonyRoutes(v1, services.Patrimony)
	registerImportRoutes(v1, services.Import, cfg.MaxUploadBytes, uploadRateLimiter(cfg))
	registerAnalyticsRoutes(v1, services.Analytics)
	registerInsightRoutes(v1, services.Insight)
	registerBackupRoutes(v1, services.Backup)
}

// uploadRateLimiter builds the in-memory rate limiter applied to the
// statement-parse route.
func uploadRateLimiter(cfg *config.Config) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(cfg.UploadRateLimit)
	if err != nil {
		slog.Warn("Invalid upload rate limit, falling back to 30 per minute",
			slog.String("configured", cfg.UploadRateLimit),
			slog.String("error", err.Error()))
		rate, _ = limiter.NewRateFromFormatted("30-M")
	}
	return middleware.RateLimit(limiter.New(memory.NewStore(), rate))
}
