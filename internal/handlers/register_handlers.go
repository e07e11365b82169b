package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/pocket_money_app/cmd/docs"
	portssvc "github.com/SscSPs/pocket_money_app/internal/core/ports/services"
	"github.com/SscSPs/pocket_money_app/internal/dto"
	"github.com/SscSPs/pocket_money_app/internal/middleware"
	"github.com/SscSPs/pocket_money_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// rateLimiter guards the write endpoints and may be nil.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
) {
	// Unmatched paths, including trailing-slash variants, answer 404 instead of redirecting.
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false

	// Add health check route
	r.GET("/health", getHealth)

	registerChildRoutes(r, services.Coordinator, middleware.RateLimit(rateLimiter), cfg.WSWriteTimeout)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)

	r.NoRoute(notFound)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func notFound(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	path := c.Request.URL.RequestURI()
	logger.Info("No route matched", slog.String("path", path))
	c.JSON(http.StatusNotFound, dto.ErrorResponse{Reason: fmt.Sprintf("Requested path '%s' not found", path)})
}
