package handlers

import (
	"net/http"

	"github.com/SscSPs/timesheet_app/cmd/docs"
	portsrepo "github.com/SscSPs/timesheet_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/timesheet_app/internal/core/ports/services"
	"github.com/SscSPs/timesheet_app/internal/middleware"
	"github.com/SscSPs/timesheet_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	health portsrepo.HealthChecker,
) {

	// Add health check route
	r.GET("/health", healthHandler(health))

	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// healthHandler reports OK, or 503 when the store cannot be reached.
func healthHandler(health portsrepo.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if health != nil {
			if err := health.Ping(c.Request.Context()); err != nil {
				middleware.GetLoggerFromCtx(c.Request.Context()).Error("Health check failed", "error", err.Error())
				c.String(http.StatusServiceUnavailable, "UNAVAILABLE")
				return
			}
		}
		c.String(http.StatusOK, "OK")
	}
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	// Delegate route registration to specific handlers, passing required services
	registerTimeEntryRoutes(v1, service.TimeEntry)
	registerTimesheetRoutes(v1, service.Timesheet)
	registerProjectRoutes(v1, service.Project, cfg.Location)
	registerEmployeeRoutes(v1, service.Employee)
	registerReminderRoutes(v1, service.Reminder)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
