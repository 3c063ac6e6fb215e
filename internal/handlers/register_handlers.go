package handlers

import (
	"net/http"
	"sync"

	"github.com/SscSPs/sales_crm_app/cmd/docs"
	portssvc "github.com/SscSPs/sales_crm_app/internal/core/ports/services"
	"github.com/SscSPs/sales_crm_app/internal/middleware"
	"github.com/SscSPs/sales_crm_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var validatorsOnce sync.Once

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	validatorsOnce.Do(registerValidators)

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(v1, services.User)
	registerTeamRoutes(v1, services.Team, services.User)
	registerClientRoutes(v1, services.Client)
	registerDealRoutes(v1, services.Deal)
	registerPaymentRoutes(v1, services.Payment, cfg.ReportLocation)
	registerCatalogRoutes(v1, services.Catalog)
	registerSalesRoutes(v1, services.Sales, cfg.ReportLocation)
	registerCommissionRoutes(v1, services.Commission, cfg.ReportLocation)
	registerOfferRoutes(v1, services.Offer)
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
