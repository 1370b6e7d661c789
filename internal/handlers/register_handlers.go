// Package handlers wires the HTTP surface: request binding, store lookup for
// the authenticated operator, and translation of domain errors to statuses.
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"

	"github.com/limpanome/crm_backend/cmd/docs"
	"github.com/limpanome/crm_backend/internal/core/services"
	"github.com/limpanome/crm_backend/internal/core/store"
	"github.com/limpanome/crm_backend/internal/middleware"
	"github.com/limpanome/crm_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	stores *store.Manager,
	authService *services.AuthService,
	userService *services.UserService,
	loginLimiter *limiter.Limiter,
) {
	registerValidations()

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	registerAuthRoutes(r, cfg, stores, authService, loginLimiter)
	setupAPIV1Routes(r, cfg, stores, userService)
	setupSwaggerRoutes(r, cfg)
}

// registerValidations installs the custom binding validators used by the DTOs.
func registerValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	// decimalgt0 accepts only strictly positive decimal amounts.
	_ = v.RegisterValidation("decimalgt0", func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(decimal.Decimal)
		return ok && d.IsPositive()
	})
}

// setupAPIV1Routes configures the /api/v1 group and delegates to the
// per-entity route registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	stores *store.Manager,
	userService *services.UserService,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerClientRoutes(v1, stores)
	registerContractRoutes(v1, stores)
	registerPaymentRoutes(v1, stores)
	registerListRoutes(v1, stores)
	registerExpenseRoutes(v1, stores)
	registerDashboardRoutes(v1, stores)
	registerUserRoutes(v1, userService)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
