package v1

import (
	"net/http"

	"go-care-backend/config"
	"go-care-backend/internal/delivery/http/middleware"
	"go-care-backend/internal/delivery/http/response"
	"go-care-backend/internal/domain"
	"go-care-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC          domain.AuthUsecase
	CareRequestUC   domain.CareRequestUsecase
	CareRecipientUC domain.CareRecipientUsecase
	CarerUC         domain.CarerUsecase
	MatchingUC      domain.MatchingUsecase
	NotificationUC  domain.NotificationUsecase
	AdminUC         domain.AdminUsecase
	JWKSProvider    *auth.Provider
	Config          *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(deps.Config)))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.JWKSProvider, deps.Config, deps.AuthUC))
	{
		NewAuthHandler(protected, deps.AuthUC)
		NewCareRequestHandler(protected, deps.CareRequestUC, deps.MatchingUC)
		NewCareRecipientHandler(protected, deps.CareRecipientUC)
		NewCarerHandler(protected, deps.CarerUC)
		NewNotificationHandler(protected, deps.NotificationUC)
		NewAdminHandler(protected, deps.AdminUC, deps.AuthUC)
	}

	return r
}
