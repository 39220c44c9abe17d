package v1

import (
	"net/http"

	"talent-marketplace-backend/config"
	"talent-marketplace-backend/internal/delivery/http/middleware"
	"talent-marketplace-backend/internal/delivery/http/response"
	"talent-marketplace-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	TalentUC      domain.TalentUsecase
	InteractionUC domain.InteractionUsecase
	RecommendUC   domain.RecommendationUsecase
	UserRepo      domain.UserRepository
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Config, deps.UserRepo))
	{
		NewTalentHandler(protected, deps.TalentUC, deps.InteractionUC, deps.RecommendUC)
	}

	return r
}
