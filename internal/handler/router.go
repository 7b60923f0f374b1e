package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lifenumber/reporthub/internal/config"
	"lifenumber/reporthub/internal/handler/middleware"
)

func SetupRouter(
	cfg *config.Config,
	logger *zap.Logger,
	reportHandler *ReportHandler,
	redeemHandler *RedeemHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.CORS))

	// Health check
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/calculate", reportHandler.Calculate)
		api.POST("/generate", reportHandler.Generate)
		api.GET("/reports/history", reportHandler.History)

		redeem := api.Group("/redeem")
		{
			redeem.POST("/generate", redeemHandler.Issue)
			redeem.POST("/check", redeemHandler.Check)
			redeem.POST("/use", redeemHandler.Use)
		}
	}

	r.GET("/report/:id", reportHandler.Get)

	return r
}
