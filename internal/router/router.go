// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/storymint/storymint-backend/internal/aiagent"
	"github.com/storymint/storymint-backend/internal/config"
	"github.com/storymint/storymint-backend/internal/handlers"
	"github.com/storymint/storymint-backend/internal/middleware"
	"github.com/storymint/storymint-backend/internal/services"
	"github.com/storymint/storymint-backend/internal/store"
)

func Initialize(db *store.Store, cfg *config.Config, logger *logrus.Logger) *gin.Engine {
	// Initialize services
	agent := aiagent.NewAgent(aiagent.NewClient(cfg.AI, logger), logger)
	registryService := services.NewRegistryService(cfg, logger)
	storageService := services.NewStorageService(cfg, logger)
	creatorService := services.NewCreatorService(db, logger)
	assetService := services.NewAssetService(db, registryService, logger)
	licensingService := services.NewLicensingService(db, agent, registryService, logger)

	// Initialize handlers
	aiHandler := handlers.NewAIHandler(agent)
	creatorHandler := handlers.NewCreatorHandler(creatorService)
	ipAssetHandler := handlers.NewIPAssetHandler(assetService)
	licensingHandler := handlers.NewLicensingHandler(licensingService)
	uploadHandler := handlers.NewUploadHandler(storageService)
	royaltyHandler := handlers.NewRoyaltyHandler(agent, cfg)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		ai := v1.Group("/ai")
		{
			ai.POST("/analyze", aiHandler.AnalyzeContent)
			ai.POST("/negotiate", aiHandler.NegotiateTerms)
			ai.POST("/contract", aiHandler.GenerateContract)
		}

		creators := v1.Group("/creators")
		{
			creators.GET("", creatorHandler.GetCreatorByAddress)
			creators.POST("", creatorHandler.CreateCreator)
			creators.GET("/:address", creatorHandler.GetCreator)
			creators.GET("/:address/assets", creatorHandler.GetCreatorAssets)
			creators.GET("/:address/requests", creatorHandler.GetCreatorRequests)
			creators.GET("/:address/agreements", creatorHandler.GetCreatorAgreements)
		}

		ipAssets := v1.Group("/ip-assets")
		{
			ipAssets.GET("", ipAssetHandler.GetIPAssets)
			ipAssets.POST("", ipAssetHandler.CreateIPAsset)
			ipAssets.GET("/:id", ipAssetHandler.GetIPAsset)
		}

		licensing := v1.Group("/licensing")
		{
			licensing.POST("", licensingHandler.ProcessLicensing)
			licensing.POST("/requests", licensingHandler.CreateRequest)
			licensing.POST("/agreements", licensingHandler.CreateAgreement)
		}

		royalties := v1.Group("/royalties")
		{
			royalties.POST("/split", royaltyHandler.SplitRoyalties)
		}

		v1.POST("/upload", middleware.UploadRateLimit(), uploadHandler.Upload)
	}

	return r
}
