// Package router wires repositories, services and handlers into the gin
// engine.
package router

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"influencer-api/cache"
	"influencer-api/config"
	"influencer-api/handlers"
	"influencer-api/helper"
	"influencer-api/imaging"
	"influencer-api/middleware"
	"influencer-api/repositories"
	"influencer-api/services"
	"influencer-api/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Deps struct {
	Config  config.Config
	DB      *gorm.DB
	Cache   *cache.Cache
	Storage storage.Storage
}

func Setup(deps Deps) *gin.Engine {
	cfg := deps.Config
	h := helper.NewHTTPHelper()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(deps.DB)
	tagRepo := repositories.NewTagRepository(deps.DB)
	styleRepo := repositories.NewStyleRepository(deps.DB)
	influencerRepo := repositories.NewInfluencerRepository(deps.DB)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiration)
	tagService := services.NewTagService(tagRepo, deps.Cache)
	styleService := services.NewStyleService(styleRepo, deps.Cache)
	influencerService := services.NewInfluencerService(influencerRepo, tagRepo, styleRepo, deps.Storage, imaging.Limits{
		MaxDimension: cfg.MaxImageDimension,
		MaxPixels:    cfg.MaxImagePixels,
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, h)
	tagHandler := handlers.NewAttributeHandler(tagService, h)
	styleHandler := handlers.NewAttributeHandler(styleService, h)
	influencerHandler := handlers.NewInfluencerHandler(influencerService, cfg.MaxUploadBytes, h)

	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		slog.Error("invalid trusted proxies, trusting none", "error", err)
		_ = router.SetTrustedProxies(nil)
	}
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	if local, ok := deps.Storage.(*storage.LocalStorage); ok && strings.HasPrefix(cfg.MediaURL, "/") {
		router.Static(strings.TrimSuffix(cfg.MediaURL, "/"), local.Root())
	}

	api := router.Group("/api")
	{
		limited := middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst, h)
		auth := middleware.AuthMiddleware(authService, h)

		user := api.Group("/user")
		{
			user.POST("/create/", limited, authHandler.Register)
			user.POST("/token/", limited, authHandler.Token)
			user.GET("/me/", auth, authHandler.GetProfile)
			user.PATCH("/me/", auth, authHandler.UpdateProfile)
		}

		influencer := api.Group("/influencer")
		influencer.Use(auth)
		{
			influencer.GET("/tags/", tagHandler.List)
			influencer.POST("/tags/", tagHandler.Create)

			influencer.GET("/style/", styleHandler.List)
			influencer.POST("/style/", styleHandler.Create)

			influencer.GET("/influencer/", influencerHandler.GetInfluencers)
			influencer.POST("/influencer/", influencerHandler.CreateInfluencer)
			influencer.GET("/influencer/:id/", influencerHandler.GetInfluencer)
			influencer.PUT("/influencer/:id/", influencerHandler.UpdateInfluencer)
			influencer.PATCH("/influencer/:id/", influencerHandler.PatchInfluencer)
			influencer.DELETE("/influencer/:id/", influencerHandler.DeleteInfluencer)
			influencer.POST("/influencer/:id/upload-profile-image/", influencerHandler.UploadProfileImage)
		}
	}

	return router
}
