package server

import (
	"slices"
	"time"

	"github.com/ASHISH26940/portfolio-api/pkg/config"
	"github.com/ASHISH26940/portfolio-api/pkg/handlers"
	"github.com/ASHISH26940/portfolio-api/pkg/middleware"
	"github.com/ASHISH26940/portfolio-api/pkg/utils"
	cors "github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter assembles every route of the API.
func NewRouter(cfg *config.Config, h *handlers.Handler, auth middleware.Authenticator) *gin.Engine {
	utils.UseJSONFieldNames()
	utils.HideInternalDetails(cfg.IsProduction())

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(), middleware.SecurityHeaders())
	router.MaxMultipartMemory = 8 << 20

	router.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	router.Static("/uploads", cfg.UploadDir)
	router.GET("/", h.Welcome)
	router.GET("/health", h.HealthCheck)

	requireAdmin := middleware.AuthMiddleware(auth)
	api := router.Group("/api")

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/login", h.Login)
		authRoutes.GET("/verify", requireAdmin, h.Verify)
	}

	api.GET("/about", h.GetAbout)
	api.PUT("/about", requireAdmin, h.UpdateAbout)

	api.GET("/contact-info", h.GetContactInfo)
	api.PUT("/contact-info", requireAdmin, h.UpdateContactInfo)

	api.GET("/intro", h.GetIntro)
	api.PUT("/intro", requireAdmin, h.UpdateIntro)

	api.POST("/contact", h.SendMessage)
	messageRoutes := api.Group("/messages", requireAdmin)
	{
		messageRoutes.GET("", h.ListMessages)
		messageRoutes.DELETE("/:id", h.DeleteMessage)
	}

	experienceRoutes := api.Group("/experiences")
	{
		experienceRoutes.GET("", h.ListExperiences)
		experienceRoutes.GET("/:id", h.GetExperience)
		experienceRoutes.POST("", requireAdmin, h.CreateExperience)
		experienceRoutes.PUT("/:id", requireAdmin, h.UpdateExperience)
		experienceRoutes.DELETE("/:id", requireAdmin, h.DeleteExperience)
	}

	skillRoutes := api.Group("/skills")
	{
		skillRoutes.GET("", h.ListSkills)
		skillRoutes.GET("/categories", h.ListSkillCategories)
		skillRoutes.GET("/:id", h.GetSkill)
		skillRoutes.POST("", requireAdmin, h.CreateSkill)
		skillRoutes.PUT("/:id", requireAdmin, h.UpdateSkill)
		skillRoutes.DELETE("/:id", requireAdmin, h.DeleteSkill)
	}

	projectRoutes := api.Group("/projects")
	{
		projectRoutes.GET("", h.ListProjects)
		projectRoutes.GET("/:id", h.GetProject)
		projectRoutes.POST("", requireAdmin, h.CreateProject)
		projectRoutes.PUT("/:id", requireAdmin, h.UpdateProject)
		projectRoutes.DELETE("/:id", requireAdmin, h.DeleteProject)
		projectRoutes.DELETE("/:id/images/:imageIndex", requireAdmin, h.DeleteProjectImage)
	}

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		// Authorization carries the admin JWT.
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
