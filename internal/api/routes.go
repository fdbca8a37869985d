package api

import (
	"database/sql"

	"github.com/gin-gonic/gin"

	"github.com/courtlab/racketfit/internal/auth"
	"github.com/courtlab/racketfit/internal/database"
	"github.com/courtlab/racketfit/internal/services"
	"github.com/courtlab/racketfit/pkg/config"
)

// SetupRoutes configures all API routes
func SetupRoutes(r *gin.Engine, db *sql.DB, cfg *config.Config) error {
	// Wrap sql.DB in our database wrapper
	dbWrapper := &database.DB{DB: db}

	// Create centralized services
	svcs := services.NewServices(db, cfg)

	// Create handlers with proper service injection
	recommendHandler := NewRecommendHandler(svcs.Recommend)
	catalogHandler := NewCatalogHandler(svcs.Catalog)
	historyHandler := NewHistoryHandler(svcs.History)
	importHandler := NewImportHandler(svcs.Catalog)
	authHandler := NewAuthHandler(svcs.Auth)
	healthHandler := NewHealthHandler(dbWrapper)

	// Public routes
	public := r.Group("/api/v1")
	{
		public.POST("/recommend", recommendHandler.Recommend)
		public.GET("/health", healthHandler.GetHealth)

		public.POST("/auth/login", authHandler.Login)
		public.POST("/auth/register", authHandler.Register)
		public.POST("/auth/refresh", authHandler.RefreshToken)
		public.POST("/auth/logout", authHandler.Logout)
	}

	// Protected admin routes
	admin := r.Group("/api/v1/admin")
	admin.Use(auth.JWTMiddleware(cfg.JWTSecret))
	admin.Use(auth.AdminOnlyMiddleware())
	admin.Use(auth.CSRFMiddleware())
	{
		// Catalog management
		admin.GET("/rackets", catalogHandler.GetRackets)
		admin.GET("/rackets/:id", catalogHandler.GetRacket)
		admin.POST("/rackets", catalogHandler.CreateRacket)
		admin.PUT("/rackets/:id", catalogHandler.UpdateRacket)
		admin.DELETE("/rackets/:id", catalogHandler.DeleteRacket)
		admin.POST("/rackets/import", importHandler.ImportSpecSheet)

		// Recommendation history
		admin.GET("/history/hands", historyHandler.GetHandMeasurements)
		admin.GET("/history/surveys", historyHandler.GetSurveyResponses)
		admin.GET("/history/recommendations", historyHandler.GetRecommendationLogs)
	}

	return nil
}
