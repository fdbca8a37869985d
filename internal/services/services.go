package services

import (
	"database/sql"

	"github.com/courtlab/racketfit/internal/logger"
	"github.com/courtlab/racketfit/internal/models"
	"github.com/courtlab/racketfit/internal/repository"
	"github.com/courtlab/racketfit/pkg/config"
)

// Services contains all application services
type Services struct {
	Recommend RecommendService
	Catalog   CatalogService
	History   HistoryService
	Auth      AuthService
}

// RecommendService defines the interface for the recommendation flow
type RecommendService interface {
	Recommend(req *RecommendRequest) (*RecommendResponse, error)
}

// CatalogService defines the interface for racket catalog management
type CatalogService interface {
	GetByID(id int64) (*models.Racket, error)
	GetAll(filters repository.RacketFilters) ([]models.Racket, error)
	Create(form *models.RacketForm) (*models.Racket, error)
	Update(id int64, form *models.RacketForm) (*models.Racket, error)
	Delete(id int64) error
	ImportRackets(rackets []models.Racket) (int, error)
}

// HistoryService defines the interface for recommendation-run listings
type HistoryService interface {
	ListHandMeasurements(limit int) ([]models.HandMeasurement, error)
	ListSurveyResponses(limit int) ([]models.SurveyResponse, error)
	ListLogs(limit int) ([]models.RecommendationLog, error)
	ListLogsByRacket(racketID int64, limit int) ([]models.RecommendationLog, error)
}

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Login(email, password string) (*repository.LoginResponse, error)
	Register(req *repository.RegisterRequest) (*models.User, error)
	ValidateToken(token string) (*models.User, error)
	RefreshToken(token string) (*repository.LoginResponse, error)
}

// NewServices creates a new Services instance with all dependencies
func NewServices(db *sql.DB, cfg *config.Config) *Services {
	repos := repository.NewRepositories(db)
	log := logger.NewSimpleLogger()

	return &Services{
		Recommend: newRecommendService(repos, cfg, log),
		Catalog:   newCatalogService(repos),
		History:   newHistoryService(repos),
		Auth:      newAuthService(repos, cfg),
	}
}
