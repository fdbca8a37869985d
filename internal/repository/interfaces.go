package repository

import (
	"errors"

	"github.com/google/uuid"

	"github.com/courtlab/racketfit/internal/models"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("record not found")

// RacketRepository defines the interface for racket catalog data access
type RacketRepository interface {
	// Basic CRUD operations
	GetByID(id int64) (*models.Racket, error)
	Create(racket *models.Racket) error
	Update(racket *models.Racket) error
	Delete(id int64) error

	// Bulk operations
	GetAll(filters RacketFilters) ([]models.Racket, error)
	GetActive() ([]models.Racket, error)
	Count() (int, error)
}

// HistoryRepository defines the interface for recommendation-run data access
type HistoryRepository interface {
	SaveHandMeasurement(m *models.HandMeasurement) error
	SaveSurveyResponse(s *models.SurveyResponse) error
	SaveLogs(logs []models.RecommendationLog) error

	ListHandMeasurements(limit int) ([]models.HandMeasurement, error)
	ListSurveyResponses(limit int) ([]models.SurveyResponse, error)
	ListLogs(limit int) ([]models.RecommendationLog, error)
	ListLogsByRacket(racketID int64, limit int) ([]models.RecommendationLog, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

// TransactionManager defines the interface for database transaction management
type TransactionManager interface {
	WithTransaction(fn func(repos *Repositories) error) error
}

// Repositories groups all repository interfaces
type Repositories struct {
	Racket  RacketRepository
	History HistoryRepository
	User    UserRepository
	Tx      TransactionManager
}

// RacketFilters defines filters for querying the racket catalog
type RacketFilters struct {
	Brand      string
	ActiveOnly bool
	Limit      int
	Offset     int
}
