package services

import (
	"github.com/courtlab/racketfit/internal/models"
	"github.com/courtlab/racketfit/internal/repository"
)

// historyServiceImpl implements HistoryService
type historyServiceImpl struct {
	repos *repository.Repositories
}

// newHistoryService creates a new history service
func newHistoryService(repos *repository.Repositories) HistoryService {
	return &historyServiceImpl{repos: repos}
}

func (s *historyServiceImpl) ListHandMeasurements(limit int) ([]models.HandMeasurement, error) {
	return s.repos.History.ListHandMeasurements(limit)
}

func (s *historyServiceImpl) ListSurveyResponses(limit int) ([]models.SurveyResponse, error) {
	return s.repos.History.ListSurveyResponses(limit)
}

func (s *historyServiceImpl) ListLogs(limit int) ([]models.RecommendationLog, error) {
	return s.repos.History.ListLogs(limit)
}

func (s *historyServiceImpl) ListLogsByRacket(racketID int64, limit int) ([]models.RecommendationLog, error) {
	return s.repos.History.ListLogsByRacket(racketID, limit)
}
