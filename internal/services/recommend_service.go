package services

import (
	"encoding/json"
	"fmt"

	"github.com/courtlab/racketfit/internal/logger"
	"github.com/courtlab/racketfit/internal/matching"
	"github.com/courtlab/racketfit/internal/models"
	"github.com/courtlab/racketfit/internal/repository"
	"github.com/courtlab/racketfit/pkg/config"
)

// RecommendRequest carries the raw client payloads. Both sections are
// optional; unknown or mistyped fields are ignored.
type RecommendRequest struct {
	HandMetrics map[string]interface{} `json:"handMetrics"`
	Survey      map[string]interface{} `json:"survey"`
}

// RecommendResponse is the full recommendation result returned to clients
type RecommendResponse struct {
	Rackets      []matching.RacketCandidate    `json:"rackets"`
	String       matching.StringRecommendation `json:"string"`
	HandProfile  matching.HandProfile          `json:"handProfile"`
	StyleProfile matching.StyleProfile         `json:"styleProfile"`
}

// recommendServiceImpl implements RecommendService
type recommendServiceImpl struct {
	repos  *repository.Repositories
	engine *matching.Engine
	log    logger.Logger
}

// newRecommendService creates a new recommendation service
func newRecommendService(repos *repository.Repositories, cfg *config.Config, log logger.Logger) RecommendService {
	return &recommendServiceImpl{
		repos:  repos,
		engine: matching.NewEngineWithTopK(cfg.RecommendTopK),
		log:    log,
	}
}

// Recommend runs the full recommendation flow: derive profiles from the
// raw payloads, rank the active catalog, and record the run. Persistence
// failures are logged but never fail the request.
func (s *recommendServiceImpl) Recommend(req *RecommendRequest) (*RecommendResponse, error) {
	if req == nil {
		req = &RecommendRequest{}
	}

	measurement := models.HandMeasurementFromPayload(req.HandMetrics)
	survey := models.SurveyResponseFromPayload(req.Survey)

	handProfile := matching.BuildHandProfile(measurement)
	styleProfile := matching.BuildStyleProfile(survey)

	catalog, err := s.repos.Racket.GetActive()
	if err != nil {
		return nil, fmt.Errorf("failed to load racket catalog: %w", err)
	}

	result := s.engine.Match(handProfile, styleProfile, catalog)

	if err := s.recordRun(measurement, survey, handProfile, styleProfile, result); err != nil {
		s.log.Warn("Failed to record recommendation run", "error", err)
	}

	return &RecommendResponse{
		Rackets:      result.Rackets,
		String:       result.String,
		HandProfile:  handProfile,
		StyleProfile: styleProfile,
	}, nil
}

// recordRun persists the measurement, survey and one log row per ranked
// candidate in a single transaction.
func (s *recommendServiceImpl) recordRun(
	measurement *models.HandMeasurement,
	survey *models.SurveyResponse,
	handProfile matching.HandProfile,
	styleProfile matching.StyleProfile,
	result matching.MatchResult,
) error {
	handJSON, err := json.Marshal(handProfile)
	if err != nil {
		return fmt.Errorf("failed to encode hand profile: %w", err)
	}
	styleJSON, err := json.Marshal(styleProfile)
	if err != nil {
		return fmt.Errorf("failed to encode style profile: %w", err)
	}

	return s.repos.Tx.WithTransaction(func(repos *repository.Repositories) error {
		logs := make([]models.RecommendationLog, 0, len(result.Rackets))

		if !measurement.IsEmpty() {
			if err := repos.History.SaveHandMeasurement(measurement); err != nil {
				return err
			}
		}
		if err := repos.History.SaveSurveyResponse(survey); err != nil {
			return err
		}

		for i := range result.Rackets {
			c := &result.Rackets[i]
			entry := models.RecommendationLog{
				RacketID:         c.RacketID,
				RawScore:         c.RawScore,
				NormalizedScore:  c.NormalizedScore,
				RankInResult:     i + 1,
				AlgorithmVersion: matching.AlgorithmVersion,
				Rationale:        c.Reason,
				StringType:       result.String.StringType,
				StringLabel:      result.String.StringLabel,
				TensionMainKg:    result.String.TensionMainKg,
				TensionMainLbs:   result.String.TensionMainLbs,
				StringReason:     result.String.Reason,
				HandProfileJSON:  string(handJSON),
				StyleProfileJSON: string(styleJSON),
			}
			if !measurement.IsEmpty() {
				entry.HandMetricsID = &measurement.ID
			}
			entry.SurveyResponseID = &survey.ID
			logs = append(logs, entry)
		}

		return repos.History.SaveLogs(logs)
	})
}
