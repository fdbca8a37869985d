package models

import (
	"time"

	"github.com/google/uuid"
)

// RecommendationLog records one returned candidate of one recommendation
// run, with enough context to replay or audit the result.
type RecommendationLog struct {
	ID uuid.UUID `json:"id" db:"id"`

	HandMetricsID    *uuid.UUID `json:"hand_metrics_id" db:"hand_metrics_id"`
	SurveyResponseID *uuid.UUID `json:"survey_response_id" db:"survey_response_id"`
	RacketID         int64      `json:"racket_id" db:"racket_id"`

	RawScore        float64 `json:"raw_score" db:"raw_score"`
	NormalizedScore float64 `json:"normalized_score" db:"normalized_score"`
	RankInResult    int     `json:"rank_in_result" db:"rank_in_result"`

	AlgorithmVersion string `json:"algorithm_version" db:"algorithm_version"`
	Rationale        string `json:"rationale" db:"rationale"`

	StringType     string  `json:"string_type" db:"string_type"`
	StringLabel    string  `json:"string_label" db:"string_label"`
	TensionMainKg  float64 `json:"tension_main_kg" db:"tension_main_kg"`
	TensionMainLbs int     `json:"tension_main_lbs" db:"tension_main_lbs"`
	StringReason   string  `json:"string_reason" db:"string_reason"`

	HandProfileJSON  string `json:"hand_profile" db:"hand_profile_json"`
	StyleProfileJSON string `json:"style_profile" db:"style_profile_json"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
