package repository

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/courtlab/racketfit/internal/models"
)

// History listing limits, clamped per request
const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 200
)

// ClampHistoryLimit normalizes a requested listing limit into [1, 200],
// falling back to the default for non-positive values.
func ClampHistoryLimit(limit int) int {
	if limit <= 0 {
		return DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		return MaxHistoryLimit
	}
	return limit
}

// historyRepository implements HistoryRepository
type historyRepository struct {
	db dbExecutor
}

// NewHistoryRepository creates a new history repository
func NewHistoryRepository(db dbExecutor) HistoryRepository {
	return &historyRepository{db: db}
}

// SaveHandMeasurement persists one hand-measurement record
func (r *historyRepository) SaveHandMeasurement(m *models.HandMeasurement) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.CreatedAt = time.Now()

	query := `
		INSERT INTO hand_metrics (
			id, hand_length_score, hand_width_score, hand_length_mm, hand_width_mm,
			hand_size_category, finger_ratios, capture_device, capture_distance_cm,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(query,
		m.ID, m.HandLength, m.HandWidth, m.HandLengthMm, m.HandWidthMm,
		m.HandSizeCategory, m.FingerRatios, m.CaptureDevice, m.CaptureDistanceCm,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save hand measurement: %w", err)
	}

	return nil
}

// SaveSurveyResponse persists one survey-response record
func (r *historyRepository) SaveSurveyResponse(s *models.SurveyResponse) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	s.CreatedAt = time.Now()

	query := `
		INSERT INTO survey_responses (
			id, level, pain, swing, styles, string_type_preference, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(query,
		s.ID, s.Level, s.Pain, s.Swing, s.Styles, s.StringTypePreference,
		s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save survey response: %w", err)
	}

	return nil
}

// SaveLogs persists one recommendation run, one row per ranked candidate
func (r *historyRepository) SaveLogs(logs []models.RecommendationLog) error {
	query := `
		INSERT INTO recommendation_logs (
			id, hand_metrics_id, survey_response_id, racket_id,
			raw_score, normalized_score, rank_in_result, algorithm_version,
			rationale, string_type, string_label, tension_main_kg,
			tension_main_lbs, string_reason, hand_profile_json,
			style_profile_json, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	for i := range logs {
		l := &logs[i]
		if l.ID == uuid.Nil {
			l.ID = uuid.New()
		}
		if l.CreatedAt.IsZero() {
			l.CreatedAt = time.Now()
		}

		_, err := r.db.Exec(query,
			l.ID, l.HandMetricsID, l.SurveyResponseID, l.RacketID,
			l.RawScore, l.NormalizedScore, l.RankInResult, l.AlgorithmVersion,
			l.Rationale, l.StringType, l.StringLabel, l.TensionMainKg,
			l.TensionMainLbs, l.StringReason, l.HandProfileJSON,
			l.StyleProfileJSON, l.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to save recommendation log: %w", err)
		}
	}

	return nil
}

// ListHandMeasurements returns the most recent hand measurements
func (r *historyRepository) ListHandMeasurements(limit int) ([]models.HandMeasurement, error) {
	query := `
		SELECT id, hand_length_score, hand_width_score, hand_length_mm,
			   hand_width_mm, hand_size_category, finger_ratios, capture_device,
			   capture_distance_cm, created_at
		FROM hand_metrics
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(query, ClampHistoryLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query hand measurements: %w", err)
	}
	defer rows.Close()

	measurements := []models.HandMeasurement{}
	for rows.Next() {
		var m models.HandMeasurement
		err := rows.Scan(
			&m.ID, &m.HandLength, &m.HandWidth, &m.HandLengthMm, &m.HandWidthMm,
			&m.HandSizeCategory, &m.FingerRatios, &m.CaptureDevice,
			&m.CaptureDistanceCm, &m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hand measurement: %w", err)
		}
		measurements = append(measurements, m)
	}

	return measurements, rows.Err()
}

// ListSurveyResponses returns the most recent survey responses
func (r *historyRepository) ListSurveyResponses(limit int) ([]models.SurveyResponse, error) {
	query := `
		SELECT id, level, pain, swing, styles, string_type_preference, created_at
		FROM survey_responses
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(query, ClampHistoryLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query survey responses: %w", err)
	}
	defer rows.Close()

	responses := []models.SurveyResponse{}
	for rows.Next() {
		var s models.SurveyResponse
		err := rows.Scan(
			&s.ID, &s.Level, &s.Pain, &s.Swing, &s.Styles,
			&s.StringTypePreference, &s.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan survey response: %w", err)
		}
		responses = append(responses, s)
	}

	return responses, rows.Err()
}

const logColumns = `id, hand_metrics_id, survey_response_id, racket_id, raw_score,
	   normalized_score, rank_in_result, algorithm_version, rationale,
	   string_type, string_label, tension_main_kg, tension_main_lbs,
	   string_reason, hand_profile_json, style_profile_json, created_at`

// ListLogs returns the most recent recommendation log rows
func (r *historyRepository) ListLogs(limit int) ([]models.RecommendationLog, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM recommendation_logs
		ORDER BY created_at DESC, rank_in_result ASC
		LIMIT $1
	`, logColumns)

	rows, err := r.db.Query(query, ClampHistoryLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query recommendation logs: %w", err)
	}
	defer rows.Close()

	return scanLogs(rows)
}

// ListLogsByRacket returns recent log rows that ranked the given racket
func (r *historyRepository) ListLogsByRacket(racketID int64, limit int) ([]models.RecommendationLog, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM recommendation_logs
		WHERE racket_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, logColumns)

	rows, err := r.db.Query(query, racketID, ClampHistoryLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query recommendation logs: %w", err)
	}
	defer rows.Close()

	return scanLogs(rows)
}

func scanLogs(rows rowsScanner) ([]models.RecommendationLog, error) {
	logs := []models.RecommendationLog{}
	for rows.Next() {
		var l models.RecommendationLog
		err := rows.Scan(
			&l.ID, &l.HandMetricsID, &l.SurveyResponseID, &l.RacketID,
			&l.RawScore, &l.NormalizedScore, &l.RankInResult,
			&l.AlgorithmVersion, &l.Rationale, &l.StringType, &l.StringLabel,
			&l.TensionMainKg, &l.TensionMainLbs, &l.StringReason,
			&l.HandProfileJSON, &l.StyleProfileJSON, &l.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recommendation log: %w", err)
		}
		logs = append(logs, l)
	}

	return logs, rows.Err()
}

// rowsScanner is the subset of *sql.Rows used by the scan helpers
type rowsScanner interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}
