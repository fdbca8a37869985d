package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/courtlab/racketfit/internal/models"
)

// racketColumns is the shared select list, kept in scan order
const racketColumns = `id, name, brand, head_size_sq_in, length_mm, unstrung_weight_g,
	   balance_type, swingweight, stiffness_ra, string_pattern, beam_width_mm,
	   power, control, spin, power_score, control_score, spin_score,
	   comfort_score, maneuver_score, level_min, level_max, tags, is_active,
	   created_at, updated_at`

// racketRepository implements RacketRepository
type racketRepository struct {
	db dbExecutor
}

// NewRacketRepository creates a new racket repository
func NewRacketRepository(db dbExecutor) RacketRepository {
	return &racketRepository{db: db}
}

func scanRacket(row interface{ Scan(...interface{}) error }) (*models.Racket, error) {
	racket := &models.Racket{}
	err := row.Scan(
		&racket.ID, &racket.Name, &racket.Brand, &racket.HeadSizeSqIn,
		&racket.LengthMm, &racket.UnstrungWeightG, &racket.BalanceType,
		&racket.Swingweight, &racket.StiffnessRa, &racket.StringPattern,
		&racket.BeamWidthMm, &racket.Power, &racket.Control, &racket.Spin,
		&racket.PowerScore, &racket.ControlScore, &racket.SpinScore,
		&racket.ComfortScore, &racket.ManeuverScore, &racket.LevelMin,
		&racket.LevelMax, &racket.Tags, &racket.IsActive,
		&racket.CreatedAt, &racket.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return racket, nil
}

// GetByID retrieves a racket by ID
func (r *racketRepository) GetByID(id int64) (*models.Racket, error) {
	query := fmt.Sprintf(`SELECT %s FROM rackets WHERE id = $1`, racketColumns)

	racket, err := scanRacket(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get racket: %w", err)
	}

	return racket, nil
}

// Create creates a new racket
func (r *racketRepository) Create(racket *models.Racket) error {
	now := time.Now()
	racket.CreatedAt = now
	racket.UpdatedAt = now

	query := `
		INSERT INTO rackets (
			name, brand, head_size_sq_in, length_mm, unstrung_weight_g,
			balance_type, swingweight, stiffness_ra, string_pattern, beam_width_mm,
			power, control, spin, power_score, control_score, spin_score,
			comfort_score, maneuver_score, level_min, level_max, tags, is_active,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24
		) RETURNING id
	`

	err := r.db.QueryRow(query,
		racket.Name, racket.Brand, racket.HeadSizeSqIn, racket.LengthMm,
		racket.UnstrungWeightG, racket.BalanceType, racket.Swingweight,
		racket.StiffnessRa, racket.StringPattern, racket.BeamWidthMm,
		racket.Power, racket.Control, racket.Spin, racket.PowerScore,
		racket.ControlScore, racket.SpinScore, racket.ComfortScore,
		racket.ManeuverScore, racket.LevelMin, racket.LevelMax, racket.Tags,
		racket.IsActive, racket.CreatedAt, racket.UpdatedAt,
	).Scan(&racket.ID)

	if err != nil {
		return fmt.Errorf("failed to create racket: %w", err)
	}

	return nil
}

// Update updates an existing racket
func (r *racketRepository) Update(racket *models.Racket) error {
	racket.UpdatedAt = time.Now()

	query := `
		UPDATE rackets SET
			name = $2, brand = $3, head_size_sq_in = $4, length_mm = $5,
			unstrung_weight_g = $6, balance_type = $7, swingweight = $8,
			stiffness_ra = $9, string_pattern = $10, beam_width_mm = $11,
			power = $12, control = $13, spin = $14, power_score = $15,
			control_score = $16, spin_score = $17, comfort_score = $18,
			maneuver_score = $19, level_min = $20, level_max = $21,
			tags = $22, is_active = $23, updated_at = $24
		WHERE id = $1
	`

	result, err := r.db.Exec(query,
		racket.ID, racket.Name, racket.Brand, racket.HeadSizeSqIn,
		racket.LengthMm, racket.UnstrungWeightG, racket.BalanceType,
		racket.Swingweight, racket.StiffnessRa, racket.StringPattern,
		racket.BeamWidthMm, racket.Power, racket.Control, racket.Spin,
		racket.PowerScore, racket.ControlScore, racket.SpinScore,
		racket.ComfortScore, racket.ManeuverScore, racket.LevelMin,
		racket.LevelMax, racket.Tags, racket.IsActive, racket.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to update racket: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete deletes a racket by ID
func (r *racketRepository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM rackets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete racket: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// GetAll retrieves rackets matching the given filters
func (r *racketRepository) GetAll(filters RacketFilters) ([]models.Racket, error) {
	query := fmt.Sprintf(`SELECT %s FROM rackets`, racketColumns)
	args := []interface{}{}
	argCount := 0

	conditions := ""
	if filters.Brand != "" {
		argCount++
		conditions = fmt.Sprintf(" WHERE brand = $%d", argCount)
		args = append(args, filters.Brand)
	}
	if filters.ActiveOnly {
		if conditions == "" {
			conditions = " WHERE is_active = true"
		} else {
			conditions += " AND is_active = true"
		}
	}

	query += conditions + " ORDER BY id"

	if filters.Limit > 0 {
		argCount++
		query += fmt.Sprintf(" LIMIT $%d", argCount)
		args = append(args, filters.Limit)
	}
	if filters.Offset > 0 {
		argCount++
		query += fmt.Sprintf(" OFFSET $%d", argCount)
		args = append(args, filters.Offset)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query rackets: %w", err)
	}
	defer rows.Close()

	rackets := []models.Racket{}
	for rows.Next() {
		racket, err := scanRacket(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan racket: %w", err)
		}
		rackets = append(rackets, *racket)
	}

	return rackets, rows.Err()
}

// GetActive retrieves the active catalog in stable ID order
func (r *racketRepository) GetActive() ([]models.Racket, error) {
	return r.GetAll(RacketFilters{ActiveOnly: true})
}

// Count returns the total number of catalog entries
func (r *racketRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM rackets`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count rackets: %w", err)
	}
	return count, nil
}
