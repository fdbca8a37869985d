package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Balance type values for Racket.BalanceType
const (
	BalanceHeadLight = "HL"
	BalanceEven      = "EB"
	BalanceHeadHeavy = "HH"
)

// Racket represents one catalog entry with spec and score fields.
// The base power/control/spin scores (1-10) are required; the extended
// *Score fields are optional and fall back to the base values.
type Racket struct {
	ID    int64  `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Brand string `json:"brand" db:"brand"`

	// Physical spec
	HeadSizeSqIn    *int    `json:"headSize" db:"head_size_sq_in"`
	LengthMm        *int    `json:"lengthMm" db:"length_mm"`
	UnstrungWeightG *int    `json:"unstrungWeight" db:"unstrung_weight_g"`
	BalanceType     *string `json:"balanceType" db:"balance_type"`
	Swingweight     *int    `json:"swingweight" db:"swingweight"`
	StiffnessRa     *int    `json:"stiffnessRa" db:"stiffness_ra"`
	StringPattern   *string `json:"stringPattern" db:"string_pattern"`
	BeamWidthMm     *string `json:"beamWidthMm" db:"beam_width_mm"`

	// Base scores (1-10)
	Power   int `json:"power" db:"power"`
	Control int `json:"control" db:"control"`
	Spin    int `json:"spin" db:"spin"`

	// Extended scores, nil means fall back to the base score
	PowerScore    *int `json:"powerScore" db:"power_score"`
	ControlScore  *int `json:"controlScore" db:"control_score"`
	SpinScore     *int `json:"spinScore" db:"spin_score"`
	ComfortScore  *int `json:"comfortScore" db:"comfort_score"`
	ManeuverScore *int `json:"maneuverScore" db:"maneuver_score"`

	// Target level band (1=starter .. 4=advanced)
	LevelMin *int `json:"levelMin" db:"level_min"`
	LevelMax *int `json:"levelMax" db:"level_max"`

	Tags      Tags      `json:"tags" db:"tags"`
	IsActive  bool      `json:"isActive" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// EffectivePower returns the extended power score, falling back to the base field.
func (r *Racket) EffectivePower() int {
	if r.PowerScore != nil {
		return *r.PowerScore
	}
	return r.Power
}

// EffectiveControl returns the extended control score, falling back to the base field.
func (r *Racket) EffectiveControl() int {
	if r.ControlScore != nil {
		return *r.ControlScore
	}
	return r.Control
}

// EffectiveSpin returns the extended spin score, falling back to the base field.
func (r *Racket) EffectiveSpin() int {
	if r.SpinScore != nil {
		return *r.SpinScore
	}
	return r.Spin
}

// EffectiveComfort returns the comfort score, defaulting to 5 when absent.
func (r *Racket) EffectiveComfort() int {
	if r.ComfortScore != nil {
		return *r.ComfortScore
	}
	return 5
}

// Tags represents racket tags stored as a JSON column
type Tags []string

// Value implements driver.Valuer for Tags
func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(t)
}

// Scan implements sql.Scanner for Tags
func (t *Tags) Scan(value interface{}) error {
	if value == nil {
		*t = Tags{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into Tags", value)
	}

	return json.Unmarshal(bytes, t)
}

// RacketForm carries create/update fields for the admin CRUD surface.
// Nil pointers mean "leave unchanged" on update; on create they fall back
// to defaults.
type RacketForm struct {
	Name  *string `json:"name"`
	Brand *string `json:"brand"`

	HeadSizeSqIn    *int    `json:"headSizeSqIn"`
	LengthMm        *int    `json:"lengthMm"`
	UnstrungWeightG *int    `json:"unstrungWeightG"`
	BalanceType     *string `json:"balanceType"`
	Swingweight     *int    `json:"swingweight"`
	StiffnessRa     *int    `json:"stiffnessRa"`
	StringPattern   *string `json:"stringPattern"`
	BeamWidthMm     *string `json:"beamWidthMm"`

	Power   *int `json:"power"`
	Control *int `json:"control"`
	Spin    *int `json:"spin"`

	PowerScore    *int `json:"powerScore"`
	ControlScore  *int `json:"controlScore"`
	SpinScore     *int `json:"spinScore"`
	ComfortScore  *int `json:"comfortScore"`
	ManeuverScore *int `json:"maneuverScore"`

	LevelMin *int `json:"levelMin"`
	LevelMax *int `json:"levelMax"`

	Tags     []string `json:"tags"`
	IsActive *bool    `json:"isActive"`
}
