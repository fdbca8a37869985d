package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Hand size categories produced by the landmark-detection component
const (
	HandSizeSmall  = "SMALL"
	HandSizeMedium = "MEDIUM"
	HandSizeLarge  = "LARGE"
)

// HandMeasurement is the raw hand-measurement record produced by the
// external landmark-detection component. Every field is optional; the
// profile builder degrades gracefully when fields are missing.
type HandMeasurement struct {
	ID uuid.UUID `json:"id" db:"id"`

	// Relative size scores (dimensionless, roughly 500-900)
	HandLength *float64 `json:"handLength" db:"hand_length_score"`
	HandWidth  *float64 `json:"handWidth" db:"hand_width_score"`

	// Millimeter estimates
	HandLengthMm *float64 `json:"handLengthMm" db:"hand_length_mm"`
	HandWidthMm  *float64 `json:"handWidthMm" db:"hand_width_mm"`

	HandSizeCategory *string `json:"handSizeCategory" db:"hand_size_category"`

	// [index/middle, ring/middle]
	FingerRatios FloatList `json:"fingerRatios" db:"finger_ratios"`

	CaptureDevice     *string  `json:"captureDevice" db:"capture_device"`
	CaptureDistanceCm *float64 `json:"captureDistanceCm" db:"capture_distance_cm"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// IsEmpty reports whether no measurement field carries a value.
func (m *HandMeasurement) IsEmpty() bool {
	if m == nil {
		return true
	}
	return m.HandLength == nil && m.HandWidth == nil &&
		m.HandLengthMm == nil && m.HandWidthMm == nil &&
		m.HandSizeCategory == nil && len(m.FingerRatios) == 0
}

// HandMeasurementFromPayload builds a HandMeasurement from a loosely-typed
// JSON payload. Values that cannot be coerced to the expected type are
// treated as absent rather than surfaced as errors.
func HandMeasurementFromPayload(payload map[string]interface{}) *HandMeasurement {
	m := &HandMeasurement{}
	if payload == nil {
		return m
	}

	m.HandLength = toFloat(payload["handLength"])
	m.HandWidth = toFloat(payload["handWidth"])
	m.HandLengthMm = toFloat(payload["handLengthMm"])
	m.HandWidthMm = toFloat(payload["handWidthMm"])
	m.HandSizeCategory = toCategory(payload["handSizeCategory"])
	m.CaptureDevice = toString(payload["captureDevice"])
	m.CaptureDistanceCm = toFloat(payload["captureDistanceCm"])

	if ratios, ok := payload["fingerRatios"].([]interface{}); ok {
		for _, r := range ratios {
			if f := toFloat(r); f != nil {
				m.FingerRatios = append(m.FingerRatios, *f)
			}
		}
	}

	return m
}

// toFloat coerces a JSON value to a float64, nil when not numeric
func toFloat(val interface{}) *float64 {
	switch v := val.(type) {
	case float64:
		return &v
	case float32:
		f := float64(v)
		return &f
	case int:
		f := float64(v)
		return &f
	case int64:
		f := float64(v)
		return &f
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return &f
		}
	}
	return nil
}

func toString(val interface{}) *string {
	if s, ok := val.(string); ok && s != "" {
		return &s
	}
	return nil
}

// toCategory accepts only the known size category tags
func toCategory(val interface{}) *string {
	s, ok := val.(string)
	if !ok {
		return nil
	}
	switch s {
	case HandSizeSmall, HandSizeMedium, HandSizeLarge:
		return &s
	}
	return nil
}

// FloatList represents a float slice stored as a JSON column
type FloatList []float64

// Value implements driver.Valuer for FloatList
func (l FloatList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]float64{})
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner for FloatList
func (l *FloatList) Scan(value interface{}) error {
	if value == nil {
		*l = FloatList{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into FloatList", value)
	}

	return json.Unmarshal(bytes, l)
}
