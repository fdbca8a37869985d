package models

import (
	"time"

	"github.com/google/uuid"
)

// Survey answer values
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
	LevelExpert       = "expert"

	PainNone      = "none"
	PainSometimes = "sometimes"
	PainOften     = "often"

	SwingSlow   = "slow"
	SwingNormal = "normal"
	SwingFast   = "fast"

	StylePower   = "power"
	StyleControl = "control"
	StyleSpin    = "spin"

	StringPrefAuto  = "auto"
	StringPrefPoly  = "poly"
	StringPrefMulti = "multi"
)

// SurveyResponse is the playstyle survey record submitted by the client.
// Any subset of fields may be absent.
type SurveyResponse struct {
	ID uuid.UUID `json:"id" db:"id"`

	Level *string `json:"level" db:"level"`
	Pain  *string `json:"pain" db:"pain"`
	Swing *string `json:"swing" db:"swing"`

	Styles Tags `json:"styles" db:"styles"`

	StringTypePreference string `json:"stringTypePreference" db:"string_type_preference"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// SurveyResponseFromPayload builds a SurveyResponse from a loosely-typed
// JSON payload, coercing unexpected types to absent fields.
func SurveyResponseFromPayload(payload map[string]interface{}) *SurveyResponse {
	s := &SurveyResponse{StringTypePreference: StringPrefAuto}
	if payload == nil {
		return s
	}

	s.Level = toEnum(payload["level"], LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert)
	s.Pain = toEnum(payload["pain"], PainNone, PainSometimes, PainOften)
	s.Swing = toEnum(payload["swing"], SwingSlow, SwingNormal, SwingFast)

	if styles, ok := payload["styles"].([]interface{}); ok {
		for _, raw := range styles {
			if st := toEnum(raw, StylePower, StyleControl, StyleSpin); st != nil {
				s.Styles = append(s.Styles, *st)
			}
		}
	}

	if pref := toEnum(payload["stringTypePreference"], StringPrefAuto, StringPrefPoly, StringPrefMulti); pref != nil {
		s.StringTypePreference = *pref
	}

	return s
}

// HasStyle reports whether the given style was selected.
func (s *SurveyResponse) HasStyle(style string) bool {
	for _, st := range s.Styles {
		if st == style {
			return true
		}
	}
	return false
}

func toEnum(val interface{}, allowed ...string) *string {
	s, ok := val.(string)
	if !ok {
		return nil
	}
	for _, a := range allowed {
		if s == a {
			return &s
		}
	}
	return nil
}
