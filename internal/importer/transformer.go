package importer

import (
	"fmt"
	"strings"

	"github.com/courtlab/racketfit/internal/models"
)

// Transformer converts parsed spec rows into catalog entries
type Transformer struct{}

// NewTransformer creates a new transformer instance
func NewTransformer() *Transformer {
	return &Transformer{}
}

// Transform converts spec rows into rackets. Rows without a usable name
// are rejected; unrecognized spec values are dropped silently.
func (t *Transformer) Transform(rows []SpecRow) ([]models.Racket, error) {
	rackets := make([]models.Racket, 0, len(rows))

	for i, row := range rows {
		racket, err := t.transformRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		rackets = append(rackets, *racket)
	}

	return rackets, nil
}

func (t *Transformer) transformRow(row SpecRow) (*models.Racket, error) {
	name := strings.TrimSpace(row["name"])
	if name == "" {
		return nil, fmt.Errorf("missing racket name")
	}

	brand := strings.TrimSpace(row["brand"])
	if brand == "" {
		// Retail sheets often prefix the model with the brand
		brand = strings.Fields(name)[0]
	}

	racket := &models.Racket{
		Name:     name,
		Brand:    brand,
		Power:    5,
		Control:  5,
		Spin:     5,
		IsActive: true,
	}

	if v, ok := firstNumber(row["head_size"]); ok {
		racket.HeadSizeSqIn = intPtr(int(v))
	}
	if v, ok := firstNumber(row["length"]); ok {
		// Sheets quote length in mm or inches; anything under 100 is inches
		mm := int(v)
		if v < 100 {
			mm = int(v * 25.4)
		}
		racket.LengthMm = intPtr(mm)
	}
	if v, ok := firstNumber(row["weight"]); ok {
		racket.UnstrungWeightG = intPtr(int(v))
	}
	if balance := parseBalance(row["balance"]); balance != "" {
		racket.BalanceType = strPtr(balance)
	}
	if v, ok := firstNumber(row["swingweight"]); ok {
		racket.Swingweight = intPtr(int(v))
	}
	if v, ok := firstNumber(row["stiffness"]); ok {
		racket.StiffnessRa = intPtr(int(v))
	}
	if pattern := normalizePattern(row["pattern"]); pattern != "" {
		racket.StringPattern = strPtr(pattern)
	}
	if beam := strings.TrimSpace(row["beam"]); beam != "" {
		racket.BeamWidthMm = strPtr(beam)
	}

	if v, ok := scoreValue(row["power"]); ok {
		racket.Power = v
	}
	if v, ok := scoreValue(row["control"]); ok {
		racket.Control = v
	}
	if v, ok := scoreValue(row["spin"]); ok {
		racket.Spin = v
	}
	if v, ok := scoreValue(row["comfort"]); ok {
		racket.ComfortScore = intPtr(v)
	}

	return racket, nil
}

// parseBalance maps balance descriptions to the catalog codes
func parseBalance(s string) string {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "head light") || strings.Contains(lower, "hl"):
		return models.BalanceHeadLight
	case strings.Contains(lower, "head heavy") || strings.Contains(lower, "hh"):
		return models.BalanceHeadHeavy
	case strings.Contains(lower, "even"):
		return models.BalanceEven
	}
	return ""
}

// normalizePattern rewrites patterns like "16 x 19" to "16x19"
func normalizePattern(s string) string {
	cleaned := strings.ToLower(strings.ReplaceAll(s, " ", ""))
	if !strings.Contains(cleaned, "x") {
		return ""
	}
	parts := strings.SplitN(cleaned, "x", 2)
	if _, ok := firstNumber(parts[0]); !ok {
		return ""
	}
	if _, ok := firstNumber(parts[1]); !ok {
		return ""
	}
	return cleaned
}

// scoreValue accepts only valid 1-10 scores
func scoreValue(s string) (int, bool) {
	v, ok := firstNumber(s)
	if !ok {
		return 0, false
	}
	score := int(v)
	if score < 1 || score > 10 {
		return 0, false
	}
	return score, true
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
