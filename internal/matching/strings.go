package matching

import (
	"math"
	"strings"

	"github.com/courtlab/racketfit/internal/models"
)

const (
	baseTensionKg = 23.0
	kgToLbs       = 2.20462
)

// String type labels shown to the user
const (
	labelPoly  = "polyester string"
	labelMulti = "multifilament string"
)

// StringRecommendation is the recommended string setup for one profile.
type StringRecommendation struct {
	StringType     string  `json:"stringType"`
	StringLabel    string  `json:"stringLabel"`
	TensionMainKg  float64 `json:"tensionMainKg"`
	TensionMainLbs int     `json:"tensionMainLbs"`
	Reason         string  `json:"reason"`
}

// RecommendString computes the string type and main tension for a style
// profile. It is a pure function and total over all valid profiles.
func RecommendString(style StyleProfile) StringRecommendation {
	tension := baseTensionKg

	if style.StyleControl && style.LevelScore >= 3 {
		tension += 1.0
	}
	if style.StylePower && !style.StyleControl {
		tension -= 0.5
	}

	switch {
	case style.PainIs(models.PainOften):
		tension -= 1.5
	case style.PainIs(models.PainSometimes):
		tension -= 0.5
	}

	stringType := resolveStringType(style)

	// Type-dependent fine tune
	switch stringType {
	case models.StringPrefPoly:
		tension += 0.5
	case models.StringPrefMulti:
		tension -= 0.5
	}

	tensionKg := math.Round(tension*10) / 10
	tensionLbs := int(math.Round(tensionKg * kgToLbs))

	return StringRecommendation{
		StringType:     stringType,
		StringLabel:    stringLabel(stringType),
		TensionMainKg:  tensionKg,
		TensionMainLbs: tensionLbs,
		Reason:         stringReason(style, stringType),
	}
}

// resolveStringType honors an explicit preference; auto picks multi for
// frequent pain, poly for spin-oriented players, multi otherwise.
func resolveStringType(style StyleProfile) string {
	if style.StringTypePreference != models.StringPrefAuto && style.StringTypePreference != "" {
		return style.StringTypePreference
	}

	if style.PainIs(models.PainOften) {
		return models.StringPrefMulti
	}
	if style.StyleSpin {
		return models.StringPrefPoly
	}
	return models.StringPrefMulti
}

func stringLabel(stringType string) string {
	switch stringType {
	case models.StringPrefPoly:
		return labelPoly
	case models.StringPrefMulti:
		return labelMulti
	}
	return "basic synthetic string"
}

// stringReason composes one sentence per active adjustment, in a fixed
// order so identical profiles always produce identical text.
func stringReason(style StyleProfile, stringType string) string {
	var reasons []string

	if style.PainIs(models.PainOften) {
		reasons = append(reasons, "Arm or wrist pain was reported, so a lower tension and softer string came first.")
	}
	if style.StyleControl {
		reasons = append(reasons, "Tension was kept from dropping too low to match a control-oriented style.")
	}
	if style.StylePower && !style.StyleControl {
		reasons = append(reasons, "Tension was set slightly lower to match a power-first style.")
	}
	switch stringType {
	case models.StringPrefPoly:
		reasons = append(reasons, "A polyester string was chosen for spin and durability.")
	case models.StringPrefMulti:
		reasons = append(reasons, "A multifilament string was chosen for arm comfort.")
	}

	if len(reasons) == 0 {
		return "The survey and hand profile pointed to a setup close to the defaults."
	}
	return strings.Join(reasons, " ")
}
