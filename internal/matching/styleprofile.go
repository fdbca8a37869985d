package matching

import (
	"github.com/courtlab/racketfit/internal/models"
)

// Weight preference values
const (
	WeightPrefLight  = "light"
	WeightPrefMedium = "medium"
	WeightPrefHeavy  = "heavy"
)

const defaultLevelScore = 2

// StyleProfile is the canonical playstyle description derived from a
// survey response, expressed as scoring weights plus passthrough fields.
type StyleProfile struct {
	Level      *string `json:"level"`
	LevelScore int     `json:"levelScore"`

	Pain  *string `json:"pain"`
	Swing *string `json:"swing"`

	Styles       []string `json:"styles"`
	StylePower   bool     `json:"stylePower"`
	StyleControl bool     `json:"styleControl"`
	StyleSpin    bool     `json:"styleSpin"`

	StringTypePreference string `json:"stringTypePreference"`

	PowerWeight   float64 `json:"powerWeight"`
	ControlWeight float64 `json:"controlWeight"`
	SpinWeight    float64 `json:"spinWeight"`
	ComfortWeight float64 `json:"comfortWeight"`

	WeightPreference string `json:"weightPreference"`
}

// PainIs reports whether the survey recorded the given pain answer.
func (p *StyleProfile) PainIs(pain string) bool {
	return p.Pain != nil && *p.Pain == pain
}

// BuildStyleProfile derives a StyleProfile from a survey response. Missing
// fields default conservatively; the level score defaults to intermediate.
func BuildStyleProfile(s *models.SurveyResponse) StyleProfile {
	if s == nil {
		s = &models.SurveyResponse{StringTypePreference: models.StringPrefAuto}
	}

	p := StyleProfile{
		Level:                s.Level,
		LevelScore:           levelScore(s.Level),
		Pain:                 s.Pain,
		Swing:                s.Swing,
		Styles:               append([]string(nil), s.Styles...),
		StylePower:           s.HasStyle(models.StylePower),
		StyleControl:         s.HasStyle(models.StyleControl),
		StyleSpin:            s.HasStyle(models.StyleSpin),
		StringTypePreference: s.StringTypePreference,
		PowerWeight:          1.0,
		ControlWeight:        1.0,
		SpinWeight:           1.0,
		ComfortWeight:        1.0,
	}
	if p.StringTypePreference == "" {
		p.StringTypePreference = models.StringPrefAuto
	}

	if p.StylePower {
		p.PowerWeight += 0.7
	}
	if p.StyleControl {
		p.ControlWeight += 0.7
	}
	if p.StyleSpin {
		p.SpinWeight += 0.7
	}

	if s.Swing != nil {
		switch *s.Swing {
		case models.SwingFast:
			p.PowerWeight += 0.3
		case models.SwingSlow:
			p.ControlWeight += 0.3
		}
	}

	// Pain history biases toward comfort; often also pulls power and spin
	// down without clamping at zero
	if s.Pain != nil {
		switch *s.Pain {
		case models.PainOften:
			p.ComfortWeight += 1.0
			p.PowerWeight -= 0.2
			p.SpinWeight -= 0.2
		case models.PainSometimes:
			p.ComfortWeight += 0.5
		}
	}

	p.WeightPreference = weightPreference(p.LevelScore, s.Pain)

	return p
}

func levelScore(level *string) int {
	if level == nil {
		return defaultLevelScore
	}
	switch *level {
	case models.LevelBeginner:
		return 1
	case models.LevelIntermediate:
		return 2
	case models.LevelAdvanced:
		return 3
	case models.LevelExpert:
		return 4
	}
	return defaultLevelScore
}

// weightPreference is evaluated in order; the first matching rule wins.
func weightPreference(levelScore int, pain *string) string {
	painOften := pain != nil && *pain == models.PainOften
	painNone := pain != nil && *pain == models.PainNone

	if levelScore <= 2 || painOften {
		return WeightPrefLight
	}
	if levelScore >= 3 && painNone {
		return WeightPrefHeavy
	}
	return WeightPrefMedium
}
