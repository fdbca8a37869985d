package matching

import (
	"testing"

	"github.com/courtlab/racketfit/internal/models"
)

func TestBuildStyleProfile_Defaults(t *testing.T) {
	p := BuildStyleProfile(nil)

	if p.LevelScore != 2 {
		t.Errorf("Expected default level score 2, got %d", p.LevelScore)
	}
	if p.PowerWeight != 1.0 || p.ControlWeight != 1.0 || p.SpinWeight != 1.0 || p.ComfortWeight != 1.0 {
		t.Errorf("Expected all weights 1.0, got %.1f/%.1f/%.1f/%.1f",
			p.PowerWeight, p.ControlWeight, p.SpinWeight, p.ComfortWeight)
	}
	if p.StringTypePreference != models.StringPrefAuto {
		t.Errorf("Expected auto string preference, got %s", p.StringTypePreference)
	}
	// levelScore <= 2 falls into the light bucket
	if p.WeightPreference != WeightPrefLight {
		t.Errorf("Expected light weight preference by default, got %s", p.WeightPreference)
	}
}

func TestBuildStyleProfile_PowerFastSwing(t *testing.T) {
	p := BuildStyleProfile(&models.SurveyResponse{
		Styles: models.Tags{models.StylePower},
		Swing:  sptr(models.SwingFast),
	})

	if p.PowerWeight != 2.0 {
		t.Errorf("Expected power weight 2.0 (1.0+0.7+0.3), got %.2f", p.PowerWeight)
	}
	if p.ControlWeight != 1.0 {
		t.Errorf("Expected control weight 1.0, got %.2f", p.ControlWeight)
	}
	if p.SpinWeight != 1.0 {
		t.Errorf("Expected spin weight 1.0, got %.2f", p.SpinWeight)
	}
}

func TestBuildStyleProfile_PainAdjustments(t *testing.T) {
	cases := []struct {
		name          string
		pain          string
		comfortWeight float64
		powerWeight   float64
		spinWeight    float64
	}{
		{name: "pain often", pain: models.PainOften, comfortWeight: 2.0, powerWeight: 0.8, spinWeight: 0.8},
		{name: "pain sometimes", pain: models.PainSometimes, comfortWeight: 1.5, powerWeight: 1.0, spinWeight: 1.0},
		{name: "no pain", pain: models.PainNone, comfortWeight: 1.0, powerWeight: 1.0, spinWeight: 1.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := BuildStyleProfile(&models.SurveyResponse{Pain: sptr(tc.pain)})
			if !almostEqual(p.ComfortWeight, tc.comfortWeight) {
				t.Errorf("Expected comfort weight %.2f, got %.2f", tc.comfortWeight, p.ComfortWeight)
			}
			if !almostEqual(p.PowerWeight, tc.powerWeight) {
				t.Errorf("Expected power weight %.2f, got %.2f", tc.powerWeight, p.PowerWeight)
			}
			if !almostEqual(p.SpinWeight, tc.spinWeight) {
				t.Errorf("Expected spin weight %.2f, got %.2f", tc.spinWeight, p.SpinWeight)
			}
		})
	}
}

func TestBuildStyleProfile_SlowSwingBoostsControl(t *testing.T) {
	p := BuildStyleProfile(&models.SurveyResponse{Swing: sptr(models.SwingSlow)})

	if !almostEqual(p.ControlWeight, 1.3) {
		t.Errorf("Expected control weight 1.3, got %.2f", p.ControlWeight)
	}
}

func TestBuildStyleProfile_WeightPreference(t *testing.T) {
	cases := []struct {
		name     string
		level    *string
		pain     *string
		expected string
	}{
		{name: "beginner is light", level: sptr(models.LevelBeginner), pain: sptr(models.PainNone), expected: WeightPrefLight},
		{name: "pain often is light even for expert", level: sptr(models.LevelExpert), pain: sptr(models.PainOften), expected: WeightPrefLight},
		{name: "advanced without pain is heavy", level: sptr(models.LevelAdvanced), pain: sptr(models.PainNone), expected: WeightPrefHeavy},
		{name: "advanced with occasional pain is medium", level: sptr(models.LevelAdvanced), pain: sptr(models.PainSometimes), expected: WeightPrefMedium},
		{name: "advanced with unknown pain is medium", level: sptr(models.LevelAdvanced), pain: nil, expected: WeightPrefMedium},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := BuildStyleProfile(&models.SurveyResponse{Level: tc.level, Pain: tc.pain})
			if p.WeightPreference != tc.expected {
				t.Errorf("Expected %s, got %s", tc.expected, p.WeightPreference)
			}
		})
	}
}

func TestBuildStyleProfile_LevelScores(t *testing.T) {
	cases := []struct {
		level    *string
		expected int
	}{
		{sptr(models.LevelBeginner), 1},
		{sptr(models.LevelIntermediate), 2},
		{sptr(models.LevelAdvanced), 3},
		{sptr(models.LevelExpert), 4},
		{sptr("unknown"), 2},
		{nil, 2},
	}

	for _, tc := range cases {
		p := BuildStyleProfile(&models.SurveyResponse{Level: tc.level})
		if p.LevelScore != tc.expected {
			t.Errorf("Level %v: expected score %d, got %d", tc.level, tc.expected, p.LevelScore)
		}
	}
}

func TestBuildStyleProfile_NegativeWeightsReachable(t *testing.T) {
	// Pain adjustments subtract without clamping; a profile with pain and
	// no style selections keeps the reduced weights as-is
	p := BuildStyleProfile(&models.SurveyResponse{Pain: sptr(models.PainOften)})

	if !almostEqual(p.PowerWeight, 0.8) {
		t.Errorf("Expected unclamped power weight 0.8, got %.2f", p.PowerWeight)
	}
}

func almostEqual(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-9
}
