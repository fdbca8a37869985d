package matching

import (
	"github.com/courtlab/racketfit/internal/models"
)

// Millimeter boundaries for size and grip classification
const (
	sizeSmallMaxMm  = 170.0
	sizeMediumMaxMm = 190.0

	gripL1MaxMm = 175.0
	gripL2MaxMm = 190.0

	// Relative score to millimeter conversion divisor
	scoreToMmDivisor = 4.0

	handTypeCompactMax = 0.97
	handTypeLongMin    = 1.03
)

// Hand type values
const (
	HandTypeCompact = "compact"
	HandTypeAverage = "average"
	HandTypeLong    = "long"
)

// HandProfile is the canonical hand description derived from a raw
// measurement. When Exists is false every other field is absent.
type HandProfile struct {
	Exists bool `json:"handExists"`

	LengthScore *float64 `json:"handLengthScore,omitempty"`
	WidthScore  *float64 `json:"handWidthScore,omitempty"`

	LengthMm *float64 `json:"handLengthMm,omitempty"`
	WidthMm  *float64 `json:"handWidthMm,omitempty"`

	SizeCategory  *string `json:"handSizeCategory,omitempty"`
	GripSizeLabel *string `json:"gripSizeLabel,omitempty"`

	FingerRatios []float64 `json:"fingerRatios,omitempty"`
	HandType     *string   `json:"handType,omitempty"`
}

// BuildHandProfile derives a HandProfile from a raw measurement. It never
// fails: an absent or empty measurement yields {Exists:false}, and each
// derived field is computed independently from whatever inputs are present.
func BuildHandProfile(m *models.HandMeasurement) HandProfile {
	if m.IsEmpty() {
		return HandProfile{Exists: false}
	}

	p := HandProfile{
		Exists:      true,
		LengthScore: m.HandLength,
		WidthScore:  m.HandWidth,
		LengthMm:    m.HandLengthMm,
		WidthMm:     m.HandWidthMm,
	}

	// Approximate millimeter values from the relative scores when the
	// measurement did not include them
	if p.LengthMm == nil && m.HandLength != nil {
		mm := *m.HandLength / scoreToMmDivisor
		p.LengthMm = &mm
	}
	if p.WidthMm == nil && m.HandWidth != nil {
		mm := *m.HandWidth / scoreToMmDivisor
		p.WidthMm = &mm
	}

	p.SizeCategory = m.HandSizeCategory
	if p.SizeCategory == nil && p.LengthMm != nil {
		p.SizeCategory = classifySize(*p.LengthMm)
	}

	if p.LengthMm != nil {
		p.GripSizeLabel = classifyGrip(*p.LengthMm)
	}

	if len(m.FingerRatios) >= 2 {
		p.FingerRatios = []float64(m.FingerRatios)
		p.HandType = classifyHandType(m.FingerRatios[0], m.FingerRatios[1])
	}

	return p
}

func classifySize(lengthMm float64) *string {
	cat := models.HandSizeLarge
	switch {
	case lengthMm < sizeSmallMaxMm:
		cat = models.HandSizeSmall
	case lengthMm < sizeMediumMaxMm:
		cat = models.HandSizeMedium
	}
	return &cat
}

func classifyGrip(lengthMm float64) *string {
	label := "L3"
	switch {
	case lengthMm < gripL1MaxMm:
		label = "L1"
	case lengthMm < gripL2MaxMm:
		label = "L2"
	}
	return &label
}

func classifyHandType(indexRatio, ringRatio float64) *string {
	avg := (indexRatio + ringRatio) / 2.0
	t := HandTypeAverage
	switch {
	case avg < handTypeCompactMax:
		t = HandTypeCompact
	case avg > handTypeLongMin:
		t = HandTypeLong
	}
	return &t
}
