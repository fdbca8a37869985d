package matching

import (
	"testing"

	"github.com/courtlab/racketfit/internal/models"
)

func fptr(f float64) *float64 { return &f }
func iptr(i int) *int         { return &i }
func sptr(s string) *string   { return &s }

func TestBuildHandProfile_EmptyMeasurement(t *testing.T) {
	cases := []struct {
		name string
		in   *models.HandMeasurement
	}{
		{name: "nil measurement", in: nil},
		{name: "zero measurement", in: &models.HandMeasurement{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := BuildHandProfile(tc.in)
			if p.Exists {
				t.Error("Expected Exists=false for empty measurement")
			}
			if p.LengthMm != nil || p.WidthMm != nil || p.SizeCategory != nil ||
				p.GripSizeLabel != nil || p.HandType != nil || p.FingerRatios != nil {
				t.Error("Expected all derived fields absent for empty measurement")
			}
		})
	}
}

func TestBuildHandProfile_SizeCategoryBoundaries(t *testing.T) {
	cases := []struct {
		lengthMm float64
		expected string
	}{
		{169.9, models.HandSizeSmall},
		{170.0, models.HandSizeMedium},
		{189.9, models.HandSizeMedium},
		{190.0, models.HandSizeLarge},
	}

	for _, tc := range cases {
		p := BuildHandProfile(&models.HandMeasurement{HandLengthMm: fptr(tc.lengthMm)})
		if p.SizeCategory == nil {
			t.Fatalf("Expected size category for %.1fmm", tc.lengthMm)
		}
		if *p.SizeCategory != tc.expected {
			t.Errorf("Length %.1fmm: expected %s, got %s", tc.lengthMm, tc.expected, *p.SizeCategory)
		}
	}
}

func TestBuildHandProfile_GripSizeLabel(t *testing.T) {
	cases := []struct {
		lengthMm float64
		expected string
	}{
		{160.0, "L1"},
		{174.9, "L1"},
		{175.0, "L2"},
		{189.9, "L2"},
		{190.0, "L3"},
		{205.0, "L3"},
	}

	for _, tc := range cases {
		p := BuildHandProfile(&models.HandMeasurement{HandLengthMm: fptr(tc.lengthMm)})
		if p.GripSizeLabel == nil || *p.GripSizeLabel != tc.expected {
			t.Errorf("Length %.1fmm: expected grip %s, got %v", tc.lengthMm, tc.expected, p.GripSizeLabel)
		}
	}
}

func TestBuildHandProfile_MmFallbackFromScore(t *testing.T) {
	// 720 / 4.0 = 180mm -> MEDIUM, L2
	p := BuildHandProfile(&models.HandMeasurement{HandLength: fptr(720)})

	if p.LengthMm == nil || *p.LengthMm != 180.0 {
		t.Fatalf("Expected derived length 180mm, got %v", p.LengthMm)
	}
	if p.SizeCategory == nil || *p.SizeCategory != models.HandSizeMedium {
		t.Errorf("Expected MEDIUM from derived length, got %v", p.SizeCategory)
	}
	if p.GripSizeLabel == nil || *p.GripSizeLabel != "L2" {
		t.Errorf("Expected L2 from derived length, got %v", p.GripSizeLabel)
	}
}

func TestBuildHandProfile_CategoryFromMeasurementWins(t *testing.T) {
	// An explicit category tag is kept even when the length would
	// classify differently
	p := BuildHandProfile(&models.HandMeasurement{
		HandLengthMm:     fptr(165.0),
		HandSizeCategory: sptr(models.HandSizeLarge),
	})

	if p.SizeCategory == nil || *p.SizeCategory != models.HandSizeLarge {
		t.Errorf("Expected explicit LARGE tag to win, got %v", p.SizeCategory)
	}
}

func TestBuildHandProfile_HandType(t *testing.T) {
	cases := []struct {
		name     string
		ratios   models.FloatList
		expected *string
	}{
		{name: "compact fingers", ratios: models.FloatList{0.94, 0.96}, expected: sptr(HandTypeCompact)},
		{name: "average fingers", ratios: models.FloatList{0.99, 1.01}, expected: sptr(HandTypeAverage)},
		{name: "long fingers", ratios: models.FloatList{1.05, 1.06}, expected: sptr(HandTypeLong)},
		{name: "single ratio skipped", ratios: models.FloatList{0.94}, expected: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := BuildHandProfile(&models.HandMeasurement{FingerRatios: tc.ratios})
			switch {
			case tc.expected == nil:
				if p.HandType != nil {
					t.Errorf("Expected no hand type, got %s", *p.HandType)
				}
			case p.HandType == nil:
				t.Errorf("Expected hand type %s, got none", *tc.expected)
			case *p.HandType != *tc.expected:
				t.Errorf("Expected hand type %s, got %s", *tc.expected, *p.HandType)
			}
		})
	}
}

func TestBuildHandProfile_PartialInputsIndependent(t *testing.T) {
	// Finger ratios alone still produce a hand type even with no length data
	p := BuildHandProfile(&models.HandMeasurement{FingerRatios: models.FloatList{1.05, 1.05}})

	if !p.Exists {
		t.Fatal("Expected Exists=true for a measurement with ratios")
	}
	if p.HandType == nil || *p.HandType != HandTypeLong {
		t.Errorf("Expected hand type from ratios alone, got %v", p.HandType)
	}
	if p.SizeCategory != nil || p.GripSizeLabel != nil {
		t.Error("Expected no size fields without length data")
	}
}
