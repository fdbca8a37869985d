package matching

import (
	"fmt"
	"math"
	"strings"

	"github.com/courtlab/racketfit/internal/models"
)

// Weight-band defaults in grams, before preference/hand/pain shifts
const (
	defaultTargetWeight = 295
	defaultMinWeight    = 270
	defaultMaxWeight    = 315

	weightBandBonus    = 15.0
	weightNearBonus    = 8.0
	weightFarPenalty   = 8.0
	weightNearDiffG    = 10.0
	weightFarDiffG     = 25.0
	maxReasonFragments = 4
)

// weightBand is the acceptable unstrung-weight range for one profile pair.
type weightBand struct {
	target int
	min    int
	max    int
}

// ScoreRacket computes the raw fitness score and rationale text for one
// racket against a hand/style profile pair.
func ScoreRacket(r *models.Racket, hand HandProfile, style StyleProfile) (float64, string) {
	comfort := float64(r.EffectiveComfort())
	switch {
	case style.PainIs(models.PainOften):
		comfort += 1.0
	case style.PainIs(models.PainSometimes):
		comfort += 0.5
	}

	score := float64(r.EffectivePower())*style.PowerWeight +
		float64(r.EffectiveControl())*style.ControlWeight +
		float64(r.EffectiveSpin())*style.SpinWeight +
		comfort*style.ComfortWeight

	var reasons []string
	addReason := func(s string) {
		if len(reasons) < maxReasonFragments {
			reasons = append(reasons, s)
		}
	}

	// Unstrung weight against the profile-specific band
	band := buildWeightBand(hand, style)
	if r.UnstrungWeightG != nil {
		w := *r.UnstrungWeightG
		diff := math.Abs(float64(w - band.target))
		switch {
		case w >= band.min && w <= band.max:
			score += weightBandBonus
			addReason(fmt.Sprintf("At %d g unstrung it sits inside the %d-%d g range that fits your hand and preference.", w, band.min, band.max))
		case diff <= weightNearDiffG:
			score += weightNearBonus
			addReason(fmt.Sprintf("Its %d g unstrung weight is close to the %d g target for your profile.", w, band.target))
		case diff >= weightFarDiffG:
			score -= weightFarPenalty
			addReason(fmt.Sprintf("Its %d g unstrung weight is well off the %d g target for your profile.", w, band.target))
		}
	}

	// Head size against declared style
	if r.HeadSizeSqIn != nil {
		head := *r.HeadSizeSqIn
		if style.StyleControl && head <= 100 {
			score += 6
			addReason(fmt.Sprintf("The %d sq in head rewards a control-first game.", head))
		}
		if style.StylePower && head >= 100 {
			score += 6
			addReason(fmt.Sprintf("The %d sq in head adds easy power.", head))
		}
	}

	// Swingweight against level and pain
	if r.Swingweight != nil {
		sw := *r.Swingweight
		if style.LevelScore <= 2 && sw > 325 {
			score -= 10
			addReason(fmt.Sprintf("A swingweight of %d is demanding below an advanced level.", sw))
		}
		if style.PainIs(models.PainOften) && sw > 330 {
			score -= 8
			addReason(fmt.Sprintf("A swingweight of %d is hard on an arm with pain history.", sw))
		}
	}

	// Frame stiffness against pain history; the rules are independent
	if r.StiffnessRa != nil {
		ra := *r.StiffnessRa
		if style.PainIs(models.PainOften) && ra >= 67 {
			score -= 10
			addReason(fmt.Sprintf("Its stiff frame (RA %d) transmits shock, which counts against it for a sensitive arm.", ra))
		} else if style.PainIs(models.PainNone) && ra >= 67 && style.StylePower {
			score += 5
			addReason(fmt.Sprintf("The stiff frame (RA %d) gives a crisp, powerful response.", ra))
		}
		if style.PainIs(models.PainOften) && ra <= 63 {
			score += 8
			addReason(fmt.Sprintf("The flexible frame (RA %d) keeps shock low for a sensitive arm.", ra))
		}
	}

	if r.BalanceType != nil && *r.BalanceType == models.BalanceHeadLight {
		score += 3
	}

	if style.StyleSpin && r.StringPattern != nil {
		pattern := *r.StringPattern
		if strings.Contains(pattern, "16x19") || strings.Contains(pattern, "16x18") {
			score += 4
			addReason(fmt.Sprintf("The open %s pattern suits a spin-heavy game.", pattern))
		}
	}

	reason := "A balanced match for your profile overall."
	if len(reasons) > 0 {
		reason = strings.Join(reasons, " ")
	}

	return score, reason
}

// buildWeightBand starts from the default band and shifts it by weight
// preference, then hand size, then pain history.
func buildWeightBand(hand HandProfile, style StyleProfile) weightBand {
	band := weightBand{
		target: defaultTargetWeight,
		min:    defaultMinWeight,
		max:    defaultMaxWeight,
	}

	switch style.WeightPreference {
	case WeightPrefLight:
		band = weightBand{target: 285, min: 260, max: 300}
	case WeightPrefHeavy:
		band = weightBand{target: 305, min: 285, max: 325}
	}

	if hand.SizeCategory != nil {
		switch *hand.SizeCategory {
		case models.HandSizeSmall:
			band.target -= 5
			band.max -= 5
		case models.HandSizeLarge:
			band.target += 5
			band.min += 5
		}
	}

	if style.PainIs(models.PainOften) {
		band.target -= 5
		band.max -= 5
	}

	return band
}
