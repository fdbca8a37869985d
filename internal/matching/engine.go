// Package matching turns a hand profile and a playstyle profile into a
// ranked racket list plus a string recommendation. Every function here is
// pure: the caller supplies an immutable catalog snapshot and gets fresh
// output, so concurrent calls need no synchronization.
package matching

import (
	"math"
	"sort"

	"github.com/courtlab/racketfit/internal/models"
)

// DefaultTopK is the number of candidates kept after ranking.
const DefaultTopK = 5

// AlgorithmVersion tags persisted recommendations with the rule set that
// produced them.
const AlgorithmVersion = "v2"

// RacketCandidate is one ranked catalog entry in a match result.
type RacketCandidate struct {
	RacketID int64  `json:"id"`
	Name     string `json:"name"`
	Brand    string `json:"brand"`

	Weight        *int    `json:"weight"`
	HeadSize      *int    `json:"headSize"`
	Swingweight   *int    `json:"swingweight"`
	StiffnessRa   *int    `json:"stiffnessRa"`
	BalanceType   *string `json:"balanceType"`
	StringPattern *string `json:"stringPattern"`

	PowerScore   int `json:"powerScore"`
	ControlScore int `json:"controlScore"`
	SpinScore    int `json:"spinScore"`
	ComfortScore int `json:"comfortScore"`

	RawScore        float64 `json:"rawScore"`
	NormalizedScore float64 `json:"score"`
	Reason          string  `json:"reason"`
}

// MatchResult is the full output of one recommendation run.
type MatchResult struct {
	Rackets []RacketCandidate    `json:"rackets"`
	String  StringRecommendation `json:"string"`
}

// Engine ranks a racket catalog against a profile pair.
type Engine struct {
	topK           int
	filterInactive bool
}

// NewEngine creates an engine with the default result cap and inactive
// filtering enabled.
func NewEngine() *Engine {
	return &Engine{topK: DefaultTopK, filterInactive: true}
}

// NewEngineWithTopK creates an engine with a custom result cap. Values
// below 1 fall back to the default.
func NewEngineWithTopK(topK int) *Engine {
	if topK < 1 {
		topK = DefaultTopK
	}
	return &Engine{topK: topK, filterInactive: true}
}

// Match scores every active catalog entry, ranks them, keeps the top K and
// rescales scores so the best candidate lands on 100. The string
// recommendation is computed once, independent of the catalog; an empty
// catalog yields an empty list and a valid string recommendation.
func (e *Engine) Match(hand HandProfile, style StyleProfile, catalog []models.Racket) MatchResult {
	candidates := make([]RacketCandidate, 0, len(catalog))

	for i := range catalog {
		r := &catalog[i]
		if e.filterInactive && !r.IsActive {
			continue
		}
		if c, ok := scoreCandidate(r, hand, style); ok {
			candidates = append(candidates, c)
		}
	}

	// Stable sort keeps catalog order as the tie-break, which makes the
	// ranking deterministic across runs
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].RawScore > candidates[j].RawScore
	})

	if len(candidates) > e.topK {
		candidates = candidates[:e.topK]
	}

	normalize(candidates)

	return MatchResult{
		Rackets: candidates,
		String:  RecommendString(style),
	}
}

// scoreCandidate isolates a single racket's scoring so a malformed entry
// cannot abort the whole match.
func scoreCandidate(r *models.Racket, hand HandProfile, style StyleProfile) (c RacketCandidate, ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	raw, reason := ScoreRacket(r, hand, style)

	return RacketCandidate{
		RacketID:      r.ID,
		Name:          r.Name,
		Brand:         r.Brand,
		Weight:        r.UnstrungWeightG,
		HeadSize:      r.HeadSizeSqIn,
		Swingweight:   r.Swingweight,
		StiffnessRa:   r.StiffnessRa,
		BalanceType:   r.BalanceType,
		StringPattern: r.StringPattern,
		PowerScore:    r.EffectivePower(),
		ControlScore:  r.EffectiveControl(),
		SpinScore:     r.EffectiveSpin(),
		ComfortScore:  r.EffectiveComfort(),
		RawScore:      raw,
		Reason:        reason,
	}, true
}

// normalize rescales kept candidates so the top raw score maps to 100.0.
// A non-positive top score would invert signs on division, so everything
// collapses to zero instead.
func normalize(candidates []RacketCandidate) {
	if len(candidates) == 0 {
		return
	}

	top := candidates[0].RawScore
	for i := range candidates {
		if candidates[i].RawScore > top {
			top = candidates[i].RawScore
		}
	}

	if top <= 0 {
		for i := range candidates {
			candidates[i].NormalizedScore = 0
		}
		return
	}

	for i := range candidates {
		candidates[i].NormalizedScore = math.Round(candidates[i].RawScore/top*1000) / 10
	}
}
