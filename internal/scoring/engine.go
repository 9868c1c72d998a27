package scoring

import (
	"fmt"
	"math"
	"strconv"

	"love-match/internal/domain"
)

// Engine computes profiles and match results. It holds no mutable state and
// is safe for concurrent use.
type Engine struct {
	pick  tieBreaker
	tiers TierTable
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithTieBreak selects the tie-break policy for the style and attachment labels.
func WithTieBreak(p TieBreakPolicy) EngineOption {
	return func(e *Engine) {
		if p == TieBreakRandom {
			e.pick = randomTied
			return
		}
		e.pick = firstTied
	}
}

// WithTiePicker injects the tie-break function directly. pick receives the
// number of tied labels and must return an index in [0, n).
func WithTiePicker(pick func(n int) int) EngineOption {
	return func(e *Engine) {
		if pick != nil {
			e.pick = pick
		}
	}
}

// WithTiers replaces the tier table used to label match totals.
func WithTiers(t TierTable) EngineOption {
	return func(e *Engine) {
		e.tiers = t
	}
}

// NewEngine builds an engine with priority tie-break and the default tiers.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		pick:  firstTied,
		tiers: DefaultTierTable(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Profile aggregates the answers and classifies the result. Incomplete
// answer sets are scored as-is; completeness is checked by callers.
func (e *Engine) Profile(answers domain.AnswerSet) domain.PersonalProfile {
	v := Aggregate(answers)
	style := argMax(map[domain.LoveStyle]float64(v.Style), domain.LoveStyles, e.pick)
	attachment := argMax(map[domain.Attachment]float64(v.Attachment), domain.Attachments, e.pick)

	return domain.PersonalProfile{
		PrimaryLoveStyle:   style,
		PrimaryAttachment:  attachment,
		Archetype:          ArchetypeFor(style, attachment),
		LoveStyleScores:    v.Style,
		AttachmentScores:   v.Attachment,
		LoveLanguageScores: v.Language,
		TriangularVector:   v.Triangular,
		ConflictVector:     v.Conflict,
		TriangularType:     ClassifyTriangular(v.Triangular),
		ConflictType:       ClassifyConflict(v.Conflict),
	}
}

// FullProfile adds the exchange triple read from the same answer set.
func (e *Engine) FullProfile(answers domain.AnswerSet, inRelationship bool) domain.FullProfile {
	return domain.FullProfile{
		PersonalProfile: e.Profile(answers),
		Exchange:        ResolveExchange(answers, inRelationship),
	}
}

// ResolveExchange reads the Likert exchange answers. Missing or out-of-scale
// answers become the midpoint; outside a relationship all three are neutral.
func ResolveExchange(answers domain.AnswerSet, inRelationship bool) domain.ExchangeAnswers {
	if !inRelationship {
		return domain.NeutralExchange()
	}
	return domain.ExchangeAnswers{
		Investment:   likertValue(answers, QuestionInvestment),
		Equity:       likertValue(answers, QuestionEquity),
		Satisfaction: likertValue(answers, QuestionSatisfaction),
	}
}

func likertValue(answers domain.AnswerSet, id domain.QuestionID) int {
	raw, ok := answers[id]
	if !ok {
		return domain.ExchangeScaleMidpoint
	}
	n, err := strconv.Atoi(string(raw))
	if err != nil || n < domain.ExchangeScaleMin || n > domain.ExchangeScaleMax {
		return domain.ExchangeScaleMidpoint
	}
	return n
}

// ExchangeCompatibility blends satisfaction (60%) with how closely the two
// sides perceive investment and equity (40%).
func ExchangeCompatibility(a, b domain.ExchangeAnswers) float64 {
	span := float64(domain.ExchangeScaleMax - domain.ExchangeScaleMin)
	d1 := math.Abs(float64(a.Investment - b.Investment))
	d2 := math.Abs(float64(a.Equity - b.Equity))
	perception := 1 - ((d1+d2)/2)/span
	meanSat := float64(a.Satisfaction+b.Satisfaction) / 2
	satisfaction := (meanSat - domain.ExchangeScaleMin) / span
	return clamp01(0.6*satisfaction + 0.4*perception)
}

// Match scores two complete profiles. The triangular and conflict types are
// always reclassified from the vectors; labels stored on the profiles are
// ignored. The result is symmetric in a and b except for the A/B labels it
// echoes back.
func (e *Engine) Match(a, b domain.FullProfile) domain.MatchResult {
	archA, archB := ArchetypeTriangularType(a.Archetype), ArchetypeTriangularType(b.Archetype)
	triA, triB := ClassifyTriangular(a.TriangularVector), ClassifyTriangular(b.TriangularVector)
	conA, conB := ClassifyConflict(a.ConflictVector), ClassifyConflict(b.ConflictVector)

	r := domain.MatchResult{
		Triangular: factor(TriangularCompatibility(triA, triB), WeightTriangular),
		Conflict:   factor(ConflictCompatibility(conA, conB), WeightConflict),
		Exchange:   factor(ExchangeCompatibility(a.Exchange, b.Exchange), WeightExchange),
		Archetype:  factor(TriangularCompatibility(archA, archB), WeightArchetype),

		PairName:        PairName(a.Archetype, b.Archetype),
		ArchetypeA:      a.Archetype,
		ArchetypeB:      b.Archetype,
		TriangularTypeA: triA,
		TriangularTypeB: triB,
		ConflictTypeA:   conA,
		ConflictTypeB:   conB,
	}
	sum := r.Triangular.Contribution + r.Conflict.Contribution + r.Exchange.Contribution + r.Archetype.Contribution
	r.Total = round2(sum)
	r.Tier = e.tiers.Label(r.Total)
	return r
}

// PairName is the display name of a pairing, e.g. "wolf × swan".
func PairName(a, b domain.Archetype) string {
	return fmt.Sprintf("%s × %s", a, b)
}

func factor(raw float64, weight int) domain.FactorScore {
	raw = clamp01(raw)
	return domain.FactorScore{
		Raw:          raw,
		Weight:       weight,
		Contribution: raw * float64(weight),
	}
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
