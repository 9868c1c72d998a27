package service

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"go.uber.org/zap"

	"love-match/internal/domain"
	"love-match/internal/scoring"
)

// ProfileService validates questionnaire answers at the boundary and turns
// them into profiles and match results through the scoring engine.
type ProfileService struct {
	engine *scoring.Engine
	logger *zap.Logger
}

var (
	ErrInvalidAnswer     = errors.New("invalid answer")
	ErrIncompleteAnswers = errors.New("incomplete answers")
)

// QuestionView is the public shape of a question: option texts, no weights.
type QuestionView struct {
	ID      domain.QuestionID `json:"id"`
	Kind    string            `json:"kind"`
	Text    string            `json:"text"`
	Options []OptionView      `json:"options"`
}

type OptionView struct {
	Key  domain.OptionKey `json:"key"`
	Text string           `json:"text"`
}

func NewProfileService(engine *scoring.Engine, logger *zap.Logger) *ProfileService {
	if engine == nil {
		engine = scoring.NewEngine()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfileService{engine: engine, logger: logger}
}

// Questionnaire returns the ordered questionnaire.
func (s *ProfileService) Questionnaire() []QuestionView {
	qs := scoring.Questions()
	out := make([]QuestionView, 0, len(qs))
	for _, q := range qs {
		view := QuestionView{ID: q.ID, Kind: string(q.Kind), Text: q.Text}
		for _, opt := range q.Options {
			view.Options = append(view.Options, OptionView{Key: opt.Key, Text: opt.Text})
		}
		out = append(out, view)
	}
	return out
}

// NormalizeAnswers trims ids and keys, upper-cases option keys and rejects
// unknown questions or options. When requireComplete is set every profile
// question must be answered; exchange answers stay optional.
func (s *ProfileService) NormalizeAnswers(answers map[string]string, requireComplete bool) (domain.AnswerSet, error) {
	out := make(domain.AnswerSet, len(answers))
	for rawID, rawKey := range answers {
		id := domain.QuestionID(strings.ToUpper(strings.TrimSpace(rawID)))
		key := domain.OptionKey(strings.ToUpper(strings.TrimSpace(rawKey)))

		q, ok := scoring.LookupQuestion(id)
		if !ok {
			return nil, fmt.Errorf("%w: unknown question %q", ErrInvalidAnswer, rawID)
		}
		if _, ok := q.Option(key); !ok {
			return nil, fmt.Errorf("%w: question %s has no option %q", ErrInvalidAnswer, id, rawKey)
		}
		out[id] = key
	}

	if requireComplete {
		var missing []string
		for _, q := range scoring.ProfileQuestions() {
			if _, ok := out[q.ID]; !ok {
				missing = append(missing, string(q.ID))
			}
		}
		if len(missing) > 0 {
			return nil, fmt.Errorf("%w: missing %s", ErrIncompleteAnswers, strings.Join(missing, ", "))
		}
	}
	return out, nil
}

// Preview scores a possibly partial answer set without persisting anything.
func (s *ProfileService) Preview(answers map[string]string, inRelationship bool) (domain.FullProfile, error) {
	set, err := s.NormalizeAnswers(answers, false)
	if err != nil {
		return domain.FullProfile{}, err
	}
	return s.engine.FullProfile(set, inRelationship), nil
}

// Build scores a complete answer set.
func (s *ProfileService) Build(answers map[string]string, inRelationship bool) (domain.AnswerSet, domain.FullProfile, error) {
	set, err := s.NormalizeAnswers(answers, true)
	if err != nil {
		return nil, domain.FullProfile{}, err
	}
	profile := s.engine.FullProfile(set, inRelationship)
	s.logger.Debug("profile built",
		zap.String("archetype", string(profile.Archetype)),
		zap.String("triangular_type", string(profile.TriangularType)),
		zap.String("conflict_type", string(profile.ConflictType)),
	)
	return set, profile, nil
}

// Match scores two profiles.
func (s *ProfileService) Match(a, b domain.FullProfile) domain.MatchResult {
	return s.engine.Match(a, b)
}

// ValidateProfile checks a profile received from a client before it is scored:
// exchange answers on the 1-5 scale, known labels everywhere and finite,
// non-negative scores. Derived types may be empty since Match reclassifies them.
func (s *ProfileService) ValidateProfile(p domain.FullProfile) error {
	var errs []error
	for name, v := range map[string]int{
		"investment":   p.Exchange.Investment,
		"equity":       p.Exchange.Equity,
		"satisfaction": p.Exchange.Satisfaction,
	} {
		if v < domain.ExchangeScaleMin || v > domain.ExchangeScaleMax {
			errs = append(errs, fmt.Errorf("exchange %s=%d out of range", name, v))
		}
	}

	if !slices.Contains(scoring.Archetypes(), p.Archetype) {
		errs = append(errs, fmt.Errorf("unknown archetype %q", p.Archetype))
	}
	errs = append(errs, optionalLabel("love style", p.PrimaryLoveStyle, domain.LoveStyles))
	errs = append(errs, optionalLabel("attachment", p.PrimaryAttachment, domain.Attachments))
	errs = append(errs, optionalLabel("triangular type", p.TriangularType, domain.TriangularTypes))
	errs = append(errs, optionalLabel("conflict type", p.ConflictType, domain.ConflictTypes))

	errs = append(errs, checkScores("love style scores", p.LoveStyleScores, domain.LoveStyles))
	errs = append(errs, checkScores("attachment scores", p.AttachmentScores, domain.Attachments))
	errs = append(errs, checkScores("love language scores", p.LoveLanguageScores, domain.LoveLanguages))
	errs = append(errs, checkScores("conflict vector", p.ConflictVector, domain.ConflictCategories))
	tv := p.TriangularVector
	for _, v := range []float64{tv.Intimacy, tv.Passion, tv.Commitment} {
		if !validScore(v) {
			errs = append(errs, fmt.Errorf("triangular vector value %v invalid", v))
			break
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAnswer, err)
	}
	return nil
}

func optionalLabel[L ~string](name string, label L, known []L) error {
	if label == "" || slices.Contains(known, label) {
		return nil
	}
	return fmt.Errorf("unknown %s %q", name, label)
}

func checkScores[L ~string, M ~map[L]float64](name string, scores M, known []L) error {
	for label, v := range scores {
		if !slices.Contains(known, label) {
			return fmt.Errorf("%s: unknown label %q", name, label)
		}
		if !validScore(v) {
			return fmt.Errorf("%s: %s=%v invalid", name, label, v)
		}
	}
	return nil
}

func validScore(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
