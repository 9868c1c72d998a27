package scoring

import (
	"errors"
	"fmt"
	"strconv"

	"love-match/internal/domain"
)

// ValidateTables checks the static tables once at startup: both compatibility
// matrices complete, symmetric and within [0,1], the 7x7 diagonal at least as
// large as its row, every archetype mapped, and every question well formed.
func ValidateTables() error {
	var errs []error
	errs = append(errs, validateMatrix("triangular", triangularMatrix, domain.TriangularTypes, true)...)
	errs = append(errs, validateMatrix("conflict", conflictMatrix, domain.ConflictTypes, false)...)

	for _, s := range domain.LoveStyles {
		for _, a := range domain.Attachments {
			arch, ok := archetypeMatrix[s][a]
			if !ok {
				errs = append(errs, fmt.Errorf("archetype matrix: missing %s/%s", s, a))
				continue
			}
			if _, ok := archetypeTriangular[arch]; !ok {
				errs = append(errs, fmt.Errorf("archetype %q has no triangular type", arch))
			}
		}
	}
	for arch, t := range archetypeTriangular {
		if _, ok := triangularMatrix[t]; !ok {
			errs = append(errs, fmt.Errorf("archetype %q maps to unknown type %q", arch, t))
		}
	}

	errs = append(errs, validateQuestions()...)
	return errors.Join(errs...)
}

func validateMatrix[T comparable](name string, m map[T]map[T]float64, labels []T, diagonalMax bool) []error {
	var errs []error
	for _, a := range labels {
		row, ok := m[a]
		if !ok {
			errs = append(errs, fmt.Errorf("%s matrix: missing row %v", name, a))
			continue
		}
		for _, b := range labels {
			v, ok := row[b]
			if !ok {
				errs = append(errs, fmt.Errorf("%s matrix: missing cell %v/%v", name, a, b))
				continue
			}
			if v < 0 || v > 1 {
				errs = append(errs, fmt.Errorf("%s matrix: %v/%v=%v out of range", name, a, b, v))
			}
			if w, ok := m[b][a]; ok && w != v {
				errs = append(errs, fmt.Errorf("%s matrix: %v/%v=%v but %v/%v=%v", name, a, b, v, b, a, w))
			}
			if diagonalMax && v > row[a] {
				errs = append(errs, fmt.Errorf("%s matrix: %v/%v exceeds diagonal", name, a, b))
			}
		}
	}
	if len(m) != len(labels) {
		errs = append(errs, fmt.Errorf("%s matrix: %d rows, want %d", name, len(m), len(labels)))
	}
	return errs
}

func validateQuestions() []error {
	var errs []error
	seen := make(map[domain.QuestionID]bool, len(questions))
	exchangeStarted := false
	for _, q := range questions {
		if seen[q.ID] {
			errs = append(errs, fmt.Errorf("question %s: duplicate id", q.ID))
		}
		seen[q.ID] = true

		switch q.Kind {
		case KindExchange:
			exchangeStarted = true
			for i := domain.ExchangeScaleMin; i <= domain.ExchangeScaleMax; i++ {
				if _, ok := q.Option(domain.OptionKey(strconv.Itoa(i))); !ok {
					errs = append(errs, fmt.Errorf("question %s: missing likert key %d", q.ID, i))
				}
			}
		case KindProfile:
			if exchangeStarted {
				errs = append(errs, fmt.Errorf("question %s: profile question after exchange block", q.ID))
			}
		default:
			errs = append(errs, fmt.Errorf("question %s: unknown kind %q", q.ID, q.Kind))
		}

		if len(q.Options) == 0 {
			errs = append(errs, fmt.Errorf("question %s: no options", q.ID))
		}
		keys := make(map[domain.OptionKey]bool, len(q.Options))
		for _, opt := range q.Options {
			if keys[opt.Key] {
				errs = append(errs, fmt.Errorf("question %s: duplicate option %s", q.ID, opt.Key))
			}
			keys[opt.Key] = true
			if err := validateMapping(opt.Mapping); err != nil {
				errs = append(errs, fmt.Errorf("question %s option %s: %w", q.ID, opt.Key, err))
			}
		}
	}
	for _, id := range []domain.QuestionID{QuestionInvestment, QuestionEquity, QuestionSatisfaction} {
		q, ok := LookupQuestion(id)
		if !ok || q.Kind != KindExchange {
			errs = append(errs, fmt.Errorf("exchange question %s missing", id))
		}
	}
	return errs
}

func validateMapping(m DimensionMapping) error {
	var errs []error
	errs = append(errs, checkWeights(m.Style, domain.LoveStyles)...)
	errs = append(errs, checkWeights(m.Attachment, domain.Attachments)...)
	errs = append(errs, checkWeights(m.Language, domain.LoveLanguages)...)
	errs = append(errs, checkWeights(m.Triangular, domain.TriangularDimensions)...)
	errs = append(errs, checkWeights(m.Conflict, domain.ConflictCategories)...)
	return errors.Join(errs...)
}

// checkWeights rejects negative weights and labels outside the taxonomy.
func checkWeights[L comparable](m map[L]float64, labels []L) []error {
	var errs []error
	for label, w := range m {
		if w < 0 {
			errs = append(errs, fmt.Errorf("negative weight %v for %v", w, label))
		}
		known := false
		for _, l := range labels {
			if l == label {
				known = true
				break
			}
		}
		if !known {
			errs = append(errs, fmt.Errorf("unknown label %v", label))
		}
	}
	return errs
}
