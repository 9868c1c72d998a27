package scoring

import "love-match/internal/domain"

// NewScoreVectors returns vectors with every label of every taxonomy at zero.
func NewScoreVectors() domain.ScoreVectors {
	v := domain.ScoreVectors{
		Style:      make(domain.LoveStyleScores, len(domain.LoveStyles)),
		Attachment: make(domain.AttachmentScores, len(domain.Attachments)),
		Language:   make(domain.LoveLanguageScores, len(domain.LoveLanguages)),
		Conflict:   make(domain.ConflictVector, len(domain.ConflictCategories)),
	}
	for _, l := range domain.LoveStyles {
		v.Style[l] = 0
	}
	for _, l := range domain.Attachments {
		v.Attachment[l] = 0
	}
	for _, l := range domain.LoveLanguages {
		v.Language[l] = 0
	}
	for _, l := range domain.ConflictCategories {
		v.Conflict[l] = 0
	}
	return v
}

// Aggregate folds the chosen options of every answered profile question into
// the five score vectors. Unanswered questions, unknown option keys and
// exchange questions are skipped without error.
func Aggregate(answers domain.AnswerSet) domain.ScoreVectors {
	v := NewScoreVectors()
	for _, q := range questions {
		if q.Kind != KindProfile {
			continue
		}
		key, ok := answers[q.ID]
		if !ok {
			continue
		}
		opt, ok := q.Option(key)
		if !ok {
			continue
		}
		add(&v, opt.Mapping)
	}
	return v
}

func add(v *domain.ScoreVectors, m DimensionMapping) {
	accumulate(v.Style, m.Style)
	accumulate(v.Attachment, m.Attachment)
	accumulate(v.Language, m.Language)
	accumulate(v.Conflict, m.Conflict)
	for dim, w := range m.Triangular {
		switch dim {
		case domain.DimensionIntimacy:
			v.Triangular.Intimacy += w
		case domain.DimensionPassion:
			v.Triangular.Passion += w
		case domain.DimensionCommitment:
			v.Triangular.Commitment += w
		}
	}
}

// accumulate only touches labels already present in the vector, so a mapping
// can never introduce a label outside its taxonomy.
func accumulate[L comparable, V ~map[L]float64](dst V, src map[L]float64) {
	for label, w := range src {
		if _, ok := dst[label]; ok {
			dst[label] += w
		}
	}
}
