package scoring

import (
	"strconv"

	"love-match/internal/domain"
)

// DimensionMapping is the sparse contribution of one option into each taxonomy.
// Weights are non-negative and need not sum to 1.
type DimensionMapping struct {
	Style      map[domain.LoveStyle]float64
	Attachment map[domain.Attachment]float64
	Language   map[domain.LoveLanguage]float64
	Triangular map[domain.TriangularDimension]float64
	Conflict   map[domain.ConflictCategory]float64
}

// Option is one selectable answer of a question.
type Option struct {
	Key     domain.OptionKey
	Text    string
	Mapping DimensionMapping
}

// QuestionKind separates profile questions from the Likert exchange questions.
type QuestionKind string

const (
	KindProfile  QuestionKind = "profile"
	KindExchange QuestionKind = "exchange"
)

// Question is an entry of the canonical questionnaire.
type Question struct {
	ID      domain.QuestionID
	Kind    QuestionKind
	Text    string
	Options []Option
}

// Option returns the option with the given key.
func (q Question) Option(key domain.OptionKey) (Option, bool) {
	for _, opt := range q.Options {
		if opt.Key == key {
			return opt, true
		}
	}
	return Option{}, false
}

var questionIndex = func() map[domain.QuestionID]int {
	idx := make(map[domain.QuestionID]int, len(questions))
	for i, q := range questions {
		idx[q.ID] = i
	}
	return idx
}()

// Questions returns the canonical ordered questionnaire. The slice is a copy;
// mappings are shared and must be treated as read-only.
func Questions() []Question {
	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}

// ProfileQuestions returns the leading questions that feed the aggregator.
func ProfileQuestions() []Question {
	out := make([]Question, 0, len(questions))
	for _, q := range questions {
		if q.Kind == KindProfile {
			out = append(out, q)
		}
	}
	return out
}

// LookupQuestion finds a question by id.
func LookupQuestion(id domain.QuestionID) (Question, bool) {
	i, ok := questionIndex[id]
	if !ok {
		return Question{}, false
	}
	return questions[i], true
}

// Exchange question ids, in the order investment, equity, satisfaction.
const (
	QuestionInvestment   domain.QuestionID = "Q24"
	QuestionEquity       domain.QuestionID = "Q25"
	QuestionSatisfaction domain.QuestionID = "Q26"
)

func one[L ~string](label L) map[L]float64 {
	return map[L]float64{label: 1}
}

// pair splits one point evenly between two labels.
func pair[L ~string](a, b L) map[L]float64 {
	return map[L]float64{a: 0.5, b: 0.5}
}

// lean gives a main label 0.7 and a light secondary label 0.3.
func lean[L ~string](main, light L) map[L]float64 {
	return map[L]float64{main: 0.7, light: 0.3}
}

func likert(id domain.QuestionID, text string, labels [5]string) Question {
	opts := make([]Option, 0, len(labels))
	for i, label := range labels {
		opts = append(opts, Option{
			Key:  domain.OptionKey(strconv.Itoa(i + 1)),
			Text: label,
		})
	}
	return Question{ID: id, Kind: KindExchange, Text: text, Options: opts}
}
