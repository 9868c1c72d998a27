package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"love-match/internal/domain"
	"love-match/internal/llm"
)

// ReportService writes the narrative reading of a match. Without an LLM, or
// when the LLM answer is unusable, it returns the static report.
type ReportService struct {
	llmClient llm.LLMClient
	logger    *zap.Logger
	timeout   time.Duration
}

var errReportUnusable = errors.New("llm report unusable")

func NewReportService(llmClient llm.LLMClient, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{
		llmClient: llmClient,
		logger:    logger,
		timeout:   20 * time.Second,
	}
}

// Report builds the report for a scored pairing.
func (s *ReportService) Report(ctx context.Context, p domain.Pairing, result domain.MatchResult) domain.MatchReport {
	static := StaticReport(result)
	if s == nil || s.llmClient == nil {
		return static
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.llmClient.Generate(ctx, buildReportPrompt(p, result))
	if err != nil {
		s.logger.Warn("report generation failed", zap.String("pairing_id", p.ID), zap.Error(err))
		return static
	}
	report, err := parseReport(raw)
	if err != nil {
		s.logger.Warn("report response unusable", zap.String("pairing_id", p.ID), zap.Error(err))
		return static
	}
	return report
}

// StaticReport is the fixed reading used when no generated text is available.
func StaticReport(result domain.MatchResult) domain.MatchReport {
	report := domain.MatchReport{
		Dynamics: fmt.Sprintf("The core dynamic of your relationship comes from the interaction between %s and %s.", result.ArchetypeA, result.ArchetypeB),
		Strengths: []string{
			"You can complement each other in key moments",
			"Your ways of investing in the relationship can be coordinated",
			"There is a natural pull of attraction or a stabilizing force between you",
		},
		Risks: []string{
			"Under stress an avoid-anxious cycle may be triggered",
			"Different emotional rhythms may cause misunderstandings",
		},
		Advice: []string{
			"Build an emotional bank account: add more high-quality positive interactions",
			"Reduce the four horsemen: criticism, defensiveness, contempt and stonewalling",
			"Use a social exchange lens to check whether what you give each other is balanced",
		},
	}
	for _, ct := range []domain.ConflictType{result.ConflictTypeA, result.ConflictTypeB} {
		if ct != "" && ct != domain.ConflictTypeNone {
			report.Risks = append(report.Risks, fmt.Sprintf("%s shows up as a recurring conflict pattern", strings.ToLower(string(ct))))
			break
		}
	}
	return report
}

func buildReportPrompt(p domain.Pairing, r domain.MatchResult) string {
	var b strings.Builder
	b.WriteString("You are a relationship psychologist. Write a short reading of this couple.\n")
	fmt.Fprintf(&b, "Pair: %s\n", r.PairName)
	if p.A != nil && p.A.Nickname != "" {
		fmt.Fprintf(&b, "Partner A nickname: %s\n", p.A.Nickname)
	}
	if p.B != nil && p.B.Nickname != "" {
		fmt.Fprintf(&b, "Partner B nickname: %s\n", p.B.Nickname)
	}
	fmt.Fprintf(&b, "Relationship types (Sternberg): A=%s, B=%s\n", r.TriangularTypeA, r.TriangularTypeB)
	fmt.Fprintf(&b, "Conflict patterns (Gottman): A=%s, B=%s\n", r.ConflictTypeA, r.ConflictTypeB)
	fmt.Fprintf(&b, "Scores: triangular=%.2f conflict=%.2f exchange=%.2f archetype=%.2f total=%.2f (%s)\n",
		r.Triangular.Raw, r.Conflict.Raw, r.Exchange.Raw, r.Archetype.Raw, r.Total, r.Tier)
	b.WriteString("Reply ONLY with JSON: {\"dynamics\": string, \"strengths\": [string], \"risks\": [string], \"advice\": [string]}\n")
	return b.String()
}

func parseReport(raw string) (domain.MatchReport, error) {
	var parsed struct {
		Dynamics  string   `json:"dynamics"`
		Strengths []string `json:"strengths"`
		Risks     []string `json:"risks"`
		Advice    []string `json:"advice"`
	}
	if err := decodeLLMJSON(raw, &parsed); err != nil {
		return domain.MatchReport{}, fmt.Errorf("%w: %v", errReportUnusable, err)
	}
	report := domain.MatchReport{
		Dynamics:  strings.TrimSpace(parsed.Dynamics),
		Strengths: compactLines(parsed.Strengths),
		Risks:     compactLines(parsed.Risks),
		Advice:    compactLines(parsed.Advice),
		Generated: true,
	}
	if report.Dynamics == "" || len(report.Strengths) == 0 || len(report.Advice) == 0 {
		return domain.MatchReport{}, fmt.Errorf("%w: missing sections", errReportUnusable)
	}
	return report, nil
}

func compactLines(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
