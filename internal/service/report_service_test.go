package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"love-match/internal/domain"
	"love-match/internal/llm"
)

func sampleMatch() (domain.Pairing, domain.MatchResult) {
	p := domain.Pairing{
		ID: "p1",
		A:  &domain.SideSubmission{Nickname: "ana"},
		B:  &domain.SideSubmission{Nickname: "beto"},
	}
	r := domain.MatchResult{
		PairName:      "wolf × swan",
		ArchetypeA:    domain.ArchetypeWolf,
		ArchetypeB:    domain.ArchetypeSwan,
		ConflictTypeA: domain.ConflictTypeNone,
		ConflictTypeB: domain.ConflictTypeContempt,
		Total:         71.5,
		Tier:          "good",
	}
	return p, r
}

func TestReportService_StaticWithoutLLM(t *testing.T) {
	p, r := sampleMatch()
	report := NewReportService(nil, zap.NewNop()).Report(context.Background(), p, r)
	if report.Generated {
		t.Fatalf("expected static report")
	}
	if !strings.Contains(report.Dynamics, "wolf") || !strings.Contains(report.Dynamics, "swan") {
		t.Fatalf("dynamics must name both archetypes: %q", report.Dynamics)
	}
	if len(report.Strengths) != 3 || len(report.Advice) != 3 {
		t.Fatalf("unexpected static sections %+v", report)
	}
	if len(report.Risks) != 3 || !strings.Contains(report.Risks[2], "contempt") {
		t.Fatalf("expected conflict-specific risk, got %+v", report.Risks)
	}

	var nilSvc *ReportService
	if got := nilSvc.Report(context.Background(), p, r); got.Generated {
		t.Fatalf("nil service must return static report")
	}
}

func TestReportService_Generated(t *testing.T) {
	p, r := sampleMatch()
	client := &llm.MockClient{Response: "```json\n{\"dynamics\":\" Calm tides \",\"strengths\":[\"trust\",\" \"],\"risks\":[],\"advice\":[\"talk\"]}\n```"}
	report := NewReportService(client, zap.NewNop()).Report(context.Background(), p, r)
	if !report.Generated {
		t.Fatalf("expected generated report")
	}
	if report.Dynamics != "Calm tides" || len(report.Strengths) != 1 || report.Advice[0] != "talk" {
		t.Fatalf("unexpected report %+v", report)
	}
}

func TestReportService_FallsBack(t *testing.T) {
	p, r := sampleMatch()
	cases := map[string]*llm.MockClient{
		"llm error":        {Err: errors.New("timeout")},
		"not json":         {Response: "I cannot help with that"},
		"missing sections": {Response: "{\"dynamics\":\"x\"}"},
	}
	for name, client := range cases {
		t.Run(name, func(t *testing.T) {
			report := NewReportService(client, zap.NewNop()).Report(context.Background(), p, r)
			if report.Generated {
				t.Fatalf("expected static fallback")
			}
		})
	}
}

func TestBuildReportPrompt(t *testing.T) {
	p, r := sampleMatch()
	prompt := buildReportPrompt(p, r)
	for _, want := range []string{"wolf × swan", "ana", "beto", "CONTEMPT", "total=71.50"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q: %s", want, prompt)
		}
	}
}
