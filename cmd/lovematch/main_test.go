package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"love-match/internal/config"
	"love-match/internal/domain"
)

func testConfig() *config.Config {
	return &config.Config{
		TieBreakPolicy: "priority",
		MatchTiers:     "90:excellent,80:strong,70:good,60:moderate",
		MatchTierFloor: "needs work",
	}
}

func writeAnswers(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestRunUsage(t *testing.T) {
	var out bytes.Buffer
	for _, args := range [][]string{nil, {"nope"}, {"profile"}, {"match", "a.json"}} {
		if err := run(args, testConfig(), zap.NewNop(), &out); !errors.Is(err, errUsage) {
			t.Fatalf("args %v: expected usage error, got %v", args, err)
		}
	}
}

func TestRunValidate(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"validate"}, testConfig(), zap.NewNop(), &out); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if strings.TrimSpace(out.String()) != "ok" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestRunProfile(t *testing.T) {
	path := writeAnswers(t, "a.json", `{"answers":{"Q1":"A","Q3":"A"}}`)
	var out bytes.Buffer
	if err := run([]string{"profile", path}, testConfig(), zap.NewNop(), &out); err != nil {
		t.Fatalf("profile: %v", err)
	}
	var p domain.FullProfile
	if err := json.Unmarshal(out.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.Archetype != domain.ArchetypeRhino {
		t.Fatalf("expected rhino, got %s", p.Archetype)
	}
}

func TestRunProfileRejectsUnknownOption(t *testing.T) {
	path := writeAnswers(t, "bad.json", `{"answers":{"Q1":"Z"}}`)
	var out bytes.Buffer
	if err := run([]string{"profile", path}, testConfig(), zap.NewNop(), &out); err == nil {
		t.Fatalf("expected error for unknown option")
	}
}

func TestRunMatch(t *testing.T) {
	a := writeAnswers(t, "a.json", `{"answers":{"Q1":"A"},"in_relationship":true}`)
	b := writeAnswers(t, "b.json", `{"answers":{"Q1":"A"},"in_relationship":true}`)
	var out bytes.Buffer
	if err := run([]string{"match", a, b}, testConfig(), zap.NewNop(), &out); err != nil {
		t.Fatalf("match: %v", err)
	}
	var got struct {
		Match  domain.MatchResult `json:"match"`
		Report domain.MatchReport `json:"report"`
	}
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Match.Total <= 0 || got.Match.Total > 100 || got.Match.Tier == "" {
		t.Fatalf("unexpected match %+v", got.Match)
	}
	if got.Report.Generated || got.Report.Dynamics == "" {
		t.Fatalf("expected static report, got %+v", got.Report)
	}
}

func TestRunRejectsBadTierConfig(t *testing.T) {
	cfg := testConfig()
	cfg.MatchTiers = "abc"
	var out bytes.Buffer
	if err := run([]string{"validate"}, cfg, zap.NewNop(), &out); err == nil {
		t.Fatalf("expected tier parse error")
	}
}
