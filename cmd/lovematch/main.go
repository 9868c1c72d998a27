package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"love-match/internal/config"
	"love-match/internal/domain"
	"love-match/internal/scoring"
	"love-match/internal/service"
)

const usage = `uso:
  lovematch validate
  lovematch questions
  lovematch profile <respuestas.json>
  lovematch match <respuestas_a.json> <respuestas_b.json>`

var errUsage = errors.New(usage)

// answerFile es el formato de los archivos de respuestas.
type answerFile struct {
	Answers        map[string]string `json:"answers"`
	InRelationship bool              `json:"in_relationship"`
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	if err := run(os.Args[1:], cfg, logger, os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(2)
		}
		logger.Error("lovematch", zap.Error(err))
		os.Exit(1)
	}
}

func run(args []string, cfg *config.Config, logger *zap.Logger, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	if err := scoring.ValidateTables(); err != nil {
		return fmt.Errorf("scoring tables invalid: %w", err)
	}

	policy, err := scoring.ParseTieBreakPolicy(cfg.TieBreakPolicy)
	if err != nil {
		return err
	}
	tiers, err := scoring.ParseTierTable(cfg.MatchTiers, cfg.MatchTierFloor)
	if err != nil {
		return err
	}
	profiles := service.NewProfileService(scoring.NewEngine(scoring.WithTieBreak(policy), scoring.WithTiers(tiers)), logger)

	switch args[0] {
	case "validate":
		fmt.Fprintln(out, "ok")
		return nil
	case "questions":
		return writeJSON(out, profiles.Questionnaire())
	case "profile":
		if len(args) != 2 {
			return errUsage
		}
		profile, err := loadProfile(profiles, args[1])
		if err != nil {
			return err
		}
		return writeJSON(out, profile)
	case "match":
		if len(args) != 3 {
			return errUsage
		}
		a, err := loadProfile(profiles, args[1])
		if err != nil {
			return err
		}
		b, err := loadProfile(profiles, args[2])
		if err != nil {
			return err
		}
		result := profiles.Match(a, b)
		return writeJSON(out, struct {
			Match  domain.MatchResult `json:"match"`
			Report domain.MatchReport `json:"report"`
		}{result, service.StaticReport(result)})
	default:
		return errUsage
	}
}

func loadProfile(profiles *service.ProfileService, path string) (domain.FullProfile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.FullProfile{}, fmt.Errorf("leer %s: %w", path, err)
	}
	var f answerFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return domain.FullProfile{}, fmt.Errorf("parsear %s: %w", path, err)
	}
	profile, err := profiles.Preview(f.Answers, f.InRelationship)
	if err != nil {
		return domain.FullProfile{}, fmt.Errorf("%s: %w", path, err)
	}
	return profile, nil
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
