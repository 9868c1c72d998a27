package db

import (
	"strings"
	"testing"
)

func TestMigrationFilesEmbedded(t *testing.T) {
	files, err := MigrationFiles()
	if err != nil {
		t.Fatalf("read embedded migrations: %v", err)
	}
	if len(files) == 0 {
		t.Fatalf("expected at least one migration")
	}
	if files[0] != "00001_create_pairings.sql" {
		t.Fatalf("unexpected first migration %q", files[0])
	}

	body, err := embedMigrations.ReadFile("migrations/" + files[0])
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}
	for _, want := range []string{"-- +goose Up", "-- +goose Down", "side_a JSONB", "side_b JSONB"} {
		if !strings.Contains(string(body), want) {
			t.Fatalf("migration missing %q", want)
		}
	}
}
