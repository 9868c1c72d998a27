package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"love-match/internal/domain"
)

func TestMemoryPairingRepository_CreateAndGet(t *testing.T) {
	repo := NewMemoryPairingRepository()
	ctx := context.Background()
	now := time.Now().UTC()

	if err := repo.Create(ctx, domain.Pairing{ID: "p1", CreatedAt: now, UpdatedAt: now}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, domain.Pairing{ID: "p1"}); !errors.Is(err, ErrPairingExists) {
		t.Fatalf("expected ErrPairingExists, got %v", err)
	}
	got, err := repo.GetByID(ctx, "p1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != "p1" || got.A != nil || got.B != nil {
		t.Fatalf("unexpected pairing %+v", got)
	}
	if _, err := repo.GetByID(ctx, "missing"); !errors.Is(err, ErrPairingNotFound) {
		t.Fatalf("expected ErrPairingNotFound, got %v", err)
	}
}

func TestMemoryPairingRepository_AttachSideKeepsFirst(t *testing.T) {
	repo := NewMemoryPairingRepository()
	ctx := context.Background()
	_ = repo.Create(ctx, domain.Pairing{ID: "p1"})

	first, err := repo.AttachSide(ctx, "p1", domain.SideA, domain.SideSubmission{SubmissionID: "s1"})
	if err != nil || first.SubmissionID != "s1" {
		t.Fatalf("attach first: %+v %v", first, err)
	}
	second, err := repo.AttachSide(ctx, "p1", domain.SideA, domain.SideSubmission{SubmissionID: "s2"})
	if err != nil {
		t.Fatalf("attach second: %v", err)
	}
	if second.SubmissionID != "s1" {
		t.Fatalf("expected stored submission s1, got %s", second.SubmissionID)
	}

	if _, err := repo.AttachSide(ctx, "missing", domain.SideA, domain.SideSubmission{}); !errors.Is(err, ErrPairingNotFound) {
		t.Fatalf("expected ErrPairingNotFound, got %v", err)
	}
	if _, err := repo.AttachSide(ctx, "p1", "C", domain.SideSubmission{}); !errors.Is(err, ErrInvalidSide) {
		t.Fatalf("expected ErrInvalidSide, got %v", err)
	}
}

func TestMemoryPairingRepository_ReturnsCopies(t *testing.T) {
	repo := NewMemoryPairingRepository()
	ctx := context.Background()
	_ = repo.Create(ctx, domain.Pairing{ID: "p1"})
	_, _ = repo.AttachSide(ctx, "p1", domain.SideB, domain.SideSubmission{SubmissionID: "s1", Nickname: "b"})

	got, _ := repo.GetByID(ctx, "p1")
	got.B.Nickname = "changed"

	again, _ := repo.GetByID(ctx, "p1")
	if again.B.Nickname != "b" {
		t.Fatalf("stored pairing was mutated through a returned copy")
	}
}

func TestMemoryPairingRepository_CopiesMaps(t *testing.T) {
	repo := NewMemoryPairingRepository()
	ctx := context.Background()
	_ = repo.Create(ctx, domain.Pairing{ID: "p1"})

	sub := domain.SideSubmission{
		SubmissionID: "s1",
		Answers:      domain.AnswerSet{"Q1": "A"},
		Profile: domain.FullProfile{PersonalProfile: domain.PersonalProfile{
			LoveStyleScores: domain.LoveStyleScores{domain.LoveStyleGame: 1},
			ConflictVector:  domain.ConflictVector{domain.ConflictContempt: 1},
		}},
	}
	returned, err := repo.AttachSide(ctx, "p1", domain.SideA, sub)
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	sub.Answers["Q1"] = "B"
	returned.Profile.LoveStyleScores[domain.LoveStyleGame] = 9

	got, _ := repo.GetByID(ctx, "p1")
	got.A.Answers["Q2"] = "C"
	got.A.Profile.ConflictVector[domain.ConflictContempt] = 7

	again, _ := repo.GetByID(ctx, "p1")
	if again.A.Answers["Q1"] != "A" || len(again.A.Answers) != 1 {
		t.Fatalf("stored answers were mutated: %+v", again.A.Answers)
	}
	if again.A.Profile.LoveStyleScores[domain.LoveStyleGame] != 1 {
		t.Fatalf("stored style scores were mutated: %+v", again.A.Profile.LoveStyleScores)
	}
	if again.A.Profile.ConflictVector[domain.ConflictContempt] != 1 {
		t.Fatalf("stored conflict vector was mutated: %+v", again.A.Profile.ConflictVector)
	}
}

func TestMemoryPairingRepository_ConcurrentSides(t *testing.T) {
	repo := NewMemoryPairingRepository()
	ctx := context.Background()
	_ = repo.Create(ctx, domain.Pairing{ID: "p1"})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		side := domain.SideA
		if i%2 == 1 {
			side = domain.SideB
		}
		wg.Add(1)
		go func(i int, side domain.PairingSide) {
			defer wg.Done()
			_, _ = repo.AttachSide(ctx, "p1", side, domain.SideSubmission{SubmissionID: fmt.Sprintf("s%d", i)})
		}(i, side)
	}
	wg.Wait()

	got, _ := repo.GetByID(ctx, "p1")
	if !got.Complete() {
		t.Fatalf("expected both sides attached, got %+v", got)
	}
}

func TestTranslatePgError(t *testing.T) {
	if translatePgError(nil) != nil {
		t.Fatalf("nil must stay nil")
	}
	for _, code := range []string{"40001", "40P01"} {
		err := translatePgError(&pgconn.PgError{Code: code, Message: "conflict"})
		if !errors.Is(err, ErrWriteConflict) {
			t.Fatalf("code %s: expected ErrWriteConflict, got %v", code, err)
		}
	}
	if err := translatePgError(&pgconn.PgError{Code: "23505"}); !errors.Is(err, ErrPairingExists) {
		t.Fatalf("expected ErrPairingExists, got %v", err)
	}
	plain := errors.New("boom")
	if err := translatePgError(plain); err != plain {
		t.Fatalf("expected passthrough, got %v", err)
	}
}

func TestSideCodecRoundTripsNil(t *testing.T) {
	raw, err := encodeSide(nil)
	if err != nil || raw != nil {
		t.Fatalf("expected nil encoding, got %q %v", raw, err)
	}
	sub, err := decodeSide(nil)
	if err != nil || sub != nil {
		t.Fatalf("expected nil side, got %+v %v", sub, err)
	}
	if _, err := decodeSide([]byte("{")); err == nil {
		t.Fatalf("expected decode error")
	}
}
