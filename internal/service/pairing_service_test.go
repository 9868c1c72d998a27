package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"love-match/internal/domain"
	"love-match/internal/repository"
)

func newTestPairingService(repo repository.PairingRepository) *PairingService {
	svc := NewPairingService(repo, NewProfileService(nil, zap.NewNop()), NewInviteTokenService("secret", time.Hour), zap.NewNop())
	svc.backoff = func() retry.Backoff {
		return retry.WithMaxRetries(3, retry.NewConstant(time.Millisecond))
	}
	return svc
}

// conflictRepo falla con ErrWriteConflict las primeras n escrituras.
type conflictRepo struct {
	*repository.MemoryPairingRepository
	mu        sync.Mutex
	conflicts int
	calls     int
}

func (r *conflictRepo) AttachSide(ctx context.Context, id string, side domain.PairingSide, sub domain.SideSubmission) (domain.SideSubmission, error) {
	r.mu.Lock()
	r.calls++
	if r.conflicts > 0 {
		r.conflicts--
		r.mu.Unlock()
		return domain.SideSubmission{}, repository.ErrWriteConflict
	}
	r.mu.Unlock()
	return r.MemoryPairingRepository.AttachSide(ctx, id, side, sub)
}

func TestPairingServiceCreate(t *testing.T) {
	svc := newTestPairingService(repository.NewMemoryPairingRepository())
	created, err := svc.Create(context.Background(), SubmissionInput{Nickname: " ana ", Answers: completeAnswers()})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Pairing.ID == "" || created.Pairing.A == nil || created.Pairing.B != nil {
		t.Fatalf("unexpected pairing %+v", created.Pairing)
	}
	if created.Pairing.A.Nickname != "ana" || created.Pairing.A.SubmissionID == "" {
		t.Fatalf("unexpected side A %+v", created.Pairing.A)
	}
	if err := svc.tokens.Authorize(created.InviteToken, created.Pairing.ID, domain.SideB); err != nil {
		t.Fatalf("invite token must authorize side B: %v", err)
	}
	if err := svc.tokens.Authorize(created.OwnerToken, created.Pairing.ID, domain.SideA); err != nil {
		t.Fatalf("owner token must authorize side A: %v", err)
	}

	if _, err := svc.Create(context.Background(), SubmissionInput{Answers: map[string]string{"Q1": "A"}}); !errors.Is(err, ErrIncompleteAnswers) {
		t.Fatalf("expected ErrIncompleteAnswers, got %v", err)
	}
}

func TestPairingServiceAttachAndMatch(t *testing.T) {
	svc := newTestPairingService(repository.NewMemoryPairingRepository())
	ctx := context.Background()
	created, err := svc.Create(ctx, SubmissionInput{Answers: completeAnswers(), InRelationship: true})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	id := created.Pairing.ID

	if _, _, err := svc.Match(ctx, id); !errors.Is(err, ErrPairingIncomplete) {
		t.Fatalf("expected ErrPairingIncomplete, got %v", err)
	}

	in := SubmissionInput{SubmissionID: "sub-b", Answers: completeAnswers()}
	sub, err := svc.AttachSide(ctx, id, domain.SideB, in)
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	if sub.SubmissionID != "sub-b" {
		t.Fatalf("unexpected submission id %s", sub.SubmissionID)
	}

	// Reenvío idempotente.
	if _, err := svc.AttachSide(ctx, id, domain.SideB, in); err != nil {
		t.Fatalf("expected idempotent re-send, got %v", err)
	}
	other := SubmissionInput{SubmissionID: "sub-c", Answers: completeAnswers()}
	if _, err := svc.AttachSide(ctx, id, domain.SideB, other); !errors.Is(err, ErrSideAlreadyAttached) {
		t.Fatalf("expected ErrSideAlreadyAttached, got %v", err)
	}

	p, result, err := svc.Match(ctx, id)
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if !p.Complete() {
		t.Fatalf("expected complete pairing")
	}
	if result.Total < 0 || result.Total > 100 || result.Tier == "" {
		t.Fatalf("unexpected result %+v", result)
	}
	if result.ArchetypeA != p.A.Profile.Archetype || result.ArchetypeB != p.B.Profile.Archetype {
		t.Fatalf("result labels must echo stored profiles")
	}
}

func TestPairingServiceAttachErrors(t *testing.T) {
	svc := newTestPairingService(repository.NewMemoryPairingRepository())
	ctx := context.Background()

	if _, err := svc.AttachSide(ctx, "p1", "X", SubmissionInput{Answers: completeAnswers()}); !errors.Is(err, ErrInvalidSide) {
		t.Fatalf("expected ErrInvalidSide, got %v", err)
	}
	if _, err := svc.AttachSide(ctx, "missing", domain.SideB, SubmissionInput{Answers: completeAnswers()}); !errors.Is(err, ErrPairingNotFound) {
		t.Fatalf("expected ErrPairingNotFound, got %v", err)
	}
	if _, err := svc.Get(ctx, "missing"); !errors.Is(err, ErrPairingNotFound) {
		t.Fatalf("expected ErrPairingNotFound, got %v", err)
	}
	if _, err := svc.AttachSide(ctx, "p1", domain.SideB, SubmissionInput{Answers: map[string]string{"Q1": "Z"}}); !errors.Is(err, ErrInvalidAnswer) {
		t.Fatalf("expected ErrInvalidAnswer, got %v", err)
	}
}

func TestPairingServiceRetriesWriteConflicts(t *testing.T) {
	repo := &conflictRepo{MemoryPairingRepository: repository.NewMemoryPairingRepository(), conflicts: 2}
	svc := newTestPairingService(repo)
	ctx := context.Background()
	created, err := svc.Create(ctx, SubmissionInput{Answers: completeAnswers()})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.AttachSide(ctx, created.Pairing.ID, domain.SideB, SubmissionInput{Answers: completeAnswers()}); err != nil {
		t.Fatalf("expected attach to succeed after retries, got %v", err)
	}
	if repo.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", repo.calls)
	}

	repo.conflicts = 10
	repo.calls = 0
	_, err = svc.AttachSide(ctx, created.Pairing.ID, domain.SideA, SubmissionInput{Answers: completeAnswers()})
	if !errors.Is(err, repository.ErrWriteConflict) {
		t.Fatalf("expected ErrWriteConflict after exhausting retries, got %v", err)
	}
	if repo.calls != 4 {
		t.Fatalf("expected 1 attempt plus 3 retries, got %d", repo.calls)
	}
}

func TestPairingServiceConcurrentSides(t *testing.T) {
	svc := newTestPairingService(repository.NewMemoryPairingRepository())
	ctx := context.Background()
	created, err := svc.Create(ctx, SubmissionInput{Answers: completeAnswers()})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.AttachSide(ctx, created.Pairing.ID, domain.SideB, SubmissionInput{Answers: completeAnswers()})
			if err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			} else if !errors.Is(err, ErrSideAlreadyAttached) {
				t.Errorf("unexpected error %v", err)
			}
		}()
	}
	wg.Wait()
	if accepted != 1 {
		t.Fatalf("expected exactly one accepted submission, got %d", accepted)
	}
}
