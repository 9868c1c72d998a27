package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"love-match/internal/domain"
	"love-match/internal/repository"
)

// PairingService creates pairings, attaches each partner's submission and
// scores complete pairings on demand.
type PairingService struct {
	repo     repository.PairingRepository
	profiles *ProfileService
	tokens   *InviteTokenService
	logger   *zap.Logger
	now      func() time.Time
	backoff  func() retry.Backoff
}

var (
	ErrPairingNotFound     = repository.ErrPairingNotFound
	ErrInvalidSide         = repository.ErrInvalidSide
	ErrSideAlreadyAttached = errors.New("pairing side already attached")
	ErrPairingIncomplete   = errors.New("pairing incomplete")
)

// Write conflicts are retried at most maxWriteRetries times.
const (
	maxWriteRetries  = 4
	writeRetryBase   = 20 * time.Millisecond
	writeRetryJitter = 10 * time.Millisecond
)

// SubmissionInput is one partner's questionnaire as received from a client.
type SubmissionInput struct {
	SubmissionID   string
	Nickname       string
	Answers        map[string]string
	InRelationship bool
}

// CreatedPairing is returned once on creation; the tokens are not stored.
type CreatedPairing struct {
	Pairing     domain.Pairing `json:"pairing"`
	InviteToken string         `json:"invite_token"`
	OwnerToken  string         `json:"owner_token"`
}

func NewPairingService(repo repository.PairingRepository, profiles *ProfileService, tokens *InviteTokenService, logger *zap.Logger) *PairingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PairingService{
		repo:     repo,
		profiles: profiles,
		tokens:   tokens,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
		backoff: func() retry.Backoff {
			b := retry.NewExponential(writeRetryBase)
			b = retry.WithJitter(writeRetryJitter, b)
			return retry.WithMaxRetries(maxWriteRetries, b)
		},
	}
}

// Create starts a pairing with side A already attached and returns the
// tokens for both sides.
func (s *PairingService) Create(ctx context.Context, in SubmissionInput) (CreatedPairing, error) {
	sub, err := s.buildSubmission(in)
	if err != nil {
		return CreatedPairing{}, err
	}

	now := s.now()
	p := domain.Pairing{
		ID:        uuid.NewString(),
		A:         &sub,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.withRetry(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, p)
	}); err != nil {
		return CreatedPairing{}, fmt.Errorf("create pairing: %w", err)
	}

	owner, err := s.tokens.Issue(p.ID, domain.SideA)
	if err != nil {
		return CreatedPairing{}, fmt.Errorf("issue owner token: %w", err)
	}
	invite, err := s.tokens.Issue(p.ID, domain.SideB)
	if err != nil {
		return CreatedPairing{}, fmt.Errorf("issue invite token: %w", err)
	}

	s.logger.Info("pairing created", zap.String("pairing_id", p.ID))
	return CreatedPairing{Pairing: p, InviteToken: invite, OwnerToken: owner}, nil
}

// AttachSide stores a submission on an empty side. Re-sending the submission
// already stored is a no-op; any other submission for a filled side fails
// with ErrSideAlreadyAttached.
func (s *PairingService) AttachSide(ctx context.Context, pairingID string, side domain.PairingSide, in SubmissionInput) (domain.SideSubmission, error) {
	if !side.Valid() {
		return domain.SideSubmission{}, ErrInvalidSide
	}
	sub, err := s.buildSubmission(in)
	if err != nil {
		return domain.SideSubmission{}, err
	}

	var stored domain.SideSubmission
	err = s.withRetry(ctx, func(ctx context.Context) error {
		var err error
		stored, err = s.repo.AttachSide(ctx, pairingID, side, sub)
		return err
	})
	if err != nil {
		return domain.SideSubmission{}, fmt.Errorf("attach side %s: %w", side, err)
	}
	if stored.SubmissionID != sub.SubmissionID {
		return domain.SideSubmission{}, ErrSideAlreadyAttached
	}

	s.logger.Info("pairing side attached",
		zap.String("pairing_id", pairingID),
		zap.String("side", string(side)),
	)
	return stored, nil
}

// Get reads a pairing with whichever sides are present.
func (s *PairingService) Get(ctx context.Context, pairingID string) (domain.Pairing, error) {
	p, err := s.repo.GetByID(ctx, pairingID)
	if err != nil {
		return domain.Pairing{}, fmt.Errorf("get pairing: %w", err)
	}
	return p, nil
}

// Match recomputes the match result from the stored profiles.
func (s *PairingService) Match(ctx context.Context, pairingID string) (domain.Pairing, domain.MatchResult, error) {
	p, err := s.Get(ctx, pairingID)
	if err != nil {
		return domain.Pairing{}, domain.MatchResult{}, err
	}
	if !p.Complete() {
		return p, domain.MatchResult{}, ErrPairingIncomplete
	}
	return p, s.profiles.Match(p.A.Profile, p.B.Profile), nil
}

func (s *PairingService) buildSubmission(in SubmissionInput) (domain.SideSubmission, error) {
	answers, profile, err := s.profiles.Build(in.Answers, in.InRelationship)
	if err != nil {
		return domain.SideSubmission{}, err
	}
	id := strings.TrimSpace(in.SubmissionID)
	if id == "" {
		id = uuid.NewString()
	}
	return domain.SideSubmission{
		SubmissionID: id,
		Nickname:     strings.TrimSpace(in.Nickname),
		Answers:      answers,
		Profile:      profile,
		SubmittedAt:  s.now(),
	}, nil
}

// withRetry reintenta solo ErrWriteConflict; cualquier otro error corta.
func (s *PairingService) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	attempt := 0
	return retry.Do(ctx, s.backoff(), func(ctx context.Context) error {
		attempt++
		err := fn(ctx)
		if errors.Is(err, repository.ErrWriteConflict) {
			s.logger.Warn("pairing write conflict, retrying", zap.Int("attempt", attempt), zap.Error(err))
			return retry.RetryableError(err)
		}
		return err
	})
}
