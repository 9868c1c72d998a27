package repository

import (
	"context"
	"maps"
	"sync"
	"time"

	"love-match/internal/domain"
)

// MemoryPairingRepository guarda parejas en memoria. Se usa en tests y cuando
// no hay DATABASE_URL.
type MemoryPairingRepository struct {
	mu    sync.Mutex
	items map[string]domain.Pairing
	now   func() time.Time
}

func NewMemoryPairingRepository() *MemoryPairingRepository {
	return &MemoryPairingRepository{
		items: make(map[string]domain.Pairing),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (r *MemoryPairingRepository) Create(_ context.Context, pairing domain.Pairing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[pairing.ID]; ok {
		return ErrPairingExists
	}
	r.items[pairing.ID] = clonePairing(pairing)
	return nil
}

func (r *MemoryPairingRepository) AttachSide(_ context.Context, id string, side domain.PairingSide, sub domain.SideSubmission) (domain.SideSubmission, error) {
	if !side.Valid() {
		return domain.SideSubmission{}, ErrInvalidSide
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[id]
	if !ok {
		return domain.SideSubmission{}, ErrPairingNotFound
	}
	if existing := p.Side(side); existing != nil {
		return *cloneSubmission(existing), nil
	}

	stored := cloneSubmission(&sub)
	if side == domain.SideA {
		p.A = stored
	} else {
		p.B = stored
	}
	p.UpdatedAt = r.now()
	r.items[id] = p
	return *cloneSubmission(stored), nil
}

func (r *MemoryPairingRepository) GetByID(_ context.Context, id string) (domain.Pairing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return domain.Pairing{}, ErrPairingNotFound
	}
	return clonePairing(p), nil
}

// clonePairing copia cada lado, incluidos sus mapas, para que el llamador no
// pueda modificar el estado guardado.
func clonePairing(p domain.Pairing) domain.Pairing {
	p.A = cloneSubmission(p.A)
	p.B = cloneSubmission(p.B)
	return p
}

func cloneSubmission(sub *domain.SideSubmission) *domain.SideSubmission {
	if sub == nil {
		return nil
	}
	out := *sub
	out.Answers = maps.Clone(sub.Answers)
	prof := &out.Profile
	prof.LoveStyleScores = maps.Clone(sub.Profile.LoveStyleScores)
	prof.AttachmentScores = maps.Clone(sub.Profile.AttachmentScores)
	prof.LoveLanguageScores = maps.Clone(sub.Profile.LoveLanguageScores)
	prof.ConflictVector = maps.Clone(sub.Profile.ConflictVector)
	return &out
}
