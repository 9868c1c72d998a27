package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"love-match/internal/domain"
)

var (
	ErrPairingNotFound = errors.New("pairing not found")
	ErrPairingExists   = errors.New("pairing already exists")
	// ErrWriteConflict indica un conflicto de serialización o deadlock; se puede reintentar.
	ErrWriteConflict = errors.New("write conflict")
	ErrInvalidSide   = errors.New("invalid pairing side")
)

// PairingRepository define el contrato de persistencia para parejas.
type PairingRepository interface {
	Create(ctx context.Context, pairing domain.Pairing) error
	// AttachSide guarda la submission solo si el lado está vacío y devuelve la
	// que quedó almacenada en ese lado.
	AttachSide(ctx context.Context, id string, side domain.PairingSide, sub domain.SideSubmission) (domain.SideSubmission, error)
	GetByID(ctx context.Context, id string) (domain.Pairing, error)
}

// PgPairingRepository implementa PairingRepository usando pgxpool y columnas jsonb.
type PgPairingRepository struct {
	pool *pgxpool.Pool
}

func NewPgPairingRepository(pool *pgxpool.Pool) *PgPairingRepository {
	return &PgPairingRepository{pool: pool}
}

func (r *PgPairingRepository) Create(ctx context.Context, pairing domain.Pairing) error {
	const query = `
		INSERT INTO pairings (id, side_a, side_b, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	sideA, err := encodeSide(pairing.A)
	if err != nil {
		return err
	}
	sideB, err := encodeSide(pairing.B)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, query,
		pairing.ID,
		sideA,
		sideB,
		pairing.CreatedAt,
		pairing.UpdatedAt,
	)
	return translatePgError(err)
}

// El UPDATE toma el lock de la fila, así que dos envíos al mismo lado se
// serializan y el segundo ve el valor ya guardado por COALESCE.
const (
	attachSideAQuery = `
		UPDATE pairings
		SET side_a = COALESCE(side_a, $2),
		    updated_at = CASE WHEN side_a IS NULL THEN $3 ELSE updated_at END
		WHERE id = $1
		RETURNING side_a
	`
	attachSideBQuery = `
		UPDATE pairings
		SET side_b = COALESCE(side_b, $2),
		    updated_at = CASE WHEN side_b IS NULL THEN $3 ELSE updated_at END
		WHERE id = $1
		RETURNING side_b
	`
)

func (r *PgPairingRepository) AttachSide(ctx context.Context, id string, side domain.PairingSide, sub domain.SideSubmission) (domain.SideSubmission, error) {
	var query string
	switch side {
	case domain.SideA:
		query = attachSideAQuery
	case domain.SideB:
		query = attachSideBQuery
	default:
		return domain.SideSubmission{}, ErrInvalidSide
	}

	payload, err := json.Marshal(sub)
	if err != nil {
		return domain.SideSubmission{}, fmt.Errorf("encode submission: %w", err)
	}

	var stored []byte
	err = r.pool.QueryRow(ctx, query, id, payload, time.Now().UTC()).Scan(&stored)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.SideSubmission{}, ErrPairingNotFound
	}
	if err != nil {
		return domain.SideSubmission{}, translatePgError(err)
	}

	var out domain.SideSubmission
	if err := json.Unmarshal(stored, &out); err != nil {
		return domain.SideSubmission{}, fmt.Errorf("decode submission: %w", err)
	}
	return out, nil
}

func (r *PgPairingRepository) GetByID(ctx context.Context, id string) (domain.Pairing, error) {
	const query = `
		SELECT id, side_a, side_b, created_at, updated_at
		FROM pairings
		WHERE id = $1
	`
	var (
		p            domain.Pairing
		sideA, sideB []byte
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&sideA,
		&sideB,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Pairing{}, ErrPairingNotFound
	}
	if err != nil {
		return domain.Pairing{}, translatePgError(err)
	}
	if p.A, err = decodeSide(sideA); err != nil {
		return domain.Pairing{}, err
	}
	if p.B, err = decodeSide(sideB); err != nil {
		return domain.Pairing{}, err
	}
	return p, nil
}

func encodeSide(sub *domain.SideSubmission) ([]byte, error) {
	if sub == nil {
		return nil, nil
	}
	b, err := json.Marshal(sub)
	if err != nil {
		return nil, fmt.Errorf("encode submission: %w", err)
	}
	return b, nil
}

func decodeSide(raw []byte) (*domain.SideSubmission, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var sub domain.SideSubmission
	if err := json.Unmarshal(raw, &sub); err != nil {
		return nil, fmt.Errorf("decode submission: %w", err)
	}
	return &sub, nil
}

// Códigos SQLSTATE reintentables y de clave duplicada.
const (
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
	sqlStateUniqueViolation      = "23505"
)

func translatePgError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case sqlStateSerializationFailure, sqlStateDeadlockDetected:
			return fmt.Errorf("%w: %s", ErrWriteConflict, pgErr.Message)
		case sqlStateUniqueViolation:
			return fmt.Errorf("%w: %s", ErrPairingExists, pgErr.Message)
		}
	}
	return err
}
