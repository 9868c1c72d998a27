package domain

import "time"

// PairingSide identifica a cada integrante de la pareja.
type PairingSide string

const (
	SideA PairingSide = "A"
	SideB PairingSide = "B"
)

// Valid informa si el lado es A o B.
func (s PairingSide) Valid() bool {
	return s == SideA || s == SideB
}

// SideSubmission es el cuestionario enviado por un integrante y su perfil calculado.
type SideSubmission struct {
	SubmissionID string      `json:"submission_id"`
	Nickname     string      `json:"nickname,omitempty"`
	Answers      AnswerSet   `json:"answers"`
	Profile      FullProfile `json:"profile"`
	SubmittedAt  time.Time   `json:"submitted_at"`
}

// Pairing es el registro compartido que une los dos perfiles.
type Pairing struct {
	ID        string          `json:"id"`
	A         *SideSubmission `json:"side_a"`
	B         *SideSubmission `json:"side_b"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Side devuelve la submission del lado pedido, o nil.
func (p Pairing) Side(side PairingSide) *SideSubmission {
	switch side {
	case SideA:
		return p.A
	case SideB:
		return p.B
	default:
		return nil
	}
}

// Complete informa si ambos lados ya enviaron su perfil.
func (p Pairing) Complete() bool {
	return p.A != nil && p.B != nil
}
