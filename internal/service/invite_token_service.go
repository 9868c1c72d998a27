package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"love-match/internal/domain"
)

// InviteTokenService emite y valida los tokens que autorizan a enviar un lado
// de una pareja.
type InviteTokenService struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// SideClaims identifica la pareja y el lado que el portador puede completar.
type SideClaims struct {
	PairingID string `json:"pid"`
	Side      string `json:"side"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

const sideTokenType = "side"

var (
	ErrInviteInvalid   = errors.New("invite token invalid")
	ErrInviteExpired   = errors.New("invite token expired")
	ErrInviteForbidden = errors.New("invite token not valid for this side")
)

func NewInviteTokenService(secret string, ttl time.Duration) *InviteTokenService {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &InviteTokenService{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: "love-match",
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Issue firma un token para (pairingID, side).
func (s *InviteTokenService) Issue(pairingID string, side domain.PairingSide) (string, error) {
	if len(s.secret) == 0 || strings.TrimSpace(pairingID) == "" || !side.Valid() {
		return "", ErrInviteInvalid
	}
	now := s.now()
	claims := SideClaims{
		PairingID: pairingID,
		Side:      string(side),
		TokenType: sideTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			Subject:   pairingID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse valida firma, vencimiento y forma de los claims.
func (s *InviteTokenService) Parse(tokenString string) (SideClaims, error) {
	if len(s.secret) == 0 || strings.TrimSpace(tokenString) == "" {
		return SideClaims{}, ErrInviteInvalid
	}
	var claims SideClaims
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	_, err := parser.ParseWithClaims(tokenString, &claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return SideClaims{}, ErrInviteExpired
		}
		return SideClaims{}, ErrInviteInvalid
	}
	if !s.isValidClaims(claims) {
		return SideClaims{}, ErrInviteInvalid
	}
	return claims, nil
}

// Authorize comprueba que el token sirva para la pareja y el lado pedidos.
func (s *InviteTokenService) Authorize(tokenString, pairingID string, side domain.PairingSide) error {
	claims, err := s.Parse(tokenString)
	if err != nil {
		return err
	}
	if claims.PairingID != pairingID || claims.Side != string(side) {
		return ErrInviteForbidden
	}
	return nil
}

func (s *InviteTokenService) isValidClaims(claims SideClaims) bool {
	if claims.TokenType != sideTokenType {
		return false
	}
	if strings.TrimSpace(claims.PairingID) == "" || claims.Subject != claims.PairingID {
		return false
	}
	if !domain.PairingSide(claims.Side).Valid() {
		return false
	}
	return strings.TrimSpace(claims.Issuer) == s.issuer
}
