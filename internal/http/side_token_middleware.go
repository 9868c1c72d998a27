package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"love-match/internal/domain"
	"love-match/internal/service"
)

const sideKey = "pairing_side"

// SideTokenMiddleware valida el token Bearer contra la pareja y el lado de la
// ruta y guarda el lado normalizado en el contexto.
func SideTokenMiddleware(tokens *service.InviteTokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokens == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "invite tokens not configured"})
			c.Abort()
			return
		}

		side, ok := parseSide(c.Param("side"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid side"})
			c.Abort()
			return
		}

		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			c.Abort()
			return
		}

		// Mismo formato canónico que usan los handlers y los tokens emitidos.
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "pairing not found"})
			c.Abort()
			return
		}

		token := strings.TrimSpace(header[len("Bearer "):])
		err = tokens.Authorize(token, id.String(), side)
		switch {
		case err == nil:
		case errors.Is(err, service.ErrInviteForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "token not valid for this side"})
			c.Abort()
			return
		case errors.Is(err, service.ErrInviteExpired):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token expired"})
			c.Abort()
			return
		default:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(sideKey, side)
		c.Next()
	}
}

// GetSide obtiene el lado autorizado desde el contexto.
func GetSide(c *gin.Context) (domain.PairingSide, bool) {
	val, ok := c.Get(sideKey)
	if !ok {
		return "", false
	}
	side, ok := val.(domain.PairingSide)
	return side, ok
}

func parseSide(raw string) (domain.PairingSide, bool) {
	side := domain.PairingSide(strings.ToUpper(strings.TrimSpace(raw)))
	return side, side.Valid()
}
