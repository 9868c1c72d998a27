package scoring

import (
	"fmt"
	"math/rand"
	"strings"
)

// TieBreakPolicy decides which label wins when several share the maximum score.
type TieBreakPolicy string

const (
	// TieBreakPriority picks the first tied label in declaration order.
	TieBreakPriority TieBreakPolicy = "priority"
	// TieBreakRandom picks uniformly among the tied labels, so identical
	// answers may yield different dominant labels across runs.
	TieBreakRandom TieBreakPolicy = "random"
)

// ParseTieBreakPolicy accepts "priority" or "random" (case-insensitive); empty means priority.
func ParseTieBreakPolicy(raw string) (TieBreakPolicy, error) {
	switch TieBreakPolicy(strings.ToLower(strings.TrimSpace(raw))) {
	case "", TieBreakPriority:
		return TieBreakPriority, nil
	case TieBreakRandom:
		return TieBreakRandom, nil
	default:
		return "", fmt.Errorf("unknown tie-break policy %q", raw)
	}
}

// tieBreaker returns the index of the winner among n tied candidates.
type tieBreaker func(n int) int

func firstTied(int) int { return 0 }

func randomTied(n int) int { return rand.Intn(n) }

// argMax returns the label with the highest score, scanning labels in order.
// Labels missing from scores count as zero, so the result is always a label
// from order as long as order is non-empty.
func argMax[L comparable](scores map[L]float64, order []L, pick tieBreaker) L {
	var tied []L
	best := 0.0
	for i, label := range order {
		s := scores[label]
		switch {
		case i == 0 || s > best:
			best = s
			tied = append(tied[:0], label)
		case s == best:
			tied = append(tied, label)
		}
	}
	if len(tied) == 0 {
		var zero L
		return zero
	}
	if len(tied) == 1 || pick == nil {
		return tied[0]
	}
	return tied[pick(len(tied))]
}
