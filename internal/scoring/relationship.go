package scoring

import (
	"math"

	"love-match/internal/domain"
)

const (
	// presenceThreshold is the normalized value a triangular component must exceed.
	presenceThreshold = 0.5
	// ConflictFloor is the minimum winning score for a conflict pattern; below it
	// the profile is classified as healthy.
	ConflictFloor = 0.3
)

// conflictPatterns are the classifiable categories in tie-break priority order.
var conflictPatterns = []domain.ConflictCategory{
	domain.ConflictCriticism,
	domain.ConflictDefensiveness,
	domain.ConflictStonewalling,
	domain.ConflictContempt,
}

// ClassifyTriangular maps a triangular vector to one of the seven types.
func ClassifyTriangular(v domain.TriangularVector) domain.TriangularType {
	scale := math.Max(math.Max(v.Intimacy, v.Passion), math.Max(v.Commitment, 1))
	i := v.Intimacy/scale > presenceThreshold
	p := v.Passion/scale > presenceThreshold
	c := v.Commitment/scale > presenceThreshold

	switch {
	case i && p && c:
		return domain.TriangularConsummate
	case i && p:
		return domain.TriangularRomantic
	case i && c:
		return domain.TriangularCompanionate
	case p && c:
		return domain.TriangularFoolish
	case i:
		return domain.TriangularLiking
	case p:
		return domain.TriangularInfatuation
	case c:
		return domain.TriangularEmpty
	}

	// Nothing present: take the largest raw component, intimacy first on ties.
	switch {
	case v.Intimacy >= v.Passion && v.Intimacy >= v.Commitment:
		return domain.TriangularLiking
	case v.Passion >= v.Commitment:
		return domain.TriangularInfatuation
	default:
		return domain.TriangularEmpty
	}
}

// ClassifyConflict returns the strongest conflict pattern, or NONE when it is
// below ConflictFloor. HEALTHY is accumulated but never competes.
func ClassifyConflict(v domain.ConflictVector) domain.ConflictType {
	top := argMax(map[domain.ConflictCategory]float64(v), conflictPatterns, firstTied)
	if v[top] < ConflictFloor {
		return domain.ConflictTypeNone
	}
	return domain.ConflictType(top)
}
