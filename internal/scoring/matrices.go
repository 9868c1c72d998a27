package scoring

import "love-match/internal/domain"

const (
	WeightTriangular = 30
	WeightConflict   = 30
	WeightExchange   = 25
	WeightArchetype  = 15
)

// defaultArchetypeType is used for archetypes missing from archetypeTriangular.
const defaultArchetypeType = domain.TriangularLiking

var triangularMatrix = map[domain.TriangularType]map[domain.TriangularType]float64{
	domain.TriangularLiking: {
		domain.TriangularLiking:       0.95,
		domain.TriangularInfatuation:  0.55,
		domain.TriangularEmpty:        0.60,
		domain.TriangularRomantic:     0.80,
		domain.TriangularCompanionate: 0.90,
		domain.TriangularFoolish:      0.70,
		domain.TriangularConsummate:   0.85,
	},
	domain.TriangularInfatuation: {
		domain.TriangularLiking:       0.55,
		domain.TriangularInfatuation:  0.95,
		domain.TriangularEmpty:        0.45,
		domain.TriangularRomantic:     0.90,
		domain.TriangularCompanionate: 0.65,
		domain.TriangularFoolish:      0.85,
		domain.TriangularConsummate:   0.80,
	},
	domain.TriangularEmpty: {
		domain.TriangularLiking:       0.60,
		domain.TriangularInfatuation:  0.45,
		domain.TriangularEmpty:        0.95,
		domain.TriangularRomantic:     0.65,
		domain.TriangularCompanionate: 0.85,
		domain.TriangularFoolish:      0.90,
		domain.TriangularConsummate:   0.75,
	},
	domain.TriangularRomantic: {
		domain.TriangularLiking:       0.80,
		domain.TriangularInfatuation:  0.90,
		domain.TriangularEmpty:        0.65,
		domain.TriangularRomantic:     0.95,
		domain.TriangularCompanionate: 0.85,
		domain.TriangularFoolish:      0.80,
		domain.TriangularConsummate:   0.90,
	},
	domain.TriangularCompanionate: {
		domain.TriangularLiking:       0.90,
		domain.TriangularInfatuation:  0.65,
		domain.TriangularEmpty:        0.85,
		domain.TriangularRomantic:     0.85,
		domain.TriangularCompanionate: 0.95,
		domain.TriangularFoolish:      0.75,
		domain.TriangularConsummate:   0.90,
	},
	domain.TriangularFoolish: {
		domain.TriangularLiking:       0.70,
		domain.TriangularInfatuation:  0.85,
		domain.TriangularEmpty:        0.90,
		domain.TriangularRomantic:     0.80,
		domain.TriangularCompanionate: 0.75,
		domain.TriangularFoolish:      0.95,
		domain.TriangularConsummate:   0.85,
	},
	domain.TriangularConsummate: {
		domain.TriangularLiking:       0.85,
		domain.TriangularInfatuation:  0.80,
		domain.TriangularEmpty:        0.75,
		domain.TriangularRomantic:     0.90,
		domain.TriangularCompanionate: 0.90,
		domain.TriangularFoolish:      0.85,
		domain.TriangularConsummate:   1.00,
	},
}

var conflictMatrix = map[domain.ConflictType]map[domain.ConflictType]float64{
	domain.ConflictTypeNone: {
		domain.ConflictTypeNone:          1.00,
		domain.ConflictTypeCriticism:     0.85,
		domain.ConflictTypeDefensiveness: 0.80,
		domain.ConflictTypeStonewalling:  0.75,
		domain.ConflictTypeContempt:      0.60,
	},
	domain.ConflictTypeCriticism: {
		domain.ConflictTypeNone:          0.85,
		domain.ConflictTypeCriticism:     0.80,
		domain.ConflictTypeDefensiveness: 0.70,
		domain.ConflictTypeStonewalling:  0.65,
		domain.ConflictTypeContempt:      0.55,
	},
	domain.ConflictTypeDefensiveness: {
		domain.ConflictTypeNone:          0.80,
		domain.ConflictTypeCriticism:     0.70,
		domain.ConflictTypeDefensiveness: 0.75,
		domain.ConflictTypeStonewalling:  0.65,
		domain.ConflictTypeContempt:      0.50,
	},
	domain.ConflictTypeStonewalling: {
		domain.ConflictTypeNone:          0.75,
		domain.ConflictTypeCriticism:     0.65,
		domain.ConflictTypeDefensiveness: 0.65,
		domain.ConflictTypeStonewalling:  0.70,
		domain.ConflictTypeContempt:      0.45,
	},
	domain.ConflictTypeContempt: {
		domain.ConflictTypeNone:          0.60,
		domain.ConflictTypeCriticism:     0.55,
		domain.ConflictTypeDefensiveness: 0.50,
		domain.ConflictTypeStonewalling:  0.45,
		domain.ConflictTypeContempt:      0.40,
	},
}

var archetypeTriangular = map[domain.Archetype]domain.TriangularType{
	domain.ArchetypeTortoise: domain.TriangularLiking,
	domain.ArchetypeSloth:    domain.TriangularLiking,
	domain.ArchetypeSnowHare: domain.TriangularLiking,

	domain.ArchetypeHedgehog: domain.TriangularInfatuation,
	domain.ArchetypeCat:      domain.TriangularInfatuation,
	domain.ArchetypeHorse:    domain.TriangularInfatuation,
	domain.ArchetypeLynx:     domain.TriangularInfatuation,

	domain.ArchetypeFerret: domain.TriangularEmpty,
	domain.ArchetypeOwl:    domain.TriangularEmpty,
	domain.ArchetypeDeer:   domain.TriangularEmpty,

	domain.ArchetypePeacock: domain.TriangularRomantic,
	domain.ArchetypePenguin: domain.TriangularRomantic,
	domain.ArchetypeSwan:    domain.TriangularRomantic,
	domain.ArchetypeRaccoon: domain.TriangularRomantic,
	domain.ArchetypeOtter:   domain.TriangularRomantic,

	domain.ArchetypeGoldenRetriever: domain.TriangularCompanionate,
	domain.ArchetypeRhino:           domain.TriangularCompanionate,
	domain.ArchetypeHamster:         domain.TriangularCompanionate,

	domain.ArchetypeBeaver: domain.TriangularFoolish,
	domain.ArchetypeWolf:   domain.TriangularFoolish,

	domain.ArchetypeDolphin:  domain.TriangularConsummate,
	domain.ArchetypeElephant: domain.TriangularConsummate,
	domain.ArchetypeFox:      domain.TriangularConsummate,
	domain.ArchetypeOctopus:  domain.TriangularConsummate,
}

// ArchetypeTriangularType maps an archetype to the relationship type used by
// the archetype factor. Unknown archetypes map to LIKING.
func ArchetypeTriangularType(a domain.Archetype) domain.TriangularType {
	if t, ok := archetypeTriangular[a]; ok {
		return t
	}
	return defaultArchetypeType
}

// TriangularCompatibility reads the 7x7 matrix; unknown types score 0.
func TriangularCompatibility(a, b domain.TriangularType) float64 {
	return triangularMatrix[a][b]
}

// ConflictCompatibility reads the 5x5 matrix; unknown types score 0.
func ConflictCompatibility(a, b domain.ConflictType) float64 {
	return conflictMatrix[a][b]
}
