package domain

// FactorScore es un sub-puntaje del match: raw en [0,1], peso entero y su aporte.
type FactorScore struct {
	Raw          float64 `json:"raw"`
	Weight       int     `json:"weight"`
	Contribution float64 `json:"contribution"`
}

// MatchResult se recalcula en cada pedido; nunca es la fuente de verdad.
type MatchResult struct {
	Triangular FactorScore `json:"triangular"`
	Conflict   FactorScore `json:"conflict"`
	Exchange   FactorScore `json:"exchange"`
	Archetype  FactorScore `json:"archetype"`
	Total      float64     `json:"total"`
	Tier       string      `json:"tier"`

	PairName        string         `json:"pair_name"`
	ArchetypeA      Archetype      `json:"archetype_a"`
	ArchetypeB      Archetype      `json:"archetype_b"`
	TriangularTypeA TriangularType `json:"triangular_type_a"`
	TriangularTypeB TriangularType `json:"triangular_type_b"`
	ConflictTypeA   ConflictType   `json:"conflict_type_a"`
	ConflictTypeB   ConflictType   `json:"conflict_type_b"`
}

// MatchReport es la lectura narrativa de un MatchResult.
type MatchReport struct {
	Dynamics  string   `json:"dynamics"`
	Strengths []string `json:"strengths"`
	Risks     []string `json:"risks"`
	Advice    []string `json:"advice"`
	Generated bool     `json:"generated"`
}
