package scoring

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Tier is a qualitative band: totals at or above Min get Label.
type Tier struct {
	Min   float64 `json:"min"`
	Label string  `json:"label"`
}

// TierTable assigns a label to a match total. Tiers are kept sorted by Min
// descending; totals below every tier get Floor.
type TierTable struct {
	tiers []Tier
	floor string
}

var ErrInvalidTiers = errors.New("invalid tier table")

// DefaultTierTable is the stock banding.
func DefaultTierTable() TierTable {
	t, _ := NewTierTable([]Tier{
		{Min: 90, Label: "excellent"},
		{Min: 80, Label: "strong"},
		{Min: 70, Label: "good"},
		{Min: 60, Label: "moderate"},
	}, "needs work")
	return t
}

// NewTierTable validates and sorts the tiers. Thresholds must be within
// [0,100] and unique, and every label non-empty.
func NewTierTable(tiers []Tier, floor string) (TierTable, error) {
	floor = strings.TrimSpace(floor)
	if floor == "" {
		return TierTable{}, fmt.Errorf("%w: empty floor label", ErrInvalidTiers)
	}
	sorted := make([]Tier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Min > sorted[j].Min })
	for i, t := range sorted {
		if t.Min < 0 || t.Min > 100 {
			return TierTable{}, fmt.Errorf("%w: threshold %v out of range", ErrInvalidTiers, t.Min)
		}
		if strings.TrimSpace(t.Label) == "" {
			return TierTable{}, fmt.Errorf("%w: empty label at %v", ErrInvalidTiers, t.Min)
		}
		if i > 0 && sorted[i-1].Min == t.Min {
			return TierTable{}, fmt.Errorf("%w: duplicate threshold %v", ErrInvalidTiers, t.Min)
		}
	}
	return TierTable{tiers: sorted, floor: floor}, nil
}

// ParseTierTable reads lists like "90:excellent,80:strong".
func ParseTierTable(raw, floor string) (TierTable, error) {
	var tiers []Tier
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		minRaw, label, ok := strings.Cut(part, ":")
		if !ok {
			return TierTable{}, fmt.Errorf("%w: %q is not threshold:label", ErrInvalidTiers, part)
		}
		minVal, err := strconv.ParseFloat(strings.TrimSpace(minRaw), 64)
		if err != nil {
			return TierTable{}, fmt.Errorf("%w: threshold %q: %v", ErrInvalidTiers, minRaw, err)
		}
		tiers = append(tiers, Tier{Min: minVal, Label: strings.TrimSpace(label)})
	}
	return NewTierTable(tiers, floor)
}

// Label returns the band for a total.
func (t TierTable) Label(total float64) string {
	for _, tier := range t.tiers {
		if total >= tier.Min {
			return tier.Label
		}
	}
	if t.floor == "" {
		return DefaultTierTable().floor
	}
	return t.floor
}

// Tiers returns a copy of the configured tiers, highest first.
func (t TierTable) Tiers() []Tier {
	out := make([]Tier, len(t.tiers))
	copy(out, t.tiers)
	return out
}
