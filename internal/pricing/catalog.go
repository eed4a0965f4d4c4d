package pricing

import (
	"errors"

	"glassworks/internal/domain"
)

var (
	// ErrNotFound means no catalog entry matched. Callers degrade to a
	// zero-total "price unavailable" line, they do not abort the breakdown.
	ErrNotFound = errors.New("catalog entry not found")

	// ErrNoPrice means the entry exists but has no price configured yet.
	ErrNoPrice = errors.New("price not configured")
)

// CatalogSnapshot is a read-only, in-memory copy of one tenant's price lists.
// A single price computation works against one snapshot and never mutates it.
type CatalogSnapshot struct {
	Glass     []domain.GlassPrice
	Hardware  []domain.HardwareItem
	Services  []domain.ServiceItem
	BaseCosts []domain.BaseCost
}

// GlassPrice finds the price per m² for a color/thickness pair. Color is
// matched by normalized name, thickness digit-only; first match wins.
func (c *CatalogSnapshot) GlassPrice(color, thickness string) (float64, error) {
	wantThickness := NormalizeThickness(thickness)
	for _, g := range c.Glass {
		if !nameMatches(g.Color, color, MatchExact) {
			continue
		}
		entryThickness := ""
		if g.Thickness != nil {
			entryThickness = NormalizeThickness(*g.Thickness)
		}
		if entryThickness != wantThickness {
			continue
		}
		return g.PricePerSqm, nil
	}
	return 0, ErrNotFound
}

// HardwarePrice resolves a hardware unit price by normalized name, falling
// back to base costs by the same rule before giving up.
func (c *CatalogSnapshot) HardwarePrice(name string) (float64, error) {
	for _, h := range c.Hardware {
		if nameMatches(h.Name, name, MatchExact) {
			if h.UnitPrice == nil {
				return 0, ErrNoPrice
			}
			return *h.UnitPrice, nil
		}
	}
	if v, _, err := c.BaseCostValue(name, MatchExact); err == nil {
		return v, nil
	}
	return 0, ErrNotFound
}

// ServicePrice resolves a service price by exact normalized name, with the
// same base-cost fallback as hardware.
func (c *CatalogSnapshot) ServicePrice(name string) (float64, error) {
	for _, s := range c.Services {
		if nameMatches(s.Name, name, MatchExact) {
			return s.Price, nil
		}
	}
	if v, _, err := c.BaseCostValue(name, MatchExact); err == nil {
		return v, nil
	}
	return 0, ErrNotFound
}

// BaseCostValue finds a base-cost entry by name and returns its value together
// with the matched entry name, so heuristic matches stay visible to the user.
func (c *CatalogSnapshot) BaseCostValue(name string, strategy MatchStrategy) (float64, string, error) {
	for _, b := range c.BaseCosts {
		if nameMatches(b.Name, name, strategy) {
			return b.Value, b.Name, nil
		}
	}
	return 0, "", ErrNotFound
}

// surchargeValue resolves a named surcharge (delivery, installation,
// dismantling) through the hardware → services → base-costs chain, trying each
// synonym in order.
func (c *CatalogSnapshot) surchargeValue(synonyms []string, strategy MatchStrategy) (float64, error) {
	for _, syn := range synonyms {
		for _, h := range c.Hardware {
			if nameMatches(h.Name, syn, strategy) && h.UnitPrice != nil {
				return *h.UnitPrice, nil
			}
		}
		for _, s := range c.Services {
			if nameMatches(s.Name, syn, strategy) {
				return s.Price, nil
			}
		}
		if v, _, err := c.BaseCostValue(syn, strategy); err == nil {
			return v, nil
		}
	}
	return 0, ErrNotFound
}
