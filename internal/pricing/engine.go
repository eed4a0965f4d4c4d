package pricing

import (
	"errors"
	"fmt"
	"strings"

	"glassworks/internal/domain"
)

// ErrConfigurationMissing means the tenant has no settings row. Pricing
// refuses to compute: defaulting the currency or base-cost mode would corrupt
// totals silently.
var ErrConfigurationMissing = errors.New("tenant settings missing")

type LineKind string

const (
	LineGlass        LineKind = "glass"
	LineHardware     LineKind = "hardware"
	LineDelivery     LineKind = "delivery"
	LineInstallation LineKind = "installation"
	LineDismantling  LineKind = "dismantling"
	LineService      LineKind = "service"
	LineBaseCost     LineKind = "base_cost"
)

// LineItem is one row of the itemized breakdown. PriceMissing marks a line
// that could not be priced; its total contributes 0 but the line stays
// visible, distinct from a legitimately free (price = 0) line.
type LineItem struct {
	Kind         LineKind `json:"kind"`
	Label        string   `json:"label"`
	Quantity     float64  `json:"quantity,omitempty"`
	UnitPrice    float64  `json:"unit_price,omitempty"`
	Total        float64  `json:"total"`
	PriceMissing bool     `json:"price_missing,omitempty"`
	Note         string   `json:"note,omitempty"`
}

type Breakdown struct {
	Items    []LineItem      `json:"items"`
	Total    float64         `json:"total"`
	Currency domain.Currency `json:"currency"`
	TotalUSD *float64        `json:"total_usd,omitempty"`
	TotalRR  *float64        `json:"total_rr,omitempty"`
}

type HardwareSelection struct {
	Name     string
	Quantity int
}

type ServiceSelection struct {
	Name  string
	Price *float64
}

type Options struct {
	CustomColor  bool
	ExactHeight  bool
	Delivery     bool
	Installation bool
	Dismantling  bool
}

// TenantContext carries everything a single price computation needs. It is
// built per request; the engine never reaches into ambient state.
type TenantContext struct {
	Settings domain.Settings
	Catalog  *CatalogSnapshot
}

// Surcharge name synonyms. Delivery matches by substring (legacy behaviour),
// installation by exact synonym set, dismantling exact only.
var (
	deliverySynonyms     = []string{"доставка", "delivery"}
	installationSynonyms = []string{"монтаж", "установка", "installation", "mounting"}
	dismantlingSynonyms  = []string{"демонтаж", "dismantling"}
)

const (
	noteUnavailable          = "price unavailable"
	noteDimensionsIncomplete = "dimensions incomplete"
)

// ComputePrice produces the itemized breakdown and total for one project. The
// line-item order is fixed: glass, hardware, delivery, installation,
// dismantling, services, base cost. Missing catalog entries degrade to
// zero-total lines; missing settings abort with ErrConfigurationMissing.
func ComputePrice(tc TenantContext, kind domain.ConfigurationType, panes []PaneArea, hardware []HardwareSelection, services []ServiceSelection, opts Options) (*Breakdown, error) {
	if tc.Settings.Currency == "" {
		return nil, ErrConfigurationMissing
	}
	if tc.Catalog == nil {
		tc.Catalog = &CatalogSnapshot{}
	}

	b := &Breakdown{Currency: tc.Settings.Currency}

	glassTotal := glassLines(b, tc.Catalog, panes)
	hardwareTotal := hardwareLines(b, tc.Catalog, hardware, opts, tc.Settings.CustomColorSurcharge)

	if opts.Delivery {
		surchargeLine(b, tc.Catalog, LineDelivery, "Доставка", deliverySynonyms, MatchSubstring)
	}
	if opts.Installation {
		surchargeLine(b, tc.Catalog, LineInstallation, "Монтаж", installationSynonyms, MatchExact)
	}
	if opts.Dismantling {
		surchargeLine(b, tc.Catalog, LineDismantling, "Демонтаж", dismantlingSynonyms, MatchExact)
	}

	serviceLines(b, tc.Catalog, services)
	baseCostLine(b, tc, kind, glassTotal+hardwareTotal)

	total := 0.0
	for _, it := range b.Items {
		total += it.Total
	}
	b.Total = round2(total)

	if tc.Settings.ShowUSD && tc.Settings.USDRate > 0 {
		v := round2(b.Total / tc.Settings.USDRate)
		b.TotalUSD = &v
	}
	if tc.Settings.ShowRR && tc.Settings.RRRate > 0 {
		v := round2(b.Total / tc.Settings.RRRate)
		b.TotalRR = &v
	}
	return b, nil
}

func glassLines(b *Breakdown, cat *CatalogSnapshot, panes []PaneArea) float64 {
	total := 0.0
	for _, p := range panes {
		label := glassLabel(p)
		if !p.Computable {
			b.Items = append(b.Items, LineItem{
				Kind: LineGlass, Label: label,
				PriceMissing: true, Note: noteDimensionsIncomplete,
			})
			continue
		}
		price, err := cat.GlassPrice(p.Color, p.Thickness)
		if err != nil {
			b.Items = append(b.Items, LineItem{
				Kind: LineGlass, Label: label, Quantity: p.AreaSqm,
				PriceMissing: true, Note: "no price for selected glass",
			})
			continue
		}
		line := LineItem{
			Kind: LineGlass, Label: label,
			Quantity: p.AreaSqm, UnitPrice: price,
			Total: round2(price * p.AreaSqm),
		}
		total += line.Total
		b.Items = append(b.Items, line)
	}
	return total
}

func glassLabel(p PaneArea) string {
	parts := []string{"Стекло"}
	if p.Name != "" {
		parts = append(parts, p.Name)
	}
	if p.Color != "" {
		parts = append(parts, p.Color)
	}
	if p.Thickness != "" {
		parts = append(parts, NormalizeThickness(p.Thickness)+" мм")
	}
	return strings.Join(parts, " ")
}

func hardwareLines(b *Breakdown, cat *CatalogSnapshot, hardware []HardwareSelection, opts Options, surchargePct float64) float64 {
	total := 0.0
	for _, h := range hardware {
		qty := h.Quantity
		if qty < 1 {
			qty = 1
		}
		price, err := cat.HardwarePrice(h.Name)
		if err != nil {
			note := noteUnavailable
			if errors.Is(err, ErrNoPrice) {
				note = "price not configured"
			}
			b.Items = append(b.Items, LineItem{
				Kind: LineHardware, Label: h.Name, Quantity: float64(qty),
				PriceMissing: true, Note: note,
			})
			continue
		}
		line := LineItem{
			Kind: LineHardware, Label: h.Name,
			Quantity: float64(qty), UnitPrice: price,
			Total: round2(price * float64(qty)),
		}
		// Custom hardware color surcharge is an explicit step on hardware
		// lines, never folded into catalog prices.
		if opts.CustomColor && surchargePct > 0 {
			line.Total = round2(line.Total * (1 + surchargePct/100))
			line.Note = fmt.Sprintf("+%g%% custom color", surchargePct)
		}
		total += line.Total
		b.Items = append(b.Items, line)
	}
	return total
}

func surchargeLine(b *Breakdown, cat *CatalogSnapshot, kind LineKind, label string, synonyms []string, strategy MatchStrategy) {
	v, err := cat.surchargeValue(synonyms, strategy)
	if err != nil || v == 0 {
		return
	}
	b.Items = append(b.Items, LineItem{Kind: kind, Label: label, UnitPrice: v, Total: v})
}

func serviceLines(b *Breakdown, cat *CatalogSnapshot, services []ServiceSelection) {
	seen := map[string]bool{}
	for _, s := range services {
		key := NormalizeName(s.Name)
		if key == "" || seen[key] {
			continue // first occurrence wins, no double billing
		}
		seen[key] = true

		var price float64
		var err error
		if s.Price != nil {
			price = *s.Price
		} else {
			price, err = cat.ServicePrice(s.Name)
		}
		if err != nil {
			b.Items = append(b.Items, LineItem{
				Kind: LineService, Label: s.Name,
				PriceMissing: true, Note: noteUnavailable,
			})
			continue
		}
		b.Items = append(b.Items, LineItem{
			Kind: LineService, Label: s.Name, UnitPrice: price, Total: price,
		})
	}
}

// baseCostTypeKeywords drive the heuristic name fallback when no base-cost
// entry is keyed by the configuration type itself.
var baseCostTypeKeywords = map[domain.ConfigurationType][]string{
	domain.ConfigGlass:     {"glass", "стекло"},
	domain.ConfigStraight:  {"straight", "прямая"},
	domain.ConfigCorner:    {"corner", "угловая"},
	domain.ConfigUnique:    {"unique", "уникальная"},
	domain.ConfigPartition: {"partition", "перегородка"},
	domain.ConfigCustom:    {"custom", "шаблон"},
}

func baseCostLine(b *Breakdown, tc TenantContext, kind domain.ConfigurationType, subtotal float64) {
	// Percentage mode replaces the fixed base cost entirely; the percentage
	// applies to glass + hardware only, services are excluded.
	if tc.Settings.BaseCostMode == domain.BaseCostPercentage {
		pct := tc.Settings.BaseCostPercentage
		if pct <= 0 {
			return
		}
		b.Items = append(b.Items, LineItem{
			Kind:  LineBaseCost,
			Label: fmt.Sprintf("Базовая стоимость (%g%%)", pct),
			Total: round2(subtotal * pct / 100),
		})
		return
	}

	// Fixed mode: exact configuration-type key first, then the name heuristic.
	if v, name, err := tc.Catalog.BaseCostValue(string(kind), MatchExact); err == nil {
		b.Items = append(b.Items, LineItem{Kind: LineBaseCost, Label: name, UnitPrice: v, Total: v})
		return
	}
	for _, kw := range baseCostTypeKeywords[kind] {
		for _, bc := range tc.Catalog.BaseCosts {
			n := NormalizeName(bc.Name)
			if !strings.Contains(n, kw) {
				continue
			}
			if !strings.Contains(n, "base") && !strings.Contains(n, "базов") {
				continue
			}
			b.Items = append(b.Items, LineItem{Kind: LineBaseCost, Label: bc.Name, UnitPrice: bc.Value, Total: bc.Value})
			return
		}
	}
}
