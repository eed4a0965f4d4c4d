package pricing

import (
	"errors"
	"fmt"
	"math"

	"glassworks/internal/domain"
)

// Millimetre adjustments shared by the straight and corner configurations.
const (
	openingAllowanceMM      = 30 // two profile edges on the wall opening
	doorHeightReductionMM   = 8
	doorHeightExactMM       = 11
	stationaryHeightExactMM = 3
)

var ErrUnknownConfiguration = errors.New("unknown configuration type")

// PaneArea is one glass pane with its computed area. Computable=false marks a
// pane with missing or non-numeric dimensions: it prices as a zero-total
// "price unavailable" line instead of failing the whole breakdown.
type PaneArea struct {
	Name       string          `json:"name"`
	Type       domain.PaneType `json:"type"`
	WidthMM    float64         `json:"width_mm"`
	HeightMM   float64         `json:"height_mm"`
	AreaSqm    float64         `json:"area_sqm"`
	Color      string          `json:"color,omitempty"`
	Thickness  string          `json:"thickness,omitempty"`
	Computable bool            `json:"computable"`
}

// PanelSize is a derived physical panel dimension shown to the operator
// (what to actually cut), separate from the priced area.
type PanelSize struct {
	Label    string  `json:"label"`
	WidthMM  float64 `json:"width_mm"`
	HeightMM float64 `json:"height_mm"`
}

type DimensionResult struct {
	Panes     []PaneArea  `json:"panes"`
	Panels    []PanelSize `json:"panels,omitempty"`
	TotalArea float64     `json:"total_area"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func areaSqm(widthMM, heightMM float64) float64 {
	return round2(widthMM * heightMM / 1e6)
}

// ComputeDimensions converts raw millimetre input into per-pane areas and
// derived panel sizes using the configuration-specific formulas. tpl is only
// consulted for custom-template configurations.
func ComputeDimensions(kind domain.ConfigurationType, dims domain.Dimensions, tpl *domain.Template, exactHeight bool) (*DimensionResult, error) {
	switch kind {
	case domain.ConfigGlass, domain.ConfigPartition:
		return singlePane(kind, dims), nil
	case domain.ConfigStraight:
		return straight(dims, exactHeight), nil
	case domain.ConfigCorner:
		return corner(dims, exactHeight), nil
	case domain.ConfigUnique:
		return unique(dims), nil
	case domain.ConfigCustom:
		if tpl == nil {
			return nil, ErrUnknownConfiguration
		}
		return customTemplate(dims, tpl), nil
	default:
		return nil, ErrUnknownConfiguration
	}
}

func singlePane(kind domain.ConfigurationType, dims domain.Dimensions) *DimensionResult {
	pane := PaneArea{Name: string(kind), Type: domain.PaneStationary}
	if dims.Width != nil && dims.Height != nil {
		pane.WidthMM = *dims.Width
		pane.HeightMM = *dims.Height
		pane.AreaSqm = areaSqm(*dims.Width, *dims.Height)
		pane.Computable = true
	}
	return &DimensionResult{Panes: []PaneArea{pane}, TotalArea: pane.AreaSqm}
}

func straight(dims domain.Dimensions, exactHeight bool) *DimensionResult {
	res := &DimensionResult{}
	pane := PaneArea{Name: "straight", Type: domain.PaneSwingDoor}

	if dims.Height == nil {
		res.Panes = []PaneArea{pane}
		return res
	}
	height := *dims.Height

	var totalWidth float64
	var stationaryWidth, doorWidth float64
	switch {
	case dims.Mode == domain.StraightByDoor && dims.StationaryWidth != nil && dims.DoorWidth != nil:
		stationaryWidth = *dims.StationaryWidth
		doorWidth = *dims.DoorWidth
		totalWidth = stationaryWidth + openingAllowanceMM + doorWidth
	case dims.Width != nil:
		// Opening mode: +30mm allowance, panes split down the middle.
		totalWidth = *dims.Width + openingAllowanceMM
		stationaryWidth = math.Round(totalWidth / 2)
		doorWidth = stationaryWidth
	default:
		res.Panes = []PaneArea{pane}
		return res
	}

	pane.WidthMM = totalWidth
	pane.HeightMM = height
	pane.AreaSqm = areaSqm(totalWidth, height)
	pane.Computable = true

	res.Panes = []PaneArea{pane}
	res.Panels = straightPanels(stationaryWidth, doorWidth, height, exactHeight)
	res.TotalArea = pane.AreaSqm
	return res
}

func straightPanels(stationaryWidth, doorWidth, height float64, exactHeight bool) []PanelSize {
	stationaryHeight := height
	doorHeight := height - doorHeightReductionMM
	if exactHeight {
		stationaryHeight = height - stationaryHeightExactMM
		doorHeight = height - doorHeightExactMM
	}
	return []PanelSize{
		{Label: "stationary", WidthMM: stationaryWidth, HeightMM: stationaryHeight},
		{Label: "door", WidthMM: doorWidth, HeightMM: doorHeight},
	}
}

func corner(dims domain.Dimensions, exactHeight bool) *DimensionResult {
	res := &DimensionResult{}
	pane := PaneArea{Name: "corner", Type: domain.PaneSwingDoor}

	if dims.Width == nil || dims.Length == nil || dims.Height == nil {
		res.Panes = []PaneArea{pane}
		return res
	}
	width, length, height := *dims.Width, *dims.Length, *dims.Height

	pane.WidthMM = width + length
	pane.HeightMM = height
	pane.AreaSqm = areaSqm(width+length, height)
	pane.Computable = true

	res.Panes = []PaneArea{pane}
	res.TotalArea = pane.AreaSqm

	// Two stationary/door pairs, one per wall.
	for i, w := range []float64{width, length} {
		half := math.Round(w / 2)
		panels := straightPanels(half, half, height, exactHeight)
		for _, p := range panels {
			p.Label = fmt.Sprintf("%s %d", p.Label, i+1)
			res.Panels = append(res.Panels, p)
		}
	}
	return res
}

func unique(dims domain.Dimensions) *DimensionResult {
	res := &DimensionResult{}
	for i, pd := range dims.Panes {
		pane := PaneArea{
			Name:      pd.Name,
			Type:      domain.PaneStationary,
			Color:     pd.Color,
			Thickness: pd.Thickness,
		}
		if pane.Name == "" {
			pane.Name = fmt.Sprintf("pane %d", i+1)
		}
		if pd.Width != nil && pd.Height != nil {
			pane.WidthMM = *pd.Width
			pane.HeightMM = *pd.Height
			pane.AreaSqm = areaSqm(*pd.Width, *pd.Height)
			pane.Computable = true
			res.TotalArea = round2(res.TotalArea + pane.AreaSqm)
		}
		res.Panes = append(res.Panes, pane)
	}
	return res
}

func customTemplate(dims domain.Dimensions, tpl *domain.Template) *DimensionResult {
	res := &DimensionResult{}
	for i, cfg := range tpl.GlassConfig {
		pane := PaneArea{Name: cfg.Name, Type: cfg.PaneType}
		if i < len(dims.Panes) {
			pd := dims.Panes[i]
			pane.Color = pd.Color
			pane.Thickness = pd.Thickness
			if pd.Width != nil && pd.Height != nil {
				height := *pd.Height
				if cfg.PaneType == domain.PaneSwingDoor {
					height -= tpl.SizeAdjustments.DoorHeightReduction
					if pd.HasThreshold {
						height -= tpl.SizeAdjustments.ThresholdReduction
					}
				}
				pane.WidthMM = *pd.Width
				pane.HeightMM = height
				pane.AreaSqm = areaSqm(*pd.Width, height)
				pane.Computable = true
				res.TotalArea = round2(res.TotalArea + pane.AreaSqm)
			}
		}
		res.Panes = append(res.Panes, pane)
	}
	return res
}
