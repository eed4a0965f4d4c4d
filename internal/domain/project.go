package domain

import "time"

// StraightMode selects how straight-configuration dimensions are entered:
// by the wall opening, or by explicit stationary/door pane widths.
type StraightMode string

const (
	StraightByOpening StraightMode = "opening"
	StraightByDoor    StraightMode = "door"
)

// PaneDimension is one user-entered pane for unique and custom-template
// configurations. Width/height are millimetres; nil means not filled in yet,
// which downgrades the pane to a zero-cost "price unavailable" line.
type PaneDimension struct {
	Name         string   `json:"name"`
	Width        *float64 `json:"width,omitempty"`
	Height       *float64 `json:"height,omitempty"`
	Color        string   `json:"color,omitempty"`
	Thickness    string   `json:"thickness,omitempty"`
	HasThreshold bool     `json:"has_threshold,omitempty"`
}

// Dimensions is the raw, configuration-dependent millimetre input. Which
// fields apply depends on the configuration type.
type Dimensions struct {
	Width           *float64        `json:"width,omitempty"`
	Height          *float64        `json:"height,omitempty"`
	Length          *float64        `json:"length,omitempty"`
	Mode            StraightMode    `json:"mode,omitempty"`
	StationaryWidth *float64        `json:"stationary_width,omitempty"`
	DoorWidth       *float64        `json:"door_width,omitempty"`
	Panes           []PaneDimension `json:"panes,omitempty"`
}

type ProjectHardware struct {
	HardwareID *int64 `json:"hardware_id,omitempty"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
}

type ProjectService struct {
	ServiceID *int64   `json:"service_id,omitempty"`
	Name      string   `json:"name"`
	Price     *float64 `json:"price,omitempty"`
}

type ProjectOptions struct {
	CustomColor  bool `json:"custom_color"`
	ExactHeight  bool `json:"exact_height"`
	Delivery     bool `json:"delivery"`
	Installation bool `json:"installation"`
	Dismantling  bool `json:"dismantling"`
}

// Project is a quotation / work order tracked through the status board.
type Project struct {
	ID                int64             `json:"id"`
	CompanyID         int64             `json:"company_id" gorm:"index"`
	Reference         string            `json:"reference" gorm:"uniqueIndex"`
	Name              string            `json:"name"`
	Customer          string            `json:"customer,omitempty"`
	ConfigurationType ConfigurationType `json:"configuration_type"`
	TemplateID        *int64            `json:"template_id,omitempty"`
	Dimensions        Dimensions        `json:"dimensions" gorm:"serializer:json"`
	GlassColor        string            `json:"glass_color"`
	GlassThickness    string            `json:"glass_thickness"`
	HardwareColor     string            `json:"hardware_color,omitempty"`
	Hardware          []ProjectHardware `json:"hardware" gorm:"serializer:json"`
	Services          []ProjectService  `json:"services" gorm:"serializer:json"`
	Options           ProjectOptions    `json:"options" gorm:"serializer:json"`
	CurrentPrice      float64           `json:"current_price"`
	StatusID          int64             `json:"status_id"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`

	PriceHistory  []PriceSnapshot `json:"price_history,omitempty" gorm:"-"`
	StatusHistory []StatusChange  `json:"status_history,omitempty" gorm:"-"`
}

// PriceSnapshot is one append-only price history entry.
type PriceSnapshot struct {
	ID        int64     `json:"id"`
	ProjectID int64     `json:"project_id" gorm:"index"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

// StatusChange is one append-only status history entry. Re-assigning the same
// status still appends: the board audit trail logs every move.
type StatusChange struct {
	ID         int64     `json:"id"`
	ProjectID  int64     `json:"project_id" gorm:"index"`
	StatusID   int64     `json:"status_id"`
	StatusName string    `json:"status_name"`
	CreatedAt  time.Time `json:"created_at"`
}
