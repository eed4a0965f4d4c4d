package domain

import "time"

type ConfigurationType string

const (
	ConfigGlass     ConfigurationType = "glass"
	ConfigStraight  ConfigurationType = "straight"
	ConfigCorner    ConfigurationType = "corner"
	ConfigUnique    ConfigurationType = "unique"
	ConfigPartition ConfigurationType = "partition"
	ConfigCustom    ConfigurationType = "custom"
)

// BuiltinConfigurationTypes are the selector tags the resolver accepts without a
// template id.
var BuiltinConfigurationTypes = []ConfigurationType{
	ConfigGlass, ConfigStraight, ConfigCorner, ConfigUnique, ConfigPartition,
}

func (t ConfigurationType) IsBuiltin() bool {
	for _, b := range BuiltinConfigurationTypes {
		if t == b {
			return true
		}
	}
	return false
}

type PaneType string

const (
	PaneStationary  PaneType = "stationary"
	PaneSwingDoor   PaneType = "swing_door"
	PaneSlidingDoor PaneType = "sliding_door"
)

type GlassPaneConfig struct {
	Name     string   `json:"name"`
	PaneType PaneType `json:"pane_type"`
}

// SizeAdjustments are millimetre reductions applied to door panes.
type SizeAdjustments struct {
	DoorHeightReduction float64 `json:"door_height_reduction"`
	ThresholdReduction  float64 `json:"threshold_reduction"`
}

// Template is a reusable configuration blueprint: pane layout plus default
// hardware/service name lists. System templates are seeded per tenant, one per
// built-in type, and are edited in place rather than deleted.
type Template struct {
	ID                    int64             `json:"id"`
	CompanyID             int64             `json:"company_id" gorm:"index"`
	Name                  string            `json:"name"`
	Type                  ConfigurationType `json:"type"`
	GlassConfig           []GlassPaneConfig `json:"glass_config" gorm:"serializer:json"`
	SizeAdjustments       SizeAdjustments   `json:"size_adjustments" gorm:"embedded;embeddedPrefix:adj_"`
	DefaultHardware       []string          `json:"default_hardware" gorm:"serializer:json"`
	DefaultServices       []string          `json:"default_services" gorm:"serializer:json"`
	CustomColorOption     bool              `json:"custom_color_option"`
	ExactHeightOption     bool              `json:"exact_height_option"`
	DefaultGlassColor     string            `json:"default_glass_color"`
	DefaultGlassThickness string            `json:"default_glass_thickness"`
	IsSystem              bool              `json:"is_system"`
	CreatedAt             time.Time         `json:"created_at"`
	UpdatedAt             time.Time         `json:"updated_at"`
}
