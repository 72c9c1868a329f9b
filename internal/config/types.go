package config

// Config is the proppanel configuration document.
type Config struct {
	Version          string            `yaml:"version" validate:"required,semver"`
	Logging          Logging           `yaml:"logging,omitempty"`
	Data             Data              `yaml:"data,omitempty"`
	Panel            Panel             `yaml:"panel,omitempty"`
	ClassMappings    []ClassMapping    `yaml:"class_mappings,omitempty" validate:"omitempty,dive"`
	ControlOverrides []ControlOverride `yaml:"control_overrides,omitempty" validate:"omitempty,dive"`
}

// Logging configures the zerolog backed logger.
type Logging struct {
	Level         string `yaml:"level,omitempty" validate:"omitempty,oneof=trace debug info warn error disabled"`
	HumanReadable bool   `yaml:"human_readable,omitempty"`
}

// Data points at files replacing the embedded data tables. Empty paths keep
// the embedded copies.
type Data struct {
	BaseStyles    string `yaml:"base_styles,omitempty"`
	Blocks        string `yaml:"blocks,omitempty"`
	ClassMappings string `yaml:"class_mappings,omitempty"`
}

// Panel holds assembly settings.
type Panel struct {
	DefaultElement string `yaml:"default_element,omitempty" validate:"omitempty,alphanum,lowercase"`
}

// ClassMapping adds or replaces one class mapping at startup.
type ClassMapping struct {
	Class       string            `yaml:"class" validate:"required,css_class"`
	Controls    []string          `yaml:"controls,omitempty" validate:"omitempty,dive,control_type"`
	Defaults    map[string]string `yaml:"defaults,omitempty"`
	Readonly    bool              `yaml:"readonly,omitempty"`
	Description string            `yaml:"description,omitempty"`
}

// ControlOverride patches a built-in control definition. Unset fields keep
// the built-in values.
type ControlOverride struct {
	Type       string  `yaml:"type" validate:"required,control_type"`
	Label      *string `yaml:"label,omitempty"`
	Priority   *int    `yaml:"priority,omitempty" validate:"omitempty,min=0"`
	Group      *string `yaml:"group,omitempty" validate:"omitempty,control_group"`
	Icon       *string `yaml:"icon,omitempty"`
	Responsive *bool   `yaml:"responsive,omitempty"`
	Hover      *bool   `yaml:"hover,omitempty"`
}

// DefaultVersion is the version of documents this build writes and expects.
const DefaultVersion = "1.0"

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Version: DefaultVersion,
		Logging: Logging{Level: "info", HumanReadable: true},
		Panel:   Panel{DefaultElement: "div"},
	}
}
