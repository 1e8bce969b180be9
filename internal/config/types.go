package config

// Config is the extdeck application configuration document.
type Config struct {
	// CatalogFile optionally replaces the built-in startup catalog.
	CatalogFile   string            `yaml:"catalog_file,omitempty" env:"CATALOG_FILE"`
	Preferences   PreferencesConfig `yaml:"preferences,omitempty" envPrefix:"PREFERENCES_"`
	LogLevel      string            `yaml:"log_level,omitempty" env:"LOG_LEVEL" validate:"omitempty,oneof=trace debug info warn error disabled"`
	LogFile       string            `yaml:"log_file,omitempty" env:"LOG_FILE"`
	ConfirmRemove bool              `yaml:"confirm_remove" env:"CONFIRM_REMOVE"`
	Unicode       string            `yaml:"unicode,omitempty" env:"UNICODE" validate:"omitempty,oneof=auto on off"`
}

// PreferencesConfig selects the durable store for the theme preference.
type PreferencesConfig struct {
	Backend string `yaml:"backend,omitempty" env:"BACKEND" validate:"omitempty,oneof=json sqlite"`
	Path    string `yaml:"path,omitempty" env:"PATH"`
}

const (
	UnicodeAuto = "auto"
	UnicodeOn   = "on"
	UnicodeOff  = "off"
)
