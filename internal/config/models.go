package config

// Config represents the entire user configuration file.
// It stores application preferences only; wizard selections are never saved.
type Config struct {
	Version     int          `yaml:"version"`
	Preferences *Preferences `yaml:"preferences,omitempty"`
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	AltScreen    bool   `yaml:"alt_screen"`          // Run the wizard in the terminal's alternate screen
	ShowProgress bool   `yaml:"show_progress"`       // Render the progress bar above the panels
	OutputFormat string `yaml:"output_format"`       // Default format for resolve/catalog (detailed, compact, json, yaml)
	LogLevel     string `yaml:"log_level,omitempty"` // Logging level; empty means silent
	LogFile      string `yaml:"log_file,omitempty"`  // Log destination; empty means stderr
}

// Output formats accepted by resolve and catalog
const (
	FormatDetailed = "detailed"
	FormatCompact  = "compact"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
)

// OutputFormats lists every supported output format
var OutputFormats = []string{FormatDetailed, FormatCompact, FormatJSON, FormatYAML}

// currentVersion is the schema version written by this build
const currentVersion = 1

// New creates a Config with default values.
func New() *Config {
	return &Config{
		Version: currentVersion,
		Preferences: &Preferences{
			AltScreen:    true,
			ShowProgress: true,
			OutputFormat: FormatDetailed,
		},
	}
}

// IsValidFormat reports whether format is a supported output format
func IsValidFormat(format string) bool {
	for _, f := range OutputFormats {
		if f == format {
			return true
		}
	}
	return false
}

// applyDefaults repairs fields a file can blank out explicitly, such as an
// empty preferences block or output_format.
func (c *Config) applyDefaults() {
	defaults := New()
	if c.Version == 0 {
		c.Version = currentVersion
	}
	if c.Preferences == nil {
		c.Preferences = defaults.Preferences
		return
	}
	if c.Preferences.OutputFormat == "" {
		c.Preferences.OutputFormat = defaults.Preferences.OutputFormat
	}
}
