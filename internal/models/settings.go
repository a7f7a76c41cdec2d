package models

// Settings represents the dashboard settings file.
// This corresponds to ~/.dialer-dashboard/settings.yaml.
type Settings struct {
	Version int    `yaml:"version"`
	APIURL  string `yaml:"api_url,omitempty"` // explicit base URL override
	APIKey  string `yaml:"api_key,omitempty"`
	// Environment selects the default base URL when api_url is unset:
	// "development" targets the local backend, anything else production.
	Environment string `yaml:"environment"`
	PollSeconds int    `yaml:"poll_seconds"`
	LogLimit    int    `yaml:"log_limit"`
	ExportDir   string `yaml:"export_dir,omitempty"` // default: current directory
	LogLevel    string `yaml:"log_level"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version:     1,
		Environment: "production",
		PollSeconds: 5,
		LogLimit:    100,
		LogLevel:    "info",
	}
}
