package types

// Config represents the configuration for the calculator binaries
type Config struct {
	Prompt   string `json:"prompt,omitempty"`
	LogLevel string `json:"log_level,omitempty"`
}
