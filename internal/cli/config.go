package cli

import (
	"os"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatPNG  = "png"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	Format    string
	Verbose   bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("WORDSEARCH_SERVER", "http://localhost:8080"),
		Format:    getEnvOrDefault("WORDSEARCH_FORMAT", FormatText),
		Verbose:   false,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
