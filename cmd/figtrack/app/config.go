package app

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/figtrack/figtrack"
	"github.com/figtrack/figtrack/pkg/reconcile"
)

// Config holds the application configuration loaded from config files,
// environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool

	// Config file
	ConfigFile string

	// Tracker configuration
	CatalogPath       string
	LineupURL         string
	FigureAPIURL      string
	CacheHours        int
	MinSimilarity     float64
	BackfillThreshold float64
	HTTPTimeout       time.Duration

	// Logging configuration
	LogLevel  string
	LogFormat string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables (FIGTRACK_*)
// 3. .env files
// 4. Config file (~/.figtrack.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	loadEnvFiles()

	viper.SetEnvPrefix("figtrack")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	configFile := viper.GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType("yaml")
			viper.SetConfigName(".figtrack")
		}
	}

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()

	config := &Config{
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),
		NoColor: viper.GetBool("no-color"),

		ConfigFile: viper.ConfigFileUsed(),

		CatalogPath:       viper.GetString("catalog_path"),
		LineupURL:         viper.GetString("lineup_url"),
		FigureAPIURL:      viper.GetString("figure_api_url"),
		CacheHours:        viper.GetInt("cache_hours"),
		MinSimilarity:     viper.GetFloat64("min_similarity"),
		BackfillThreshold: viper.GetFloat64("backfill_threshold"),
		HTTPTimeout:       viper.GetDuration("http_timeout"),

		LogLevel:  getEnvOrDefault("LOG_LEVEL", ""),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
	}

	// Defaults
	if config.CatalogPath == "" {
		config.CatalogPath = figtrack.DefaultStorePath
	}
	if config.CacheHours == 0 {
		config.CacheHours = int(figtrack.DefaultCacheTTL / time.Hour)
	}
	if config.MinSimilarity == 0 {
		config.MinSimilarity = reconcile.DefaultMinSimilarity
	}
	if config.BackfillThreshold == 0 {
		config.BackfillThreshold = reconcile.DefaultBackfillThreshold
	}

	return config, nil
}

// CacheTTL returns the staleness window as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheHours) * time.Hour
}

// UpdateFromFlags updates config values from parsed command flags so flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env.
func loadEnvFiles() {
	envFiles := []string{
		".env",
		".env.local",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
