package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Environment variable names. Flags take precedence over these.
const (
	envHost              = "NETWORTH_HOST"
	envPort              = "NETWORTH_PORT"
	envSpreadsheetID     = "NETWORTH_SPREADSHEET_ID"
	envSheetRange        = "NETWORTH_SHEET_RANGE"
	envGoogleCredentials = "NETWORTH_GOOGLE_CREDENTIALS"
	envSheetsAPIKey      = "NETWORTH_SHEETS_API_KEY"
	envGeminiAPIKey      = "NETWORTH_GEMINI_API_KEY"
	envGeminiModel       = "NETWORTH_GEMINI_MODEL"
	envLogDir            = "NETWORTH_LOG_DIR"
	envLogLevel          = "NETWORTH_LOG_LEVEL"
	envLogFormat         = "NETWORTH_LOG_FORMAT"
)

// Defaults applied when neither flag nor environment provides a value.
const (
	DefaultHost       = "127.0.0.1"
	DefaultPort       = 8000
	DefaultSheetRange = "Tracker!A1:P40"
	DefaultLogDir     = "logs"
)

// Config is the explicit configuration object handed to collaborators
// at construction. The engine itself never reads environment state;
// everything it needs arrives through here.
type Config struct {
	Host string
	Port int

	// Sheet source. When SpreadsheetID is empty the server falls back
	// to the built-in sample grid.
	SpreadsheetID   string
	SheetRange      string
	CredentialsFile string
	SheetsAPIKey    string

	// Optional AI insights provider.
	GeminiAPIKey string
	GeminiModel  string

	LogDir    string
	LogLevel  slog.Level
	LogFormat string // "text" or "json"
}

// Load builds a Config from the environment, applying defaults.
func Load() Config {
	return Config{
		Host:            getenvDefault(envHost, DefaultHost),
		Port:            getenvInt(envPort, DefaultPort),
		SpreadsheetID:   strings.TrimSpace(os.Getenv(envSpreadsheetID)),
		SheetRange:      getenvDefault(envSheetRange, DefaultSheetRange),
		CredentialsFile: strings.TrimSpace(os.Getenv(envGoogleCredentials)),
		SheetsAPIKey:    strings.TrimSpace(os.Getenv(envSheetsAPIKey)),
		GeminiAPIKey:    strings.TrimSpace(os.Getenv(envGeminiAPIKey)),
		GeminiModel:     strings.TrimSpace(os.Getenv(envGeminiModel)),
		LogDir:          getenvDefault(envLogDir, DefaultLogDir),
		LogLevel:        parseLevel(os.Getenv(envLogLevel), slog.LevelInfo),
		LogFormat:       strings.ToLower(strings.TrimSpace(os.Getenv(envLogFormat))),
	}
}

// Validate rejects combinations the server cannot start with.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.SpreadsheetID != "" && c.CredentialsFile == "" && c.SheetsAPIKey == "" {
		return fmt.Errorf("spreadsheet %s configured without credentials or api key", c.SpreadsheetID)
	}
	return nil
}

// UseSampleGrid reports whether the server should serve the built-in
// sample grid instead of fetching a spreadsheet.
func (c Config) UseSampleGrid() bool {
	return c.SpreadsheetID == ""
}

// Addr returns the host:port listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getenvDefault(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getenvInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return i
}

func parseLevel(value string, fallback slog.Level) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return fallback
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		if i, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return slog.Level(i)
		}
		return fallback
	}
}
