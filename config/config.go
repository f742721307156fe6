package config

// Config struct holds application configuration
// This is a simple way to make config accessible globally.
// A more advanced approach might use dependency injection.
type Config struct {
	DatabaseURL  string
	GeminiAPIKey string
	GeminiModel  string
	JWTSecret    string
	DataFile     string // local JSON dataset, the fallback when no DB is configured
}

// AppConfig holds the application-wide configuration
var AppConfig Config
