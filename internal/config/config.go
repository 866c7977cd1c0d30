package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	LLM      LLMConfig      `mapstructure:"llm"      validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DatabaseConfig contains all database-related configuration settings.
// Path is used by the sqlite driver, URL by the postgres driver.
type DatabaseConfig struct {
	Driver string `mapstructure:"driver" validate:"required,oneof=sqlite postgres"`
	Path   string `mapstructure:"path"   validate:"required_if=Driver sqlite"`
	URL    string `mapstructure:"url"    validate:"required_if=Driver postgres"`
}

// AuthConfig contains credential hashing settings.
type AuthConfig struct {
	// BcryptCost is the bcrypt work factor used for every registration.
	BcryptCost int `mapstructure:"bcrypt_cost" validate:"gte=4,lte=31"`
}

// Supported text-generation providers.
const (
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// LLMConfig contains settings for the external pathway generator.
// API keys are supplied per request by the user and never stored here.
type LLMConfig struct {
	Provider          string `mapstructure:"provider"            validate:"required,oneof=gemini openai anthropic"`
	Model             string `mapstructure:"model"`
	MaxTokens         int    `mapstructure:"max_tokens"          validate:"gt=0,lte=8192"`
	MaxTopics         int    `mapstructure:"max_topics"          validate:"gt=0,lte=15"`
	MaxRetries        int    `mapstructure:"max_retries"         validate:"gte=0,lte=10"`
	RetryDelaySeconds int    `mapstructure:"retry_delay_seconds" validate:"gte=0"`
	TimeoutSeconds    int    `mapstructure:"timeout_seconds"     validate:"gt=0"`
}
