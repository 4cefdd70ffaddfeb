// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Submission SubmissionConfig `mapstructure:"submission"`
	Uploads    UploadConfig     `mapstructure:"uploads"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Address         string `mapstructure:"address"`
	ReadTimeout     int    `mapstructure:"read_timeout"`     // milliseconds
	WriteTimeout    int    `mapstructure:"write_timeout"`    // milliseconds
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // milliseconds
}

type DatabaseConfig struct {
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// --- Domain Configuration Sections ---

// AuthConfig holds settings for the credential store and sessions.
type AuthConfig struct {
	BcryptCost      int `mapstructure:"bcrypt_cost"`
	SessionTTL      int `mapstructure:"session_ttl"`     // minutes
	SimulatedDelay  int `mapstructure:"simulated_delay"` // milliseconds
	MinPasswordSize int `mapstructure:"min_password_size"`
}

// SubmissionConfig holds settings for the submission pipeline and the
// registry gateway behind it. With gateway_url unset the simulated gateway
// is used.
type SubmissionConfig struct {
	GatewayURL     string  `mapstructure:"gateway_url"`
	GatewayDelay   int     `mapstructure:"gateway_delay"`   // milliseconds
	GatewayTimeout int     `mapstructure:"gateway_timeout"` // milliseconds
	FailureRate    float64 `mapstructure:"failure_rate"`    // [0,1]
}

// UploadConfig holds settings for the simulated document upload tracker.
type UploadConfig struct {
	TickInterval int `mapstructure:"tick_interval"` // milliseconds
	TickPercent  int `mapstructure:"tick_percent"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
