package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NSQ       NSQConfig
	JWT       JWTConfig
	OTP       OTPConfig
	RateLimit RateLimitConfig
	SMTP      SMTPConfig
	Logger    LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ daemon addresses and the notification topic.
type NSQConfig struct {
	Address         string
	LookupAddresses []string
	OTPEmailTopic   string
	Channel         string
}

// JWTConfig contains token signing configuration. Expiration values are
// minutes.
type JWTConfig struct {
	Secret            string
	AccessExpiration  int
	RefreshExpiration int
	ScopedExpiration  int
	Issuer            string
}

// OTPConfig contains the verification-code policy.
type OTPConfig struct {
	TTLMinutes  int
	MaxAttempts int
	CodeLength  int
}

// RateLimitConfig throttles the OTP endpoints per client identity.
type RateLimitConfig struct {
	IssueLimit   int
	IssuePeriod  int // seconds
	VerifyLimit  int
	VerifyPeriod int // seconds
}

// SMTPConfig is used by the notification worker to send OTP mail.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level       string
	Environment string
}
