package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Matching MatchingConfig `yaml:"matching"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	RatePerMinute   int           `yaml:"rate_per_minute"  env:"SERVER_RATE_PER_MINUTE"  env-default:"120"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds JWT verification settings. Token issuance (login,
// sessions) lives in an external identity service; this backend only
// validates bearer tokens it is handed.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"amoura"`
}

// MatchingConfig holds the tuning knobs of the matching engine.
type MatchingConfig struct {
	// UndoWindow is how long a just-made decision stays reversible.
	UndoWindow time.Duration `yaml:"undo_window" env:"MATCHING_UNDO_WINDOW" env-default:"30s"`

	// DailyLikeLimit caps LIKE decisions per user per calendar day.
	// Zero disables the limit. Passes are never limited.
	DailyLikeLimit int `yaml:"daily_like_limit" env:"MATCHING_DAILY_LIKE_LIMIT" env-default:"100"`

	// CandidateLimit bounds the SQL pre-filter result per discovery call.
	CandidateLimit int `yaml:"candidate_limit" env:"MATCHING_CANDIDATE_LIMIT" env-default:"500"`

	// Compatibility score weights. Must sum to 1.0.
	DistanceWeight  float64 `yaml:"distance_weight"  env:"MATCHING_DISTANCE_WEIGHT"  env-default:"0.15"`
	AgeWeight       float64 `yaml:"age_weight"       env:"MATCHING_AGE_WEIGHT"       env-default:"0.10"`
	InterestWeight  float64 `yaml:"interest_weight"  env:"MATCHING_INTEREST_WEIGHT"  env-default:"0.25"`
	LifestyleWeight float64 `yaml:"lifestyle_weight" env:"MATCHING_LIFESTYLE_WEIGHT" env-default:"0.25"`
	PaceWeight      float64 `yaml:"pace_weight"      env:"MATCHING_PACE_WEIGHT"      env-default:"0.15"`
	ResponseWeight  float64 `yaml:"response_weight"  env:"MATCHING_RESPONSE_WEIGHT"  env-default:"0.10"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// WeightSum returns the sum of the six score weights.
func (m MatchingConfig) WeightSum() float64 {
	return m.DistanceWeight + m.AgeWeight + m.InterestWeight +
		m.LifestyleWeight + m.PaceWeight + m.ResponseWeight
}
