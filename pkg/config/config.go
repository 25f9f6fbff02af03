package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Session      SessionConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"QUOTER_APP_ENV" required:"true"`
	Port         string `envconfig:"QUOTER_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"QUOTER_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"QUOTER_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"QUOTER_DB_DSN"`
	Driver string `envconfig:"QUOTER_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"QUOTER_DB_HOST"`
	LegacyPort     int    `envconfig:"QUOTER_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"QUOTER_DB_USER"`
	LegacyPassword string `envconfig:"QUOTER_DB_PASSWORD"`
	LegacyName     string `envconfig:"QUOTER_DB_NAME"`
	LegacySSLMode  string `envconfig:"QUOTER_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"QUOTER_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"QUOTER_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"QUOTER_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"QUOTER_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"QUOTER_REDIS_URL" required:"true"`
	Address      string        `envconfig:"QUOTER_REDIS_ADDR"`
	Password     string        `envconfig:"QUOTER_REDIS_PASSWORD"`
	DB           int           `envconfig:"QUOTER_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"QUOTER_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"QUOTER_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"QUOTER_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"QUOTER_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"QUOTER_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type SessionConfig struct {
	TTLMinutes int `envconfig:"QUOTER_SESSION_TTL_MINUTES" default:"1440"`
}

// TTL returns the builder session TTL configured in minutes.
func (s SessionConfig) TTL() time.Duration {
	if s.TTLMinutes <= 0 {
		return 0
	}
	return time.Duration(s.TTLMinutes) * time.Minute
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"QUOTER_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
