package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"     validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"     validate:"required"`
	Gin       GinConfig       `yaml:"gin"        validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"   validate:"required"`
	Auth      AuthConfig      `yaml:"auth"       validate:"required"`
	Admin     AdminConfig     `yaml:"admin"`
	Notify    NotifyConfig    `yaml:"notify"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Scheduler SchedulerConfig `yaml:"scheduler"  validate:"required"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog" validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info" validate:"required,oneof=debug info warn error"`
}

func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost" validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"      validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"  validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"  validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"partypass" validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"   validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"        validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"         validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"        validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type AuthConfig struct {
	JWTSecret   string        `yaml:"jwt_secret"   env:"JWT_SECRET"   env-default:"dev_secret_change_me" validate:"required"`
	TokenTTL    time.Duration `yaml:"token_ttl"    env:"JWT_TTL"      env-default:"12h"                  validate:"gt=0"`
	BcryptCost  int           `yaml:"bcrypt_cost"  env:"BCRYPT_COST"  env-default:"10"                   validate:"min=4,max=31"`
	MinPassword int           `yaml:"min_password" env:"MIN_PASSWORD" env-default:"6"                    validate:"min=1"`
}

// AdminConfig seeds the default admin account on startup. The seed is
// idempotent: an existing admin row is left untouched.
type AdminConfig struct {
	Name     string `yaml:"name"     env:"ADMIN_NAME"     env-default:"Admin User"`
	Email    string `yaml:"email"    env:"ADMIN_EMAIL"    env-default:"admin@party.com"`
	Password string `yaml:"password" env:"ADMIN_PASSWORD" env-default:"admin123"`
}

type NotifyConfig struct {
	Timeout       time.Duration `yaml:"timeout"         env:"NOTIFY_TIMEOUT" env-default:"5s" validate:"gt=0"`
	PublicBaseURL string        `yaml:"public_base_url" env:"PUBLIC_BASE_URL"`
	SMTP          SMTPConfig    `yaml:"smtp"`
	Twilio        TwilioConfig  `yaml:"twilio"`
}

type SMTPConfig struct {
	Host string `yaml:"host" env:"SMTP_HOST"`
	Port int    `yaml:"port" env:"SMTP_PORT" env-default:"587"`
	User string `yaml:"user" env:"SMTP_USER"`
	Pass string `yaml:"pass" env:"SMTP_PASS"`
	From string `yaml:"from" env:"SMTP_FROM"`
}

// Configured reports whether every field needed to open an SMTP
// session is present.
func (c SMTPConfig) Configured() bool {
	return c.Host != "" && c.Port != 0 && c.User != "" && c.Pass != "" && c.From != ""
}

type TwilioConfig struct {
	AccountSID   string `yaml:"account_sid"   env:"TWILIO_ACCOUNT_SID"`
	AuthToken    string `yaml:"auth_token"    env:"TWILIO_AUTH_TOKEN"`
	WhatsAppFrom string `yaml:"whatsapp_from" env:"TWILIO_WHATSAPP_FROM"`
}

func (c TwilioConfig) Configured() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.WhatsAppFrom != ""
}

type RateLimitConfig struct {
	Requests int           `yaml:"requests" env:"RATE_LIMIT_REQUESTS" env-default:"60" validate:"min=1"`
	Window   time.Duration `yaml:"window"   env:"RATE_LIMIT_WINDOW"   env-default:"1m" validate:"gt=0"`
}

type SchedulerConfig struct {
	SweepInterval time.Duration `yaml:"sweep_interval" env:"SWEEP_INTERVAL" env-default:"30s" validate:"required,gt=0"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
