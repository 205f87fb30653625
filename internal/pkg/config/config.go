package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, policy limits, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Payment  PaymentConfig
	Registry RegistryConfig
	Sales    SalesConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// PaymentConfig points at the external payment processor. Webhook signature
// verification is handled upstream; only the order API credentials live here.
type PaymentConfig struct {
	BaseURL      string        `envconfig:"PAYMENT_BASE_URL" required:"true"`
	ClientID     string        `envconfig:"PAYMENT_CLIENT_ID" required:"true"`
	ClientSecret string        `envconfig:"PAYMENT_CLIENT_SECRET" required:"true"`
	ReturnURL    string        `envconfig:"PAYMENT_RETURN_URL" default:"https://localhost/checkout/return"`
	CancelURL    string        `envconfig:"PAYMENT_CANCEL_URL" default:"https://localhost/checkout/cancel"`
	CallTimeout  time.Duration `envconfig:"PAYMENT_CALL_TIMEOUT" default:"10s"`
}

// RegistryConfig points at the external revocation registry gateway. The
// registry is advisory: a timeout here degrades to a warning, never a
// rejected ticket.
type RegistryConfig struct {
	Endpoint        string        `envconfig:"REGISTRY_ENDPOINT" required:"true"`
	ContractAddress string        `envconfig:"REGISTRY_CONTRACT_ADDRESS" required:"true"`
	SigningKey      string        `envconfig:"REGISTRY_SIGNING_KEY" required:"true"`
	CallTimeout     time.Duration `envconfig:"REGISTRY_CALL_TIMEOUT" default:"8s"`
	CycleTimeout    time.Duration `envconfig:"REGISTRY_CYCLE_TIMEOUT" default:"2m"`
	WorkerInterval  time.Duration `envconfig:"REGISTRY_WORKER_INTERVAL" default:"30s"`
}

type SalesConfig struct {
	MaxPerPurchase int           `envconfig:"SALES_MAX_PER_PURCHASE" default:"5"`
	ReservationTTL time.Duration `envconfig:"SALES_RESERVATION_TTL" default:"15m"`
	EventEndGrace  time.Duration `envconfig:"SALES_EVENT_END_GRACE" default:"1h"`
	AmountEpsilon  string        `envconfig:"SALES_AMOUNT_EPSILON" default:"0.01"`
	SweepInterval  time.Duration `envconfig:"SALES_SWEEP_INTERVAL" default:"1m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "24h",
		},
		Payment: PaymentConfig{
			BaseURL:      "https://payment.test",
			ClientID:     "test-client",
			ClientSecret: "test-secret",
			CallTimeout:  time.Second,
		},
		Registry: RegistryConfig{
			Endpoint:        "https://registry.test",
			ContractAddress: "0xtest",
			SigningKey:      "test-signing-key",
			CallTimeout:     time.Second,
			CycleTimeout:    5 * time.Second,
			WorkerInterval:  time.Second,
		},
		Sales: SalesConfig{
			MaxPerPurchase: 5,
			ReservationTTL: 15 * time.Minute,
			EventEndGrace:  time.Hour,
			AmountEpsilon:  "0.01",
			SweepInterval:  time.Minute,
		},
	}
}
