package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPort                 = "PORT"
	EnvAWSRegion            = "AWS_REGION"
	EnvDynamoDBEndpoint     = "DYNAMODB_ENDPOINT"
	EnvGatewaysTable        = "GATEWAYS_TABLE"
	EnvBankConnectionsTable = "BANK_CONNECTIONS_TABLE"
	EnvLedgerTable          = "LEDGER_TABLE"
	EnvRedisURL             = "REDIS_URL"
	EnvHandshakeTTL         = "OAUTH_HANDSHAKE_TTL"
	EnvBankAPIMock          = "BANK_API_MOCK"
	EnvBankAPIBaseURL       = "BANK_API_BASE_URL"
	EnvPaymentGatewayMock   = "PAYMENT_GATEWAY_MOCK"
	EnvExternalTimeout      = "PAYMENT_EXTERNAL_TIMEOUT"
	EnvReceiptTimeZone      = "RECEIPT_TIME_ZONE"
)

type Config struct {
	App      AppConfig
	AWS      AWSConfig
	Redis    RedisConfig
	OAuth    OAuthConfig
	Payments PaymentsConfig
	Receipt  ReceiptConfig
}

// Load reads the configuration from the environment. A .env file, when
// present, is loaded beforehand by godotenv/autoload in main.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.OAuth.HandshakeTTL <= 0 {
		return nil, fmt.Errorf("%s must be positive", EnvHandshakeTTL)
	}
	if cfg.Payments.ExternalTimeout < 0 {
		return nil, fmt.Errorf("%s must not be negative", EnvExternalTimeout)
	}
	if _, err := cfg.Receipt.Location(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env       string `envconfig:"APP_ENV" default:"development"`
	Port      int    `envconfig:"PORT" default:"8080"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, "production")
}

type AWSConfig struct {
	Region               string `envconfig:"AWS_REGION" default:"us-east-1"`
	AccessKeyID          string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	SecretAccessKey      string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	DynamoDBEndpoint     string `envconfig:"DYNAMODB_ENDPOINT"`
	GatewaysTable        string `envconfig:"GATEWAYS_TABLE" default:"payment_gateways"`
	BankConnectionsTable string `envconfig:"BANK_CONNECTIONS_TABLE" default:"bank_connections"`
	LedgerTable          string `envconfig:"LEDGER_TABLE" default:"payment_ledger"`
}

type RedisConfig struct {
	URL         string        `envconfig:"REDIS_URL"`
	Address     string        `envconfig:"REDIS_ADDR"`
	Password    string        `envconfig:"REDIS_PASSWORD"`
	DB          int           `envconfig:"REDIS_DB" default:"0"`
	DialTimeout time.Duration `envconfig:"REDIS_DIAL_TIMEOUT" default:"5s"`
}

// Enabled reports whether a Redis endpoint is configured. Without it the
// service keeps OAuth handshakes in memory.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

type OAuthConfig struct {
	ClientID        string        `envconfig:"BANK_OAUTH_CLIENT_ID"`
	ClientSecret    string        `envconfig:"BANK_OAUTH_CLIENT_SECRET"`
	RedirectURL     string        `envconfig:"BANK_OAUTH_REDIRECT_URL" default:"http://localhost:8080/v1/bank-connections/callback"`
	HandshakeTTL    time.Duration `envconfig:"OAUTH_HANDSHAKE_TTL" default:"10m"`
	DefaultTokenTTL time.Duration `envconfig:"BANK_TOKEN_DEFAULT_TTL" default:"1h"`
	BankAPIMock     bool          `envconfig:"BANK_API_MOCK" default:"false"`
	APIBaseURL      string        `envconfig:"BANK_API_BASE_URL" default:"https://openbanking-sandbox.local"`
	Scopes          []string      `envconfig:"BANK_OAUTH_SCOPES" default:"accounts,payments"`
	RequestTimeout  time.Duration `envconfig:"BANK_API_TIMEOUT" default:"10s"`
}

// PaymentsConfig holds external provider settings. Access tokens here are
// fallbacks for gateways registered without an API key.
type PaymentsConfig struct {
	GatewayMock            bool          `envconfig:"PAYMENT_GATEWAY_MOCK" default:"false"`
	MercadoPagoAccessToken string        `envconfig:"MERCADOPAGO_ACCESS_TOKEN"`
	SquareAccessToken      string        `envconfig:"SQUARE_ACCESS_TOKEN"`
	ExternalTimeout        time.Duration `envconfig:"PAYMENT_EXTERNAL_TIMEOUT" default:"15s"`
	SquareEnvironment      string        `envconfig:"SQUARE_ENVIRONMENT" default:"sandbox"`
	SquareLocationID       string        `envconfig:"SQUARE_LOCATION_ID"`
}

type ReceiptConfig struct {
	CompanyName string `envconfig:"RECEIPT_COMPANY_NAME"`
	TimeZone    string `envconfig:"RECEIPT_TIME_ZONE" default:"America/Sao_Paulo"`
}

func (r ReceiptConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(r.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", EnvReceiptTimeZone, r.TimeZone, err)
	}
	return loc, nil
}
