package config

import (
	"time"
)

type DB struct {
	Url string `envconfig:"URL"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[fabrick-gateway]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

// Fabrick holds the upstream credential set. Loaded once at startup and
// never mutated afterwards.
type Fabrick struct {
	BaseURL          string        `envconfig:"BASE_URL" default:"https://sandbox.platfr.io"`
	AuthSchema       string        `envconfig:"AUTH_SCHEMA" default:"S2S"`
	ApiKey           string        `envconfig:"API_KEY" required:"true"`
	BalancePath      string        `envconfig:"BALANCE_PATH" default:"/api/gbs/banking/v4.0/accounts/{accountId}/balance"`
	TransactionsPath string        `envconfig:"TRANSACTIONS_PATH" default:"/api/gbs/banking/v4.0/accounts/{accountId}/transactions"`
	TransfersPath    string        `envconfig:"TRANSFERS_PATH" default:"/api/gbs/banking/v4.0/accounts/{accountId}/payments/money-transfers"`
	HTTPTimeout      time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
}

type Cache struct {
	Size int           `envconfig:"SIZE" default:"1024"`
	TTL  time.Duration `envconfig:"TTL" default:"5m"`
}

type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	DB        *DB        `envconfig:"DATABASE"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
	Fabrick   *Fabrick   `envconfig:"FABRICK"`
	Cache     *Cache     `envconfig:"CACHE"`
}
