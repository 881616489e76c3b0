package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type (
	Container struct {
		App           *App
		Token         *Token
		HTTP          *HTTP
		Redis         *Redis
		DealershipAPI *DealershipAPI
		Telemetry     *Telemetry
	}

	App struct {
		Name string
		Env  string
	}

	Token struct {
		Secret   string
		Duration string
	}

	HTTP struct {
		Env            string
		Port           string
		AllowedOrigins string
		URL            string
	}

	Redis struct {
		Address  string
		Password string
	}

	DealershipAPI struct {
		Host     string
		BasePath string
		Scheme   string
		Timeout  string
	}

	Telemetry struct {
		Exporter string
		Endpoint string
	}
)

func New() (*Container, error) {
	if os.Getenv("APP_ENV") != "production" {
		err := godotenv.Load()
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	app := &App{
		Name: getEnv("APP_NAME", "storefront"),
		Env:  os.Getenv("APP_ENV"),
	}

	token := &Token{
		Secret:   os.Getenv("TOKEN_SECRET"),
		Duration: os.Getenv("TOKEN_DURATION"),
	}
	if token.Secret == "" {
		return nil, errors.New("TOKEN_SECRET is required")
	}

	http := &HTTP{
		Port:           getEnv("HTTP_PORT", "8081"),
		AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		URL:            os.Getenv("HTTP_URL"),
		Env:            os.Getenv("APP_ENV"),
	}

	redis := &Redis{
		Address:  getEnv("REDIS_ADDRESS", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
	}

	dealershipAPI := &DealershipAPI{
		Host:     getEnv("DEALERSHIP_API_HOST", "localhost:8000"),
		BasePath: getEnv("DEALERSHIP_API_BASE_PATH", "/api"),
		Scheme:   getEnv("DEALERSHIP_API_SCHEME", "http"),
		Timeout:  os.Getenv("DEALERSHIP_API_TIMEOUT"),
	}

	telemetry := &Telemetry{
		Exporter: os.Getenv("OTEL_EXPORTER"),
		Endpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}

	return &Container{
		App:           app,
		Token:         token,
		HTTP:          http,
		Redis:         redis,
		DealershipAPI: dealershipAPI,
		Telemetry:     telemetry,
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// TTL is the session lifetime. Accepts "24h" or a number of minutes.
func (t *Token) TTL() time.Duration {
	if d, err := time.ParseDuration(t.Duration); err == nil && d > 0 {
		return d
	}
	if minutes, err := strconv.Atoi(t.Duration); err == nil && minutes > 0 {
		return time.Duration(minutes) * time.Minute
	}
	return 24 * time.Hour // дефолт если ошибка
}

func (d *DealershipAPI) TimeoutDuration() time.Duration {
	timeout, err := time.ParseDuration(d.Timeout)
	if err != nil || timeout <= 0 {
		return 10 * time.Second
	}
	return timeout
}

func (d *DealershipAPI) Schemes() []string {
	return []string{strings.ToLower(d.Scheme)}
}
