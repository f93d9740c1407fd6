package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyUUID   = key("uuid")
	KeyLogger = key("logger")
)

type Config struct {
	Service    Service
	Postgres   ReadEnvPostgres
	Logger     Logger
	Platform   Platform
	Auth       Auth
	Centrifuge Centrifuge
}

type Service struct {
	Port string `env:"MESSAGING_SERVICE_PORT" env-default:"8080"`
	Name string `env:"MESSAGING_SERVICE_NAME" env-default:"messaging-service"`
}

type ReadEnvPostgres struct {
	User     string `env:"MESSAGING_SERVICE_POSTGRES_USER"`
	Password string `env:"MESSAGING_SERVICE_POSTGRES_PASSWORD"`
	Database string `env:"MESSAGING_SERVICE_POSTGRES_DB"`
	Host     string `env:"MESSAGING_SERVICE_POSTGRES_HOST"`
	Port     string `env:"MESSAGING_SERVICE_POSTGRES_PORT" env-default:"5432"`
}

type Logger struct {
	Host string `env:"LOGGER_SERVICE_HOST"`
	Port string `env:"LOGGER_SERVICE_PORT"`
}

type Platform struct {
	Env string `env:"ENV" env-default:"dev"`
}

type Auth struct {
	// Secret used to verify bearer access tokens issued by the auth service.
	AccessSecret string `env:"AUTH_ACCESS_SECRET" env-required:"true"`
}

type Centrifuge struct {
	BaseURL   string        `env:"CENTRIFUGO_BASE_URL"`
	APIKey    string        `env:"CENTRIFUGO_API_KEY"`
	JWTSecret string        `env:"CENTRIFUGO_JWT_SECRET"`
	Timeout   time.Duration `env:"CENTRIFUGO_TIMEOUT" env-default:"5s"`
}

func MustLoad() *Config {
	cfg := &Config{}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read env variables: %s", err)
	}

	return cfg
}
