package infra

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port           string `envconfig:"PORT" default:"8080"`
	SecretKey      string `envconfig:"SECRET_KEY" required:"true"`
	DatabaseURL    string `envconfig:"DATABASE_URL"`
	DatabaseFile   string `envconfig:"DATABASE_FILE" default:"gotaskr.db"`
	AutoMigrate    bool   `envconfig:"AUTO_MIGRATE" default:"false"`
	TokenExpiryMin int    `envconfig:"TOKEN_EXPIRY_MIN" default:"60"`
}

func LoadConfig() (Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	return c, err
}
