package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ServerPort     string        `envconfig:"SERVER_PORT" default:"8080"`
	DataDir        string        `envconfig:"DATA_DIR" default:"./data"`
	SessionSecret  string        `envconfig:"SESSION_SECRET" required:"true"`
	SessionTTL     time.Duration `envconfig:"SESSION_TTL" default:"24h"`
	PasswordScheme string        `envconfig:"PASSWORD_SCHEME" default:"sha256"`
	AllowedOrigins []string      `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`

	// Default admin seeded when the admin collection is empty.
	AdminUsername string `envconfig:"ADMIN_USERNAME" default:"admin"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:"admin123"`
	AdminEmail    string `envconfig:"ADMIN_EMAIL" default:"sagarmalideora@gmail.com"`
	AdminName     string `envconfig:"ADMIN_NAME" default:"Admin User"`
}

// Load reads .env when present, then the environment. Missing required
// settings are fatal at startup.
func Load() *Config {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("config: %v", err)
	}
	return &cfg
}
