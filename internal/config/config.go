package config

import (
	"log"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	SecretKey   string `env:"SECRET_KEY" env-required:"true"`
	DatabaseURL string `env:"DATABASE_URL" env-required:"true"`
	Addr        string `env:"ADDR" env-default:":8080"`
	UploadsDir  string `env:"UPLOADS_DIR" env-default:"static/uploads"`
	Templates   string `env:"TEMPLATES_GLOB" env-default:"templates/*.html"`
}

// MustLoad reads configuration from the environment, first applying a .env
// file when one is present.
func MustLoad() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it")
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("Failed to read configuration: %v", err)
	}
	return &cfg
}
