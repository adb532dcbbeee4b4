package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppName  string
	SeedFile string
}

func Load() *Config {
	// .env é opcional; ambiente sempre vence
	_ = godotenv.Load()

	return &Config{
		AppName:  getEnv("APP_NAME", "Claudia Martínez Estética Spa"),
		SeedFile: getEnv("SEED_FILE", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
