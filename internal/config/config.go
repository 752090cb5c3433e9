package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	DBDSN      string
	LogFile    string
	BaseURL    string
	AdminEmail string // account granted the ADMIN role at seed time
	RelayURL   string // contact relay endpoint (Formspree-style)

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	SMTPFrom string
}

func Load() Config {
	// .env is optional; real env always wins.
	_ = godotenv.Load()

	cfg := Config{
		Port:       getenv("PORT", "8080"),
		DBDSN:      getenv("DB_DSN", "morefix.db"),
		LogFile:    getenv("LOG_FILE", "./morefix.log"),
		BaseURL:    getenv("BASE_URL", "http://localhost:8080"),
		AdminEmail: getenv("ADMIN_EMAIL", "admin@morefix.test"),
		RelayURL:   getenv("RELAY_URL", "https://formspree.io/f/xanjpgka"),
		SMTPHost:   os.Getenv("SMTP_HOST"),
		SMTPPort:   getenv("SMTP_PORT", "587"),
		SMTPUser:   os.Getenv("SMTP_USER"),
		SMTPPass:   os.Getenv("SMTP_PASS"),
		SMTPFrom:   getenv("SMTP_FROM", "no-reply@morefix.test"),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s ADMIN_EMAIL=%s", cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.AdminEmail)
	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
