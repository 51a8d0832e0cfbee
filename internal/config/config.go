package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds application configuration
type Config struct {
	Port      string
	DBConn    string
	LogLevel  string
	JWTSecret string

	// PublicRoutes are the route names exempt from the session gate.
	PublicRoutes []string

	// BanxicoURL is the SIE XML feed used to fetch the reference rate.
	BanxicoURL   string
	BanxicoToken string

	// SMTP settings for the overdue-credit reminder mail. Reminders stay
	// disabled while SMTPHost is empty.
	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SenderEmail   string
	ReminderEmail string
	ReminderCron  string
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		DBConn:        getEnv("DB_CONN", "host=localhost port=5432 user=financiera password=financiera dbname=financiera sslmode=disable"),
		LogLevel:      getEnv("LOG_LEVEL", "INFO"),
		JWTSecret:     getEnv("JWT_SECRET", "secret"),
		PublicRoutes:  splitList(getEnv("PUBLIC_ROUTES", "login,register,logout,healthz")),
		BanxicoURL:    getEnv("BANXICO_URL", "https://www.banxico.org.mx/SieAPIRest/service/v1/series/SF43783/datos/oportuno"),
		BanxicoToken:  getEnv("BANXICO_TOKEN", ""),
		SMTPHost:      getEnv("SMTP_HOST", ""),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUsername:  getEnv("SMTP_USERNAME", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		SenderEmail:   getEnv("SENDER_EMAIL", ""),
		ReminderEmail: getEnv("REMINDER_EMAIL", ""),
		ReminderCron:  getEnv("REMINDER_CRON", "0 8 * * *"),
	}

	if cfg.DBConn == "" {
		return nil, fmt.Errorf("DB_CONN is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
