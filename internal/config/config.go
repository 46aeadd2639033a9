package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort    string
	DatabaseDSN string
	CORSOrigins string

	// Masa silme işlemini koruyan paylaşımlı parola. Gerçek bir kimlik
	// sistemi değildir; sadece yanlışlıkla silmeyi engeller.
	DeletePassword     string
	DeletePasswordHash string // bcrypt hash, tanımlıysa düz parola yerine bu kullanılır

	TaxRate  float64 // yüzde, ör: 18
	Currency string  // fatura çıktısındaki para birimi öneki
}

func Load() *Config {
	// .env varsa yükle, yoksa sorun değil
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:        getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=salon port=5432 sslmode=disable"),
		CORSOrigins:        getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		DeletePassword:     getEnv("DELETE_PASSWORD", "Hello@123"),
		DeletePasswordHash: getEnv("DELETE_PASSWORD_HASH", ""),
		TaxRate:            getEnvFloat("TAX_RATE", 18),
		Currency:           getEnv("CURRENCY_SYMBOL", "Rs."),
	}

	// Production güvenlik kontrolleri
	if cfg.TaxRate < 0 || cfg.TaxRate > 100 {
		log.Fatalf("[FATAL] TAX_RATE 0 ile 100 arasında olmalı: %v", cfg.TaxRate)
	}
	if cfg.DeletePasswordHash == "" && cfg.DeletePassword == "Hello@123" {
		log.Println("[WARN] DELETE_PASSWORD varsayılan değer kullanılıyor, production için mutlaka kendi parolanı tanımla.")
	}
	if cfg.DatabaseDSN == "host=localhost user=postgres password=postgres dbname=salon port=5432 sslmode=disable" {
		log.Println("[WARN] DATABASE_DSN varsayılan değer kullanılıyor, production için mutlaka kendi Postgres bağlantı bilgisini tanımla.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Fatalf("[FATAL] %s sayısal bir değer olmalı: %q", key, v)
	}
	return f
}
