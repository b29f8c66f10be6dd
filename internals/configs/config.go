package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret           string
	AdminAccessCode     string
	AdminAccessCodeHash string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file found, using system ENV")
		} else {
			log.Println("✅ .env file loaded!")
		}
	} else {
		log.Println("🚀 Running in Railway, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	AdminAccessCode = GetEnv("ADMIN_ACCESS_CODE")
	AdminAccessCodeHash = GetEnv("ADMIN_ACCESS_CODE_HASH")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET not set!")
	} else {
		log.Println("✅ JWT_SECRET loaded.")
	}

	if AdminAccessCode == "" && AdminAccessCodeHash == "" {
		log.Println("❌ ADMIN_ACCESS_CODE / ADMIN_ACCESS_CODE_HASH not set, admin console is locked!")
	} else {
		log.Println("✅ Admin access code loaded.")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
