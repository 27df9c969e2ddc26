package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var loadOnce sync.Once

// defaults cover local development only. A real deployment overrides all of
// them through the environment.
var defaults = map[string]string{
	"APP_ADDR":         ":8002",
	"DB_HOST":          "localhost",
	"DB_PORT":          "5432",
	"DB_USER":          "postgres",
	"DB_PASSWORD":      "postgres",
	"DB_NAME":          "club_cinema",
	"SESSION_SECRET":   "dev-club-cinema",
	"ADMIN_PASSWORD":   "nnhs2025!",
	"TEACHER_PASSCODE": "namnyeong123",
	"REDIS_ADDR":       "localhost:6379",
	"UPLOAD_DIR":       "./uploads",
}

// Config reads a key from .env / the environment, falling back to the
// development default when unset.
func Config(key string) string {
	loadOnce.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("no .env file, using environment")
		}
	})
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaults[key]
}
