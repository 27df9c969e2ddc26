package middleware

import (
	"time"

	"club_cinema/config"
	"club_cinema/database"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

var store *session.Store

// Session keys
const (
	KeyConsentState     = "consent_state"
	KeyTeacherAttempts  = "teacher_attempts"
	KeyTeacherLockUntil = "teacher_lock_until"
)

// InitSessionStore backs sessions with Redis when SESSION_STORE=redis,
// in-memory otherwise.
func InitSessionStore() {
	cfg := session.Config{
		Expiration:     24 * time.Hour,
		KeyLookup:      "cookie:club_cinema_session",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	}
	if config.Config("SESSION_STORE") == "redis" {
		cfg.Storage = &database.SessionStorage{Prefix: "sess:"}
	}
	store = session.New(cfg)
}

func GetSession(c *fiber.Ctx) (*session.Session, error) {
	if store == nil {
		InitSessionStore()
	}
	return store.Get(c)
}
