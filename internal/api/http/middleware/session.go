package middleware

import (
	"cmp"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/yalgashev/survey/config"
	"github.com/yalgashev/survey/internal/session"
	"github.com/yalgashev/survey/pkg/reqctx"
)

const (
	DefaultSessionCookie = "evaluation_session"
	LocalSessionID       = "evaluation_session"
)

// EvaluationSession binds the request to a wizard session id kept in an
// HTTP-only cookie, issuing a new id when the cookie is missing or malformed.
// The id is exposed through reqctx.SessionIDFromContext.
func EvaluationSession(cfg config.EvaluationConfig) fiber.Handler {
	name := cmp.Or(cfg.CookieName, DefaultSessionCookie)
	ttl := session.DefaultTTL
	if cfg.SessionTTLMinutes > 0 {
		ttl = time.Duration(cfg.SessionTTLMinutes) * time.Minute
	}

	return func(c fiber.Ctx) error {
		sid := c.Cookies(name)
		if _, err := uuid.Parse(sid); err != nil {
			sid = uuid.NewString()
		}

		// Refresh on every request so the cookie outlives the stored progress.
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    sid,
			Path:     "/",
			Expires:  time.Now().Add(ttl),
			HTTPOnly: true,
			Secure:   cfg.CookieSecure,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		c.Locals(LocalSessionID, sid)

		if meta, ok := reqctx.RequestMetaFromContext(c.Context()); ok {
			meta.SessionID = sid
		} else {
			c.SetContext(reqctx.WithRequestMeta(c.Context(), &reqctx.RequestMeta{
				SessionID:   sid,
				RequestedAt: time.Now(),
			}))
		}

		return c.Next()
	}
}
