package middlewares

import (
	"context"
	"net/http"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/rs/zerolog/log"

	_ "github.com/joho/godotenv/autoload"
)

type contextKey string

// SessionContextKey holds the opaque device session id on the request
// context. Downstream code treats the id as a constant for its lifetime.
const SessionContextKey contextKey = "sessionID"

const sessionCookieName = "toolkit_session"

var (
	cookieStoreOnce sync.Once
	store           *sessions.CookieStore
)

func cookieStore() *sessions.CookieStore {
	cookieStoreOnce.Do(func() {
		secret := os.Getenv("SESSION_SECRET")
		if secret == "" {
			log.Warn().Msg("SESSION_SECRET not set, using an insecure development secret")
			secret = "toolkit-dev-secret"
		}
		store = sessions.NewCookieStore([]byte(secret))
		store.Options = &sessions.Options{
			Path:     "/",
			MaxAge:   60 * 60 * 24 * 365,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		}
	})
	return store
}

// SessionMiddleware assigns each device an opaque session id on first visit
// and carries it in a cookie from then on. Bookmarks are scoped to this id;
// there are no user accounts.
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := cookieStore().Get(r, sessionCookieName)
		if err != nil {
			// A tampered or re-keyed cookie decodes to a fresh session.
			log.Warn().Err(err).Msg("Could not decode session cookie, issuing a new session")
		}

		id, ok := sess.Values["id"].(string)
		if !ok || id == "" {
			id = uuid.NewString()
			sess.Values["id"] = id
			if err := sess.Save(r, w); err != nil {
				log.Error().Err(err).Msg("Failed to save session cookie")
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}
			log.Debug().Str("session", id).Msg("New device session created")
		}

		ctx := context.WithValue(r.Context(), SessionContextKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionFromContext returns the device session id set by SessionMiddleware.
func SessionFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(SessionContextKey).(string)
	return id, ok && id != ""
}
