package middleware

import (
	"log/slog"
	"net/http"

	"github.com/ryukh1003/blog/internal/server/auth"
	"github.com/ryukh1003/blog/internal/server/token"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "token"

// SessionMiddleware resolves an optional authenticated identity from
// the token cookie and attaches it before any handler runs.
//
// It is a single-pass, non-rejecting gate: a missing, malformed or
// stale token is logged and degraded to the anonymous state, never an
// error. Authorization decisions belong to downstream handlers that
// inspect auth.FromContext.
func SessionMiddleware(logger *slog.Logger, codec *token.Codec, creds *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			proceed := func(ac auth.Context) {
				next.ServeHTTP(w, r.WithContext(auth.WithContext(ctx, ac)))
			}

			cookie, err := r.Cookie(SessionCookieName)
			if err != nil {
				proceed(auth.Anonymous())
				return
			}

			userID, err := codec.Verify(cookie.Value)
			if err != nil {
				logger.WarnContext(ctx, "invalid session token", slog.Any("error", err))
				proceed(auth.Anonymous())
				return
			}

			// The token may outlive the account it asserts.
			user, err := creds.Lookup(ctx, userID)
			if err != nil {
				logger.WarnContext(ctx, "session user not resolvable",
					slog.String("userid", userID),
					slog.Any("error", err))
				proceed(auth.Anonymous())
				return
			}

			proceed(auth.Authenticated(user))
		})
	}
}
