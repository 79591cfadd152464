package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/FundSpring/FS-Web/internal/session"
	"github.com/FundSpring/FS-Web/internal/utils"
)

type SessionFetcher interface {
	FindSessionByID(id string) (utils.SessionData, error)
}

const cookieName = "session_id"

// SessionMiddleware resolves the session cookie and, when it maps to a live
// session, injects the session data into the request context. Anonymous or
// expired visitors pass through untouched; page handlers decide what to show.
func SessionMiddleware(fetcher SessionFetcher) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			sess, err := fetcher.FindSessionByID(cookie.Value)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			if sess.ExpiresAt.Before(time.Now()) {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), utils.ContextSessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireLogin gates protected pages. Anonymous visitors get the requested
// path stashed and are redirected to the login page; after logging in the
// stash is consumed as the redirect target.
func RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetSessionFromContext(r.Context()); !ok {
			session.SetPendingRedirect(w, r.URL.Path)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
