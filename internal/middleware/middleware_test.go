package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/FundSpring/FS-Web/internal/middleware"
	"github.com/FundSpring/FS-Web/internal/session"
	"github.com/FundSpring/FS-Web/internal/utils"
)

// mockFetcher implements middleware.SessionFetcher without any database dependency.
type mockFetcher struct {
	session utils.SessionData
	err     error
}

func (m mockFetcher) FindSessionByID(id string) (utils.SessionData, error) {
	return m.session, m.err
}

// callWithCookie wraps an inner handler in the provided middleware, optionally
// setting one cookie on the request, and returns the recorded response.
func callWithCookie(t *testing.T, mw func(http.Handler) http.Handler, inner http.Handler, cookieName, cookieValue string) *httptest.ResponseRecorder {
	t.Helper()

	handler := mw(inner)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if cookieName != "" {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: cookieValue})
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// okUnlessSession replies 200 and reports whether a session was injected.
func okUnlessSession(t *testing.T, wantSession bool) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := utils.GetSessionFromContext(r.Context())
		if ok != wantSession {
			http.Error(w, "unexpected session presence", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}

// TestSessionMiddleware_MissingCookie verifies that a request with no session_id
// cookie passes through anonymously: no session in context, no rejection.
func TestSessionMiddleware_MissingCookie(t *testing.T) {
	mw := middleware.SessionMiddleware(mockFetcher{})

	rec := callWithCookie(t, mw, okUnlessSession(t, false), "", "")

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d; body: %s", rec.Code, rec.Body.String())
	}
}

// TestSessionMiddleware_ExpiredSession verifies that an expired session is not
// injected; the visitor is treated as anonymous.
func TestSessionMiddleware_ExpiredSession(t *testing.T) {
	fetcher := mockFetcher{
		session: utils.SessionData{
			SessionID: "expired-session-id",
			Username:  "alice",
			ExpiresAt: time.Now().Add(-1 * time.Hour),
		},
	}
	mw := middleware.SessionMiddleware(fetcher)

	rec := callWithCookie(t, mw, okUnlessSession(t, false), "session_id", "expired-session-id")

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d; body: %s", rec.Code, rec.Body.String())
	}
}

// TestSessionMiddleware_FetcherError verifies that a fetcher error (e.g. session
// not found) also leaves the request anonymous.
func TestSessionMiddleware_FetcherError(t *testing.T) {
	fetcher := mockFetcher{err: errors.New("session not found")}
	mw := middleware.SessionMiddleware(fetcher)

	rec := callWithCookie(t, mw, okUnlessSession(t, false), "session_id", "nonexistent-session-id")

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d; body: %s", rec.Code, rec.Body.String())
	}
}

// TestSessionMiddleware_ValidSession verifies that a valid, non-expired session
// is injected into the context.
func TestSessionMiddleware_ValidSession(t *testing.T) {
	const wantUsername = "alice"

	fetcher := mockFetcher{
		session: utils.SessionData{
			SessionID:   "valid-session-id",
			Username:    wantUsername,
			AccessToken: "tok",
			ExpiresAt:   time.Now().Add(1 * time.Hour),
		},
	}

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := utils.GetSessionFromContext(r.Context())
		if !ok {
			http.Error(w, "session not in context", http.StatusInternalServerError)
			return
		}
		if sess.Username != wantUsername {
			http.Error(w, "wrong username in context: "+sess.Username, http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	mw := middleware.SessionMiddleware(fetcher)
	rec := callWithCookie(t, mw, inner, "session_id", "valid-session-id")

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d; body: %s", rec.Code, rec.Body.String())
	}
}

// TestRequireLogin_Anonymous verifies that an anonymous request to a protected
// path is redirected to /login with the original path stashed for later.
func TestRequireLogin_Anonymous(t *testing.T) {
	handler := middleware.RequireLogin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/create-campaign", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Errorf("expected redirect to /login, got %q", loc)
	}

	var stash *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.RedirectCookie {
			stash = c
		}
	}
	if stash == nil {
		t.Fatal("expected pending redirect cookie to be set")
	}
	if stash.Value != "/create-campaign" {
		t.Errorf("expected stashed path /create-campaign, got %q", stash.Value)
	}
}

// TestRequireLogin_Authenticated verifies that a logged-in request passes
// straight through.
func TestRequireLogin_Authenticated(t *testing.T) {
	fetcher := mockFetcher{
		session: utils.SessionData{
			SessionID: "s",
			Username:  "alice",
			ExpiresAt: time.Now().Add(time.Hour),
		},
	}

	handler := middleware.SessionMiddleware(fetcher)(
		middleware.RequireLogin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})))

	req := httptest.NewRequest(http.MethodGet, "/create-campaign", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "s"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}
