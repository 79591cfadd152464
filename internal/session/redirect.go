package session

import (
	"net/http"
	"strings"
)

// RedirectCookie remembers where an anonymous visitor was headed before being
// sent to the login page. It lives in its own cookie rather than the session
// table because the visitor has no session row yet.
const RedirectCookie = "redirect_after_login"

func SetPendingRedirect(w http.ResponseWriter, path string) {
	// Only same-site absolute paths are ever stashed; anything else would
	// turn the login redirect into an open redirect.
	if !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") {
		path = "/"
	}
	http.SetCookie(w, &http.Cookie{
		Name:     RedirectCookie,
		Value:    path,
		Path:     "/",
		MaxAge:   600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ConsumePendingRedirect returns the stashed path (or "" if none) and clears
// the cookie.
func ConsumePendingRedirect(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(RedirectCookie)
	if err != nil || cookie.Value == "" {
		return ""
	}

	http.SetCookie(w, &http.Cookie{
		Name:   RedirectCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	path := cookie.Value
	if !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") {
		return ""
	}
	return path
}
