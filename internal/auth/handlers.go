package auth

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/FundSpring/FS-Web/internal/render"
	"github.com/FundSpring/FS-Web/internal/session"
	"github.com/FundSpring/FS-Web/internal/token"
	"github.com/FundSpring/FS-Web/internal/upstream"
	"github.com/FundSpring/FS-Web/internal/utils"
)

// Client is the upstream API client used by the auth handlers, set in Init.
var Client *upstream.Client

type loginPage struct {
	render.BaseData
	Username string
	Error    string
}

type registerPage struct {
	render.BaseData
	Form    upstream.RegisterInput
	Error   string
	Success string
}

func sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     "session_id",
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   os.Getenv("APP_ENV") == "production",
	}
}

func LoginPageHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := utils.GetSessionFromContext(r.Context()); ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	render.Page(w, "login.html", loginPage{BaseData: render.Base(r)})
}

func LoginHandler(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	if username == "" || password == "" {
		render.Page(w, "login.html", loginPage{
			BaseData: render.Base(r),
			Username: username,
			Error:    "Username and password are required",
		})
		return
	}

	pair, err := Client.CreateToken(r.Context(), username, password)
	if err != nil {
		msg := "Login failed. Please check your credentials."
		if errors.Is(err, upstream.ErrUnauthenticated) {
			msg = "Invalid username or password"
		} else {
			log.Println("login request failed: ", err)
		}
		render.Page(w, "login.html", loginPage{
			BaseData: render.Base(r),
			Username: username,
			Error:    msg,
		})
		return
	}

	// Prefer the name embedded in the token; fall back to what was typed.
	displayName := username
	if claims, err := token.Decode(pair.Access); err == nil && claims.Username != "" {
		displayName = claims.Username
	}

	sessionID, err := session.Create(displayName, pair.Access, pair.Refresh)
	if err != nil {
		log.Println("failed to store session: ", err)
		render.Page(w, "login.html", loginPage{
			BaseData: render.Base(r),
			Username: username,
			Error:    "Login failed. Please try again.",
		})
		return
	}

	http.SetCookie(w, sessionCookie(sessionID, 0))

	target := session.ConsumePendingRedirect(w, r)
	if target == "" {
		target = "/"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func RegisterPageHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := utils.GetSessionFromContext(r.Context()); ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	render.Page(w, "register.html", registerPage{BaseData: render.Base(r)})
}

func RegisterHandler(w http.ResponseWriter, r *http.Request) {
	form := upstream.RegisterInput{
		Username:   strings.TrimSpace(r.FormValue("username")),
		Email:      strings.TrimSpace(r.FormValue("email")),
		Phone:      strings.TrimSpace(r.FormValue("phone")),
		Password:   r.FormValue("password"),
		RePassword: r.FormValue("re_password"),
	}

	// Client-side rules block the request before it ever leaves this host.
	if errs := ValidateRegisterForm(form.Username, form.Email, form.Phone, form.Password, form.RePassword); len(errs) > 0 {
		render.Page(w, "register.html", registerPage{
			BaseData: render.Base(r),
			Form:     form,
			Error:    strings.Join(errs, "; "),
		})
		return
	}

	if err := Client.CreateUser(r.Context(), form); err != nil {
		msg := "Something went wrong"
		var vErr *upstream.ValidationError
		if errors.As(err, &vErr) {
			msg = vErr.Message()
		} else {
			log.Println("register request failed: ", err)
		}
		render.Page(w, "register.html", registerPage{
			BaseData: render.Base(r),
			Form:     form,
			Error:    msg,
		})
		return
	}

	// Success page redirects itself to /login after a short delay.
	render.Page(w, "register.html", registerPage{
		BaseData: render.Base(r),
		Success:  "Registration successful! Redirecting to login...",
	})
}

func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if sess, ok := utils.GetSessionFromContext(r.Context()); ok {
		if err := session.Delete(sess.SessionID); err != nil {
			log.Println("failed to delete session: ", err)
		}
	}

	http.SetCookie(w, sessionCookie("", -1))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
