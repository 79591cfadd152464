package auth

import (
	"github.com/FundSpring/FS-Web/internal/upstream"
	"github.com/go-chi/chi/v5"
)

func Init(client *upstream.Client) {
	Client = client
}

func RegisterRoutes(r chi.Router) {
	r.Get("/login", LoginPageHandler)
	r.Post("/login", LoginHandler)
	r.Get("/register", RegisterPageHandler)
	r.Post("/register", RegisterHandler)
	r.Post("/logout", LogoutHandler)
}
