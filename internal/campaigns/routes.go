package campaigns

import (
	"github.com/FundSpring/FS-Web/internal/cache"
	"github.com/FundSpring/FS-Web/internal/middleware"
	"github.com/FundSpring/FS-Web/internal/upstream"
	"github.com/go-chi/chi/v5"
)

func Init(client *upstream.Client, campaignCache *cache.Campaigns) {
	Client = client
	Cache = campaignCache
}

func RegisterRoutes(r chi.Router) {
	// Public: the list is browsable without an account.
	r.Get("/", HomeHandler)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireLogin)

		r.Get("/create-campaign", CreateFormHandler)
		r.Post("/create-campaign", CreateHandler)
		r.Get("/my-campaigns", MyCampaignsHandler)

		r.Get("/campaigns/{id}", CampaignDetailHandler)
		r.Get("/campaigns/{id}/donate", DonateFormHandler)
		r.Post("/campaigns/{id}/donate", DonateHandler)
		r.Get("/campaigns/{id}/edit", EditFormHandler)
		r.Post("/campaigns/{id}/edit", EditHandler)
		r.Get("/campaigns/{id}/delete", DeleteConfirmHandler)
		r.Post("/campaigns/{id}/delete", DeleteHandler)
	})
}
