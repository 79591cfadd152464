package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/FundSpring/FS-Web/internal/auth"
	"github.com/FundSpring/FS-Web/internal/cache"
	"github.com/FundSpring/FS-Web/internal/campaigns"
	"github.com/FundSpring/FS-Web/internal/config"
	"github.com/FundSpring/FS-Web/internal/db"
	"github.com/FundSpring/FS-Web/internal/middleware"
	"github.com/FundSpring/FS-Web/internal/session"
	"github.com/FundSpring/FS-Web/internal/upstream"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	db.Connect(cfg.DatabaseURL)
	session.Init()

	client := upstream.NewClient(cfg.UpstreamURL)

	var campaignCache *cache.Campaigns
	if cfg.RedisURL != "" {
		campaignCache = cache.NewCampaigns(cache.OpenRedis(cfg.RedisURL), cfg.CacheTTL)
	}

	auth.Init(client)
	campaigns.Init(client, campaignCache)

	r := chi.NewRouter()
	r.Use(middleware.SessionMiddleware(session.SessionInfo{}))

	fileServer := http.FileServer(http.Dir("./ui/static/"))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	auth.RegisterRoutes(r)
	campaigns.RegisterRoutes(r)

	fmt.Printf("Server listening on port :%s...\n", cfg.Port)

	if err := http.ListenAndServe("0.0.0.0:"+cfg.Port, r); err != nil {
		log.Fatal("Server failed: ", err)
	}
}
