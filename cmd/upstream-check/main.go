// Command upstream-check verifies the FundSpring API is reachable with the
// configured URL. Useful before deploys and when diagnosing empty list pages.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/FundSpring/FS-Web/internal/config"
	"github.com/FundSpring/FS-Web/internal/upstream"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	client := upstream.NewClient(cfg.UpstreamURL)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	start := time.Now()
	if err := client.HealthCheck(ctx); err != nil {
		fmt.Printf("FAILED: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("OK: %s reachable in %dms\n", cfg.UpstreamURL, time.Since(start).Milliseconds())
}
