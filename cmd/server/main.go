// cmd/server/main.go
package main

import (
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/unclebandit/smscampaign-backend/internal/config"
	"github.com/unclebandit/smscampaign-backend/internal/controller"
	"github.com/unclebandit/smscampaign-backend/internal/db"
	"github.com/unclebandit/smscampaign-backend/internal/repository"
	"github.com/unclebandit/smscampaign-backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	conn, err := db.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer conn.Close()
	log.Println("✅ Connected to database:", cfg.DatabasePath)

	seed := cfg.RandSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	campaignService := &service.CampaignService{
		CampaignRepo: &repository.CampaignRepository{DB: conn},
		ContactRepo:  &repository.ContactRepository{DB: conn},
		DeliveryRepo: &repository.DeliveryRepository{DB: conn},
		Rand:         rand.New(rand.NewSource(seed)),
	}

	campaignController := &controller.CampaignController{
		CampaignService: campaignService,
	}

	r := controller.NewRouter(campaignController, cfg.CORSAllowedOrigins)

	log.Println("🚀 Server running on", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, r))
}
