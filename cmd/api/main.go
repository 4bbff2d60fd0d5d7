package main

import (
	"context"
	"log"

	"github.com/entitykit/entity-backend/config"
	"github.com/entitykit/entity-backend/internal/bootstrap"
)

const serviceName = "entity-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	db, err := bootstrap.OpenDB(context.Background(), bootstrap.DBOptions{
		DSN:          cfg.Database.DSN,
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
	})
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer db.Close()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		APIKey:      cfg.Auth.APIKey,
		RatePerSec:  cfg.Server.RatePerSec,
		RateBurst:   cfg.Server.RateBurst,
		DB:          db,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal(err)
	}
}
