package main

import (
	"context"
	"flag"
	"log"

	"github.com/osse101/PlotFarm_Go/internal/bootstrap"
	"github.com/osse101/PlotFarm_Go/internal/config"
)

// reset replaces the saved farm in the configured store with a fresh one.
func main() {
	force := flag.Bool("force", false, "overwrite the saved farm without asking")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if !*force {
		log.Fatalf("Refusing to reset the %s save without -force", cfg.SaveDriver)
	}

	ctx := context.Background()
	svc, store, err := bootstrap.BuildFarm(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open farm: %v", err)
	}
	defer store.Close()

	if err := svc.Reset(ctx); err != nil {
		log.Fatalf("Failed to reset farm: %v", err)
	}
	if err := svc.Persist(ctx); err != nil {
		log.Fatalf("Failed to save fresh farm: %v", err)
	}
	log.Printf("Farm reset (driver=%s, %dx%d, %d gold)", cfg.SaveDriver, cfg.GridWidth, cfg.GridHeight, cfg.StartingGold)
}
