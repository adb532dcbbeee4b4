package main

import (
	"log"
	"os"

	"github.com/BruksfildServices01/estetica-admin/internal/audit"
	"github.com/BruksfildServices01/estetica-admin/internal/clock"
	"github.com/BruksfildServices01/estetica-admin/internal/config"
	"github.com/BruksfildServices01/estetica-admin/internal/seed"
	"github.com/BruksfildServices01/estetica-admin/internal/store"
	"github.com/BruksfildServices01/estetica-admin/internal/ui"
)

func main() {

	cfg := config.Load()

	st := store.New()

	ds := seed.Default(clock.Today())
	if cfg.SeedFile != "" {
		loaded, err := seed.Load(cfg.SeedFile)
		if err != nil {
			log.Fatalf("failed to load seed file: %v", err)
		}
		ds = loaded
	}
	seed.Apply(st, ds)

	recorder := audit.NewRecorder()

	log.Printf("%s — console ready", cfg.AppName)

	router := ui.NewRouter(os.Stdin, os.Stdout, st, recorder, cfg)
	if err := router.Run(); err != nil {
		log.Fatalf("console error: %v", err)
	}
}
