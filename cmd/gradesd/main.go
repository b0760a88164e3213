package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	api "github.com/mind-engage/mindengage-grades/internal/api/http"
	"github.com/mind-engage/mindengage-grades/internal/config"
	"github.com/mind-engage/mindengage-grades/internal/db"
	"github.com/mind-engage/mindengage-grades/internal/grading"
	"github.com/mind-engage/mindengage-grades/internal/metrics"
	"github.com/mind-engage/mindengage-grades/internal/scores"
)

func main() {
	cfg := config.FromEnv()

	weights, err := config.LoadWeights(cfg.WeightsFile)
	if err != nil {
		log.Fatalf("weights: %v", err)
	}
	engine, err := grading.NewEngine(grading.WithWeights(weights), grading.WithStrictMeans(cfg.StrictMeans))
	if err != nil {
		log.Fatalf("engine: %v", err)
	}

	// --- Store ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var store scores.Store
	if db.Driver(cfg.DBDriver) == db.DriverMemory {
		store = scores.NewMemStore()
	} else {
		dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
		if err != nil {
			log.Fatalf("db open failed: %v", err)
		}
		defer dbh.Close()
		store = scores.NewSQLStore(dbh, cfg.DBDriver)
	}

	if cfg.SeedFile != "" {
		recs, err := scores.LoadSeedFile(cfg.SeedFile)
		if err != nil {
			log.Fatalf("seed: %v", err)
		}
		if err := store.InsertRecords(ctx, recs); err != nil {
			log.Fatalf("seed import: %v", err)
		}
		log.Printf("imported %d score records from %s", len(recs), cfg.SeedFile)
	}

	// --- Metrics ---
	grades := &api.GradesAPI{Store: store, Engine: engine}
	opts := api.RouterOptions{CORSOrigins: cfg.CORSOrigins()}
	if cfg.EnableMetrics {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		grades.Metrics = metrics.New(reg)
		opts.Gatherer = reg
	}

	r := api.NewRouter(grades, opts)

	log.Printf("listening on %s (mode=%s, db=%s)", cfg.HTTPAddr, cfg.Mode, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
