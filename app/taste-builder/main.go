package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"applianceReco/business/builder"
	"applianceReco/business/taste"
	psqlRepo "applianceReco/internal/repository/postgres"
	"applianceReco/pkg/config"
	"applianceReco/pkg/database/postgres"
	"applianceReco/pkg/logger"
)

func main() {
	var (
		tasteRange  = flag.String("taste-range", "", "inclusive taste id range to build, e.g. \"1-120\"")
		force       = flag.Bool("force", false, "rebuild tastes that already have a stored config")
		concurrency = flag.Int("concurrency", 0, "parallel taste builds (default from config)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	defer logger.Sync()

	if *tasteRange == "" {
		*tasteRange = fmt.Sprintf("1-%d", cfg.Taste.TasteCount)
	}
	from, to, err := builder.ParseTasteRange(*tasteRange)
	if err != nil {
		logger.Fatal("Invalid taste range", "error", err)
	}

	db, err := postgres.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	workers := cfg.Taste.BuilderConcurrency
	if *concurrency > 0 {
		workers = *concurrency
	}

	b := builder.NewBuilder(
		taste.DefaultRegistry(),
		taste.Selector{
			DiffFactor:    cfg.Taste.SelectorDiffFactor,
			MaxShare:      cfg.Taste.SelectorMaxShare,
			FallbackShare: cfg.Taste.SelectorFallbackShare,
		},
		psqlRepo.NewTasteConfigRepository(db),
		psqlRepo.NewProductScoreRepository(db),
		builder.Options{
			Force:       *force,
			Concurrency: workers,
			TopProducts: cfg.Taste.TopProductsPerCat,
		},
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	summary, err := b.BuildRange(ctx, from, to)
	if err != nil {
		logger.Fatal("Build run aborted", "error", err)
	}

	if summary.Failed > 0 {
		logger.Error("Build run finished with failures",
			"run_id", summary.RunID,
			"failed", summary.Failed,
		)
		os.Exit(1)
	}

	logger.Info("Build run finished",
		"run_id", summary.RunID,
		"built", summary.Built,
		"updated", summary.Updated,
		"unchanged", summary.Unchanged,
		"skipped", summary.Skipped,
		"scorer_failures", summary.ScorerFailures,
	)
}
