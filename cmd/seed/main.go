package main

import (
	"context"
	"log"
	"time"

	"github.com/khoahotran/portfolio-api/adapters/persistence"
	seedUC "github.com/khoahotran/portfolio-api/internal/application/usecase/seed"
	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

// Seeds an empty database with the starter content. Safe to run repeatedly.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Postgres: %v", err)
	}
	defer dbPool.Close()

	seeder := seedUC.NewSeedUseCase(
		persistence.NewPostgresAccountRepo(dbPool),
		persistence.NewPostgresHeroRepo(dbPool, appLogger),
		persistence.NewPostgresProjectRepo(dbPool, appLogger),
		persistence.NewPostgresExperienceRepo(dbPool, appLogger),
		persistence.NewPostgresEducationRepo(dbPool, appLogger),
		persistence.NewPostgresAchievementRepo(dbPool, appLogger),
		persistence.NewPostgresLeadershipRepo(dbPool, appLogger),
		persistence.NewPostgresSkillRepo(dbPool, appLogger),
		appLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := seeder.Run(ctx); err != nil {
		log.Fatalf("FATAL: seeding failed: %v", err)
	}
	appLogger.Info("Seeding complete")
}
