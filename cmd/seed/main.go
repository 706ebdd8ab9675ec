// Command seed populates the database with development fixtures: one account
// per role and two hotels with room types. Safe to run repeatedly.
package main

import (
	"context"
	"os"

	"github.com/stayhub/hotel-booking/internal/infrastructure/config"
	mongodb "github.com/stayhub/hotel-booking/internal/infrastructure/db/mongo"
	"github.com/stayhub/hotel-booking/internal/infrastructure/seed"
	"github.com/stayhub/hotel-booking/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(logger.Options{Level: cfg.LogLevel, Env: cfg.Env})

	client, db, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connect failed")
	}
	defer client.Disconnect(context.Background())

	users := mongodb.NewUserRepository(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user indexes failed")
	}

	loader := seed.NewLoader(users, mongodb.NewHotelRepository(db), mongodb.NewRoomTypeRepository(db), log)
	if err := loader.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
	log.Info().Msg("seed complete")
}
