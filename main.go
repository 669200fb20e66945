package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/colordash/go-server/internal/achievements"
	"github.com/colordash/go-server/internal/httpserver"
	"github.com/colordash/go-server/internal/prefs"
	"github.com/colordash/go-server/internal/scores"
	"github.com/colordash/go-server/internal/session"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	db, err := openDB(getEnv("DB_PATH", "./data/app.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	if err := migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	store := prefs.NewSQL(db)
	scoreStore := scores.NewStore(store)
	achievementStore := achievements.NewStore(store)

	mgr := session.NewManager(session.NewManagerOptions{
		Scores:       scoreStore,
		Achievements: achievementStore,
	})
	defer mgr.Shutdown()

	srv := httpserver.New(mgr, scoreStore, achievementStore, db)
	port := getEnv("PORT", "5175")
	log.Info().Str("port", port).Msg("starting colordash-go")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
