// Command seed loads the demo account into the planner database.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/shreywv2007/StudyFlow/internal/config"
	"github.com/shreywv2007/StudyFlow/internal/logger"
	"github.com/shreywv2007/StudyFlow/internal/seed"
	"github.com/shreywv2007/StudyFlow/internal/store"
)

func main() {
	_ = godotenv.Load()

	log, err := logger.New(os.Getenv("LOG_MODE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	cfg := config.Load(log)

	dbPath := flag.String("db", cfg.DBPath, "database file to seed")
	password := flag.String("password", "demo123", "demo account password")
	out := flag.String("out", "", "also write a snapshot of the seeded database to this path")
	flag.Parse()

	ctx := context.Background()
	st, err := store.Open(ctx, *dbPath, log)
	if err != nil {
		log.Fatal("store load failed", "error", err)
	}
	defer st.Close()

	user, err := seed.Demo(ctx, st, time.Now(), *password)
	if err != nil {
		if store.IsConstraint(err) {
			log.Error("demo account already exists", "email", seed.DemoEmail)
		} else {
			log.Error("seed failed", "error", err)
		}
		st.Close()
		os.Exit(1)
	}
	log.Info("demo data inserted", "user_id", user.ID, "email", seed.DemoEmail)

	if *out != "" {
		if err := st.Snapshot(ctx, *out); err != nil {
			log.Error("snapshot failed", "error", err)
			st.Close()
			os.Exit(1)
		}
		log.Info("snapshot written", "path", *out)
	}
}
