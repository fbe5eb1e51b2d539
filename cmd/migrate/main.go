// Command migrate applies every schema migration step against the
// configured database and exits non-zero on the first failure.
package main

import (
	"flag"
	"log"

	"team-awesome/internal/config"
	"team-awesome/internal/logger"
	"team-awesome/internal/migrate"

	"github.com/joho/godotenv"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)

	db, err := cfg.OpenGormDB()
	if err != nil {
		log.Fatal("db connect failed: ", err)
	}

	if err := migrate.Run(db); err != nil {
		log.Fatal("migration failed: ", err)
	}

	logger.Info("migrations complete")
}
