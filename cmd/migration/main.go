package main

import (
	"os"
	"path/filepath"

	"swasthya-service/internal/app/config"
	"swasthya-service/internal/app/drivers/database"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	db := database.NewPostgresDB(driverConfig)
	defer db.Close()

	wd, err := os.Getwd()
	if err != nil {
		logrus.Fatalf("Error getting working directory: %v", err)
	}

	migrations := &migrate.FileMigrationSource{
		Dir: filepath.Join(wd, "internal/migration"),
	}

	direction := migrate.Up
	if len(os.Args) > 1 && os.Args[1] == "down" {
		direction = migrate.Down
	}

	n, err := migrate.Exec(db, "postgres", migrations, direction)
	if err != nil {
		logrus.Fatalf("Error executing migration: %v", err)
	}

	logrus.Infof("Applied %d migrations!", n)
}
