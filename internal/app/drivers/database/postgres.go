package database

import (
	"database/sql"
	"fmt"

	"swasthya-service/internal/app/config"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

func NewPostgresDB(driverConfig *config.DriverConfig) *sql.DB {
	connectionString := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		driverConfig.PostgresDB.Host,
		driverConfig.PostgresDB.Port,
		driverConfig.PostgresDB.Username,
		driverConfig.PostgresDB.Password,
		driverConfig.PostgresDB.DBName)

	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		logrus.Fatalf("Failed to open postgres database connection: %s", err.Error())
	}

	if err = db.Ping(); err != nil {
		logrus.Fatalf("Failed to connect to postgres database: %s", err.Error())
	}

	logrus.Info("Successfully connected to postgres database")

	return db
}
