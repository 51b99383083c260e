package main

import (
	"mindspace/internal/config" // Custom import path (Config)
	"mindspace/internal/db"     // Custom import path (Database)

	"github.com/sirupsen/logrus" // Logging library
)

// Main entry point for creating the users table
func main() {
	cfg := config.LoadConfig() // Load configuration
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	gormDB, err := db.ConnectWithRetry(cfg.DSN(), cfg.DBConnectTimeout, db.Open)
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	if err := db.Migrate(gormDB); err != nil {
		logrus.Fatalf("%v", err) // Log fatal error if migration fails
	}
	logrus.Info("Migration completed.") // Log successful migration
}
