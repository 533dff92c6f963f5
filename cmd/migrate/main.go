package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/joho/godotenv"
	"github.com/trungle-dev/content-planner/internal/config"
	"github.com/trungle-dev/content-planner/internal/repository/postgres"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	fmt.Printf("Connecting to database at %s:%d...\n", cfg.Database.Host, cfg.Database.Port)

	// Connect to database
	db, err := postgres.NewDB(context.Background(), cfg.Database)
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to database: %v", err))
	}
	defer db.Close()

	// Get migration files
	files, err := filepath.Glob("migrations/*.up.sql")
	if err != nil {
		panic(err)
	}
	sort.Strings(files)

	for _, file := range files {
		fmt.Printf("Applying migration: %s\n", file)
		content, err := os.ReadFile(file)
		if err != nil {
			panic(err)
		}

		// Migrations use IF NOT EXISTS so re-runs are safe
		_, err = db.Pool.Exec(context.Background(), string(content))
		if err != nil {
			fmt.Printf("Error applying %s: %v\n", file, err)
		} else {
			fmt.Printf("%s applied successfully\n", file)
		}
	}
}
