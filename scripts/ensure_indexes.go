package main

import (
	"context"
	"log"
	"time"

	"github.com/shivanshrider/HROne-Backend-Intern-Hiring-Task/internal/config"
	"github.com/shivanshrider/HROne-Backend-Intern-Hiring-Task/internal/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Load config: %v", err)
	}

	client, err := database.NewConnection(&cfg.Mongo)
	if err != nil {
		log.Fatalf("Connect to mongodb: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("Disconnect mongodb: %v", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.EnsureIndexes(ctx, client.Database(cfg.Mongo.Database)); err != nil {
		log.Fatalf("Ensure indexes: %v", err)
	}

	log.Printf("Successfully ensured indexes on %s", cfg.Mongo.Database)
}
