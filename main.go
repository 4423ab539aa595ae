package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skillplot/skillplot/api"
	"github.com/skillplot/skillplot/config"
	db "github.com/skillplot/skillplot/db/sqlc"
	"github.com/skillplot/skillplot/jooble"
	"github.com/skillplot/skillplot/match"
)

func main() {
	// Step 1: Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("❌ could not load configuration: %v", err)
	}
	log.Println("✅ Configuration loaded successfully.")

	// Step 2: Establish database connection pool
	connPool, err := pgxpool.New(context.Background(), cfg.DBSource)
	if err != nil {
		log.Fatalf("❌ could not connect to the database: %v", err)
	}
	defer connPool.Close()
	log.Println("✅ Database connection pool established.")

	// Step 3: Initialize the database store
	store := db.NewStore(connPool)

	// Step 4: Initialize the external job search client
	jobSource := jooble.NewClient(cfg.JoobleAPIURL, cfg.JoobleAPIKey, &http.Client{
		Timeout: 15 * time.Second,
	})
	log.Println("✅ Job search client (Jooble) initialized.")

	// Step 5: Build the role catalog used for comparisons
	roles := match.DefaultRoleCatalog()
	log.Printf("✅ Loaded %d target roles.", len(roles.Names()))

	// Step 6: Create a new API server instance
	server, err := api.NewServer(cfg, store, jobSource, roles)
	if err != nil {
		log.Fatalf("❌ could not create the server: %v", err)
	}
	log.Println("✅ API server created.")

	// Step 7: Start the HTTP server
	log.Printf("🚀 Starting server on %s", cfg.ServerAddress)
	if err := server.Start(cfg.ServerAddress); err != nil {
		log.Fatalf("❌ failed to start server: %v", err)
	}
}
