package main

import (
	"fmt"
	"log"

	"github.com/Da20-Costa/mybudget/internal/config"
	"github.com/Da20-Costa/mybudget/internal/database"
	"github.com/Da20-Costa/mybudget/internal/router"

	"github.com/joho/godotenv"
)

func main() {
	// load a local .env if present, then the yaml config with env overrides
	_ = godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.Auth.Secret == "" {
		log.Fatal("auth.secret is not set (config.yaml or MB_AUTH_SECRET)")
	}

	// init database
	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	// run migrations and seed the default categories
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}
	if err := database.Seed(db); err != nil {
		log.Fatalf("seed database: %v", err)
	}

	// setup router
	r := router.SetupRouter(cfg, db)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Printf("server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}
