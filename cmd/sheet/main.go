package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/demonlord-sheet/internal/cli"
	"github.com/KirkDiggler/demonlord-sheet/internal/config"
	"github.com/KirkDiggler/demonlord-sheet/internal/services"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	provider := services.NewProvider(&services.ProviderConfig{
		Config: cfg,
	})

	validation := cfg.Character.Validation()
	root := cli.NewRootCmd(&cli.Deps{
		Service:       provider.CharacterService,
		Catalog:       provider.Catalog,
		Validation:    &validation,
		EventBus:      provider.EventBus,
		Changes:       provider.ChangeLog,
		DefaultLevel:  cfg.Character.DefaultLevel,
		DefaultFormat: cfg.Sheet.Format,
	})

	if err := root.Execute(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}
