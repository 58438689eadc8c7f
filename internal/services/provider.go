package services

import (
	"github.com/KirkDiggler/demonlord-sheet/internal/config"
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/rulebook/demonlord"
	"github.com/KirkDiggler/demonlord-sheet/internal/events"
	characterService "github.com/KirkDiggler/demonlord-sheet/internal/services/character"
	"github.com/KirkDiggler/demonlord-sheet/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	CharacterService characterService.Service
	Catalog          characterService.Catalog
	EventBus         *events.Bus
	// ChangeLog listens on EventBus for every character event
	ChangeLog *events.ChangeLog
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Config      *config.Config
	Catalog     characterService.Catalog // Optional, defaults to the standard content
	IDGenerator uuid.Generator           // Optional
	EventBus    *events.Bus              // Optional, a new bus is created if nil
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	catalog := cfg.Catalog
	if catalog == nil {
		catalog = demonlord.NewStandardRegistry()
	}

	bus := cfg.EventBus
	if bus == nil {
		bus = events.NewBus()
	}
	changes := events.NewChangeLog().Attach(bus)

	svcCfg := &characterService.ServiceConfig{
		Catalog:     catalog,
		IDGenerator: cfg.IDGenerator,
		EventBus:    bus,
	}
	if cfg.Config != nil {
		validation := cfg.Config.Character.Validation()
		svcCfg.Validation = &validation
	}

	return &Provider{
		CharacterService: characterService.NewService(svcCfg),
		Catalog:          catalog,
		EventBus:         bus,
		ChangeLog:        changes,
	}
}
