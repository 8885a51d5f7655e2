package main

import (
	"fmt"

	"servicehive/internal/fanout"
	market "servicehive/internal/marketService"
	"servicehive/internal/server"
	"servicehive/internal/store"
	"servicehive/internal/store/memory"
	"servicehive/internal/store/postgres"
	"servicehive/utils"

	"github.com/caarlos0/env/v11"
)

// Config is loaded from the environment. An empty DATABASE_URL selects the
// in-memory store, which is the default for local development and tests.
type Config struct {
	Port          string `env:"PORT" envDefault:"8080"`
	DatabaseURL   string `env:"DATABASE_URL"`
	MigrationsURL string `env:"MIGRATIONS_URL" envDefault:"file://migrations"`
}

func main() {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		utils.Fatal("failed to parse configuration", map[string]any{"error": err.Error()})
	}

	db, cleanup, err := openStore(cfg)
	if err != nil {
		utils.Fatal("failed to open store", map[string]any{"error": err.Error()})
	}
	defer cleanup()

	broker := fanout.NewBroker()
	marketService := market.NewMarketService(db, broker)

	router := server.SetupRouter(marketService, broker)

	addr := fmt.Sprintf(":%s", cfg.Port)
	utils.Info("starting marketplace server", map[string]any{"addr": addr})
	if err := router.Run(addr); err != nil {
		utils.Fatal("server stopped", map[string]any{"error": err.Error()})
	}
}

// openStore picks the backing store from configuration
func openStore(cfg Config) (store.MarketDB, func(), error) {
	if cfg.DatabaseURL == "" {
		utils.Info("using in-memory store", nil)
		return memory.NewMemoryStore(), func() {}, nil
	}

	pg, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	if err := pg.Migrate(cfg.MigrationsURL); err != nil {
		pg.Close()
		return nil, nil, err
	}

	utils.Info("using postgres store", nil)
	return pg, func() { pg.Close() }, nil
}
