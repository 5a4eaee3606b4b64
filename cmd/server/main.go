package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"clickstudio/internal/catalog"
	"clickstudio/internal/config"
	"clickstudio/internal/game"
	"clickstudio/internal/player"
	"clickstudio/internal/serverapp"
	"clickstudio/internal/telemetry"
	"clickstudio/internal/world"
)

func main() {
	cfgPath := flag.String("config", "clickstudio.yml", "path to server config")
	flag.Parse()

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if token := os.Getenv("CLICKSTUDIO_ADMIN_TOKEN"); token != "" {
		cfg.Server.AdminToken = token
	}

	cat := catalog.Default()
	if cfg.Catalog.OverlayPath != "" {
		cat, err = catalog.LoadOverlay(cat, cfg.Catalog.OverlayPath)
		if err != nil {
			log.Fatalf("load catalog overlay: %v", err)
		}
	}
	if err := cat.Validate(); err != nil {
		log.Fatalf("validate catalog: %v", err)
	}

	stores, err := openStores(cfg)
	if err != nil {
		log.Fatalf("open storage: %v", err)
	}
	defer stores.Close()

	engine := game.NewEngine(
		stores.Players,
		stores.World,
		stores.Journal,
		cat,
		config.FromEnv(),
		cfg.Night,
		game.RealClock{},
		log.Default(),
	)

	if cfg.Server.MetricsEnabled {
		go func() {
			ticker := time.NewTicker(time.Minute)
			defer ticker.Stop()
			for range ticker.C {
				if _, err := engine.RefreshActivePlayers(context.Background(), time.Hour); err != nil {
					log.Printf("refresh active players: %v", err)
				}
			}
		}()
	}

	handler, err := serverapp.NewHandler(serverapp.Options{
		Config: cfg,
		Engine: engine,
		Logger: log.Default(),
	})
	if err != nil {
		log.Fatalf("build server: %v", err)
	}

	log.Printf("listening on %s", cfg.Server.Addr)
	log.Fatal(http.ListenAndServe(cfg.Server.Addr, handler))
}

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err == nil {
		return cfg, nil
	}
	if os.IsNotExist(err) {
		cfg = &config.Config{}
		cfg.ApplyDefaults()
		return cfg, nil
	}
	return nil, err
}

type stores struct {
	Players player.Repository
	World   world.Repository
	Journal telemetry.Journal

	db *bolt.DB
}

func (s *stores) Close() {
	if s.db != nil {
		_ = s.db.Close()
	}
}

func openStores(cfg *config.Config) (*stores, error) {
	if cfg.Storage.Backend == "memory" {
		return &stores{
			Players: player.NewMemoryRepo(),
			World:   world.NewMemoryRepo(),
			Journal: telemetry.NewMemoryJournal(),
		}, nil
	}

	if err := os.MkdirAll(cfg.Storage.DataDir, 0o755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(filepath.Join(cfg.Storage.DataDir, "game.db"), 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	players, err := player.NewBoltRepoFromDB(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	worldRepo, err := world.NewBoltRepoFromDB(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	journal, err := telemetry.NewBoltJournalFromDB(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &stores{Players: players, World: worldRepo, Journal: journal, db: db}, nil
}
