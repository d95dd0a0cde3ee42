package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/courtside/nba-backend/internal/adapters/cache"
	"github.com/courtside/nba-backend/internal/adapters/repository"
	"github.com/courtside/nba-backend/internal/application/services"
	"github.com/courtside/nba-backend/internal/domain/entities"
	"github.com/courtside/nba-backend/internal/infrastructure/config"
	"github.com/courtside/nba-backend/internal/infrastructure/database"
	"github.com/courtside/nba-backend/internal/infrastructure/logger"
	"github.com/courtside/nba-backend/internal/infrastructure/metrics"
	"github.com/courtside/nba-backend/internal/ports"
)

// Stores bundles the storage backends the API is served from
type Stores struct {
	Coaches   ports.CoachRepository
	Players   ports.PlayerRepository
	Documents ports.DocumentReader

	db    *database.DB
	redis *redis.Client
}

// OpenStores builds the collection stores for the configured driver. The
// read-only league datasets are always served from the data directory,
// optionally through the Redis cache.
func OpenStores(cfg *config.Config, log *logger.Logger, m *metrics.Metrics) (*Stores, error) {
	stores := &Stores{
		Documents: repository.NewFileDocumentReader(map[string]string{
			services.DatasetNBAGames: cfg.Storage.Path(cfg.Storage.GamesFile),
			services.DatasetStadiums: cfg.Storage.Path(cfg.Storage.StadiumsFile),
		}),
	}

	var (
		coaches ports.CoachRepository
		players ports.PlayerRepository
	)

	switch cfg.Storage.Driver {
	case config.StorageDriverFile:
		coaches = repository.NewCoachFileRepository(cfg.Storage.Path(cfg.Storage.CoachesFile))
		players = repository.NewPlayerFileRepository(cfg.Storage.Path(cfg.Storage.PlayersFile))
	case config.StorageDriverPostgres:
		db, err := database.New(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		stores.db = db
		coaches = repository.NewCoachPostgresRepository(db)
		players = repository.NewPlayerPostgresRepository(db)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	if cfg.Redis.Enabled {
		stores.redis = cache.NewClient(cfg.Redis)
		cached := cache.NewDocumentReader(stores.Documents, stores.redis, cfg.Redis.CacheTTL, log)
		if err := cached.Ping(context.Background()); err != nil {
			log.Warnw("Dataset cache unreachable, reading datasets from disk until it recovers",
				"addr", cfg.Redis.GetAddr(), "error", err)
		}
		stores.Documents = cached
		log.Infow("Dataset cache enabled", "addr", cfg.Redis.GetAddr(), "ttl", cfg.Redis.CacheTTL)
	}

	stores.Coaches = repository.Instrument[entities.Coach]("coaches", coaches, log, m)
	stores.Players = repository.Instrument[entities.Player]("players", players, log, m)

	log.Infow("Storage opened", "driver", cfg.Storage.Driver, "data_dir", cfg.Storage.DataDir)

	return stores, nil
}

// Ping checks that the coaches collection can be read
func (s *Stores) Ping(ctx context.Context) error {
	if s.db != nil {
		if err := s.db.HealthCheck(ctx); err != nil {
			return err
		}
	}
	_, err := s.Coaches.Load(ctx)
	return err
}

// Close releases the database connection and cache client, if any
func (s *Stores) Close() error {
	var errs []error
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	return errors.Join(errs...)
}
