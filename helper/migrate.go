package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"kmc/config"
	"kmc/infras/postgres"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const (
	ActionUp      = "up"
	ActionDown    = "down"
	ActionStepUp  = "step-up"
	ActionDrop    = "drop"
	ActionVersion = "version"
)

var ErrUnknownAction = errors.New("unknown migration action")

var actions = map[string]bool{ActionUp: true, ActionDown: true, ActionStepUp: true, ActionDrop: true, ActionVersion: true}

// DatabaseURL targets the primary and carries the migrations table for golang-migrate.
func DatabaseURL(cfg *config.Config) (string, error) {
	dsn, err := url.Parse(postgres.DSN(cfg, cfg.DB.Postgres.Write))
	if err != nil {
		return "", fmt.Errorf("invalid postgres dsn: %w", err)
	}

	query := dsn.Query()
	if cfg.DB.Postgres.MigrationTable != "" {
		query.Set("x-migrations-table", cfg.DB.Postgres.MigrationTable)
	}

	dsn.RawQuery = query.Encode()

	return dsn.String(), nil
}

func newMigrate(cfg *config.Config) (*migrate.Migrate, error) {
	dbURL, err := DatabaseURL(cfg)
	if err != nil {
		return nil, err
	}

	mig, err := migrate.New("file://"+cfg.DB.Postgres.MigrationPath, dbURL)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

// Runner applies action against the kmc schema. ErrNoChange is not an error.
func Runner(cfg *config.Config, action string) error {
	if !actions[action] {
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	mig, err := newMigrate(cfg)
	if err != nil {
		return err
	}

	defer mig.Close()

	switch action {
	case ActionUp:
		err = mig.Up()
	case ActionDown:
		err = mig.Steps(-1)
	case ActionStepUp:
		err = mig.Steps(1)
	case ActionDrop:
		err = mig.Down()
	case ActionVersion:
		version, dirty, verr := mig.Version()
		if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
			return fmt.Errorf("error reading migration version: %w", verr)
		}

		log.Info().Uint("version", version).Bool("dirty", dirty).Msg("Current schema version")

		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration %s failed: %w", action, err)
	}

	log.Info().Str("action", action).Msg("Database migration finished")

	return nil
}

func Up(cfg *config.Config) error {
	return Runner(cfg, ActionUp)
}
