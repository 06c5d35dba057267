package postgres

//nolint:revive
import (
	"kmc/config"
	"net"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// Connection splits list and report queries onto a replica while writes, the import merge and
// advisory locks stay on the primary.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(cfg *config.Config) *Connection {
	return &Connection{
		Read:  connect(cfg, "read", cfg.DB.Postgres.Read),
		Write: connect(cfg, "write", cfg.DB.Postgres.Write),
	}
}

// DSN renders a lib/pq URL for endpoint, applying the optional database name prefix.
func DSN(cfg *config.Config, endpoint config.PostgresEndpoint) string {
	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(endpoint.Username, endpoint.Password),
		Host:   net.JoinHostPort(endpoint.Host, endpoint.Port),
		Path:   "/" + cfg.DB.Postgres.Prefix + endpoint.Name,
	}

	query := url.Values{}
	query.Set("sslmode", endpoint.SSLMode)
	dsn.RawQuery = query.Encode()

	return dsn.String()
}

func connect(cfg *config.Config, name string, endpoint config.PostgresEndpoint) *sqlx.DB {
	pg := cfg.DB.Postgres
	dsn := DSN(cfg, endpoint)

	for attempt := 1; attempt <= max(pg.MaxRetry, 1); attempt++ {
		db, err := sqlx.Connect("postgres", dsn)
		if err == nil {
			db.SetMaxIdleConns(pg.MaxIdleConns)
			db.SetMaxOpenConns(pg.MaxOpenConns)
			db.SetConnMaxLifetime(time.Duration(pg.ConnMaxLifetimeMin) * time.Minute)

			log.Info().
				Str("name", name).
				Str("host", endpoint.Host).
				Str("dbName", pg.Prefix+endpoint.Name).
				Msg("Connected to database")

			return db
		}

		log.Error().
			Err(err).
			Str("name", name).
			Str("host", endpoint.Host).
			Int("attempt", attempt).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(pg.RetryWaitTime) * time.Second)
	}

	log.Error().Str("name", name).Msgf("giving up on %s database after %d attempts", name, pg.MaxRetry)

	return nil
}
