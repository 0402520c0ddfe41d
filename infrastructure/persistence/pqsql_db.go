package persistence

import (
	"database/sql"
	"fmt"
	"net/url"

	"nexus-tube/infrastructure/configuration"

	_ "github.com/lib/pq"
)

// NewPostgreSQLDB opens and pings a PostgreSQL connection for the catalog seed
func NewPostgreSQLDB(cfg configuration.Db) (*sql.DB, error) {
	db, err := sql.Open("postgres", postgresDSN(cfg))
	if err != nil {
		return nil, err
	}
	return pooled(db)
}

func postgresDSN(cfg configuration.Db) string {
	u := &url.URL{Scheme: "postgres", Host: fmt.Sprintf("%s:%s", cfg.Host, cfg.Port), Path: "/" + cfg.Name}
	if cfg.User != "" {
		u.User = url.UserPassword(cfg.User, cfg.Password)
	}
	q := url.Values{}
	if cfg.Host == "localhost" || cfg.Host == "127.0.0.1" {
		q.Set("sslmode", "disable")
	}
	u.RawQuery = q.Encode()
	return u.String()
}
