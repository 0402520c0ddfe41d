package persistence

import (
	"fmt"
	"net/url"

	"nexus-tube/infrastructure/configuration"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// NewMongoDb builds a client for the catalog seed database. The driver
// connects lazily, callers ping before use.
func NewMongoDb(cfg configuration.Db) (*mongo.Client, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("mongo host not configured")
	}
	return mongo.Connect(options.Client().ApplyURI(mongoURI(cfg)))
}

func mongoURI(cfg configuration.Db) string {
	u := &url.URL{Scheme: "mongodb", Host: fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)}
	if cfg.User != "" {
		u.User = url.UserPassword(cfg.User, cfg.Password)
	}
	return u.String()
}
