package tokenstore

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/redis/go-redis/v9"

	"jessster/config"
	"jessster/db"
)

const defaultFileName = "session.json"

// Open builds the store selected by cfg.Backend. The returned close func
// releases any connection the store holds and is never nil.
func Open(ctx context.Context, cfg config.TokenStoreConfig) (Store, func(), error) {
	noop := func() {}

	switch strings.ToLower(strings.TrimSpace(cfg.Backend)) {
	case "", "memory":
		return NewMemory(), noop, nil

	case "file":
		path := cfg.FilePath
		if path == "" {
			path = filepath.Join(config.GetBasePath(), ".jessster", defaultFileName)
		}
		return NewFile(path), noop, nil

	case "mongo":
		cl, d, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDBName)
		if err != nil {
			return nil, noop, fmt.Errorf("tokenstore: connect mongo: %w", err)
		}
		return NewMongo(d), func() { _ = cl.Disconnect(context.Background()) }, nil

	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, noop, fmt.Errorf("tokenstore: ping redis: %w", err)
		}
		return NewRedis(rdb, cfg.KeyPrefix), func() { _ = rdb.Close() }, nil
	}

	return nil, noop, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
}
