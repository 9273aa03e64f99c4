package tokenstore

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// Redis stores the two keys under a prefix and writes them in one MULTI/EXEC.
type Redis struct {
	rdb    redis.Cmdable
	prefix string
}

func NewRedis(rdb redis.Cmdable, prefix string) *Redis {
	return &Redis{rdb: rdb, prefix: prefix}
}

func (r *Redis) tokenKey() string { return r.prefix + KeyToken }
func (r *Redis) authKey() string  { return r.prefix + KeyAuthenticated }

func (r *Redis) Load(ctx context.Context) (Session, error) {
	vals, err := r.rdb.MGet(ctx, r.tokenKey(), r.authKey()).Result()
	if err != nil {
		return Session{}, err
	}

	var s Session
	if v, ok := vals[0].(string); ok {
		s.Token = v
	}
	if v, ok := vals[1].(string); ok {
		s.Authenticated, _ = strconv.ParseBool(v)
	}
	return s, nil
}

func (r *Redis) Save(ctx context.Context, s Session) error {
	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.tokenKey(), s.Token, 0)
		pipe.Set(ctx, r.authKey(), strconv.FormatBool(s.Authenticated), 0)
		return nil
	})
	return err
}

func (r *Redis) Clear(ctx context.Context) error {
	return r.rdb.Del(ctx, r.tokenKey(), r.authKey()).Err()
}
