package storage

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// NonceRepo keeps single-use sign-in nonces in redis
type NonceRepo struct {
	client *redis.Client
}

func NewNonceRepo(client *redis.Client) *NonceRepo {
	return &NonceRepo{client: client}
}

func nonceKey(wallet, nonce string) string {
	return "nonce:" + wallet + ":" + nonce
}

// Issue stores nonce for wallet until ttl passes
func (r *NonceRepo) Issue(ctx context.Context, wallet, nonce string, ttl time.Duration) error {
	return r.client.Set(ctx, nonceKey(wallet, nonce), 1, ttl).Err()
}

// Redeem consumes nonce and reports whether it was still valid
func (r *NonceRepo) Redeem(ctx context.Context, wallet, nonce string) (bool, error) {
	n, err := r.client.Del(ctx, nonceKey(wallet, nonce)).Result()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
