package auth

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// LoginChecker resolves session tokens to user IDs, respecting the session TTL.
type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewLoginChecker(ttl time.Duration, rc *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: rc,
	}
}

// GetLoggedUser returns the ID of the user holding the given session token,
// or ErrNotLoggedIn when the token is unknown or the session expired.
func (c *LoginChecker) GetLoggedUser(ctx context.Context, token string) (int, error) {
	sessionKey := sessionKeyPrefix + token
	cmd := c.redisClient.Get(ctx, sessionKey)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrNotLoggedIn
		}
		return 0, err
	}

	userID, createdAt, err := parseSessionValue(cmd.Val())
	if err != nil {
		return 0, err
	}

	if time.Since(createdAt) > c.ttl {
		return 0, ErrNotLoggedIn
	}

	return userID, nil
}
