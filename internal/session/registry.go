package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	sessionKeyPrefix = "health-tracker-session||"
	tokensSetKey     = "health-tracker-sessions"
)

// RedisRegistry keeps track of live session tokens and their creation time.
// Health records themselves never reach redis.
type RedisRegistry struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewRedisRegistry(ttl time.Duration, redisClient *redis.Client) *RedisRegistry {
	return &RedisRegistry{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

func (rr *RedisRegistry) Register(ctx context.Context, token string, createdAt time.Time) error {
	sessionKey := sessionKeyPrefix + token
	cmdSet := rr.redisClient.Set(ctx, sessionKey, createdAt.Unix(), 0)
	if err := cmdSet.Err(); err != nil {
		return fmt.Errorf("set session key: %w", err)
	}

	// add token to the set of sessions
	cmdSAdd := rr.redisClient.SAdd(ctx, tokensSetKey, token)
	if err := cmdSAdd.Err(); err != nil {
		return fmt.Errorf("add session token: %w", err)
	}

	return nil
}

// IsActive reports whether the token is registered and younger than the TTL.
func (rr *RedisRegistry) IsActive(ctx context.Context, token string) (bool, error) {
	createdAt, err := rr.createdAt(ctx, token)
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return time.Since(createdAt) <= rr.ttl, nil
}

func (rr *RedisRegistry) Remove(ctx context.Context, token string) error {
	sessionKey := sessionKeyPrefix + token
	cmdDel := rr.redisClient.Del(ctx, sessionKey)
	if err := cmdDel.Err(); err != nil {
		return fmt.Errorf("delete session key: %w", err)
	}

	// remove token from the set of sessions
	cmdSRem := rr.redisClient.SRem(ctx, tokensSetKey, token)
	if err := cmdSRem.Err(); err != nil {
		return fmt.Errorf("remove session token: %w", err)
	}

	return nil
}

func (rr *RedisRegistry) ListTokens(ctx context.Context) ([]string, error) {
	cmd := rr.redisClient.SMembers(ctx, tokensSetKey)
	if err := cmd.Err(); err != nil {
		return nil, err
	}
	return cmd.Val(), nil
}

// ScanAndClean will run through all sessions, check the TTL, and remove the old ones.
// Returns the removed tokens.
func (rr *RedisRegistry) ScanAndClean(ctx context.Context) ([]string, error) {
	sessionTokens, err := rr.ListTokens(ctx)
	if err != nil {
		return nil, fmt.Errorf("get sessions: %w", err)
	}

	if len(sessionTokens) == 0 {
		log.Debugln("=> session registry, scan and clean abort, no sessions")
		return nil, nil
	}

	log.Debugf("=> session registry, scan and clean [%d sessions] start ...", len(sessionTokens))
	var toRemove []string
	for _, token := range sessionTokens {
		createdAt, err := rr.createdAt(ctx, token)
		if errors.Is(err, redis.Nil) {
			// dangling token, its key is already gone
			toRemove = append(toRemove, token)
			continue
		}
		if err != nil {
			log.Errorf("=> session registry, scan and clean token %s: %s", token, err)
			continue
		}

		if time.Since(createdAt) > rr.ttl {
			log.Debugf("=>\twill clean the session with token: %s", token)
			toRemove = append(toRemove, token)
		}
	}

	var removed []string
	for _, token := range toRemove {
		if err := rr.Remove(ctx, token); err != nil {
			log.Errorf("=> session registry, clean token %s: %s", token, err)
			continue
		}
		removed = append(removed, token)
	}

	return removed, nil
}

func (rr *RedisRegistry) createdAt(ctx context.Context, token string) (time.Time, error) {
	sessionKey := sessionKeyPrefix + token
	cmd := rr.redisClient.Get(ctx, sessionKey)
	if err := cmd.Err(); err != nil {
		return time.Time{}, err
	}

	createdAtUnix, err := strconv.ParseInt(cmd.Val(), 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse session created at: %w", err)
	}

	return time.Unix(createdAtUnix, 0), nil
}
