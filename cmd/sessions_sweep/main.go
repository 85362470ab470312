package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/healthtracker/internal/config"
	"github.com/2beens/healthtracker/internal/logging"
	"github.com/2beens/healthtracker/internal/session"
)

// sessions_sweep lists the session tokens registered in redis and,
// with -clean, removes the expired ones.
func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	clean := flag.Bool("clean", false, "remove expired sessions")
	timeout := flag.Duration("timeout", 30*time.Second, "max duration of the sweep")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %s\n", err)
		os.Exit(1)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogLevel:    cfg.LogLevel,
		Environment: cfg.Environment,
	})

	os.Exit(run(cfg, *clean, *timeout))
}

// run returns the process exit code, so the deferred cleanups always complete.
func run(cfg *config.Config, clean bool, timeout time.Duration) int {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: os.Getenv("HEALTH_TRACKER_REDIS_PASS"),
		DB:       0,
	})
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Errorf("close redis client: %s", err)
		}
	}()

	registry := session.NewRedisRegistry(cfg.SessionTTL(), rdb)

	tokens, err := registry.ListTokens(ctx)
	if err != nil {
		log.Errorf("list session tokens: %s", err)
		return 1
	}
	log.Infof("registered sessions: %d", len(tokens))

	if !clean {
		return 0
	}

	removed, err := registry.ScanAndClean(ctx)
	if err != nil {
		log.Errorf("scan and clean: %s", err)
		return 1
	}
	log.Infof("removed expired sessions: %d", len(removed))
	return 0
}
