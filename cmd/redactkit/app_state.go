package main

import (
	"fmt"
	"time"

	"github.com/suryansh-23/redactkit/internal/cache"
	"github.com/suryansh-23/redactkit/internal/config"
	"github.com/suryansh-23/redactkit/internal/debug"
	"github.com/suryansh-23/redactkit/internal/redact"
)

type appState struct {
	cfg      config.Config
	cfgFound bool
	cfgPath  string
	cache    *cache.Cache
	logger   *debug.Logger
	engine   *redact.Engine
}

type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("command exited with code %d", e.code)
}

func ensureCache(existing *cache.Cache, cfg config.Config) *cache.Cache {
	if !cfg.Cache.Enabled {
		return nil
	}
	ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second
	if existing == nil {
		return cache.New(cfg.Cache.MaxEntries, ttl)
	}
	existing.SetTTL(ttl)
	existing.SetMaxEntries(cfg.Cache.MaxEntries)
	return existing
}

func newEngine(cfg config.Config, c *cache.Cache, logger *debug.Logger) *redact.Engine {
	opts := []redact.Option{
		redact.WithLogger(logger.Named("engine")),
		redact.WithAllowlist(cfg.AllowlistValues()),
	}
	if c != nil {
		opts = append(opts, redact.WithCache(c))
	}
	return redact.New(nil, opts...)
}
