package main

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// config holds the server settings read from the environment (and .env).
type config struct {
	Addr           string
	SiteURL        string
	GinMode        string
	TrustedProxies []string
}

const (
	defaultAddr    = "localhost:3000"
	defaultSiteURL = "http://localhost:3000"
)

// loadConfig loads .env when present, then reads ADDR, SITE_URL, GIN_MODE,
// and TRUSTED_PROXIES. A missing .env is not an error; a malformed one is.
func loadConfig(envFiles ...string) (config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return config{}, fmt.Errorf("loading .env: %w", err)
	}

	cfg := config{
		Addr:    getenvDefault("ADDR", defaultAddr),
		SiteURL: strings.TrimRight(getenvDefault("SITE_URL", defaultSiteURL), "/"),
		GinMode: os.Getenv("GIN_MODE"),
	}
	for _, p := range strings.Split(os.Getenv("TRUSTED_PROXIES"), ",") {
		if p = strings.TrimSpace(p); p != "" {
			cfg.TrustedProxies = append(cfg.TrustedProxies, p)
		}
	}
	return cfg, cfg.validate()
}

// validate rejects settings the server cannot start with.
func (c config) validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return errors.New("ADDR must not be empty")
	}
	switch c.GinMode {
	case "", "debug", "release", "test":
	default:
		return fmt.Errorf("GIN_MODE must be debug, release, or test, got %q", c.GinMode)
	}
	u, err := url.Parse(c.SiteURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("SITE_URL must be an absolute URL, got %q", c.SiteURL)
	}
	return nil
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
