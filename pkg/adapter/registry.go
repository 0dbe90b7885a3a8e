package adapter

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
	"sync"
)

var (
	registryMu sync.RWMutex
	registry   = map[string]Config{}
)

// Register adds a platform config under its lowercase name. Platform
// packages call this from init; a duplicate name panics at startup so a
// collision never ships.
func Register(cfg Config) {
	name := strings.ToLower(cfg.Platform)
	if name == "" {
		panic("adapter: register with empty platform name")
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("adapter: platform %q registered twice", name))
	}
	registry[name] = cfg
}

// Lookup returns the config registered under name.
func Lookup(name string) (Config, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	cfg, ok := registry[strings.ToLower(name)]
	if !ok {
		return Config{}, fmt.Errorf("%w: %s (available: %s)",
			ErrUnknownPlatform, name, strings.Join(platformsLocked(), ", "))
	}
	return cfg, nil
}

// Detect finds the platform serving rawURL by hostname.
func Detect(rawURL string) (Config, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return Config{}, fmt.Errorf("%w: %s", ErrInvalidURL, rawURL)
	}

	registryMu.RLock()
	defer registryMu.RUnlock()
	for _, cfg := range registry {
		if cfg.HostAllowed(u.Hostname()) {
			return cfg, nil
		}
	}
	return Config{}, fmt.Errorf("%w: no platform serves %s", ErrUnknownPlatform, u.Hostname())
}

// Platforms lists the registered platform names, sorted.
func Platforms() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return platformsLocked()
}

func platformsLocked() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a platform name is known.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[strings.ToLower(name)]
	return ok
}
