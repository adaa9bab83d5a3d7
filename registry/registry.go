// Package registry collects compiled signatures under their owner names.
//
// Registration replaces the implicit, global exposure of generated functions
// with an explicit step: a defining unit compiles its signature once and
// registers it, and consumers look it up by owner.
package registry

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/mhpenta/sigdef/signature"
)

// Registry holds compiled signatures keyed by owner. It is safe for
// concurrent use.
type Registry struct {
	name   string
	logger *slog.Logger

	mu   sync.RWMutex
	sigs map[string]*signature.Compiled
}

// Config holds configuration for a Registry.
type Config struct {
	Name   string
	Logger *slog.Logger
}

// New creates a registry.
func New(cfg Config) *Registry {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	r := &Registry{
		name:   cfg.Name,
		logger: cfg.Logger,
		sigs:   map[string]*signature.Compiled{},
	}

	r.logger.Info("initialized signature registry", "name", cfg.Name)
	return r
}

// Register adds a compiled signature under its owner name. Registering the
// same owner twice is an error; a defining unit compiles its signature once.
func (r *Registry) Register(c *signature.Compiled) error {
	if c == nil {
		return fmt.Errorf("cannot register nil signature")
	}
	owner := c.Signature().Owner
	if owner == "" {
		return fmt.Errorf("cannot register signature without an owner")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.sigs[owner]; exists {
		return fmt.Errorf("signature already registered for owner %q", owner)
	}
	r.sigs[owner] = c

	r.logger.Info("registered signature",
		"registry", r.name,
		"owner", owner,
		"signature", c.Describe())
	return nil
}

// Get returns the signature registered for owner.
func (r *Registry) Get(owner string) (*signature.Compiled, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.sigs[owner]
	return c, ok
}

// Owners returns the registered owner names, sorted.
func (r *Registry) Owners() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	owners := make([]string, 0, len(r.sigs))
	for owner := range r.sigs {
		owners = append(owners, owner)
	}
	sort.Strings(owners)
	return owners
}

// Name returns the registry name.
func (r *Registry) Name() string {
	return r.name
}
