package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/aretw0/menuloop/pkg/domain"
)

// ErrActionNotFound is returned when a name has no registered handler.
var ErrActionNotFound = errors.New("action not found")

// Registry maps action names used in menu files to handlers.
type Registry struct {
	mu      sync.RWMutex
	actions map[string]domain.Handler
	logger  *slog.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = logger
	}
}

// NewRegistry creates a new empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		actions: make(map[string]domain.Handler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds an action to the registry.
// If an action with the same name exists, it is overwritten.
func (r *Registry) Register(name string, h domain.Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.actions[name]; ok && r.logger != nil {
		r.logger.Debug("action overwritten", "action", name)
	}
	r.actions[name] = h
}

// Lookup returns the handler registered under name.
func (r *Registry) Lookup(name string) (domain.Handler, error) {
	r.mu.RLock()
	h, ok := r.actions[name]
	r.mu.RUnlock()

	if !ok {
		return domain.Handler{}, fmt.Errorf("%w: %s", ErrActionNotFound, name)
	}
	return h, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, err := r.Lookup(name)
	return err == nil
}

// Names lists the registered actions alphabetically.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.actions))
	for name := range r.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
