package locale

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/dmitrymomot/datekit/pkg/datetime"
	"github.com/dmitrymomot/datekit/pkg/logger"
)

// Registry holds the loaded locales keyed by canonical language tag.
//
// Returned locales are shared and must be treated as read-only.
// A Registry is safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	locales    map[string]*datetime.Locale
	adapters   []Adapter
	defaultTag string
	defaultKey string
	logger     *slog.Logger
}

// NewRegistry creates a registry holding the built-in English locale plus whatever
// the configured adapters load. The default tag must resolve to a loaded locale.
func NewRegistry(ctx context.Context, opts ...Option) (*Registry, error) {
	r := &Registry{
		defaultTag: DefaultLanguage,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}

	if err := r.Reload(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload discards every loaded locale and runs the adapters again.
// On failure the previous state is kept.
func (r *Registry) Reload(ctx context.Context) error {
	start := time.Now()
	en := datetime.DefaultLocale()
	locales := map[string]*datetime.Locale{DefaultLanguage: en}

	for _, a := range r.adapters {
		loaded, err := a.Load(ctx)
		if err != nil {
			r.logger.ErrorContext(ctx, "failed to load locales", logger.Component("locale"), logger.Error(err))
			return err
		}
		for _, loc := range loaded {
			key, err := Canonical(loc.Name)
			if err != nil {
				return errors.Join(ErrInvalidLocale, err)
			}
			if _, exists := locales[key]; exists {
				r.logger.DebugContext(ctx, "locale replaced", logger.Component("locale"), logger.Locale(key))
			}
			locales[key] = loc
		}
	}

	defaultKey, err := Canonical(r.defaultTag)
	if err != nil {
		return err
	}
	if _, ok := locales[defaultKey]; !ok {
		return fmt.Errorf("%w: default %q", ErrLocaleNotFound, r.defaultTag)
	}

	r.mu.Lock()
	r.locales = locales
	r.defaultKey = defaultKey
	r.mu.Unlock()

	r.logger.InfoContext(ctx, "locales loaded", logger.Component("locale"), slog.Any("locales", r.Names()), logger.Duration(time.Since(start)))
	return nil
}

// Register adds or replaces a single locale after validating it.
func (r *Registry) Register(loc *datetime.Locale) error {
	if loc == nil {
		return fmt.Errorf("%w: nil locale", ErrInvalidLocale)
	}
	if err := loc.Validate(); err != nil {
		return errors.Join(ErrInvalidLocale, err)
	}
	key, err := Canonical(loc.Name)
	if err != nil {
		return errors.Join(ErrInvalidLocale, err)
	}

	r.mu.Lock()
	r.locales[key] = loc
	r.mu.Unlock()
	return nil
}

// Lookup resolves tag to a loaded locale, trying the exact tag and then its base
// language ("de-AT" falls back to "de").
func (r *Registry) Lookup(tag string) (*datetime.Locale, error) {
	keys, err := candidates(tag)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, k := range keys {
		if loc, ok := r.locales[k]; ok {
			return loc, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrLocaleNotFound, tag)
}

// Get is Lookup falling back to the default locale.
func (r *Registry) Get(tag string) *datetime.Locale {
	loc, err := r.Lookup(tag)
	if err == nil {
		return loc
	}
	r.logger.Debug("locale fallback", logger.Component("locale"), logger.Locale(tag), logger.Error(err))
	return r.Default()
}

// Negotiate picks the best loaded locale for an Accept-Language style preference
// list, falling back to the default locale.
func (r *Registry) Negotiate(list string) *datetime.Locale {
	for _, tag := range preferences(list) {
		if loc, err := r.Lookup(tag); err == nil {
			return loc
		}
	}
	return r.Default()
}

// Default returns the default locale.
func (r *Registry) Default() *datetime.Locale {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.locales[r.defaultKey]
}

// Names returns the canonical tags of all loaded locales, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.locales))
	for k := range r.locales {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}
