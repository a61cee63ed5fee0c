package translate

import (
	"github.com/goliatone/go-translatable/internal/logging"
	"github.com/goliatone/go-translatable/internal/runtimeconfig"
	"github.com/goliatone/go-translatable/locale"
	"github.com/goliatone/go-translatable/pkg/interfaces"
	"github.com/google/uuid"
)

// Engine owns the locale catalogue, the store binding, and the global
// fallback behaviour. Records created from the same engine share all three.
type Engine struct {
	catalog *locale.Catalog
	store   Store
	config  runtimeconfig.Config
	logger  interfaces.Logger
}

// EngineOption configures the engine at construction time.
type EngineOption func(*Engine)

// WithLogger injects the logger used by records. Defaults to a no-op logger.
func WithLogger(logger interfaces.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLoggerProvider resolves the engine logger from a named provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) EngineOption {
	return func(e *Engine) {
		e.logger = logging.TranslateLogger(provider)
	}
}

// NewEngine builds the locale catalogue from cfg and binds the store. The
// catalogue is immutable afterwards; configuration problems are fatal here,
// never per-call.
func NewEngine(cfg runtimeconfig.Config, store Store, opts ...EngineOption) (*Engine, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	catalog, err := locale.NewCatalog(cfg)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		catalog: catalog,
		store:   store,
		config:  cfg,
		logger:  logging.NoOp(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Catalog exposes the immutable locale catalogue.
func (e *Engine) Catalog() *locale.Catalog {
	if e == nil {
		return nil
	}
	return e.catalog
}

// Store exposes the bound persistence adapter.
func (e *Engine) Store() Store {
	if e == nil {
		return nil
	}
	return e.store
}

// Config returns the runtime configuration the engine was built from.
func (e *Engine) Config() runtimeconfig.Config {
	if e == nil {
		return runtimeconfig.Config{}
	}
	return e.config
}

// NewRecord creates the translation router for one primary record instance.
// Cache and bundle state belong exclusively to the returned record; treat it
// as an isolated unit of work, not safe for concurrent mutation.
func (e *Engine) NewRecord(id uuid.UUID, opts ...RecordOption) (*Record, error) {
	if id == uuid.Nil {
		return nil, ErrRecordIDRequired
	}

	r := &Record{
		id:                  id,
		catalog:             e.catalog,
		store:               e.store,
		cache:               newBundleCache(e.store, id),
		fallbackLocale:      e.config.DefaultLocale,
		useFallback:         e.config.UseFallback,
		usePerFieldFallback: e.config.UsePerFieldFallback,
		fields:              map[string]struct{}{},
		attrs:               map[string]any{},
		logger:              e.logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}
