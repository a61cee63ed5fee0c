// Package translatable resolves per-locale attribute bundles for primary
// records: a configured locale catalogue, deterministic fallback chains, a
// per-record bundle cache, and pluggable persistence behind a store contract.
package translatable

import (
	"context"

	"github.com/goliatone/go-translatable/internal/commands"
	"github.com/goliatone/go-translatable/locale"
	"github.com/goliatone/go-translatable/pkg/interfaces"
	"github.com/goliatone/go-translatable/translate"
)

// Engine exports the translation engine for consumers of the translatable package.
type Engine = translate.Engine

// Record exports the per-record translation router.
type Record = translate.Record

// Bundle exports the per-locale attribute bundle.
type Bundle = translate.Bundle

// Settings exports the per-record setting overrides.
type Settings = translate.Settings

// Store exports the persistence contract backing an engine.
type Store = translate.Store

// TransactionalStore exports the optional transactional store contract.
type TransactionalStore = translate.TransactionalStore

// Row exports the stored translation row model.
type Row = translate.Row

// ScopeBuilder exports the translated-field query scope builder.
type ScopeBuilder = translate.ScopeBuilder

// Scope exports a single query predicate produced by the scope builder.
type Scope = translate.Scope

// Catalog exports the immutable locale catalogue.
type Catalog = locale.Catalog

// ChainOptions exports the fallback chain options.
type ChainOptions = locale.ChainOptions

// Logger exports the logging contract the module emits through.
type Logger = interfaces.Logger

// LoggerProvider exports the named logger provider contract.
type LoggerProvider = interfaces.LoggerProvider

// NotFoundError exports the store miss error type.
type NotFoundError = translate.NotFoundError

// PersistenceError exports the store failure error type.
type PersistenceError = translate.PersistenceError

// UpsertTranslationCommand exports the translation upsert message.
type UpsertTranslationCommand = commands.UpsertTranslationCommand

// DeleteTranslationsCommand exports the translation delete message.
type DeleteTranslationsCommand = commands.DeleteTranslationsCommand

// UpsertTranslationHandler exports the upsert command handler.
type UpsertTranslationHandler = commands.UpsertTranslationHandler

// DeleteTranslationsHandler exports the delete command handler.
type DeleteTranslationsHandler = commands.DeleteTranslationsHandler

// RecordFactory exports the record resolver used by command handlers.
type RecordFactory = commands.RecordFactory

// New constructs a translation engine from the configuration and store.
func New(cfg Config, store Store, opts ...translate.EngineOption) (*Engine, error) {
	return translate.NewEngine(cfg, store, opts...)
}

// WithCurrentLocale stores the ambient locale on the context; records read it
// at resolution time.
func WithCurrentLocale(ctx context.Context, code string) context.Context {
	return locale.WithCurrent(ctx, code)
}

// CurrentLocale returns the ambient locale carried by the context, empty
// when none is set.
func CurrentLocale(ctx context.Context) string {
	return locale.Current(ctx)
}

// IsNotFound reports whether err represents a store miss.
func IsNotFound(err error) bool {
	return translate.IsNotFound(err)
}

// NewUpsertTranslationHandler builds the upsert command handler over the
// record factory.
func NewUpsertTranslationHandler(records RecordFactory, logger Logger, opts ...commands.HandlerOption[UpsertTranslationCommand]) *commands.UpsertTranslationHandler {
	return commands.NewUpsertTranslationHandler(records, logger, opts...)
}

// NewDeleteTranslationsHandler builds the delete command handler over the
// record factory.
func NewDeleteTranslationsHandler(records RecordFactory, logger Logger, opts ...commands.HandlerOption[DeleteTranslationsCommand]) *commands.DeleteTranslationsHandler {
	return commands.NewDeleteTranslationsHandler(records, logger, opts...)
}
