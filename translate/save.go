package translate

import (
	"context"
	"sort"

	"github.com/google/uuid"
)

// Save flushes every dirty bundle: insert for new bundles, update for
// previously persisted ones. Clean bundles are untouched and a new bundle
// that never received a write is discarded. When the store supports
// transactions and more than one bundle is dirty, the flush runs as one
// atomic unit; either way a failure names the bundle that broke so the
// caller can decide whether to roll the owning record's commit back.
//
// The primary record's own row is the host application's concern: commit it
// inside the same store transaction when atomicity across both is required.
func (r *Record) Save(ctx context.Context) error {
	dirty := r.dirtyBundles()
	if len(dirty) == 0 {
		return nil
	}

	saved := make([]*Row, len(dirty))
	flush := func(ctx context.Context, store Store) error {
		for i, bundle := range dirty {
			row := bundle.row()
			var err error
			if bundle.IsNew() {
				row.ID = uuid.Nil
				saved[i], err = store.Insert(ctx, row)
				if err != nil {
					return &PersistenceError{Op: "insert", RecordID: r.id, Locale: bundle.Locale(), Err: err}
				}
			} else {
				saved[i], err = store.Update(ctx, row)
				if err != nil {
					return &PersistenceError{Op: "update", RecordID: r.id, Locale: bundle.Locale(), Err: err}
				}
			}
		}
		return nil
	}

	var err error
	if ts, ok := r.store.(TransactionalStore); ok && len(dirty) > 1 {
		err = ts.Transaction(ctx, flush)
	} else {
		err = flush(ctx, r.store)
	}
	if err != nil {
		return err
	}

	// Dirty flags clear only after the whole flush committed.
	for i, bundle := range dirty {
		bundle.markSaved(saved[i])
	}
	r.logger.Debug("translate.save", "record", r.id.String(), "bundles", len(dirty))
	return nil
}

func (r *Record) dirtyBundles() []*Bundle {
	bundles := r.cache.cached()
	dirty := make([]*Bundle, 0, len(bundles))
	for _, bundle := range bundles {
		if bundle.IsDirty() {
			dirty = append(dirty, bundle)
		}
	}
	sort.Slice(dirty, func(i, j int) bool {
		return dirty[i].Locale() < dirty[j].Locale()
	})
	return dirty
}

// DeleteTranslations removes the bundles for the named locales, or every
// bundle when none are named, then drops the matching cache entries. The
// two-step cascade used on primary-record deletion is this call followed by
// the host's own row delete, grouped in one store transaction.
func (r *Record) DeleteTranslations(ctx context.Context, locales ...string) error {
	if len(locales) == 0 {
		if err := r.store.DeleteAll(ctx, r.id); err != nil {
			return &PersistenceError{Op: "delete", RecordID: r.id, Err: err}
		}
		r.cache.invalidate()
		r.logger.Debug("translate.delete", "record", r.id.String(), "locales", "all")
		return nil
	}

	remove := func(ctx context.Context, store Store) error {
		for _, loc := range locales {
			if err := store.Delete(ctx, r.id, loc); err != nil {
				return &PersistenceError{Op: "delete", RecordID: r.id, Locale: loc, Err: err}
			}
		}
		return nil
	}

	var err error
	if ts, ok := r.store.(TransactionalStore); ok && len(locales) > 1 {
		err = ts.Transaction(ctx, remove)
	} else {
		err = remove(ctx, r.store)
	}
	if err != nil {
		return err
	}

	r.cache.invalidate(locales...)
	r.logger.Debug("translate.delete", "record", r.id.String(), "locales", len(locales))
	return nil
}

// Delete is step one of the record deletion cascade: it removes every stored
// translation. The host deletes its own primary row afterwards, ideally inside
// the same store transaction.
func (r *Record) Delete(ctx context.Context) error {
	return r.DeleteTranslations(ctx)
}

// TranslationsArray forces a bulk load and returns every non-empty bundle's
// fields keyed by locale.
func (r *Record) TranslationsArray(ctx context.Context) (map[string]map[string]any, error) {
	bundles, err := r.cache.all(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string]map[string]any, len(bundles))
	for _, bundle := range bundles {
		if bundle.IsEmpty() {
			continue
		}
		out[bundle.Locale()] = bundle.Fields()
	}
	return out, nil
}

// Replicate deep-copies every loaded bundle onto a fresh record with the
// given identity. The clones are new, unpersisted bundles: field values
// carry over, bundle identities do not, and mutating a clone never touches
// the original.
func (r *Record) Replicate(ctx context.Context, newID uuid.UUID) (*Record, error) {
	if newID == uuid.Nil {
		return nil, ErrRecordIDRequired
	}
	bundles, err := r.cache.all(ctx)
	if err != nil {
		return nil, err
	}

	clone := &Record{
		id:                  newID,
		catalog:             r.catalog,
		store:               r.store,
		cache:               newBundleCache(r.store, newID),
		defaultLocale:       r.defaultLocale,
		fallbackLocale:      r.fallbackLocale,
		useFallback:         r.useFallback,
		usePerFieldFallback: r.usePerFieldFallback,
		fields:              make(map[string]struct{}, len(r.fields)),
		attrs:               cloneFields(r.attrs),
		logger:              r.logger,
	}
	if clone.attrs == nil {
		clone.attrs = map[string]any{}
	}
	for field := range r.fields {
		clone.fields[field] = struct{}{}
	}

	for _, bundle := range bundles {
		clone.cache.bundles[cacheKey(bundle.Locale())] = bundle.clone(newID)
	}
	// The clone's bundles are definitive; nothing should merge in from rows
	// stored under the new identity.
	clone.cache.loadedAll = true
	return clone, nil
}
