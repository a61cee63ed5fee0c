package translate

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// bundleCache indexes the bundles loaded or created during one record
// instance's lifetime. At most one bundle object exists per (record, locale),
// so repeated lookups observe earlier field mutations. Entries are never
// persisted themselves and are rebuilt on each fresh load of the record.
type bundleCache struct {
	store     Store
	recordID  uuid.UUID
	bundles   map[string]*Bundle
	loadedAll bool
}

func newBundleCache(store Store, recordID uuid.UUID) *bundleCache {
	return &bundleCache{
		store:    store,
		recordID: recordID,
		bundles:  make(map[string]*Bundle),
	}
}

func cacheKey(locale string) string {
	return strings.ToLower(strings.TrimSpace(locale))
}

// get returns the cached bundle, loading it from the store on a miss. Absent
// rows yield (nil, nil) and are remembered as a nil entry until invalidate, so
// repeated resolutions of a missing locale hit the store once; the cache never
// auto-creates.
func (c *bundleCache) get(ctx context.Context, locale string) (*Bundle, error) {
	key := cacheKey(locale)
	if key == "" {
		return nil, ErrLocaleRequired
	}
	if bundle, ok := c.bundles[key]; ok {
		return bundle, nil
	}
	if c.loadedAll {
		return nil, nil
	}

	row, err := c.store.LoadOne(ctx, c.recordID, locale)
	if err != nil {
		if IsNotFound(err) {
			c.bundles[key] = nil
			return nil, nil
		}
		return nil, err
	}
	bundle := bundleFromRow(row)
	c.bundles[key] = bundle
	return bundle, nil
}

// getOrNew returns the cached or loaded bundle, instantiating a new unsaved
// one when no row exists.
func (c *bundleCache) getOrNew(ctx context.Context, locale string) (*Bundle, error) {
	bundle, err := c.get(ctx, locale)
	if err != nil {
		return nil, err
	}
	if bundle != nil {
		return bundle, nil
	}
	bundle = newBundle(c.recordID, locale)
	c.bundles[cacheKey(locale)] = bundle
	return bundle, nil
}

// all forces a bulk load of every persisted bundle not already cached and
// returns the merged view, in-memory unsaved bundles included.
func (c *bundleCache) all(ctx context.Context) ([]*Bundle, error) {
	if !c.loadedAll {
		rows, err := c.store.LoadAll(ctx, c.recordID)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			key := cacheKey(row.Locale)
			if existing, ok := c.bundles[key]; ok && existing != nil {
				continue
			}
			c.bundles[key] = bundleFromRow(row)
		}
		c.loadedAll = true
	}

	out := make([]*Bundle, 0, len(c.bundles))
	for _, bundle := range c.bundles {
		if bundle == nil {
			continue
		}
		out = append(out, bundle)
	}
	return out, nil
}

// invalidate drops the named cache entries, or every entry when none are
// given, forcing a reload on next access.
func (c *bundleCache) invalidate(locales ...string) {
	if len(locales) == 0 {
		c.bundles = make(map[string]*Bundle)
		c.loadedAll = false
		return
	}
	for _, locale := range locales {
		delete(c.bundles, cacheKey(locale))
	}
	c.loadedAll = false
}

// cached returns the in-memory bundles without touching the store. Negative
// entries are not bundles and stay out of the result.
func (c *bundleCache) cached() []*Bundle {
	out := make([]*Bundle, 0, len(c.bundles))
	for _, bundle := range c.bundles {
		if bundle == nil {
			continue
		}
		out = append(out, bundle)
	}
	return out
}
