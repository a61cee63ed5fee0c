package translate

import (
	"context"
	"sort"
	"strings"

	"github.com/goliatone/go-translatable/locale"
	"github.com/goliatone/go-translatable/pkg/interfaces"
	"github.com/google/uuid"
)

// suffixSeparator joins a field name and an explicit locale in composite
// keys such as "title:fr".
const suffixSeparator = ":"

// Settings captures the per-entity overrides for one record type. Zero
// values defer to the engine's global configuration; pointer flags override
// it explicitly in either direction.
type Settings struct {
	// DefaultLocale overrides the ambient locale for this record.
	DefaultLocale string
	// FallbackLocale overrides the configured fallback locale.
	FallbackLocale string
	// UseFallback toggles whole-bundle fallback.
	UseFallback *bool
	// UsePerFieldFallback toggles fallback at field granularity.
	UsePerFieldFallback *bool
	// Fields names the translatable fields. Writes to other keys pass
	// through to the record's plain attributes.
	Fields []string
}

// RecordOption configures a record at construction time.
type RecordOption func(*Record)

// WithSettings applies per-entity overrides on top of the global config.
func WithSettings(settings Settings) RecordOption {
	return func(r *Record) {
		if loc := strings.TrimSpace(settings.DefaultLocale); loc != "" {
			r.defaultLocale = loc
		}
		if loc := strings.TrimSpace(settings.FallbackLocale); loc != "" {
			r.fallbackLocale = loc
		}
		if settings.UseFallback != nil {
			r.useFallback = *settings.UseFallback
		}
		if settings.UsePerFieldFallback != nil {
			r.usePerFieldFallback = *settings.UsePerFieldFallback
		}
		for _, field := range settings.Fields {
			if field = strings.TrimSpace(field); field != "" {
				r.fields[field] = struct{}{}
			}
		}
	}
}

// WithFields names the translatable fields without other overrides.
func WithFields(fields ...string) RecordOption {
	return WithSettings(Settings{Fields: fields})
}

// WithAttributes seeds the record's plain attribute map.
func WithAttributes(attrs map[string]any) RecordOption {
	return func(r *Record) {
		for key, value := range attrs {
			r.attrs[key] = value
		}
	}
}

// Record routes translated reads and writes for one primary record instance.
// It applies the fallback chain at two granularities: whole-bundle when no
// row exists for a locale, and per-field when a row exists but a field is
// empty. All state is owned by the instance; it is not safe for concurrent
// mutation.
type Record struct {
	id                  uuid.UUID
	catalog             *locale.Catalog
	store               Store
	cache               *bundleCache
	defaultLocale       string
	fallbackLocale      string
	useFallback         bool
	usePerFieldFallback bool
	fields              map[string]struct{}
	attrs               map[string]any
	logger              interfaces.Logger
}

// ID returns the primary record identity translations are keyed by.
func (r *Record) ID() uuid.UUID {
	if r == nil {
		return uuid.Nil
	}
	return r.id
}

// currentLocale resolves the locale used when none is passed explicitly:
// the per-record override, else the ambient context locale, else the
// catalogue default. The ambient value is read here, at resolution time,
// never cached across calls.
func (r *Record) currentLocale(ctx context.Context) string {
	if r.defaultLocale != "" {
		return r.defaultLocale
	}
	if current := locale.Current(ctx); current != "" {
		return current
	}
	return r.catalog.DefaultLocale()
}

func (r *Record) chain(ctx context.Context, requested string, withFallback bool) []string {
	requested = strings.TrimSpace(requested)
	if requested == "" {
		requested = r.currentLocale(ctx)
	}
	return r.catalog.Chain(requested, locale.ChainOptions{
		Fallback:    r.fallbackLocale,
		UseFallback: withFallback,
	})
}

// resolve walks the chain and returns the first candidate with a bundle,
// along with its position and the chain itself so per-field fallback can
// continue from the next candidate.
func (r *Record) resolve(ctx context.Context, requested string, withFallback bool) (*Bundle, int, []string, error) {
	chain := r.chain(ctx, requested, withFallback)
	for i, candidate := range chain {
		bundle, err := r.cache.get(ctx, candidate)
		if err != nil {
			return nil, -1, chain, err
		}
		if bundle != nil {
			return bundle, i, chain, nil
		}
	}
	return nil, -1, chain, nil
}

// Translate returns the bundle for the locale, walking the fallback chain
// when the record's fallback flag is on. Empty locale means the current
// locale. A nil bundle with nil error means nothing resolved.
func (r *Record) Translate(ctx context.Context, loc string) (*Bundle, error) {
	return r.TranslateWithFallback(ctx, loc, r.useFallback)
}

// TranslateWithFallback is Translate with the fallback behaviour pinned for
// this one call, regardless of the record's flag.
func (r *Record) TranslateWithFallback(ctx context.Context, loc string, withFallback bool) (*Bundle, error) {
	bundle, _, _, err := r.resolve(ctx, loc, withFallback)
	return bundle, err
}

// TranslateOrDefault is whole-bundle resolution with fallback forced on.
func (r *Record) TranslateOrDefault(ctx context.Context, loc string) (*Bundle, error) {
	return r.TranslateWithFallback(ctx, loc, true)
}

// TranslateOrNew returns the bundle for the locale, creating a new unsaved
// bundle when no row exists. Only the requested locale may be created fresh;
// fallback locales are never auto-created. Calling it twice for the same
// locale returns the identical bundle object.
func (r *Record) TranslateOrNew(ctx context.Context, loc string) (*Bundle, error) {
	loc = strings.TrimSpace(loc)
	if loc == "" {
		loc = r.currentLocale(ctx)
	}
	return r.cache.getOrNew(ctx, loc)
}

// HasTranslation reports whether a bundle exists for the locale, without
// fallback. Unregistered, never-created locales answer false, not an error.
func (r *Record) HasTranslation(ctx context.Context, loc string) (bool, error) {
	bundle, err := r.TranslateWithFallback(ctx, loc, false)
	if err != nil {
		return false, err
	}
	return bundle != nil, nil
}

// Field resolves a readable value for the key, which is either a plain field
// name (current locale) or a "field:locale" composite. Translatable fields
// route through bundle resolution plus per-field fallback; other keys read
// the plain attribute map. The boolean reports presence.
func (r *Record) Field(ctx context.Context, key string) (any, bool, error) {
	field, loc, suffixed := splitSuffixKey(key)
	if suffixed && r.suffixTranslatable(field) {
		return r.resolveField(ctx, field, loc)
	}
	if !suffixed && r.isTranslatable(key) {
		return r.resolveField(ctx, key, "")
	}
	value, ok := r.attrs[key]
	return value, ok, nil
}

// resolveField implements field-level resolution: whole-bundle resolution
// first, then, when the resolved field is empty and both fallback flags are
// on, the same field is retried against each subsequent chain candidate.
func (r *Record) resolveField(ctx context.Context, field, requested string) (any, bool, error) {
	bundle, idx, chain, err := r.resolve(ctx, requested, r.useFallback)
	if err != nil {
		return nil, false, err
	}
	if bundle == nil {
		return nil, false, nil
	}

	value, ok := bundle.Get(field)
	if !hasMeaningfulValue(value) && r.usePerFieldFallback && r.useFallback {
		for _, candidate := range chain[idx+1:] {
			next, err := r.cache.get(ctx, candidate)
			if err != nil {
				return nil, false, err
			}
			if next != nil && next.HasValue(field) {
				return next.Value(field), true, nil
			}
		}
	}
	return value, ok, nil
}

// SetField routes a write. Translatable keys resolve their target bundle via
// create-on-miss and never fall back; writes to other keys pass through to
// the plain attribute map unchanged, matching the documented behaviour for
// malformed bulk-fill keys.
func (r *Record) SetField(ctx context.Context, key string, value any) error {
	field, loc, suffixed := splitSuffixKey(key)
	if suffixed && r.suffixTranslatable(field) {
		return r.setTranslated(ctx, field, loc, value)
	}
	if !suffixed && r.isTranslatable(key) {
		return r.setTranslated(ctx, key, r.currentLocale(ctx), value)
	}

	r.logger.Debug("translate.attribute.passthrough", "record", r.id.String(), "key", key)
	r.attrs[key] = value
	return nil
}

func (r *Record) setTranslated(ctx context.Context, field, loc string, value any) error {
	bundle, err := r.cache.getOrNew(ctx, loc)
	if err != nil {
		return err
	}
	bundle.Set(field, value)
	return nil
}

// Fill applies a bulk write. Top-level keys are either a locale whose value
// is a field mapping, or a flat key handled exactly like SetField. Both
// forms normalise to per-(locale, field) writes; locale-keyed mappings apply
// first, then flat keys, each group in sorted key order, so repeated
// (locale, field) pairs resolve last-write-wins deterministically.
func (r *Record) Fill(ctx context.Context, values map[string]any) error {
	localeKeys := make([]string, 0, len(values))
	flatKeys := make([]string, 0, len(values))
	for key, value := range values {
		if _, ok := value.(map[string]any); ok && r.isLocaleKey(key) {
			localeKeys = append(localeKeys, key)
			continue
		}
		flatKeys = append(flatKeys, key)
	}
	sort.Strings(localeKeys)
	sort.Strings(flatKeys)

	for _, loc := range localeKeys {
		fields := values[loc].(map[string]any)
		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if err := r.setTranslated(ctx, name, loc, fields[name]); err != nil {
				return err
			}
		}
	}
	for _, key := range flatKeys {
		if err := r.SetField(ctx, key, values[key]); err != nil {
			return err
		}
	}
	return nil
}

// isLocaleKey decides whether a top-level Fill key addresses a locale bundle
// rather than a field. Registered locales always qualify; free-form codes
// qualify when they are not a declared translatable field name.
func (r *Record) isLocaleKey(key string) bool {
	if strings.Contains(key, suffixSeparator) {
		return false
	}
	if r.catalog.Has(key) {
		return true
	}
	_, isField := r.fields[key]
	return !isField
}

// isTranslatable reports whether a bare key routes through translation.
func (r *Record) isTranslatable(field string) bool {
	_, ok := r.fields[field]
	return ok
}

// suffixTranslatable reports whether a composite key's field routes through
// translation. With no declared field list every suffixed key does, since
// free-form locale targets are supported.
func (r *Record) suffixTranslatable(field string) bool {
	if len(r.fields) == 0 {
		return true
	}
	return r.isTranslatable(field)
}

// Attribute reads a plain, non-translatable attribute.
func (r *Record) Attribute(key string) (any, bool) {
	value, ok := r.attrs[key]
	return value, ok
}

// Attributes returns a copy of the plain attribute map.
func (r *Record) Attributes() map[string]any {
	return cloneFields(r.attrs)
}

func splitSuffixKey(key string) (field, loc string, ok bool) {
	idx := strings.Index(key, suffixSeparator)
	if idx <= 0 || idx == len(key)-1 {
		return key, "", false
	}
	return key[:idx], key[idx+1:], true
}
