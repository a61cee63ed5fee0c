package locale

import (
	"sort"
	"strings"

	"github.com/goliatone/go-translatable/internal/runtimeconfig"
)

// Catalog is an immutable snapshot of the registered locale codes. It maps
// every region-qualified code back to its language parent so fallback chains
// can prefer the closest linguistic relative.
type Catalog struct {
	separator     string
	defaultLocale string
	entries       map[string]catalogEntry
	codes         []string
}

type catalogEntry struct {
	code   string
	parent string
}

// NewCatalog builds a catalogue from the runtime configuration. Flat entries
// register a simple code; grouped entries register the language code plus one
// `language<separator>region` code per region, each with the language as its
// parent.
func NewCatalog(cfg runtimeconfig.Config) (*Catalog, error) {
	if err := cfg.Validate(); err != nil {
		return nil, &ConfigurationError{Err: err}
	}

	c := &Catalog{
		separator:     cfg.Separator,
		defaultLocale: strings.TrimSpace(cfg.DefaultLocale),
		entries:       make(map[string]catalogEntry),
	}

	for _, entry := range cfg.Locales {
		code := strings.TrimSpace(entry.Code)
		if code == "" {
			return nil, &ConfigurationError{Err: ErrEmptyLocale}
		}
		if strings.Contains(code, c.separator) {
			return nil, &ConfigurationError{Code: code, Err: ErrSeparatorInCode}
		}
		if err := c.register(code, ""); err != nil {
			return nil, err
		}
		for _, region := range entry.Regions {
			region = strings.TrimSpace(region)
			if region == "" {
				return nil, &ConfigurationError{Code: code, Err: ErrEmptyRegion}
			}
			if err := c.register(code+c.separator+region, code); err != nil {
				return nil, err
			}
		}
	}

	sort.Strings(c.codes)
	return c, nil
}

func (c *Catalog) register(code, parent string) error {
	key := strings.ToLower(code)
	if _, exists := c.entries[key]; exists {
		return &ConfigurationError{Code: code, Err: ErrDuplicateLocale}
	}
	c.entries[key] = catalogEntry{code: code, parent: parent}
	c.codes = append(c.codes, code)
	return nil
}

// Separator returns the configured subtag separator.
func (c *Catalog) Separator() string {
	if c == nil {
		return runtimeconfig.DefaultSeparator
	}
	return c.separator
}

// DefaultLocale returns the configured fallback locale.
func (c *Catalog) DefaultLocale() string {
	if c == nil {
		return ""
	}
	return c.defaultLocale
}

// Codes returns every registered locale code, sorted alphabetically.
func (c *Catalog) Codes() []string {
	if c == nil || len(c.codes) == 0 {
		return nil
	}
	out := make([]string, len(c.codes))
	copy(out, c.codes)
	return out
}

// Has reports whether the code is registered (case-insensitive).
func (c *Catalog) Has(code string) bool {
	if c == nil {
		return false
	}
	_, ok := c.entries[strings.ToLower(strings.TrimSpace(code))]
	return ok
}

// Parent returns the language parent of a registered region-qualified code,
// or the empty string for simple and unknown codes.
func (c *Catalog) Parent(code string) string {
	if c == nil {
		return ""
	}
	entry, ok := c.entries[strings.ToLower(strings.TrimSpace(code))]
	if !ok {
		return ""
	}
	return entry.parent
}

// IsRegional reports whether the code carries a region subtag. Registered
// codes answer from the catalogue; free-form codes answer from the separator,
// since unregistered locales are still valid write targets.
func (c *Catalog) IsRegional(code string) bool {
	return c.Base(code) != ""
}

// Base returns the language subtag a region-qualified code degrades to. For
// registered codes this is the catalogue parent; for free-form codes the part
// before the separator. Simple codes return the empty string.
func (c *Catalog) Base(code string) string {
	if c == nil {
		return ""
	}
	code = strings.TrimSpace(code)
	if entry, ok := c.entries[strings.ToLower(code)]; ok {
		return entry.parent
	}
	if idx := strings.Index(code, c.separator); idx > 0 {
		return code[:idx]
	}
	return ""
}
