package locale

import "strings"

// ChainOptions control how a fallback chain is assembled for one resolution.
type ChainOptions struct {
	// Fallback is the effective fallback locale for the entity being
	// resolved. Empty falls back to the catalogue default.
	Fallback string
	// UseFallback gates steps two and three of the chain. When false the
	// chain contains only the requested locale.
	UseFallback bool
}

// Chain returns the ordered, deduplicated locales to try for a resolution:
// the requested locale, its language base when region-qualified, then the
// effective fallback locale. Region-qualified locales must prefer the closer
// linguistic relative over the unrelated configured fallback.
func (c *Catalog) Chain(requested string, opts ChainOptions) []string {
	requested = strings.TrimSpace(requested)
	if requested == "" {
		requested = c.DefaultLocale()
	}
	if requested == "" {
		return nil
	}

	chain := make([]string, 0, 3)
	seen := make(map[string]struct{}, 3)
	add := func(code string) {
		code = strings.TrimSpace(code)
		if code == "" {
			return
		}
		key := strings.ToLower(code)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		chain = append(chain, code)
	}

	add(requested)
	if opts.UseFallback {
		add(c.Base(requested))
		fallback := strings.TrimSpace(opts.Fallback)
		if fallback == "" {
			fallback = c.DefaultLocale()
		}
		add(fallback)
	}
	return chain
}
