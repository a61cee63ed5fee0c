package locale_test

import (
	"testing"

	"github.com/goliatone/go-translatable/locale"
)

func mustCatalog(t *testing.T) *locale.Catalog {
	t.Helper()
	catalog, err := locale.NewCatalog(testConfig())
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	return catalog
}

func assertChain(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected chain %v got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected chain %v got %v", want, got)
		}
	}
}

func TestChainPrefersBaseOverFallback(t *testing.T) {
	catalog := mustCatalog(t)

	chain := catalog.Chain("es-MX", locale.ChainOptions{UseFallback: true})
	assertChain(t, chain, []string{"es-MX", "es", "en"})
}

func TestChainSimpleLocale(t *testing.T) {
	catalog := mustCatalog(t)

	chain := catalog.Chain("fr", locale.ChainOptions{UseFallback: true})
	assertChain(t, chain, []string{"fr", "en"})
}

func TestChainDeduplicates(t *testing.T) {
	catalog := mustCatalog(t)

	// Requesting the fallback itself yields a single-entry chain.
	chain := catalog.Chain("en", locale.ChainOptions{UseFallback: true})
	assertChain(t, chain, []string{"en"})

	// A fallback equal to the base collapses too.
	chain = catalog.Chain("es-MX", locale.ChainOptions{Fallback: "es", UseFallback: true})
	assertChain(t, chain, []string{"es-MX", "es"})
}

func TestChainWithoutFallback(t *testing.T) {
	catalog := mustCatalog(t)

	chain := catalog.Chain("es-MX", locale.ChainOptions{UseFallback: false})
	assertChain(t, chain, []string{"es-MX"})
}

func TestChainEntityFallbackOverride(t *testing.T) {
	catalog := mustCatalog(t)

	chain := catalog.Chain("es-MX", locale.ChainOptions{Fallback: "fr", UseFallback: true})
	assertChain(t, chain, []string{"es-MX", "es", "fr"})
}

func TestChainFreeFormLocale(t *testing.T) {
	catalog := mustCatalog(t)

	// Unregistered codes still chain through their separator base.
	chain := catalog.Chain("pt-BR", locale.ChainOptions{UseFallback: true})
	assertChain(t, chain, []string{"pt-BR", "pt", "en"})
}

func TestChainEmptyRequestedUsesDefault(t *testing.T) {
	catalog := mustCatalog(t)

	chain := catalog.Chain("", locale.ChainOptions{UseFallback: true})
	assertChain(t, chain, []string{"en"})
}
