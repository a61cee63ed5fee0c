package locale_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-translatable/internal/runtimeconfig"
	"github.com/goliatone/go-translatable/locale"
)

func testConfig() runtimeconfig.Config {
	return runtimeconfig.Config{
		Locales: []runtimeconfig.LocaleEntry{
			{Code: "en"},
			{Code: "fr"},
			{Code: "es", Regions: []string{"MX", "CO"}},
		},
		Separator:     "-",
		DefaultLocale: "en",
		UseFallback:   true,
	}
}

func TestNewCatalogRegistersGroupedLocales(t *testing.T) {
	catalog, err := locale.NewCatalog(testConfig())
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}

	want := []string{"en", "es", "es-CO", "es-MX", "fr"}
	got := catalog.Codes()
	if len(got) != len(want) {
		t.Fatalf("expected %d codes got %d: %v", len(want), len(got), got)
	}
	for i, code := range want {
		if got[i] != code {
			t.Fatalf("expected code %q at %d got %q", code, i, got[i])
		}
	}
}

func TestCatalogParentMapping(t *testing.T) {
	catalog, err := locale.NewCatalog(testConfig())
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}

	// Every registered region-qualified code degrades to its language.
	for _, code := range catalog.Codes() {
		parent := catalog.Parent(code)
		if catalog.IsRegional(code) && parent == "" {
			t.Fatalf("regional code %q has no parent", code)
		}
		if parent != "" && !catalog.Has(parent) {
			t.Fatalf("parent %q of %q is not registered", parent, code)
		}
	}

	if got := catalog.Parent("es-MX"); got != "es" {
		t.Fatalf("expected parent es got %q", got)
	}
	if got := catalog.Parent("en"); got != "" {
		t.Fatalf("expected no parent for simple code got %q", got)
	}
}

func TestCatalogHasIsCaseInsensitive(t *testing.T) {
	catalog, err := locale.NewCatalog(testConfig())
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}

	for _, code := range []string{"ES-MX", "es-mx", " es-MX "} {
		if !catalog.Has(code) {
			t.Fatalf("expected catalog to match %q", code)
		}
	}
	if catalog.Has("de") {
		t.Fatal("expected unregistered code to miss")
	}
}

func TestCatalogBaseFreeForm(t *testing.T) {
	catalog, err := locale.NewCatalog(testConfig())
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}

	// Unregistered region-qualified codes still degrade by separator.
	if got := catalog.Base("pt-BR"); got != "pt" {
		t.Fatalf("expected base pt got %q", got)
	}
	if got := catalog.Base("de"); got != "" {
		t.Fatalf("expected no base for simple free-form code got %q", got)
	}
}

func TestNewCatalogRejectsDuplicates(t *testing.T) {
	cfg := testConfig()
	cfg.Locales = append(cfg.Locales, runtimeconfig.LocaleEntry{Code: "EN"})

	if _, err := locale.NewCatalog(cfg); !errors.Is(err, locale.ErrDuplicateLocale) {
		t.Fatalf("expected ErrDuplicateLocale got %v", err)
	}
}

func TestNewCatalogRejectsSeparatorInSimpleCode(t *testing.T) {
	cfg := testConfig()
	cfg.Locales = []runtimeconfig.LocaleEntry{{Code: "en-US"}}

	_, err := locale.NewCatalog(cfg)
	if !errors.Is(err, locale.ErrSeparatorInCode) {
		t.Fatalf("expected ErrSeparatorInCode got %v", err)
	}
	if !errors.Is(err, locale.ErrConfiguration) {
		t.Fatalf("expected configuration category got %v", err)
	}
}

func TestNewCatalogRejectsEmptyRegion(t *testing.T) {
	cfg := testConfig()
	cfg.Locales = []runtimeconfig.LocaleEntry{{Code: "es", Regions: []string{" "}}}

	if _, err := locale.NewCatalog(cfg); !errors.Is(err, locale.ErrEmptyRegion) {
		t.Fatalf("expected ErrEmptyRegion got %v", err)
	}
}

func TestNewCatalogValidatesConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Separator = "--"

	if _, err := locale.NewCatalog(cfg); !errors.Is(err, locale.ErrConfiguration) {
		t.Fatalf("expected configuration error got %v", err)
	}
}

func TestCatalogCustomSeparator(t *testing.T) {
	cfg := testConfig()
	cfg.Separator = "_"
	cfg.Locales = []runtimeconfig.LocaleEntry{
		{Code: "en"},
		{Code: "pt", Regions: []string{"BR"}},
	}

	catalog, err := locale.NewCatalog(cfg)
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	if !catalog.Has("pt_BR") {
		t.Fatal("expected pt_BR to be registered")
	}
	if got := catalog.Parent("pt_BR"); got != "pt" {
		t.Fatalf("expected parent pt got %q", got)
	}
}
