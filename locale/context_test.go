package locale_test

import (
	"context"
	"testing"

	"github.com/goliatone/go-translatable/locale"
)

func TestContextCurrentLocale(t *testing.T) {
	ctx := context.Background()
	if got := locale.Current(ctx); got != "" {
		t.Fatalf("expected empty ambient locale got %q", got)
	}

	ctx = locale.WithCurrent(ctx, "es-MX")
	if got := locale.Current(ctx); got != "es-MX" {
		t.Fatalf("expected es-MX got %q", got)
	}

	// The newest value shadows earlier ones.
	ctx = locale.WithCurrent(ctx, "fr")
	if got := locale.Current(ctx); got != "fr" {
		t.Fatalf("expected fr got %q", got)
	}
}

func TestContextBlankLocaleIgnored(t *testing.T) {
	ctx := locale.WithCurrent(context.Background(), "  ")
	if got := locale.Current(ctx); got != "" {
		t.Fatalf("expected blank locale to be dropped got %q", got)
	}
}
