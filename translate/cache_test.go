package translate_test

import (
	"context"
	"testing"

	"github.com/goliatone/go-translatable/translate"
	"github.com/google/uuid"
)

// countingStore tracks how often single-row loads reach the store.
type countingStore struct {
	translate.Store
	loadOne int
}

func (s *countingStore) LoadOne(ctx context.Context, recordID uuid.UUID, locale string) (*translate.Row, error) {
	s.loadOne++
	return s.Store.LoadOne(ctx, recordID, locale)
}

func newCountingRecord(t *testing.T) (*translate.Record, *countingStore, *translate.MemoryStore) {
	t.Helper()
	memory := translate.NewMemoryStore()
	store := &countingStore{Store: memory}
	engine, err := translate.NewEngine(testConfig(), store)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	record, err := engine.NewRecord(recordID, translate.WithFields("title"))
	if err != nil {
		t.Fatalf("new record: %v", err)
	}
	return record, store, memory
}

func TestCacheRemembersMisses(t *testing.T) {
	record, store, _ := newCountingRecord(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		bundle, err := record.TranslateWithFallback(ctx, "fr", false)
		if err != nil {
			t.Fatalf("translate: %v", err)
		}
		if bundle != nil {
			t.Fatalf("expected miss got %v", bundle.Locale())
		}
	}
	if store.loadOne != 1 {
		t.Fatalf("expected a single store load for a repeated miss, got %d", store.loadOne)
	}
}

func TestCacheRemembersMissesAcrossChain(t *testing.T) {
	record, store, memory := newCountingRecord(t)
	ctx := context.Background()
	if _, err := memory.Insert(ctx, &translate.Row{
		RecordID: recordID,
		Locale:   "en",
		Fields:   map[string]any{"title": "Overview"},
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// es-MX and es both miss; every candidate is remembered after one walk.
	for i := 0; i < 3; i++ {
		value, ok, err := record.Field(ctx, "title:es-MX")
		if err != nil {
			t.Fatalf("field: %v", err)
		}
		if !ok || value != "Overview" {
			t.Fatalf("expected fallback title got %v", value)
		}
	}
	if store.loadOne != 3 {
		t.Fatalf("expected one load per chain candidate, got %d", store.loadOne)
	}
}

func TestCacheMissInvalidation(t *testing.T) {
	record, store, memory := newCountingRecord(t)
	ctx := context.Background()

	if has, err := record.HasTranslation(ctx, "fr"); err != nil || has {
		t.Fatalf("expected absent fr, got has=%v err=%v", has, err)
	}

	// Deleting the locale drops its remembered miss; a row written outside
	// the record afterwards becomes visible again.
	if err := record.DeleteTranslations(ctx, "fr"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := memory.Insert(ctx, &translate.Row{
		RecordID: recordID,
		Locale:   "fr",
		Fields:   map[string]any{"title": "Présentation"},
	}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	loadsBefore := store.loadOne
	has, err := record.HasTranslation(ctx, "fr")
	if err != nil {
		t.Fatalf("has translation: %v", err)
	}
	if !has {
		t.Fatal("expected fr after reload")
	}
	if store.loadOne != loadsBefore+1 {
		t.Fatalf("expected a fresh load after invalidation, got %d", store.loadOne-loadsBefore)
	}
}

func TestCacheNegativeEntryUpgradesOnCreate(t *testing.T) {
	record, _, _ := newCountingRecord(t)
	ctx := context.Background()

	if has, err := record.HasTranslation(ctx, "fr"); err != nil || has {
		t.Fatalf("expected absent fr, got has=%v err=%v", has, err)
	}

	bundle, err := record.TranslateOrNew(ctx, "fr")
	if err != nil {
		t.Fatalf("translate or new: %v", err)
	}
	if bundle == nil || !bundle.IsNew() {
		t.Fatalf("expected fresh bundle after remembered miss got %+v", bundle)
	}
	bundle.Set("title", "Présentation")

	// The remembered miss never leaks into exports or the dirty set twice.
	if err := record.Save(ctx); err != nil {
		t.Fatalf("save: %v", err)
	}
	export, err := record.TranslationsArray(ctx)
	if err != nil {
		t.Fatalf("translations array: %v", err)
	}
	if len(export) != 1 || export["fr"]["title"] != "Présentation" {
		t.Fatalf("unexpected export: %v", export)
	}
}
