package commands_test

import (
	"context"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-translatable/internal/commands"
	"github.com/goliatone/go-translatable/internal/runtimeconfig"
	"github.com/goliatone/go-translatable/translate"
	"github.com/google/uuid"
)

var recordID = uuid.MustParse("11111111-1111-1111-1111-111111111111")

func newFactory(t *testing.T) (commands.RecordFactory, *translate.MemoryStore) {
	t.Helper()
	store := translate.NewMemoryStore()
	cfg := runtimeconfig.Config{
		Locales:       []runtimeconfig.LocaleEntry{{Code: "en"}, {Code: "fr"}},
		Separator:     "-",
		DefaultLocale: "en",
		UseFallback:   true,
	}
	engine, err := translate.NewEngine(cfg, store)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	factory := func(id uuid.UUID) (*translate.Record, error) {
		return engine.NewRecord(id, translate.WithFields("title"))
	}
	return factory, store
}

func TestUpsertTranslationCommand(t *testing.T) {
	factory, store := newFactory(t)
	handler := commands.NewUpsertTranslationHandler(factory, nil)

	err := handler.Execute(context.Background(), commands.UpsertTranslationCommand{
		RecordID: recordID,
		Locale:   "fr",
		Fields:   map[string]any{"title": "Présentation"},
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	row, err := store.LoadOne(context.Background(), recordID, "fr")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if row.Fields["title"] != "Présentation" {
		t.Fatalf("expected persisted title got %v", row.Fields["title"])
	}
}

func TestUpsertTranslationCommandUpdatesExisting(t *testing.T) {
	factory, store := newFactory(t)
	if _, err := store.Insert(context.Background(), &translate.Row{
		RecordID: recordID,
		Locale:   "fr",
		Fields:   map[string]any{"title": "Ancien"},
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	handler := commands.NewUpsertTranslationHandler(factory, nil)
	err := handler.Execute(context.Background(), commands.UpsertTranslationCommand{
		RecordID: recordID,
		Locale:   "fr",
		Fields:   map[string]any{"title": "Nouveau"},
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if got := store.Count(recordID); got != 1 {
		t.Fatalf("upsert must not duplicate rows, have %d", got)
	}
	row, err := store.LoadOne(context.Background(), recordID, "fr")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if row.Fields["title"] != "Nouveau" {
		t.Fatalf("expected updated title got %v", row.Fields["title"])
	}
}

func TestUpsertTranslationCommandValidation(t *testing.T) {
	factory, _ := newFactory(t)
	handler := commands.NewUpsertTranslationHandler(factory, nil)

	err := handler.Execute(context.Background(), commands.UpsertTranslationCommand{
		Locale: "fr",
	})
	if err == nil {
		t.Fatal("expected validation failure")
	}
	if !goerrors.IsWrapped(err) {
		t.Fatalf("expected wrapped validation error got %v", err)
	}
}

func TestDeleteTranslationsCommand(t *testing.T) {
	factory, store := newFactory(t)
	for _, loc := range []string{"en", "fr"} {
		if _, err := store.Insert(context.Background(), &translate.Row{
			RecordID: recordID,
			Locale:   loc,
			Fields:   map[string]any{"title": "x"},
		}); err != nil {
			t.Fatalf("seed %s: %v", loc, err)
		}
	}

	handler := commands.NewDeleteTranslationsHandler(factory, nil)
	err := handler.Execute(context.Background(), commands.DeleteTranslationsCommand{
		RecordID: recordID,
		Locales:  []string{"fr"},
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got := store.Count(recordID); got != 1 {
		t.Fatalf("expected 1 remaining row got %d", got)
	}

	// No locales means everything goes.
	err = handler.Execute(context.Background(), commands.DeleteTranslationsCommand{RecordID: recordID})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got := store.Count(recordID); got != 0 {
		t.Fatalf("expected no rows got %d", got)
	}
}

func TestDeleteTranslationsCommandValidation(t *testing.T) {
	factory, _ := newFactory(t)
	handler := commands.NewDeleteTranslationsHandler(factory, nil)

	if err := handler.Execute(context.Background(), commands.DeleteTranslationsCommand{}); err == nil {
		t.Fatal("expected validation failure for missing record id")
	}
	if err := handler.Execute(context.Background(), commands.DeleteTranslationsCommand{
		RecordID: recordID,
		Locales:  []string{""},
	}); err == nil {
		t.Fatal("expected validation failure for empty locale code")
	}
}
