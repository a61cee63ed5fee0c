package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"os"

	translatable "github.com/goliatone/go-translatable"
	"github.com/goliatone/go-translatable/internal/commands"
	"github.com/goliatone/go-translatable/internal/logging/gologger"
	"github.com/goliatone/go-translatable/translate"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

func main() {
	ctx := context.Background()

	provider, err := gologger.NewProvider(gologger.Config{
		Level:  "debug",
		Format: "console",
	})
	if err != nil {
		log.Fatalf("initialise logger: %v", err)
	}

	sqldb, err := sql.Open("sqlite3", "file::memory:?cache=shared")
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}
	defer sqldb.Close()
	db := bun.NewDB(sqldb, sqlitedialect.New())

	if err := translate.CreateSchema(ctx, db); err != nil {
		log.Fatalf("create schema: %v", err)
	}

	cfg := translatable.DefaultConfig()
	cfg.Locales = []translatable.LocaleEntry{
		{Code: "en"},
		{Code: "fr"},
		{Code: "es", Regions: []string{"MX", "CO"}},
	}
	cfg.DefaultLocale = "en"
	cfg.UsePerFieldFallback = true

	store := translate.NewBunStore(db)
	engine, err := translatable.New(cfg, store,
		translate.WithLoggerProvider(provider))
	if err != nil {
		log.Fatalf("initialise engine: %v", err)
	}

	articleID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	article, err := engine.NewRecord(articleID,
		translate.WithFields("title", "summary"),
		translate.WithAttributes(map[string]any{"slug": "company-overview"}))
	if err != nil {
		log.Fatalf("create record: %v", err)
	}

	// Mixed bulk form: locale-keyed mappings plus flat and composite keys.
	if err := article.Fill(ctx, map[string]any{
		"en": map[string]any{
			"title":   "Company Overview",
			"summary": "Who we are",
		},
		"es": map[string]any{
			"title": "Resumen de la empresa",
		},
		"title:fr":  "Présentation de l'entreprise",
		"published": true,
	}); err != nil {
		log.Fatalf("fill translations: %v", err)
	}
	if err := article.Save(ctx); err != nil {
		log.Fatalf("save translations: %v", err)
	}

	// es-MX has no row: whole-bundle fallback resolves the base language, and
	// the missing summary falls through per-field to the configured fallback.
	ctx = translatable.WithCurrentLocale(ctx, "es-MX")
	title, _, err := article.Field(ctx, "title")
	if err != nil {
		log.Fatalf("resolve title: %v", err)
	}
	summary, _, err := article.Field(ctx, "summary")
	if err != nil {
		log.Fatalf("resolve summary: %v", err)
	}

	upsert := translatable.NewUpsertTranslationHandler(func(id uuid.UUID) (*translatable.Record, error) {
		return engine.NewRecord(id, translate.WithFields("title", "summary"))
	}, nil, commands.WithLoggerProvider[translatable.UpsertTranslationCommand](provider))
	if err := upsert.Execute(ctx, translatable.UpsertTranslationCommand{
		RecordID: articleID,
		Locale:   "fr",
		Fields:   map[string]any{"summary": "Qui nous sommes"},
	}); err != nil {
		log.Fatalf("upsert fr summary: %v", err)
	}

	copyID := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	clone, err := article.Replicate(ctx, copyID)
	if err != nil {
		log.Fatalf("replicate record: %v", err)
	}
	if err := clone.Save(ctx); err != nil {
		log.Fatalf("save replica: %v", err)
	}

	export, err := article.TranslationsArray(ctx)
	if err != nil {
		log.Fatalf("export translations: %v", err)
	}

	payload := map[string]any{
		"record_id":        articleID,
		"replica_id":       copyID,
		"title_es_mx":      title,
		"summary_es_mx":    summary,
		"translations":     export,
		"plain_attributes": article.Attributes(),
	}
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(payload); err != nil {
		log.Fatalf("encode output: %v", err)
	}
}
