package translate

import (
	"context"

	"github.com/uptrace/bun"
)

// CreateSchema creates the translations table and the uniqueness guard on
// (record_id, locale). Creating a second bundle for an already-present
// locale must update the existing row, never duplicate it; the index backs
// that invariant at the store level.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	if _, err := db.NewCreateTable().
		Model((*Row)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return err
	}
	if _, err := db.NewCreateIndex().
		Model((*Row)(nil)).
		Index("translations_record_locale_uq").
		Unique().
		Column("record_id", "locale").
		IfNotExists().
		Exec(ctx); err != nil {
		return err
	}
	return nil
}
