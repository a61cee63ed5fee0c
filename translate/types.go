package translate

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Row is the persisted shape of one (record, locale) translation. Rows carry
// no update timestamp; bundles are not independently versioned.
type Row struct {
	bun.BaseModel `bun:"table:translations,alias:tr"`

	ID        uuid.UUID      `bun:",pk,type:uuid"                json:"id"`
	RecordID  uuid.UUID      `bun:"record_id,notnull,type:uuid"  json:"record_id"`
	Locale    string         `bun:"locale,notnull"               json:"locale"`
	Fields    map[string]any `bun:"fields,type:jsonb,notnull"    json:"fields"`
	CreatedAt time.Time      `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
}

// Bundle is the in-memory lifecycle wrapper around a translation row: the set
// of translatable field values for one record in one locale, plus the dirty
// and persisted state the save path consults.
//
// A bundle moves NEW -> PERSISTED(clean) on insert, PERSISTED(clean) ->
// PERSISTED(dirty) on any field write, and back to clean on update. A NEW
// bundle that never received a write is discarded by save.
type Bundle struct {
	id        uuid.UUID
	recordID  uuid.UUID
	locale    string
	fields    map[string]any
	createdAt time.Time
	persisted bool
	dirty     bool
}

func newBundle(recordID uuid.UUID, locale string) *Bundle {
	return &Bundle{
		recordID: recordID,
		locale:   strings.TrimSpace(locale),
		fields:   map[string]any{},
	}
}

func bundleFromRow(row *Row) *Bundle {
	if row == nil {
		return nil
	}
	b := &Bundle{
		id:        row.ID,
		recordID:  row.RecordID,
		locale:    row.Locale,
		fields:    cloneFields(row.Fields),
		createdAt: row.CreatedAt,
		persisted: true,
	}
	if b.fields == nil {
		b.fields = map[string]any{}
	}
	return b
}

// ID returns the persisted row identity, uuid.Nil for unsaved bundles.
func (b *Bundle) ID() uuid.UUID {
	if b == nil {
		return uuid.Nil
	}
	return b.id
}

// RecordID returns the owning record identity.
func (b *Bundle) RecordID() uuid.UUID {
	if b == nil {
		return uuid.Nil
	}
	return b.recordID
}

// Locale returns the bundle's locale code.
func (b *Bundle) Locale() string {
	if b == nil {
		return ""
	}
	return b.locale
}

// IsNew reports whether the bundle has never been persisted.
func (b *Bundle) IsNew() bool {
	return b != nil && !b.persisted
}

// IsDirty reports whether the bundle carries unsaved field writes.
func (b *Bundle) IsDirty() bool {
	return b != nil && b.dirty
}

// Get returns the raw value stored for the field and whether it is present.
func (b *Bundle) Get(field string) (any, bool) {
	if b == nil {
		return nil, false
	}
	value, ok := b.fields[field]
	return value, ok
}

// Value returns the raw field value, nil when absent.
func (b *Bundle) Value(field string) any {
	value, _ := b.Get(field)
	return value
}

// Set writes a field value and marks the bundle dirty.
func (b *Bundle) Set(field string, value any) {
	if b == nil {
		return
	}
	b.fields[field] = value
	b.dirty = true
}

// Fields returns a copy of the field-value mapping.
func (b *Bundle) Fields() map[string]any {
	if b == nil {
		return nil
	}
	return cloneFields(b.fields)
}

// IsEmpty reports whether no field holds a meaningful value.
func (b *Bundle) IsEmpty() bool {
	if b == nil {
		return true
	}
	for _, value := range b.fields {
		if hasMeaningfulValue(value) {
			return false
		}
	}
	return true
}

// HasValue reports whether the field holds a non-empty value. Empty strings,
// empty collections, and nil count as absent so per-field fallback can step
// past them.
func (b *Bundle) HasValue(field string) bool {
	value, ok := b.Get(field)
	return ok && hasMeaningfulValue(value)
}

func (b *Bundle) row() *Row {
	return &Row{
		ID:        b.id,
		RecordID:  b.recordID,
		Locale:    b.locale,
		Fields:    cloneFields(b.fields),
		CreatedAt: b.createdAt,
	}
}

func (b *Bundle) markSaved(row *Row) {
	if row != nil {
		b.id = row.ID
		if !row.CreatedAt.IsZero() {
			b.createdAt = row.CreatedAt
		}
	}
	b.persisted = true
	b.dirty = false
}

// clone produces a new, unsaved bundle attached to another record with the
// same field values but its own identity.
func (b *Bundle) clone(recordID uuid.UUID) *Bundle {
	if b == nil {
		return nil
	}
	copied := newBundle(recordID, b.locale)
	copied.fields = cloneFields(b.fields)
	if len(copied.fields) > 0 {
		copied.dirty = true
	}
	return copied
}

func cloneFields(fields map[string]any) map[string]any {
	if fields == nil {
		return nil
	}
	copied := make(map[string]any, len(fields))
	for key, value := range fields {
		copied[key] = value
	}
	return copied
}

func hasMeaningfulValue(value any) bool {
	switch typed := value.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(typed) != ""
	case []any:
		return len(typed) > 0
	case []string:
		return len(typed) > 0
	case map[string]any:
		return len(typed) > 0
	default:
		return true
	}
}
