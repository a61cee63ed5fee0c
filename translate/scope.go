package translate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"
)

// Scope is a query predicate over translation rows, applied to a select on
// the primary table. Scopes operate on a specific locale's stored rows only;
// filtering and sorting intentionally never use the fallback chain.
type Scope func(*bun.SelectQuery) *bun.SelectQuery

// ScopeBuilder assembles translation predicates for the store's query
// builder so hosts can filter and sort primary records by translated fields
// without re-implementing resolution logic.
type ScopeBuilder struct {
	// Table is the translation table name, "translations" by default.
	Table string
	// RecordColumn is the foreign key column, "record_id" by default.
	RecordColumn string
	// KeyColumn is the primary table's key column, "id" by default.
	KeyColumn string
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// NewScopeBuilder returns a builder with the default table layout.
func NewScopeBuilder() ScopeBuilder {
	return ScopeBuilder{}
}

func (s ScopeBuilder) table() string {
	if s.Table != "" {
		return s.Table
	}
	return "translations"
}

func (s ScopeBuilder) recordColumn() string {
	if s.RecordColumn != "" {
		return s.RecordColumn
	}
	return "record_id"
}

func (s ScopeBuilder) keyColumn() string {
	if s.KeyColumn != "" {
		return s.KeyColumn
	}
	return "id"
}

// HasTranslation matches primary records owning a row for the locale.
func (s ScopeBuilder) HasTranslation(loc string) Scope {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		if err := s.check(loc, "locale"); err != nil {
			return q.Err(err)
		}
		return q.Where(
			"EXISTS (SELECT 1 FROM "+s.table()+" AS _tr WHERE _tr."+s.recordColumn()+
				" = ?TableAlias."+s.keyColumn()+" AND lower(_tr.locale) = lower(?))", loc)
	}
}

// FieldEquals matches primary records whose translated field compares equal
// to the value in the given locale.
func (s ScopeBuilder) FieldEquals(loc, field string, value any) Scope {
	return s.fieldPredicate(loc, field, "=", value)
}

// FieldMatches matches primary records whose translated field matches the
// LIKE pattern in the given locale.
func (s ScopeBuilder) FieldMatches(loc, field, pattern string) Scope {
	return s.fieldPredicate(loc, field, "LIKE", pattern)
}

// OrderByField sorts primary records by a translated field's stored value
// for the given locale.
func (s ScopeBuilder) OrderByField(loc, field string, desc bool) Scope {
	direction := "ASC"
	if desc {
		direction = "DESC"
	}
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		if err := s.checkField(loc, field); err != nil {
			return q.Err(err)
		}
		return q.OrderExpr(
			"(SELECT "+s.fieldExpr(q, field)+" FROM "+s.table()+" AS _tr WHERE _tr."+s.recordColumn()+
				" = ?TableAlias."+s.keyColumn()+" AND lower(_tr.locale) = lower(?)) "+direction, loc)
	}
}

func (s ScopeBuilder) fieldPredicate(loc, field, op string, value any) Scope {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		if err := s.checkField(loc, field); err != nil {
			return q.Err(err)
		}
		return q.Where(
			"EXISTS (SELECT 1 FROM "+s.table()+" AS _tr WHERE _tr."+s.recordColumn()+
				" = ?TableAlias."+s.keyColumn()+" AND lower(_tr.locale) = lower(?) AND "+
				s.fieldExpr(q, field)+" "+op+" ?)", loc, value)
	}
}

// fieldExpr renders the dialect-specific JSON extraction for a field.
func (s ScopeBuilder) fieldExpr(q *bun.SelectQuery, field string) string {
	if q.Dialect().Name() == dialect.PG {
		return "_tr.fields->>'" + field + "'"
	}
	return "json_extract(_tr.fields, '$." + field + "')"
}

func (s ScopeBuilder) checkField(loc, field string) error {
	if err := s.check(loc, "locale"); err != nil {
		return err
	}
	if !identifierPattern.MatchString(field) {
		return fmt.Errorf("translate: scope field %q is not a valid identifier", field)
	}
	return nil
}

func (s ScopeBuilder) check(loc, what string) error {
	if strings.TrimSpace(loc) == "" {
		return fmt.Errorf("translate: scope %s is required", what)
	}
	return nil
}
