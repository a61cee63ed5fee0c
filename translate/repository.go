package translate

import (
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// NewRowRepository creates a repository for translation rows.
func NewRowRepository(db *bun.DB) repository.Repository[*Row] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Row]{
		NewRecord: func() *Row { return &Row{} },
		GetID: func(r *Row) uuid.UUID {
			return r.ID
		},
		SetID: func(r *Row, id uuid.UUID) {
			r.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(r *Row) string {
			if r == nil {
				return ""
			}
			return r.ID.String()
		},
	})
}
