package translate

import (
	"context"

	"github.com/google/uuid"
)

// Store abstracts translation row persistence. Implementations return
// *NotFoundError for absent rows; every other failure propagates unchanged,
// the engine performs no retry and no partial commit.
type Store interface {
	LoadOne(ctx context.Context, recordID uuid.UUID, locale string) (*Row, error)
	LoadAll(ctx context.Context, recordID uuid.UUID) ([]*Row, error)
	Insert(ctx context.Context, row *Row) (*Row, error)
	Update(ctx context.Context, row *Row) (*Row, error)
	Delete(ctx context.Context, recordID uuid.UUID, locale string) error
	DeleteAll(ctx context.Context, recordID uuid.UUID) error
}

// TransactionalStore is an optional extension for stores that can group
// writes atomically. Save and multi-locale deletes request a transaction
// when the store offers one; the engine never implements atomicity itself.
type TransactionalStore interface {
	Store
	Transaction(ctx context.Context, fn func(ctx context.Context, tx Store) error) error
}
