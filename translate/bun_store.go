package translate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	cache "github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunStore persists translation rows using a Bun-backed database. Outside a
// transaction it routes single-row writes through go-repository-bun; inside
// one it binds every operation to the transaction handle directly.
type BunStore struct {
	db   *bun.DB
	idb  bun.IDB
	repo repository.Repository[*Row]
}

var _ TransactionalStore = (*BunStore)(nil)

// NewBunStore constructs a store without caching.
func NewBunStore(db *bun.DB) *BunStore {
	return NewBunStoreWithCache(db, nil, nil)
}

// NewBunStoreWithCache constructs a store whose row repository is wrapped
// with the optional caching layer. Pass nils to skip caching.
func NewBunStoreWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunStore {
	base := NewRowRepository(db)
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
	}
	return &BunStore{db: db, idb: db, repo: base}
}

func (s *BunStore) LoadOne(ctx context.Context, recordID uuid.UUID, locale string) (*Row, error) {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return nil, ErrLocaleRequired
	}

	var row Row
	err := s.idb.NewSelect().
		Model(&row).
		Where("?TableAlias.record_id = ?", recordID).
		Where("lower(?TableAlias.locale) = lower(?)", locale).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Resource: "translation", Key: fmt.Sprintf("%s:%s", recordID, locale)}
		}
		return nil, err
	}
	return &row, nil
}

func (s *BunStore) LoadAll(ctx context.Context, recordID uuid.UUID) ([]*Row, error) {
	var rows []*Row
	err := s.idb.NewSelect().
		Model(&rows).
		Where("?TableAlias.record_id = ?", recordID).
		OrderExpr("?TableAlias.locale ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *BunStore) Insert(ctx context.Context, row *Row) (*Row, error) {
	if row == nil {
		return nil, errors.New("translate: cannot insert nil row")
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	if s.repo != nil {
		created, err := s.repo.Create(ctx, row)
		if err != nil {
			return nil, mapRepositoryError(err, "translation", row.Locale)
		}
		return created, nil
	}
	if _, err := s.idb.NewInsert().Model(row).Exec(ctx); err != nil {
		return nil, err
	}
	return row, nil
}

func (s *BunStore) Update(ctx context.Context, row *Row) (*Row, error) {
	if row == nil || row.ID == uuid.Nil {
		return nil, errors.New("translate: cannot update row without identity")
	}
	if s.repo != nil {
		updated, err := s.repo.Update(ctx, row)
		if err != nil {
			return nil, mapRepositoryError(err, "translation", row.Locale)
		}
		return updated, nil
	}
	if _, err := s.idb.NewUpdate().
		Model(row).
		Column("locale", "fields").
		WherePK().
		Exec(ctx); err != nil {
		return nil, err
	}
	return row, nil
}

func (s *BunStore) Delete(ctx context.Context, recordID uuid.UUID, locale string) error {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return ErrLocaleRequired
	}
	_, err := s.idb.NewDelete().
		Model((*Row)(nil)).
		Where("?TableAlias.record_id = ?", recordID).
		Where("lower(?TableAlias.locale) = lower(?)", locale).
		Exec(ctx)
	return err
}

func (s *BunStore) DeleteAll(ctx context.Context, recordID uuid.UUID) error {
	_, err := s.idb.NewDelete().
		Model((*Row)(nil)).
		Where("?TableAlias.record_id = ?", recordID).
		Exec(ctx)
	return err
}

// Transaction runs fn against a store bound to a single database transaction.
func (s *BunStore) Transaction(ctx context.Context, fn func(ctx context.Context, tx Store) error) error {
	if s.db == nil {
		return errors.New("translate: bun store requires a database for transactions")
	}
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		return fn(ctx, &BunStore{idb: tx})
	})
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{
			Resource: resource,
			Key:      key,
		}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}
