package translate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-translatable/translate"
	"github.com/google/uuid"
)

// failingStore wraps a working store but refuses writes.
type failingStore struct {
	translate.Store
}

var errStoreDown = errors.New("store down")

func (f *failingStore) Insert(context.Context, *translate.Row) (*translate.Row, error) {
	return nil, errStoreDown
}

func (f *failingStore) Update(context.Context, *translate.Row) (*translate.Row, error) {
	return nil, errStoreDown
}

func asPersistence(err error, target **translate.PersistenceError) bool {
	return errors.As(err, target)
}

func TestIsNotFound(t *testing.T) {
	store := translate.NewMemoryStore()
	_, err := store.LoadOne(context.Background(), uuid.New(), "en")
	if !translate.IsNotFound(err) {
		t.Fatalf("expected not-found classification got %v", err)
	}
	if translate.IsNotFound(errStoreDown) {
		t.Fatal("arbitrary errors must not classify as not found")
	}

	var nf *translate.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError got %T", err)
	}
	if nf.Resource != "translation" {
		t.Fatalf("unexpected resource %q", nf.Resource)
	}
}

func TestPersistenceErrorUnwrap(t *testing.T) {
	perr := &translate.PersistenceError{Op: "insert", RecordID: uuid.New(), Locale: "fr", Err: errStoreDown}

	if !errors.Is(perr, translate.ErrPersistence) {
		t.Fatal("expected persistence category match")
	}
	if !errors.Is(perr, errStoreDown) {
		t.Fatal("expected cause to unwrap")
	}
	if perr.Error() == "" {
		t.Fatal("expected formatted message")
	}
}
