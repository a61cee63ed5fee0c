package commands

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-translatable/pkg/interfaces"
	"github.com/goliatone/go-translatable/translate"
	"github.com/google/uuid"
)

const (
	upsertTranslationMessageType  = "translatable.translation.upsert"
	deleteTranslationsMessageType = "translatable.translation.delete"
)

// RecordFactory produces the router for a primary record so handlers stay
// decoupled from per-entity settings.
type RecordFactory func(id uuid.UUID) (*translate.Record, error)

// UpsertTranslationCommand writes a set of field values to one locale of one
// record, creating the bundle when no row exists yet.
type UpsertTranslationCommand struct {
	RecordID uuid.UUID      `json:"record_id"`
	Locale   string         `json:"locale"`
	Fields   map[string]any `json:"fields"`
}

// Type implements command.Message.
func (UpsertTranslationCommand) Type() string { return upsertTranslationMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m UpsertTranslationCommand) Validate() error {
	errs := validation.Errors{}
	if m.RecordID == uuid.Nil {
		errs["record_id"] = validation.NewError(
			"translatable.translation.upsert.record_id_required", "record_id is required")
	}
	if m.Locale == "" {
		errs["locale"] = validation.NewError(
			"translatable.translation.upsert.locale_required", "locale is required")
	}
	if len(m.Fields) == 0 {
		errs["fields"] = validation.NewError(
			"translatable.translation.upsert.fields_required", "at least one field is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpsertTranslationHandler executes upserts through the record router.
type UpsertTranslationHandler struct {
	inner *Handler[UpsertTranslationCommand]
}

// NewUpsertTranslationHandler constructs a handler wired to the record factory.
func NewUpsertTranslationHandler(records RecordFactory, logger interfaces.Logger, opts ...HandlerOption[UpsertTranslationCommand]) *UpsertTranslationHandler {
	exec := func(ctx context.Context, msg UpsertTranslationCommand) error {
		record, err := records(msg.RecordID)
		if err != nil {
			return err
		}
		bundle, err := record.TranslateOrNew(ctx, msg.Locale)
		if err != nil {
			return err
		}
		for field, value := range msg.Fields {
			bundle.Set(field, value)
		}
		return record.Save(ctx)
	}
	opts = append([]HandlerOption[UpsertTranslationCommand]{WithLogger[UpsertTranslationCommand](logger)}, opts...)
	return &UpsertTranslationHandler{inner: NewHandler(exec, opts...)}
}

// Execute conforms to command.Commander.
func (h *UpsertTranslationHandler) Execute(ctx context.Context, msg UpsertTranslationCommand) error {
	return h.inner.Execute(ctx, msg)
}

// DeleteTranslationsCommand removes the named locales from a record, or all
// of them when the list is empty.
type DeleteTranslationsCommand struct {
	RecordID uuid.UUID `json:"record_id"`
	Locales  []string  `json:"locales,omitempty"`
}

// Type implements command.Message.
func (DeleteTranslationsCommand) Type() string { return deleteTranslationsMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m DeleteTranslationsCommand) Validate() error {
	errs := validation.Errors{}
	if m.RecordID == uuid.Nil {
		errs["record_id"] = validation.NewError(
			"translatable.translation.delete.record_id_required", "record_id is required")
	}
	for _, loc := range m.Locales {
		if loc == "" {
			errs["locales"] = validation.NewError(
				"translatable.translation.delete.locale_empty", "locales must not contain empty codes")
			break
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DeleteTranslationsHandler executes deletions through the record router.
type DeleteTranslationsHandler struct {
	inner *Handler[DeleteTranslationsCommand]
}

// NewDeleteTranslationsHandler constructs a handler wired to the record factory.
func NewDeleteTranslationsHandler(records RecordFactory, logger interfaces.Logger, opts ...HandlerOption[DeleteTranslationsCommand]) *DeleteTranslationsHandler {
	exec := func(ctx context.Context, msg DeleteTranslationsCommand) error {
		record, err := records(msg.RecordID)
		if err != nil {
			return err
		}
		return record.DeleteTranslations(ctx, msg.Locales...)
	}
	opts = append([]HandlerOption[DeleteTranslationsCommand]{WithLogger[DeleteTranslationsCommand](logger)}, opts...)
	return &DeleteTranslationsHandler{inner: NewHandler(exec, opts...)}
}

// Execute conforms to command.Commander.
func (h *DeleteTranslationsHandler) Execute(ctx context.Context, msg DeleteTranslationsCommand) error {
	return h.inner.Execute(ctx, msg)
}
