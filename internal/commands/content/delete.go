package contentcmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-catalog/internal/commands"
	"github.com/goliatone/go-catalog/internal/contents"
	"github.com/goliatone/go-catalog/pkg/interfaces"
)

const (
	deleteContentMessageType     = "catalog.content.delete"
	deleteTranslationMessageType = "catalog.content.delete_translation"
)

// DeleteContentCommand removes a content entity across every locale, along
// with its layout block.
type DeleteContentCommand struct {
	ProductID int64         `json:"product_id"`
	Kind      contents.Kind `json:"kind"`
	ContentID int64         `json:"content_id"`
}

// Type implements command.Message.
func (DeleteContentCommand) Type() string { return deleteContentMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m DeleteContentCommand) Validate() error {
	return validateTarget("catalog.content.delete", m.ProductID, m.Kind, m.ContentID)
}

// DeleteContentHandler deletes whole entities through the contents service.
type DeleteContentHandler struct {
	inner *commands.Handler[DeleteContentCommand]
}

// NewDeleteContentHandler constructs a handler wired to the provided contents service.
func NewDeleteContentHandler(service contents.Service, logger interfaces.Logger, opts ...commands.HandlerOption[DeleteContentCommand]) *DeleteContentHandler {
	exec := func(ctx context.Context, msg DeleteContentCommand) error {
		return service.DeleteEntity(ctx, msg.ProductID, msg.Kind, msg.ContentID)
	}

	handlerOpts := []commands.HandlerOption[DeleteContentCommand]{
		commands.WithLogger[DeleteContentCommand](logger),
		commands.WithOperation[DeleteContentCommand]("content.delete"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &DeleteContentHandler{
		inner: commands.NewHandler[DeleteContentCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[DeleteContentCommand].Execute.
func (h *DeleteContentHandler) Execute(ctx context.Context, msg DeleteContentCommand) error {
	return h.inner.Execute(ctx, msg)
}

// DeleteTranslationCommand removes the active locale's translation only; the
// entity and its other translations survive.
type DeleteTranslationCommand struct {
	ProductID int64         `json:"product_id"`
	Kind      contents.Kind `json:"kind"`
	ContentID int64         `json:"content_id"`
}

// Type implements command.Message.
func (DeleteTranslationCommand) Type() string { return deleteTranslationMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m DeleteTranslationCommand) Validate() error {
	return validateTarget("catalog.content.delete_translation", m.ProductID, m.Kind, m.ContentID)
}

// DeleteTranslationHandler deletes single-locale translations through the contents service.
type DeleteTranslationHandler struct {
	inner *commands.Handler[DeleteTranslationCommand]
}

// NewDeleteTranslationHandler constructs a handler wired to the provided contents service.
func NewDeleteTranslationHandler(service contents.Service, logger interfaces.Logger, opts ...commands.HandlerOption[DeleteTranslationCommand]) *DeleteTranslationHandler {
	exec := func(ctx context.Context, msg DeleteTranslationCommand) error {
		return service.DeleteTranslation(ctx, msg.ProductID, msg.Kind, msg.ContentID)
	}

	handlerOpts := []commands.HandlerOption[DeleteTranslationCommand]{
		commands.WithLogger[DeleteTranslationCommand](logger),
		commands.WithOperation[DeleteTranslationCommand]("content.delete_translation"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &DeleteTranslationHandler{
		inner: commands.NewHandler[DeleteTranslationCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[DeleteTranslationCommand].Execute.
func (h *DeleteTranslationHandler) Execute(ctx context.Context, msg DeleteTranslationCommand) error {
	return h.inner.Execute(ctx, msg)
}

func validateTarget(prefix string, productID int64, kind contents.Kind, contentID int64) error {
	errs := validation.Errors{}
	if productID <= 0 {
		errs["product_id"] = validation.NewError(prefix+".product_id_required", "product_id is required")
	}
	if !kind.Valid() {
		errs["kind"] = validation.NewError(prefix+".kind_invalid", "kind is not editable")
	}
	if contentID <= 0 {
		errs["content_id"] = validation.NewError(prefix+".content_id_required", "content_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
