package contentcmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-catalog/internal/commands"
	"github.com/goliatone/go-catalog/internal/contents"
	"github.com/goliatone/go-catalog/pkg/interfaces"
)

const createContentMessageType = "catalog.content.create"

// CreateContentCommand requests a new content entity with its first
// translation in the active locale.
type CreateContentCommand struct {
	ProductID int64            `json:"product_id"`
	Payload   contents.Payload `json:"payload"`
}

// Type implements command.Message.
func (CreateContentCommand) Type() string { return createContentMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m CreateContentCommand) Validate() error {
	errs := validation.Errors{}
	if m.ProductID <= 0 {
		errs["product_id"] = validation.NewError("catalog.content.create.product_id_required", "product_id is required")
	}
	if m.Payload == nil {
		errs["payload"] = validation.NewError("catalog.content.create.payload_required", "payload is required")
	} else if !m.Payload.Kind().Valid() {
		errs["payload"] = validation.NewError("catalog.content.create.kind_invalid", "payload kind is not editable")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CreateContentHandler creates content through the contents service.
type CreateContentHandler struct {
	inner *commands.Handler[CreateContentCommand]
}

// NewCreateContentHandler constructs a handler wired to the provided contents service.
func NewCreateContentHandler(service contents.Service, logger interfaces.Logger, opts ...commands.HandlerOption[CreateContentCommand]) *CreateContentHandler {
	exec := func(ctx context.Context, msg CreateContentCommand) error {
		return service.Create(ctx, msg.ProductID, msg.Payload)
	}

	handlerOpts := []commands.HandlerOption[CreateContentCommand]{
		commands.WithLogger[CreateContentCommand](logger),
		commands.WithOperation[CreateContentCommand]("content.create"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &CreateContentHandler{
		inner: commands.NewHandler[CreateContentCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[CreateContentCommand].Execute.
func (h *CreateContentHandler) Execute(ctx context.Context, msg CreateContentCommand) error {
	return h.inner.Execute(ctx, msg)
}
