package contentcmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-catalog/internal/commands"
	"github.com/goliatone/go-catalog/internal/contents"
	"github.com/goliatone/go-catalog/pkg/interfaces"
)

const updateContentMessageType = "catalog.content.update"

// UpdateContentCommand upserts the active locale's translation on an existing entity.
type UpdateContentCommand struct {
	ProductID int64            `json:"product_id"`
	ContentID int64            `json:"content_id"`
	Payload   contents.Payload `json:"payload"`
}

// Type implements command.Message.
func (UpdateContentCommand) Type() string { return updateContentMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m UpdateContentCommand) Validate() error {
	errs := validation.Errors{}
	if m.ProductID <= 0 {
		errs["product_id"] = validation.NewError("catalog.content.update.product_id_required", "product_id is required")
	}
	if m.ContentID <= 0 {
		errs["content_id"] = validation.NewError("catalog.content.update.content_id_required", "content_id is required")
	}
	if m.Payload == nil {
		errs["payload"] = validation.NewError("catalog.content.update.payload_required", "payload is required")
	} else if !m.Payload.Kind().Valid() {
		errs["payload"] = validation.NewError("catalog.content.update.kind_invalid", "payload kind is not editable")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateContentHandler updates content through the contents service.
type UpdateContentHandler struct {
	inner *commands.Handler[UpdateContentCommand]
}

// NewUpdateContentHandler constructs a handler wired to the provided contents service.
func NewUpdateContentHandler(service contents.Service, logger interfaces.Logger, opts ...commands.HandlerOption[UpdateContentCommand]) *UpdateContentHandler {
	exec := func(ctx context.Context, msg UpdateContentCommand) error {
		return service.Update(ctx, msg.ProductID, msg.ContentID, msg.Payload)
	}

	handlerOpts := []commands.HandlerOption[UpdateContentCommand]{
		commands.WithLogger[UpdateContentCommand](logger),
		commands.WithOperation[UpdateContentCommand]("content.update"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &UpdateContentHandler{
		inner: commands.NewHandler[UpdateContentCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[UpdateContentCommand].Execute.
func (h *UpdateContentHandler) Execute(ctx context.Context, msg UpdateContentCommand) error {
	return h.inner.Execute(ctx, msg)
}
