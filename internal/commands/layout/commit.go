package layoutcmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-catalog/internal/commands"
	"github.com/goliatone/go-catalog/internal/layout"
	"github.com/goliatone/go-catalog/pkg/interfaces"
)

const commitLayoutMessageType = "catalog.layout.commit"

// OrderCommitter persists changed (block_id, sort_order) pairs.
type OrderCommitter interface {
	CommitLayoutOrder(ctx context.Context, productID int64, changes []layout.OrderChange) error
}

// CommitLayoutCommand flushes the staged block order for one product.
type CommitLayoutCommand struct {
	ProductID int64 `json:"product_id"`
}

// Type implements command.Message.
func (CommitLayoutCommand) Type() string { return commitLayoutMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m CommitLayoutCommand) Validate() error {
	errs := validation.Errors{}
	if m.ProductID <= 0 {
		errs["product_id"] = validation.NewError("catalog.layout.commit.product_id_required", "product_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CommitLayoutHandler commits the engine's staged order through the API. On
// success the engine promotes its draft; on failure the draft stays so the
// admin can retry without losing the arrangement.
type CommitLayoutHandler struct {
	inner *commands.Handler[CommitLayoutCommand]
}

// NewCommitLayoutHandler wires the layout engine to the order committer.
func NewCommitLayoutHandler(engine *layout.Engine, committer OrderCommitter, logger interfaces.Logger, opts ...commands.HandlerOption[CommitLayoutCommand]) *CommitLayoutHandler {
	exec := func(ctx context.Context, msg CommitLayoutCommand) error {
		return engine.Commit(ctx, func(ctx context.Context, changes []layout.OrderChange) error {
			return committer.CommitLayoutOrder(ctx, msg.ProductID, changes)
		})
	}

	handlerOpts := []commands.HandlerOption[CommitLayoutCommand]{
		commands.WithLogger[CommitLayoutCommand](logger),
		commands.WithOperation[CommitLayoutCommand]("layout.commit"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &CommitLayoutHandler{
		inner: commands.NewHandler[CommitLayoutCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[CommitLayoutCommand].Execute.
func (h *CommitLayoutHandler) Execute(ctx context.Context, msg CommitLayoutCommand) error {
	return h.inner.Execute(ctx, msg)
}
