package imagescmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-catalog/internal/commands"
	"github.com/goliatone/go-catalog/internal/images"
	"github.com/goliatone/go-catalog/pkg/interfaces"
)

const (
	createGroupMessageType  = "catalog.images.create_group"
	uploadImagesMessageType = "catalog.images.upload"
	removeImageMessageType  = "catalog.images.remove"
)

// CreateGroupCommand creates a named image bucket on a product.
type CreateGroupCommand struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
}

// Type implements command.Message.
func (CreateGroupCommand) Type() string { return createGroupMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m CreateGroupCommand) Validate() error {
	errs := validation.Errors{}
	if m.ProductID <= 0 {
		errs["product_id"] = validation.NewError("catalog.images.create_group.product_id_required", "product_id is required")
	}
	if m.Name == "" {
		errs["name"] = validation.NewError("catalog.images.create_group.name_required", "name is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CreateGroupHandler creates image groups through the image service.
type CreateGroupHandler struct {
	inner *commands.Handler[CreateGroupCommand]
}

// NewCreateGroupHandler constructs a handler wired to the provided image service.
func NewCreateGroupHandler(service images.Service, logger interfaces.Logger, opts ...commands.HandlerOption[CreateGroupCommand]) *CreateGroupHandler {
	exec := func(ctx context.Context, msg CreateGroupCommand) error {
		return service.CreateGroup(ctx, msg.ProductID, msg.Name)
	}

	handlerOpts := []commands.HandlerOption[CreateGroupCommand]{
		commands.WithLogger[CreateGroupCommand](logger),
		commands.WithOperation[CreateGroupCommand]("images.create_group"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &CreateGroupHandler{
		inner: commands.NewHandler[CreateGroupCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[CreateGroupCommand].Execute.
func (h *CreateGroupHandler) Execute(ctx context.Context, msg CreateGroupCommand) error {
	return h.inner.Execute(ctx, msg)
}

// UploadImagesCommand appends files to an existing image group.
type UploadImagesCommand struct {
	ProductID int64         `json:"product_id"`
	GroupID   int64         `json:"group_id"`
	Files     []images.File `json:"-"`
}

// Type implements command.Message.
func (UploadImagesCommand) Type() string { return uploadImagesMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m UploadImagesCommand) Validate() error {
	errs := validation.Errors{}
	if m.ProductID <= 0 {
		errs["product_id"] = validation.NewError("catalog.images.upload.product_id_required", "product_id is required")
	}
	if m.GroupID <= 0 {
		errs["group_id"] = validation.NewError("catalog.images.upload.group_id_required", "group_id is required")
	}
	if len(m.Files) == 0 {
		errs["files"] = validation.NewError("catalog.images.upload.files_required", "at least one file is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UploadImagesHandler uploads files through the image service.
type UploadImagesHandler struct {
	inner *commands.Handler[UploadImagesCommand]
}

// NewUploadImagesHandler constructs a handler wired to the provided image service.
func NewUploadImagesHandler(service images.Service, logger interfaces.Logger, opts ...commands.HandlerOption[UploadImagesCommand]) *UploadImagesHandler {
	exec := func(ctx context.Context, msg UploadImagesCommand) error {
		return service.Upload(ctx, msg.ProductID, msg.GroupID, msg.Files)
	}

	handlerOpts := []commands.HandlerOption[UploadImagesCommand]{
		commands.WithLogger[UploadImagesCommand](logger),
		commands.WithOperation[UploadImagesCommand]("images.upload"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &UploadImagesHandler{
		inner: commands.NewHandler[UploadImagesCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[UploadImagesCommand].Execute.
func (h *UploadImagesHandler) Execute(ctx context.Context, msg UploadImagesCommand) error {
	return h.inner.Execute(ctx, msg)
}

// RemoveImageCommand deletes a single image from a product.
type RemoveImageCommand struct {
	ProductID int64 `json:"product_id"`
	ImageID   int64 `json:"image_id"`
}

// Type implements command.Message.
func (RemoveImageCommand) Type() string { return removeImageMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m RemoveImageCommand) Validate() error {
	errs := validation.Errors{}
	if m.ProductID <= 0 {
		errs["product_id"] = validation.NewError("catalog.images.remove.product_id_required", "product_id is required")
	}
	if m.ImageID <= 0 {
		errs["image_id"] = validation.NewError("catalog.images.remove.image_id_required", "image_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RemoveImageHandler removes images through the image service.
type RemoveImageHandler struct {
	inner *commands.Handler[RemoveImageCommand]
}

// NewRemoveImageHandler constructs a handler wired to the provided image service.
func NewRemoveImageHandler(service images.Service, logger interfaces.Logger, opts ...commands.HandlerOption[RemoveImageCommand]) *RemoveImageHandler {
	exec := func(ctx context.Context, msg RemoveImageCommand) error {
		return service.Remove(ctx, msg.ProductID, msg.ImageID)
	}

	handlerOpts := []commands.HandlerOption[RemoveImageCommand]{
		commands.WithLogger[RemoveImageCommand](logger),
		commands.WithOperation[RemoveImageCommand]("images.remove"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &RemoveImageHandler{
		inner: commands.NewHandler[RemoveImageCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[RemoveImageCommand].Execute.
func (h *RemoveImageHandler) Execute(ctx context.Context, msg RemoveImageCommand) error {
	return h.inner.Execute(ctx, msg)
}
