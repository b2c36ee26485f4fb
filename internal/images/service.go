package images

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goliatone/go-catalog/internal/logging"
	"github.com/goliatone/go-catalog/internal/transport"
	"github.com/goliatone/go-catalog/pkg/interfaces"
)

var (
	ErrProductIDRequired = errors.New("images: product id required")
	ErrGroupIDRequired   = errors.New("images: group id required")
	ErrImageIDRequired   = errors.New("images: image id required")
	ErrGroupNameRequired = errors.New("images: group name required")
	ErrNoFiles           = errors.New("images: at least one file required")
	ErrFilenameRequired  = errors.New("images: file name required")
	ErrFileReaderNil     = errors.New("images: file reader required")
)

// File is one image selected for upload.
type File struct {
	Name   string
	Alt    string
	Reader io.Reader
}

// API is the transport slice the image service depends on.
type API interface {
	CreateImageGroup(ctx context.Context, productID int64, name string) error
	UploadImages(ctx context.Context, productID, groupID int64, uploads []transport.Upload) error
	DeleteImage(ctx context.Context, productID, imageID int64) error
}

// Service manages image groups and their images. Unlike text content, images
// are not localized: a group and its files are shared across every locale.
type Service interface {
	CreateGroup(ctx context.Context, productID int64, name string) error
	Upload(ctx context.Context, productID, groupID int64, files []File) error
	Remove(ctx context.Context, productID, imageID int64) error
}

type service struct {
	api    API
	logger interfaces.Logger
}

// Option configures the image service.
type Option func(*service)

// WithLogger overrides the no-op default logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService builds the image service on top of the transport client.
func NewService(api API, opts ...Option) Service {
	svc := &service{
		api:    api,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

func (s *service) CreateGroup(ctx context.Context, productID int64, name string) error {
	if productID <= 0 {
		return ErrProductIDRequired
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrGroupNameRequired
	}

	s.logger.Info("creating image group", "product_id", productID, "name", name)
	if err := s.api.CreateImageGroup(ctx, productID, name); err != nil {
		return fmt.Errorf("create image group %q: %w", name, err)
	}
	return nil
}

func (s *service) Upload(ctx context.Context, productID, groupID int64, files []File) error {
	if productID <= 0 {
		return ErrProductIDRequired
	}
	if groupID <= 0 {
		return ErrGroupIDRequired
	}
	if len(files) == 0 {
		return ErrNoFiles
	}

	uploads := make([]transport.Upload, 0, len(files))
	for _, file := range files {
		name := strings.TrimSpace(file.Name)
		if name == "" {
			return ErrFilenameRequired
		}
		if file.Reader == nil {
			return ErrFileReaderNil
		}
		uploads = append(uploads, transport.Upload{
			Filename: name,
			Alt:      strings.TrimSpace(file.Alt),
			Reader:   file.Reader,
		})
	}

	s.logger.Info("uploading images",
		"product_id", productID,
		"group_id", groupID,
		"count", len(uploads),
	)
	if err := s.api.UploadImages(ctx, productID, groupID, uploads); err != nil {
		return fmt.Errorf("upload %d images to group %d: %w", len(uploads), groupID, err)
	}
	return nil
}

func (s *service) Remove(ctx context.Context, productID, imageID int64) error {
	if productID <= 0 {
		return ErrProductIDRequired
	}
	if imageID <= 0 {
		return ErrImageIDRequired
	}

	s.logger.Info("removing image", "product_id", productID, "image_id", imageID)
	if err := s.api.DeleteImage(ctx, productID, imageID); err != nil {
		return fmt.Errorf("remove image %d: %w", imageID, err)
	}
	return nil
}
