package contents

import (
	"context"
	"fmt"

	"github.com/goliatone/go-catalog/internal/logging"
	"github.com/goliatone/go-catalog/pkg/interfaces"
)

type service struct {
	api     API
	locales LocaleSource
	logger  interfaces.Logger
}

// Option configures the contents service.
type Option func(*service)

// WithLogger overrides the no-op default logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService builds the content mutation service on top of the transport
// client. Payloads are normalized and validated here so every caller path
// (commands, editor submit) shares the same rules.
func NewService(api API, locales LocaleSource, opts ...Option) Service {
	svc := &service{
		api:     api,
		locales: locales,
		logger:  logging.NoOp(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

func (s *service) Create(ctx context.Context, productID int64, payload Payload) error {
	if err := s.checkMutation(productID, payload); err != nil {
		return err
	}

	kind := payload.Kind()
	s.logger.Debug("creating content",
		"kind", string(kind),
		"product_id", productID,
		"locale", s.locales.Current(),
	)
	if err := s.api.CreateContent(ctx, productID, kind.PathSegment(), payload.normalized()); err != nil {
		return fmt.Errorf("create %s: %w", kind, err)
	}
	return nil
}

func (s *service) Update(ctx context.Context, productID, contentID int64, payload Payload) error {
	if err := s.checkMutation(productID, payload); err != nil {
		return err
	}
	if contentID <= 0 {
		return ErrContentIDRequired
	}

	kind := payload.Kind()
	s.logger.Debug("updating content",
		"kind", string(kind),
		"product_id", productID,
		"content_id", contentID,
		"locale", s.locales.Current(),
	)
	if err := s.api.UpdateContent(ctx, productID, kind.PathSegment(), contentID, payload.normalized()); err != nil {
		return fmt.Errorf("update %s %d: %w", kind, contentID, err)
	}
	return nil
}

func (s *service) DeleteEntity(ctx context.Context, productID int64, kind Kind, contentID int64) error {
	if err := s.checkTarget(productID, kind, contentID); err != nil {
		return err
	}

	s.logger.Info("deleting content entity",
		"kind", string(kind),
		"product_id", productID,
		"content_id", contentID,
	)
	if err := s.api.DeleteContent(ctx, productID, kind.PathSegment(), contentID); err != nil {
		return fmt.Errorf("delete %s %d: %w", kind, contentID, err)
	}
	return nil
}

func (s *service) DeleteTranslation(ctx context.Context, productID int64, kind Kind, contentID int64) error {
	if err := s.checkTarget(productID, kind, contentID); err != nil {
		return err
	}

	locale := s.locales.Current()
	s.logger.Info("deleting content translation",
		"kind", string(kind),
		"product_id", productID,
		"content_id", contentID,
		"locale", locale,
	)
	if err := s.api.DeleteTranslation(ctx, productID, kind.PathSegment(), contentID, locale); err != nil {
		return fmt.Errorf("delete %s %d translation %s: %w", kind, contentID, locale, err)
	}
	return nil
}

func (s *service) checkMutation(productID int64, payload Payload) error {
	if productID <= 0 {
		return ErrProductIDRequired
	}
	if payload == nil {
		return ErrPayloadRequired
	}
	if !payload.Kind().Valid() {
		return ErrKindInvalid
	}
	return payload.Validate()
}

func (s *service) checkTarget(productID int64, kind Kind, contentID int64) error {
	if productID <= 0 {
		return ErrProductIDRequired
	}
	if !kind.Valid() {
		return ErrKindInvalid
	}
	if contentID <= 0 {
		return ErrContentIDRequired
	}
	return nil
}
