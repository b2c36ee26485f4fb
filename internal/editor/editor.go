package editor

import (
	"context"
	"errors"
	"sync"

	"github.com/goliatone/go-catalog/internal/contents"
	"github.com/goliatone/go-catalog/internal/logging"
	"github.com/goliatone/go-catalog/pkg/interfaces"
)

// Mode names the editor's current posture.
type Mode string

const (
	ModeViewing Mode = "viewing"
	ModeAdding  Mode = "adding"
	ModeEditing Mode = "editing"
)

var (
	ErrNoActiveDraft     = errors.New("editor: no active draft")
	ErrContentIDRequired = errors.New("editor: content id required")
)

// State is a snapshot of the editor. Kind and ContentID are meaningful only
// outside ModeViewing; ContentID only in ModeEditing.
type State struct {
	Mode      Mode
	Kind      contents.Kind
	ContentID int64
}

// Editor owns the single open form slot on a product page. Opening a form
// while another is open silently discards the previous draft; there is never
// more than one draft alive. Submit routes to create or update depending on
// how the form was opened, and a failed submit keeps the draft so the admin
// can correct and retry.
type Editor struct {
	mu       sync.Mutex
	mode     Mode
	kind     contents.Kind
	targetID int64
	draft    Draft

	service contents.Service
	logger  interfaces.Logger
}

// Option configures an Editor.
type Option func(*Editor)

// WithLogger overrides the no-op default logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(e *Editor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New builds an Editor in viewing mode.
func New(service contents.Service, opts ...Option) *Editor {
	e := &Editor{
		mode:    ModeViewing,
		service: service,
		logger:  logging.NoOp(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State returns the current snapshot.
func (e *Editor) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return State{Mode: e.mode, Kind: e.kind, ContentID: e.targetID}
}

// Draft returns the active draft, if any.
func (e *Editor) Draft() (Draft, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.draft == nil {
		return nil, false
	}
	return e.draft, true
}

// StartAdd opens an empty add form for the given kind, discarding any open
// draft first.
func (e *Editor) StartAdd(kind contents.Kind) (Draft, error) {
	draft, err := NewDraft(kind)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.discardLocked("add")
	e.mode = ModeAdding
	e.kind = kind
	e.targetID = 0
	e.draft = draft
	return draft, nil
}

// StartEdit opens an edit form seeded with an existing translation,
// discarding any open draft first.
func (e *Editor) StartEdit(contentID int64, seed contents.Payload) (Draft, error) {
	if contentID <= 0 {
		return nil, ErrContentIDRequired
	}
	if seed == nil {
		return nil, contents.ErrKindInvalid
	}
	draft, err := DraftFromPayload(seed)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.discardLocked("edit")
	e.mode = ModeEditing
	e.kind = seed.Kind()
	e.targetID = contentID
	e.draft = draft
	return draft, nil
}

// Cancel discards the open draft and returns to viewing. Calling it in
// viewing mode is a no-op.
func (e *Editor) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.discardLocked("cancel")
}

// Submit sends the draft through the contents service. On success the editor
// returns to viewing; on failure the draft and mode stay untouched.
func (e *Editor) Submit(ctx context.Context, productID int64) error {
	e.mu.Lock()
	mode := e.mode
	kind := e.kind
	targetID := e.targetID
	draft := e.draft
	e.mu.Unlock()

	if draft == nil || mode == ModeViewing {
		return ErrNoActiveDraft
	}

	payload := draft.Payload()
	var err error
	switch mode {
	case ModeAdding:
		err = e.service.Create(ctx, productID, payload)
	case ModeEditing:
		err = e.service.Update(ctx, productID, targetID, payload)
	default:
		return ErrNoActiveDraft
	}
	if err != nil {
		e.logger.Warn("submit failed, keeping draft",
			"mode", string(mode),
			"kind", string(kind),
			"content_id", targetID,
			"error", err,
		)
		return err
	}

	e.mu.Lock()
	// Only clear if the slot still holds the submitted draft; a concurrent
	// StartAdd/StartEdit already replaced it.
	if e.draft == draft {
		e.mode = ModeViewing
		e.kind = ""
		e.targetID = 0
		e.draft = nil
	}
	e.mu.Unlock()

	e.logger.Info("draft submitted", "mode", string(mode), "kind", string(kind), "content_id", targetID)
	return nil
}

func (e *Editor) discardLocked(reason string) {
	if e.draft != nil {
		e.logger.Debug("discarding open draft",
			"mode", string(e.mode),
			"kind", string(e.kind),
			"reason", reason,
		)
	}
	e.mode = ModeViewing
	e.kind = ""
	e.targetID = 0
	e.draft = nil
}
