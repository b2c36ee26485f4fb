package editor

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/goliatone/go-catalog/internal/contents"
)

type recordingService struct {
	created []contents.Payload
	updated map[int64]contents.Payload
	err     error
}

func newRecordingService() *recordingService {
	return &recordingService{updated: map[int64]contents.Payload{}}
}

func (s *recordingService) Create(_ context.Context, _ int64, payload contents.Payload) error {
	if s.err != nil {
		return s.err
	}
	s.created = append(s.created, payload)
	return nil
}

func (s *recordingService) Update(_ context.Context, _, contentID int64, payload contents.Payload) error {
	if s.err != nil {
		return s.err
	}
	s.updated[contentID] = payload
	return nil
}

func (s *recordingService) DeleteEntity(context.Context, int64, contents.Kind, int64) error {
	return s.err
}

func (s *recordingService) DeleteTranslation(context.Context, int64, contents.Kind, int64) error {
	return s.err
}

func TestEditor_StartsInViewing(t *testing.T) {
	t.Parallel()

	e := New(newRecordingService())
	state := e.State()
	if state.Mode != ModeViewing {
		t.Fatalf("expected viewing, got %s", state.Mode)
	}
	if _, ok := e.Draft(); ok {
		t.Fatal("no draft should exist in viewing mode")
	}
}

func TestEditor_StartAddOpensEmptyDraft(t *testing.T) {
	t.Parallel()

	e := New(newRecordingService())
	draft, err := e.StartAdd(contents.KindList)
	if err != nil {
		t.Fatalf("start add: %v", err)
	}

	state := e.State()
	if state.Mode != ModeAdding || state.Kind != contents.KindList || state.ContentID != 0 {
		t.Fatalf("unexpected state %+v", state)
	}
	if _, ok := draft.(*ListDraft); !ok {
		t.Fatalf("expected *ListDraft, got %T", draft)
	}

	if _, err := e.StartAdd(contents.Kind("video")); err == nil {
		t.Fatal("unknown kind should be rejected")
	}
}

func TestEditor_OpeningReplacesOpenDraft(t *testing.T) {
	t.Parallel()

	e := New(newRecordingService())
	first, _ := e.StartAdd(contents.KindList)
	first.(*ListDraft).Title = "doomed"

	second, err := e.StartEdit(7, contents.ParagraphPayload{Title: "Durability"})
	if err != nil {
		t.Fatalf("start edit: %v", err)
	}

	state := e.State()
	if state.Mode != ModeEditing || state.Kind != contents.KindParagraph || state.ContentID != 7 {
		t.Fatalf("unexpected state %+v", state)
	}
	current, ok := e.Draft()
	if !ok || current != second {
		t.Fatal("second draft should have replaced the first")
	}
	if current.(*ParagraphDraft).Title != "Durability" {
		t.Fatalf("seed not applied: %+v", current)
	}
}

func TestEditor_CancelReturnsToViewing(t *testing.T) {
	t.Parallel()

	e := New(newRecordingService())
	if _, err := e.StartAdd(contents.KindTable); err != nil {
		t.Fatalf("start add: %v", err)
	}

	e.Cancel()
	if state := e.State(); state.Mode != ModeViewing {
		t.Fatalf("expected viewing after cancel, got %s", state.Mode)
	}
	if _, ok := e.Draft(); ok {
		t.Fatal("cancel must discard the draft")
	}
	e.Cancel() // no-op in viewing
}

func TestEditor_SubmitAddingCreates(t *testing.T) {
	t.Parallel()

	svc := newRecordingService()
	e := New(svc)
	draft, _ := e.StartAdd(contents.KindParagraph)
	p := draft.(*ParagraphDraft)
	p.Title = "Durability"
	p.FullText = "Built to last."
	p.SortOrder = 2

	if err := e.Submit(context.Background(), 42); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(svc.created) != 1 {
		t.Fatalf("expected one create, got %d", len(svc.created))
	}
	sent := svc.created[0].(contents.ParagraphPayload)
	if sent.Title != "Durability" || sent.SortOrder != 2 {
		t.Fatalf("unexpected payload %+v", sent)
	}
	if state := e.State(); state.Mode != ModeViewing {
		t.Fatalf("expected viewing after submit, got %s", state.Mode)
	}
}

func TestEditor_SubmitEditingUpdatesTarget(t *testing.T) {
	t.Parallel()

	svc := newRecordingService()
	e := New(svc)
	seed := contents.ListPayload{Title: "Features", Items: []string{"fire resistant"}}
	draft, err := e.StartEdit(200, seed)
	if err != nil {
		t.Fatalf("start edit: %v", err)
	}
	l := draft.(*ListDraft)
	l.AppendItem("recyclable")

	if err := e.Submit(context.Background(), 42); err != nil {
		t.Fatalf("submit: %v", err)
	}
	sent, ok := svc.updated[200].(contents.ListPayload)
	if !ok {
		t.Fatalf("expected update for 200, got %+v", svc.updated)
	}
	if want := []string{"fire resistant", "recyclable"}; !reflect.DeepEqual(sent.Items, want) {
		t.Fatalf("items: got %v want %v", sent.Items, want)
	}
}

func TestEditor_SubmitFailureKeepsDraft(t *testing.T) {
	t.Parallel()

	svc := newRecordingService()
	svc.err = errors.New("boom")
	e := New(svc)
	draft, _ := e.StartAdd(contents.KindParagraph)
	draft.(*ParagraphDraft).Title = "Durability"

	if err := e.Submit(context.Background(), 42); err == nil {
		t.Fatal("expected submit error")
	}
	state := e.State()
	if state.Mode != ModeAdding {
		t.Fatalf("failed submit must keep mode, got %s", state.Mode)
	}
	kept, ok := e.Draft()
	if !ok || kept != draft {
		t.Fatal("failed submit must keep the draft")
	}
}

func TestEditor_SubmitWithoutDraftFails(t *testing.T) {
	t.Parallel()

	e := New(newRecordingService())
	if err := e.Submit(context.Background(), 42); !errors.Is(err, ErrNoActiveDraft) {
		t.Fatalf("expected ErrNoActiveDraft, got %v", err)
	}
}

func TestEditor_StartEditValidatesInput(t *testing.T) {
	t.Parallel()

	e := New(newRecordingService())
	if _, err := e.StartEdit(0, contents.ParagraphPayload{}); !errors.Is(err, ErrContentIDRequired) {
		t.Fatalf("expected ErrContentIDRequired, got %v", err)
	}
	if _, err := e.StartEdit(7, nil); err == nil {
		t.Fatal("nil seed should be rejected")
	}
}
