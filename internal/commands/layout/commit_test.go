package layoutcmd

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-catalog/internal/bundle"
	"github.com/goliatone/go-catalog/internal/layout"
	goerrors "github.com/goliatone/go-errors"
)

type fakeCommitter struct {
	productID int64
	changes   []layout.OrderChange
	err       error
}

func (f *fakeCommitter) CommitLayoutOrder(_ context.Context, productID int64, changes []layout.OrderChange) error {
	f.productID = productID
	f.changes = changes
	return f.err
}

func stagedEngine(t *testing.T) *layout.Engine {
	t.Helper()
	engine := layout.NewEngine([]bundle.Block{
		{ID: 1, Type: bundle.BlockParagraph, SortOrder: 10},
		{ID: 2, Type: bundle.BlockList, SortOrder: 20},
	})
	if err := engine.Move(2, layout.MoveUp); err != nil {
		t.Fatalf("stage move: %v", err)
	}
	return engine
}

func TestCommitLayoutValidatesProductID(t *testing.T) {
	handler := NewCommitLayoutHandler(stagedEngine(t), &fakeCommitter{}, nil)

	err := handler.Execute(context.Background(), CommitLayoutCommand{})
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestCommitLayoutFlushesStagedChanges(t *testing.T) {
	engine := stagedEngine(t)
	committer := &fakeCommitter{}
	handler := NewCommitLayoutHandler(engine, committer, nil)

	if err := handler.Execute(context.Background(), CommitLayoutCommand{ProductID: 42}); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if committer.productID != 42 {
		t.Fatalf("expected product 42, got %d", committer.productID)
	}
	if len(committer.changes) != 2 {
		t.Fatalf("expected two changed pairs, got %v", committer.changes)
	}
	if engine.Dirty() {
		t.Fatal("engine should be clean after successful commit")
	}
}

func TestCommitLayoutKeepsDraftOnFailure(t *testing.T) {
	engine := stagedEngine(t)
	committer := &fakeCommitter{err: errors.New("boom")}
	handler := NewCommitLayoutHandler(engine, committer, nil)

	err := handler.Execute(context.Background(), CommitLayoutCommand{ProductID: 42})
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
	if !engine.Dirty() {
		t.Fatal("engine must keep the draft when the commit fails")
	}
}

func TestCommitLayoutWithCleanEngineFails(t *testing.T) {
	engine := layout.NewEngine([]bundle.Block{{ID: 1, SortOrder: 10}})
	handler := NewCommitLayoutHandler(engine, &fakeCommitter{}, nil)

	err := handler.Execute(context.Background(), CommitLayoutCommand{ProductID: 42})
	if err == nil {
		t.Fatal("expected error for clean engine")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}
