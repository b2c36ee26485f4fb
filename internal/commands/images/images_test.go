package imagescmd

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-catalog/internal/images"
	goerrors "github.com/goliatone/go-errors"
)

type fakeImageService struct {
	groups   []string
	uploaded int
	removed  []int64
	err      error
}

func (f *fakeImageService) CreateGroup(_ context.Context, _ int64, name string) error {
	f.groups = append(f.groups, name)
	return f.err
}

func (f *fakeImageService) Upload(_ context.Context, _, _ int64, files []images.File) error {
	f.uploaded += len(files)
	return f.err
}

func (f *fakeImageService) Remove(_ context.Context, _, imageID int64) error {
	f.removed = append(f.removed, imageID)
	return f.err
}

func TestCreateGroupCommandValidation(t *testing.T) {
	handler := NewCreateGroupHandler(&fakeImageService{}, nil)

	err := handler.Execute(context.Background(), CreateGroupCommand{ProductID: 42})
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestUploadImagesCommandDispatches(t *testing.T) {
	svc := &fakeImageService{}
	handler := NewUploadImagesHandler(svc, nil)

	msg := UploadImagesCommand{
		ProductID: 42,
		GroupID:   7,
		Files: []images.File{
			{Name: "front.jpg", Reader: strings.NewReader("a")},
			{Name: "back.jpg", Reader: strings.NewReader("b")},
		},
	}
	if err := handler.Execute(context.Background(), msg); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if svc.uploaded != 2 {
		t.Fatalf("expected two uploads, got %d", svc.uploaded)
	}
}

func TestUploadImagesCommandRequiresFiles(t *testing.T) {
	handler := NewUploadImagesHandler(&fakeImageService{}, nil)

	err := handler.Execute(context.Background(), UploadImagesCommand{ProductID: 42, GroupID: 7})
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestRemoveImageCommandDispatches(t *testing.T) {
	svc := &fakeImageService{}
	handler := NewRemoveImageHandler(svc, nil)

	if err := handler.Execute(context.Background(), RemoveImageCommand{ProductID: 42, ImageID: 9}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(svc.removed) != 1 || svc.removed[0] != 9 {
		t.Fatalf("unexpected removals: %v", svc.removed)
	}
}
