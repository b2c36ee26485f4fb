package images

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-catalog/internal/transport"
)

type fakeImageAPI struct {
	groups  []string
	uploads []transport.Upload
	deleted []int64
	err     error
}

func (f *fakeImageAPI) CreateImageGroup(_ context.Context, _ int64, name string) error {
	f.groups = append(f.groups, name)
	return f.err
}

func (f *fakeImageAPI) UploadImages(_ context.Context, _, _ int64, uploads []transport.Upload) error {
	f.uploads = append(f.uploads, uploads...)
	return f.err
}

func (f *fakeImageAPI) DeleteImage(_ context.Context, _, imageID int64) error {
	f.deleted = append(f.deleted, imageID)
	return f.err
}

func TestCreateGroup_TrimsName(t *testing.T) {
	t.Parallel()

	api := &fakeImageAPI{}
	svc := NewService(api)

	if err := svc.CreateGroup(context.Background(), 42, "  Gallery  "); err != nil {
		t.Fatalf("create group: %v", err)
	}
	if len(api.groups) != 1 || api.groups[0] != "Gallery" {
		t.Fatalf("expected trimmed group name, got %v", api.groups)
	}

	if err := svc.CreateGroup(context.Background(), 42, "   "); !errors.Is(err, ErrGroupNameRequired) {
		t.Fatalf("expected ErrGroupNameRequired, got %v", err)
	}
}

func TestUpload_ValidatesFiles(t *testing.T) {
	t.Parallel()

	api := &fakeImageAPI{}
	svc := NewService(api)
	ctx := context.Background()

	if err := svc.Upload(ctx, 42, 7, nil); !errors.Is(err, ErrNoFiles) {
		t.Fatalf("expected ErrNoFiles, got %v", err)
	}
	if err := svc.Upload(ctx, 42, 7, []File{{Name: "", Reader: strings.NewReader("x")}}); !errors.Is(err, ErrFilenameRequired) {
		t.Fatalf("expected ErrFilenameRequired, got %v", err)
	}
	if err := svc.Upload(ctx, 42, 7, []File{{Name: "a.jpg"}}); !errors.Is(err, ErrFileReaderNil) {
		t.Fatalf("expected ErrFileReaderNil, got %v", err)
	}
	if err := svc.Upload(ctx, 42, 0, []File{{Name: "a.jpg", Reader: strings.NewReader("x")}}); !errors.Is(err, ErrGroupIDRequired) {
		t.Fatalf("expected ErrGroupIDRequired, got %v", err)
	}
	if len(api.uploads) != 0 {
		t.Fatal("invalid uploads must not reach the API")
	}

	files := []File{
		{Name: " front.jpg ", Alt: " Front view ", Reader: strings.NewReader("a")},
		{Name: "back.jpg", Reader: strings.NewReader("b")},
	}
	if err := svc.Upload(ctx, 42, 7, files); err != nil {
		t.Fatalf("upload: %v", err)
	}
	if len(api.uploads) != 2 {
		t.Fatalf("expected two uploads, got %d", len(api.uploads))
	}
	if api.uploads[0].Filename != "front.jpg" || api.uploads[0].Alt != "Front view" {
		t.Fatalf("expected trimmed upload fields, got %+v", api.uploads[0])
	}
}

func TestRemove_RequiresIDs(t *testing.T) {
	t.Parallel()

	api := &fakeImageAPI{}
	svc := NewService(api)
	ctx := context.Background()

	if err := svc.Remove(ctx, 0, 5); !errors.Is(err, ErrProductIDRequired) {
		t.Fatalf("expected ErrProductIDRequired, got %v", err)
	}
	if err := svc.Remove(ctx, 42, 0); !errors.Is(err, ErrImageIDRequired) {
		t.Fatalf("expected ErrImageIDRequired, got %v", err)
	}
	if err := svc.Remove(ctx, 42, 5); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(api.deleted) != 1 || api.deleted[0] != 5 {
		t.Fatalf("unexpected deletes: %v", api.deleted)
	}
}

func TestService_WrapsTransportErrors(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("boom")
	svc := NewService(&fakeImageAPI{err: sentinel})

	err := svc.CreateGroup(context.Background(), 42, "Gallery")
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}
