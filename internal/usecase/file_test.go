package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/StudenikinNikolay/filecloud/internal/domain"
	"github.com/StudenikinNikolay/filecloud/internal/usecase"
)

type fakeFileRepo struct {
	create     func(ctx context.Context, name, contentType string, content []byte) (*domain.File, error)
	getContent func(ctx context.Context, name string) (*domain.FileContent, error)
	rename     func(ctx context.Context, name, newName string) error
	delete     func(ctx context.Context, name string) error
	list       func(ctx context.Context, limit int) ([]domain.File, error)
}

func (r *fakeFileRepo) Create(ctx context.Context, name, contentType string, content []byte) (*domain.File, error) {
	return r.create(ctx, name, contentType, content)
}

func (r *fakeFileRepo) GetContent(ctx context.Context, name string) (*domain.FileContent, error) {
	return r.getContent(ctx, name)
}

func (r *fakeFileRepo) Rename(ctx context.Context, name, newName string) error {
	return r.rename(ctx, name, newName)
}

func (r *fakeFileRepo) Delete(ctx context.Context, name string) error {
	return r.delete(ctx, name)
}

func (r *fakeFileRepo) List(ctx context.Context, limit int) ([]domain.File, error) {
	return r.list(ctx, limit)
}

func TestUpload_BlankNameOrEmptyContent(t *testing.T) {
	uc := usecase.NewFileUsecase(&fakeFileRepo{})

	if _, err := uc.Upload(context.Background(), "  ", "text/plain", []byte("x")); !errors.Is(err, usecase.ErrBadFileInput) {
		t.Errorf("blank name: err = %v, want ErrBadFileInput", err)
	}
	if _, err := uc.Upload(context.Background(), "a.txt", "text/plain", nil); !errors.Is(err, usecase.ErrBadFileInput) {
		t.Errorf("empty content: err = %v, want ErrBadFileInput", err)
	}
}

func TestUpload_DefaultsContentType(t *testing.T) {
	var gotType string
	uc := usecase.NewFileUsecase(&fakeFileRepo{
		create: func(_ context.Context, _, contentType string, _ []byte) (*domain.File, error) {
			gotType = contentType
			return &domain.File{Name: "a.txt"}, nil
		},
	})

	if _, err := uc.Upload(context.Background(), "a.txt", "", []byte("x")); err != nil {
		t.Fatalf("upload: %v", err)
	}
	if gotType != "application/octet-stream" {
		t.Errorf("content type = %q, want application/octet-stream", gotType)
	}
}

func TestDownload_NotFoundMapsToBadInput(t *testing.T) {
	uc := usecase.NewFileUsecase(&fakeFileRepo{
		getContent: func(_ context.Context, _ string) (*domain.FileContent, error) {
			return nil, domain.ErrFileNotFound
		},
	})

	if _, err := uc.Download(context.Background(), "missing.txt"); !errors.Is(err, usecase.ErrBadFileInput) {
		t.Errorf("err = %v, want ErrBadFileInput", err)
	}
}

func TestDownload_StoreFailurePassesThrough(t *testing.T) {
	dbErr := errors.New("db down")
	uc := usecase.NewFileUsecase(&fakeFileRepo{
		getContent: func(_ context.Context, _ string) (*domain.FileContent, error) {
			return nil, dbErr
		},
	})

	_, err := uc.Download(context.Background(), "a.txt")
	if !errors.Is(err, dbErr) {
		t.Errorf("err = %v, want wrapped db error", err)
	}
	if errors.Is(err, usecase.ErrBadFileInput) {
		t.Error("store failure must not map to bad input")
	}
}

func TestRename_Validation(t *testing.T) {
	uc := usecase.NewFileUsecase(&fakeFileRepo{
		rename: func(_ context.Context, _, _ string) error { return domain.ErrFileNotFound },
	})

	if err := uc.Rename(context.Background(), "", "b.txt"); !errors.Is(err, usecase.ErrBadFileInput) {
		t.Errorf("blank name: err = %v, want ErrBadFileInput", err)
	}
	if err := uc.Rename(context.Background(), "a.txt", " "); !errors.Is(err, usecase.ErrBadFileInput) {
		t.Errorf("blank new name: err = %v, want ErrBadFileInput", err)
	}
	if err := uc.Rename(context.Background(), "a.txt", "b.txt"); !errors.Is(err, usecase.ErrBadFileInput) {
		t.Errorf("missing file: err = %v, want ErrBadFileInput", err)
	}
}

func TestDelete_NotFoundMapsToBadInput(t *testing.T) {
	uc := usecase.NewFileUsecase(&fakeFileRepo{
		delete: func(_ context.Context, _ string) error { return domain.ErrFileNotFound },
	})

	if err := uc.Delete(context.Background(), "missing.txt"); !errors.Is(err, usecase.ErrBadFileInput) {
		t.Errorf("err = %v, want ErrBadFileInput", err)
	}
}

func TestList_PassesLimitThrough(t *testing.T) {
	var gotLimit int
	uc := usecase.NewFileUsecase(&fakeFileRepo{
		list: func(_ context.Context, limit int) ([]domain.File, error) {
			gotLimit = limit
			return []domain.File{{Name: "a.txt"}, {Name: "b.txt"}}, nil
		},
	})

	files, err := uc.List(context.Background(), 3)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if gotLimit != 3 {
		t.Errorf("limit = %d, want 3", gotLimit)
	}
	if len(files) != 2 {
		t.Errorf("len(files) = %d, want 2", len(files))
	}
}
