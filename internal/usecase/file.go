package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/StudenikinNikolay/filecloud/internal/domain"
	"github.com/StudenikinNikolay/filecloud/internal/repository"
)

// ErrBadFileInput covers every client-side mistake on the file endpoints:
// blank filename, empty upload, unknown file.
var ErrBadFileInput = errors.New("error input data")

type FileUsecase struct {
	files repository.FileRepository
}

func NewFileUsecase(files repository.FileRepository) *FileUsecase {
	return &FileUsecase{files: files}
}

func (u *FileUsecase) Upload(ctx context.Context, name, contentType string, content []byte) (*domain.File, error) {
	if strings.TrimSpace(name) == "" || len(content) == 0 {
		return nil, ErrBadFileInput
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return u.files.Create(ctx, name, contentType, content)
}

func (u *FileUsecase) Download(ctx context.Context, name string) (*domain.FileContent, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrBadFileInput
	}
	fc, err := u.files.GetContent(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrFileNotFound) {
			return nil, ErrBadFileInput
		}
		return nil, err
	}
	return fc, nil
}

func (u *FileUsecase) Rename(ctx context.Context, name, newName string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(newName) == "" {
		return ErrBadFileInput
	}
	err := u.files.Rename(ctx, name, newName)
	if errors.Is(err, domain.ErrFileNotFound) {
		return ErrBadFileInput
	}
	return err
}

func (u *FileUsecase) Delete(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrBadFileInput
	}
	err := u.files.Delete(ctx, name)
	if errors.Is(err, domain.ErrFileNotFound) {
		return ErrBadFileInput
	}
	return err
}

func (u *FileUsecase) List(ctx context.Context, limit int) ([]domain.File, error) {
	return u.files.List(ctx, limit)
}
