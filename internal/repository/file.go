package repository

import (
	"context"

	"github.com/StudenikinNikolay/filecloud/internal/domain"
)

// FileRepository stores file metadata and content keyed by filename.
type FileRepository interface {
	Create(ctx context.Context, name, contentType string, content []byte) (*domain.File, error)
	GetContent(ctx context.Context, name string) (*domain.FileContent, error)
	Rename(ctx context.Context, name, newName string) error
	Delete(ctx context.Context, name string) error
	// List returns metadata ordered by name ascending. limit <= 0 means all.
	List(ctx context.Context, limit int) ([]domain.File, error)
}
