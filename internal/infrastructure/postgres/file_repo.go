package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/StudenikinNikolay/filecloud/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FileRepository struct {
	pool *pgxpool.Pool
}

func NewFileRepository(pool *pgxpool.Pool) *FileRepository {
	return &FileRepository{pool: pool}
}

func (r *FileRepository) Create(ctx context.Context, name, contentType string, content []byte) (*domain.File, error) {
	query := `INSERT INTO files (name, content_type, size, content)
		VALUES ($1, $2, $3, $4)
		RETURNING name, content_type, size, created_at, edited_at`

	row := r.pool.QueryRow(ctx, query, name, contentType, int64(len(content)), content)
	f, err := scanFile(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrDuplicateFile
		}
		return nil, fmt.Errorf("insert file: %w", err)
	}
	return f, nil
}

func (r *FileRepository) GetContent(ctx context.Context, name string) (*domain.FileContent, error) {
	var fc domain.FileContent
	err := r.pool.QueryRow(ctx,
		`SELECT content_type, content FROM files WHERE name = $1`, name,
	).Scan(&fc.ContentType, &fc.Content)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFileNotFound
		}
		return nil, fmt.Errorf("get file content: %w", err)
	}
	return &fc, nil
}

func (r *FileRepository) Rename(ctx context.Context, name, newName string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE files SET name = $2, edited_at = NOW() WHERE name = $1`,
		name, newName,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateFile
		}
		return fmt.Errorf("rename file: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrFileNotFound
	}
	return nil
}

func (r *FileRepository) Delete(ctx context.Context, name string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM files WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("delete file: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrFileNotFound
	}
	return nil
}

func (r *FileRepository) List(ctx context.Context, limit int) ([]domain.File, error) {
	query := `SELECT name, content_type, size, created_at, edited_at
		FROM files ORDER BY name ASC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	defer rows.Close()

	var files []domain.File
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, err
		}
		files = append(files, *f)
	}
	return files, rows.Err()
}

func scanFile(row pgx.Row) (*domain.File, error) {
	var f domain.File
	err := row.Scan(&f.Name, &f.ContentType, &f.Size, &f.CreatedAt, &f.EditedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFileNotFound
		}
		return nil, err
	}
	return &f, nil
}
