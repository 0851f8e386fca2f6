package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/StudenikinNikolay/filecloud/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT username, password_hash, token, created_at, updated_at
		FROM users WHERE username = $1`

	row := r.pool.QueryRow(ctx, query, username)
	return scanUser(row)
}

func (r *UserRepository) UpdateToken(ctx context.Context, username string, token *string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET token = $2, updated_at = NOW() WHERE username = $1`,
		username, token,
	)
	if err != nil {
		return fmt.Errorf("update token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) ListWithToken(ctx context.Context) ([]domain.User, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT username, password_hash, token, created_at, updated_at
		FROM users WHERE token IS NOT NULL`,
	)
	if err != nil {
		return nil, fmt.Errorf("list users with token: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.Username, &u.PasswordHash, &u.Token, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}
