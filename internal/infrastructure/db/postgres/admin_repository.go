package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smartclinic/clinic-api/internal/core/domain"
	"github.com/smartclinic/clinic-api/internal/core/ports"
)

type AdminRepository struct {
	pool *pgxpool.Pool
}

func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{pool: pool}
}

var _ ports.AdminRepository = (*AdminRepository)(nil)

func (r *AdminRepository) Create(ctx context.Context, a *domain.Admin) (*domain.Admin, error) {
	out := *a
	err := r.pool.QueryRow(ctx,
		`INSERT INTO admins (username, password_hash, created_at)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		a.Username, a.PasswordHash, a.CreatedAt,
	).Scan(&out.ID)
	if violates(err, codeUniqueViolation, "admins_username_key") {
		return nil, domain.ErrAdminExists
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *AdminRepository) FindByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	a := &domain.Admin{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, password_hash, created_at
		 FROM admins WHERE username = $1`, username,
	).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrAdminNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *AdminRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM admins WHERE username = $1)`, username,
	).Scan(&exists)
	return exists, err
}
