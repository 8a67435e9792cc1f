package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smartclinic/clinic-api/internal/core/domain"
	"github.com/smartclinic/clinic-api/internal/core/ports"
)

const patientColumns = `id, name, email, password_hash, phone, address, created_at`

type PatientRepository struct {
	pool *pgxpool.Pool
}

func NewPatientRepository(pool *pgxpool.Pool) *PatientRepository {
	return &PatientRepository{pool: pool}
}

var _ ports.PatientRepository = (*PatientRepository)(nil)

func (r *PatientRepository) Create(ctx context.Context, p *domain.Patient) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO patients (name, email, password_hash, phone, address, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		p.Name, p.Email, p.PasswordHash, p.Phone, p.Address, p.CreatedAt,
	).Scan(&p.ID)
	if violates(err, codeUniqueViolation, "") {
		return domain.ErrPatientExists
	}
	return err
}

func (r *PatientRepository) FindByID(ctx context.Context, id int64) (*domain.Patient, error) {
	return r.findOne(ctx, `SELECT `+patientColumns+` FROM patients WHERE id = $1`, id)
}

func (r *PatientRepository) FindByEmail(ctx context.Context, email string) (*domain.Patient, error) {
	return r.findOne(ctx, `SELECT `+patientColumns+` FROM patients WHERE email = $1`, email)
}

func (r *PatientRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM patients WHERE email = $1)`, email,
	).Scan(&exists)
	return exists, err
}

func (r *PatientRepository) ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM patients WHERE email = $1 OR phone = $2)`, email, phone,
	).Scan(&exists)
	return exists, err
}

func (r *PatientRepository) findOne(ctx context.Context, query string, arg any) (*domain.Patient, error) {
	p := &domain.Patient{}
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&p.ID, &p.Name, &p.Email, &p.PasswordHash, &p.Phone, &p.Address, &p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPatientNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}
