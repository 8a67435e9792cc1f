package postgres

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smartclinic/clinic-api/internal/core/domain"
	"github.com/smartclinic/clinic-api/internal/core/ports"
)

const doctorColumns = `id, name, specialty, email, password_hash, phone, available_times, created_at, updated_at`

type DoctorRepository struct {
	pool *pgxpool.Pool
}

func NewDoctorRepository(pool *pgxpool.Pool) *DoctorRepository {
	return &DoctorRepository{pool: pool}
}

var _ ports.DoctorRepository = (*DoctorRepository)(nil)

func (r *DoctorRepository) Create(ctx context.Context, d *domain.Doctor) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO doctors (name, specialty, email, password_hash, phone, available_times, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		d.Name, d.Specialty, d.Email, d.PasswordHash, d.Phone, slots(d.AvailableTimes), d.CreatedAt, d.UpdatedAt,
	).Scan(&d.ID)
	if violates(err, codeUniqueViolation, "doctors_email_key") {
		return domain.ErrDoctorExists
	}
	return err
}

func (r *DoctorRepository) Update(ctx context.Context, d *domain.Doctor) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE doctors
		 SET name=$1, specialty=$2, email=$3, password_hash=$4, phone=$5, available_times=$6, updated_at=$7
		 WHERE id=$8`,
		d.Name, d.Specialty, d.Email, d.PasswordHash, d.Phone, slots(d.AvailableTimes), d.UpdatedAt, d.ID,
	)
	if violates(err, codeUniqueViolation, "doctors_email_key") {
		return domain.ErrDoctorExists
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDoctorNotFound
	}
	return nil
}

// Delete removes the doctor's appointments and then the doctor in one
// transaction, returning the appointments that went with it.
func (r *DoctorRepository) Delete(ctx context.Context, id int64) ([]domain.Appointment, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(ctx,
		`DELETE FROM appointments WHERE doctor_id = $1
		 RETURNING id, doctor_id, patient_id, appointment_time, status, created_at`, id)
	if err != nil {
		return nil, err
	}
	removed, err := scanAppointments(rows, false)
	if err != nil {
		return nil, err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM doctors WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrDoctorNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return removed, nil
}

func (r *DoctorRepository) FindByID(ctx context.Context, id int64) (*domain.Doctor, error) {
	return r.findOne(ctx, `SELECT `+doctorColumns+` FROM doctors WHERE id = $1`, id)
}

func (r *DoctorRepository) FindByEmail(ctx context.Context, email string) (*domain.Doctor, error) {
	return r.findOne(ctx, `SELECT `+doctorColumns+` FROM doctors WHERE email = $1`, email)
}

func (r *DoctorRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM doctors WHERE email = $1)`, email,
	).Scan(&exists)
	return exists, err
}

func (r *DoctorRepository) List(ctx context.Context, f ports.DoctorFilter) ([]*domain.Doctor, error) {
	q := `SELECT ` + doctorColumns + ` FROM doctors WHERE 1=1`
	var args []any
	if f.Name != "" {
		args = append(args, "%"+escapeLike(f.Name)+"%")
		q += ` AND name ILIKE $` + strconv.Itoa(len(args))
	}
	if f.Specialty != "" {
		args = append(args, f.Specialty)
		q += ` AND LOWER(specialty) = LOWER($` + strconv.Itoa(len(args)) + `)`
	}
	q += ` ORDER BY id`

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.Doctor{}
	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *DoctorRepository) AvailableTimes(ctx context.Context, id int64) ([]string, error) {
	var times []string
	err := r.pool.QueryRow(ctx, `SELECT available_times FROM doctors WHERE id = $1`, id).Scan(&times)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrDoctorNotFound
	}
	if err != nil {
		return nil, err
	}
	return slots(times), nil
}

func (r *DoctorRepository) findOne(ctx context.Context, query string, arg any) (*domain.Doctor, error) {
	d, err := scanDoctor(r.pool.QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrDoctorNotFound
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func scanDoctor(row pgx.Row) (*domain.Doctor, error) {
	d := &domain.Doctor{}
	err := row.Scan(
		&d.ID, &d.Name, &d.Specialty, &d.Email, &d.PasswordHash, &d.Phone,
		&d.AvailableTimes, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	d.AvailableTimes = slots(d.AvailableTimes)
	return d, nil
}

// slots turns a NULL array into an empty list.
func slots(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
