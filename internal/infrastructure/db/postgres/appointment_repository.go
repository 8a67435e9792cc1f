package postgres

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smartclinic/clinic-api/internal/core/domain"
	"github.com/smartclinic/clinic-api/internal/core/ports"
)

const appointmentSelect = `
	SELECT a.id, a.doctor_id, a.patient_id, a.appointment_time, a.status, a.created_at,
	       d.name, p.name
	FROM appointments a
	JOIN doctors d ON d.id = a.doctor_id
	JOIN patients p ON p.id = a.patient_id`

type AppointmentRepository struct {
	pool *pgxpool.Pool
}

func NewAppointmentRepository(pool *pgxpool.Pool) *AppointmentRepository {
	return &AppointmentRepository{pool: pool}
}

var _ ports.AppointmentRepository = (*AppointmentRepository)(nil)

func (r *AppointmentRepository) Create(ctx context.Context, a *domain.Appointment) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO appointments (doctor_id, patient_id, appointment_time, status, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		a.DoctorID, a.PatientID, a.Time, int16(a.Status), a.CreatedAt,
	).Scan(&a.ID)
	return appointmentWriteError(err)
}

func (r *AppointmentRepository) FindByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	rows, err := r.pool.Query(ctx, appointmentSelect+` WHERE a.id = $1`, id)
	if err != nil {
		return nil, err
	}
	list, err := scanAppointments(rows, true)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, domain.ErrAppointmentNotFound
	}
	return &list[0], nil
}

func (r *AppointmentRepository) Update(ctx context.Context, a *domain.Appointment) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE appointments SET doctor_id=$1, appointment_time=$2 WHERE id=$3`,
		a.DoctorID, a.Time, a.ID,
	)
	if err != nil {
		return appointmentWriteError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAppointmentNotFound
	}
	return nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	tag, err := r.pool.Exec(ctx, `UPDATE appointments SET status=$1 WHERE id=$2`, int16(status), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAppointmentNotFound
	}
	return nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM appointments WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAppointmentNotFound
	}
	return nil
}

func (r *AppointmentRepository) FindByDoctorAndRange(ctx context.Context, doctorID int64, start, end time.Time) ([]domain.Appointment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, doctor_id, patient_id, appointment_time, status, created_at
		 FROM appointments
		 WHERE doctor_id = $1 AND appointment_time >= $2 AND appointment_time < $3
		 ORDER BY appointment_time`,
		doctorID, start, end,
	)
	if err != nil {
		return nil, err
	}
	return scanAppointments(rows, false)
}

func (r *AppointmentRepository) List(ctx context.Context, f ports.AppointmentFilter) ([]domain.Appointment, error) {
	q, args := buildAppointmentQuery(f)
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	return scanAppointments(rows, true)
}

func buildAppointmentQuery(f ports.AppointmentFilter) (string, []any) {
	q := appointmentSelect + ` WHERE 1=1`
	var args []any
	add := func(clause string, v any) {
		args = append(args, v)
		q += ` AND ` + clause + `$` + strconv.Itoa(len(args))
	}

	if f.DoctorID != 0 {
		add(`a.doctor_id = `, f.DoctorID)
	}
	if f.PatientID != 0 {
		add(`a.patient_id = `, f.PatientID)
	}
	if f.DoctorName != "" {
		add(`d.name ILIKE `, "%"+escapeLike(f.DoctorName)+"%")
	}
	if f.PatientName != "" {
		add(`p.name ILIKE `, "%"+escapeLike(f.PatientName)+"%")
	}
	if f.Status != nil {
		add(`a.status = `, int16(*f.Status))
	}
	if !f.From.IsZero() {
		add(`a.appointment_time >= `, f.From)
	}
	if !f.To.IsZero() {
		add(`a.appointment_time < `, f.To)
	}
	return q + ` ORDER BY a.appointment_time, a.id`, args
}

// scanAppointments drains rows. withNames expects the two joined name columns.
func scanAppointments(rows pgx.Rows, withNames bool) ([]domain.Appointment, error) {
	defer rows.Close()

	out := []domain.Appointment{}
	for rows.Next() {
		var (
			a      domain.Appointment
			status int16
		)
		dest := []any{&a.ID, &a.DoctorID, &a.PatientID, &a.Time, &status, &a.CreatedAt}
		if withNames {
			dest = append(dest, &a.DoctorName, &a.PatientName)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		a.Status = domain.AppointmentStatus(status)
		out = append(out, a)
	}
	return out, rows.Err()
}

func appointmentWriteError(err error) error {
	switch {
	case err == nil:
		return nil
	case violates(err, codeUniqueViolation, "appointments_doctor_time_key"):
		return domain.ErrSlotUnavailable
	case violates(err, codeForeignKeyViolation, "appointments_doctor_id_fkey"):
		return domain.ErrDoctorNotFound
	case violates(err, codeForeignKeyViolation, "appointments_patient_id_fkey"):
		return domain.ErrPatientNotFound
	case errors.Is(err, pgx.ErrNoRows):
		return domain.ErrAppointmentNotFound
	default:
		return err
	}
}
