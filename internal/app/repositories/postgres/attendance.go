package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scholarhub/scholarhub/internal/app/models"
	"github.com/scholarhub/scholarhub/internal/pkg/apperrors"
	"github.com/scholarhub/scholarhub/internal/pkg/dberrors"
)

const attendanceColumns = `id, student_id, date, status, notes`

// AttendanceRepository handles database operations for daily attendance
// records. The table enforces one record per (student_id, date) pair.
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new attendance repository.
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

func scanAttendance(row rowScanner) (models.AttendanceRecord, error) {
	var a models.AttendanceRecord
	err := row.Scan(
		&a.ID,
		&a.StudentID,
		&a.Date,
		&a.Status,
		&a.Notes,
	)
	return a, err
}

func (r *AttendanceRepository) queryRecords(ctx context.Context, sql string, args ...any) ([]models.AttendanceRecord, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying attendance records: %w", err)
	}
	defer rows.Close()

	var records []models.AttendanceRecord
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning attendance record: %w", err)
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

// GetAll retrieves all attendance records ordered by id.
func (r *AttendanceRepository) GetAll(ctx context.Context) ([]models.AttendanceRecord, error) {
	return r.queryRecords(ctx, `SELECT `+attendanceColumns+` FROM attendance_records ORDER BY id`)
}

// GetByID retrieves an attendance record by id.
func (r *AttendanceRepository) GetByID(ctx context.Context, id int64) (models.AttendanceRecord, error) {
	a, err := scanAttendance(r.db.QueryRow(ctx,
		`SELECT `+attendanceColumns+` FROM attendance_records WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.AttendanceRecord{}, apperrors.ErrAttendanceNotFound
	}
	if err != nil {
		return models.AttendanceRecord{}, fmt.Errorf("error retrieving attendance record: %w", err)
	}
	return a, nil
}

// Create inserts a new attendance record.
func (r *AttendanceRepository) Create(ctx context.Context, record models.AttendanceRecord) (models.AttendanceRecord, error) {
	query := `
		INSERT INTO attendance_records (student_id, date, status, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		record.StudentID,
		record.Date,
		record.Status,
		record.Notes,
	).Scan(&record.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return models.AttendanceRecord{}, apperrors.NewConflictError("attendance already recorded for this student and day")
		}
		return models.AttendanceRecord{}, fmt.Errorf("error creating attendance record: %w", err)
	}
	return record, nil
}

// Upsert inserts an attendance record, or updates the status and notes of
// the existing record for the same student and date. The returned record
// keeps the original id when an existing row is updated.
func (r *AttendanceRepository) Upsert(ctx context.Context, record models.AttendanceRecord) (models.AttendanceRecord, error) {
	query := `
		INSERT INTO attendance_records (student_id, date, status, notes)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (student_id, date)
		DO UPDATE SET status = EXCLUDED.status, notes = EXCLUDED.notes
		RETURNING ` + attendanceColumns
	a, err := scanAttendance(r.db.QueryRow(ctx, query,
		record.StudentID,
		record.Date,
		record.Status,
		record.Notes,
	))
	if err != nil {
		return models.AttendanceRecord{}, fmt.Errorf("error upserting attendance record: %w", err)
	}
	return a, nil
}

// Update applies the non-nil patch fields and returns the merged record.
func (r *AttendanceRepository) Update(ctx context.Context, id int64, patch models.AttendancePatch) (models.AttendanceRecord, error) {
	update := squirrel.Update("attendance_records").PlaceholderFormat(squirrel.Dollar)
	sets := 0
	set := func(column string, value any) {
		update = update.Set(column, value)
		sets++
	}
	if patch.StudentID != nil {
		set("student_id", *patch.StudentID)
	}
	if patch.Date != nil {
		set("date", *patch.Date)
	}
	if patch.Status != nil {
		set("status", *patch.Status)
	}
	if patch.Notes != nil {
		set("notes", *patch.Notes)
	}
	if sets == 0 {
		return r.GetByID(ctx, id)
	}

	sql, args, err := update.Where("id = ?", id).Suffix("RETURNING " + attendanceColumns).ToSql()
	if err != nil {
		return models.AttendanceRecord{}, fmt.Errorf("error building SQL: %w", err)
	}

	a, err := scanAttendance(r.db.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.AttendanceRecord{}, apperrors.ErrAttendanceNotFound
	}
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return models.AttendanceRecord{}, apperrors.NewConflictError("another record exists for this student and day")
		}
		return models.AttendanceRecord{}, fmt.Errorf("error updating attendance record: %w", err)
	}
	return a, nil
}

// Delete removes an attendance record and returns the removed row.
func (r *AttendanceRepository) Delete(ctx context.Context, id int64) (models.AttendanceRecord, error) {
	a, err := scanAttendance(r.db.QueryRow(ctx,
		`DELETE FROM attendance_records WHERE id = $1 RETURNING `+attendanceColumns, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.AttendanceRecord{}, apperrors.ErrAttendanceNotFound
	}
	if err != nil {
		return models.AttendanceRecord{}, fmt.Errorf("error deleting attendance record: %w", err)
	}
	return a, nil
}

// GetByStudent retrieves all attendance records for the given student in
// insertion order.
func (r *AttendanceRepository) GetByStudent(ctx context.Context, studentID int64) ([]models.AttendanceRecord, error) {
	return r.queryRecords(ctx,
		`SELECT `+attendanceColumns+` FROM attendance_records WHERE student_id = $1 ORDER BY id`, studentID)
}

// GetByDate retrieves all attendance records for a single calendar day.
func (r *AttendanceRepository) GetByDate(ctx context.Context, date string) ([]models.AttendanceRecord, error) {
	return r.queryRecords(ctx,
		`SELECT `+attendanceColumns+` FROM attendance_records WHERE date = $1 ORDER BY id`, date)
}

// GetByRange retrieves records with start <= date <= end. Dates are ISO
// strings, so text comparison matches chronological order. An empty bound
// leaves that side of the range open.
func (r *AttendanceRepository) GetByRange(ctx context.Context, start, end string) ([]models.AttendanceRecord, error) {
	builder := squirrel.Select(attendanceColumns).
		From("attendance_records").
		PlaceholderFormat(squirrel.Dollar).
		OrderBy("id")
	if start != "" {
		builder = builder.Where("date >= ?", start)
	}
	if end != "" {
		builder = builder.Where("date <= ?", end)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}
	return r.queryRecords(ctx, sql, args...)
}
