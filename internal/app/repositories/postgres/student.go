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
)

const studentColumns = `id, first_name, last_name, date_of_birth, grade_level, enrollment_date,
	email, phone, address, guardian_name, guardian_phone, guardian_email,
	emergency_contact_name, emergency_contact_phone, emergency_contact_relationship, status`

// StudentRepository handles database operations for students.
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository.
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStudent(row rowScanner) (models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.ID,
		&s.FirstName,
		&s.LastName,
		&s.DateOfBirth,
		&s.GradeLevel,
		&s.EnrollmentDate,
		&s.Email,
		&s.Phone,
		&s.Address,
		&s.GuardianName,
		&s.GuardianPhone,
		&s.GuardianEmail,
		&s.EmergencyContactName,
		&s.EmergencyContactPhone,
		&s.EmergencyContactRelationship,
		&s.Status,
	)
	return s, err
}

func (r *StudentRepository) queryStudents(ctx context.Context, sql string, args ...any) ([]models.Student, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student: %w", err)
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// GetAll retrieves all students ordered by id, which is creation order.
func (r *StudentRepository) GetAll(ctx context.Context) ([]models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students ORDER BY id`
	return r.queryStudents(ctx, query)
}

// GetByID retrieves a student by id.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	s, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Student{}, apperrors.ErrStudentNotFound
	}
	if err != nil {
		return models.Student{}, fmt.Errorf("error retrieving student: %w", err)
	}
	return s, nil
}

// Create inserts a new student. Ids come from the table's BIGSERIAL sequence,
// so they are monotonically increasing and never reused after deletion.
func (r *StudentRepository) Create(ctx context.Context, student models.Student) (models.Student, error) {
	query := `
		INSERT INTO students (first_name, last_name, date_of_birth, grade_level, enrollment_date,
			email, phone, address, guardian_name, guardian_phone, guardian_email,
			emergency_contact_name, emergency_contact_phone, emergency_contact_relationship, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		student.FirstName,
		student.LastName,
		student.DateOfBirth,
		student.GradeLevel,
		student.EnrollmentDate,
		student.Email,
		student.Phone,
		student.Address,
		student.GuardianName,
		student.GuardianPhone,
		student.GuardianEmail,
		student.EmergencyContactName,
		student.EmergencyContactPhone,
		student.EmergencyContactRelationship,
		student.Status,
	).Scan(&student.ID)
	if err != nil {
		return models.Student{}, fmt.Errorf("error creating student: %w", err)
	}
	return student, nil
}

// Update applies the non-nil patch fields to the stored row and returns the
// merged record. An empty patch is a no-op read.
func (r *StudentRepository) Update(ctx context.Context, id int64, patch models.StudentPatch) (models.Student, error) {
	update := squirrel.Update("students").PlaceholderFormat(squirrel.Dollar)

	sets := 0
	set := func(column string, value any) {
		update = update.Set(column, value)
		sets++
	}
	if patch.FirstName != nil {
		set("first_name", *patch.FirstName)
	}
	if patch.LastName != nil {
		set("last_name", *patch.LastName)
	}
	if patch.DateOfBirth != nil {
		set("date_of_birth", *patch.DateOfBirth)
	}
	if patch.GradeLevel != nil {
		set("grade_level", *patch.GradeLevel)
	}
	if patch.EnrollmentDate != nil {
		set("enrollment_date", *patch.EnrollmentDate)
	}
	if patch.Email != nil {
		set("email", *patch.Email)
	}
	if patch.Phone != nil {
		set("phone", *patch.Phone)
	}
	if patch.Address != nil {
		set("address", *patch.Address)
	}
	if patch.GuardianName != nil {
		set("guardian_name", *patch.GuardianName)
	}
	if patch.GuardianPhone != nil {
		set("guardian_phone", *patch.GuardianPhone)
	}
	if patch.GuardianEmail != nil {
		set("guardian_email", *patch.GuardianEmail)
	}
	if patch.EmergencyContactName != nil {
		set("emergency_contact_name", *patch.EmergencyContactName)
	}
	if patch.EmergencyContactPhone != nil {
		set("emergency_contact_phone", *patch.EmergencyContactPhone)
	}
	if patch.EmergencyContactRelationship != nil {
		set("emergency_contact_relationship", *patch.EmergencyContactRelationship)
	}
	if patch.Status != nil {
		set("status", *patch.Status)
	}
	if sets == 0 {
		return r.GetByID(ctx, id)
	}

	sql, args, err := update.Where("id = ?", id).Suffix("RETURNING " + studentColumns).ToSql()
	if err != nil {
		return models.Student{}, fmt.Errorf("error building SQL: %w", err)
	}

	s, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Student{}, apperrors.ErrStudentNotFound
	}
	if err != nil {
		return models.Student{}, fmt.Errorf("error updating student: %w", err)
	}
	return s, nil
}

// Delete removes a student and returns the removed row. Grades and
// attendance rows referencing the student are kept; references are weak.
func (r *StudentRepository) Delete(ctx context.Context, id int64) (models.Student, error) {
	query := `DELETE FROM students WHERE id = $1 RETURNING ` + studentColumns

	s, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Student{}, apperrors.ErrStudentNotFound
	}
	if err != nil {
		return models.Student{}, fmt.Errorf("error deleting student: %w", err)
	}
	return s, nil
}

// Search matches query case-insensitively against name, email and grade
// level.
func (r *StudentRepository) Search(ctx context.Context, query string) ([]models.Student, error) {
	if query == "" {
		return r.GetAll(ctx)
	}

	pattern := "%" + query + "%"
	sel := squirrel.Select(studentColumns).
		From("students").
		Where(squirrel.Or{
			squirrel.ILike{"first_name": pattern},
			squirrel.ILike{"last_name": pattern},
			squirrel.ILike{"email": pattern},
			squirrel.ILike{"grade_level": pattern},
		}).
		OrderBy("id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}
	return r.queryStudents(ctx, sql, args...)
}

// GetByGradeLevel retrieves all students enrolled at the given level.
func (r *StudentRepository) GetByGradeLevel(ctx context.Context, level string) ([]models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE grade_level = $1 ORDER BY id`
	return r.queryStudents(ctx, query, level)
}
