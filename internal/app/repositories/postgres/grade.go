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

const gradeColumns = `id, student_id, subject, score, max_score, term, date`

// GradeRepository handles database operations for scored assessments.
type GradeRepository struct {
	db *pgxpool.Pool
}

// NewGradeRepository creates a new grade repository.
func NewGradeRepository(db *pgxpool.Pool) *GradeRepository {
	return &GradeRepository{db: db}
}

func scanGrade(row rowScanner) (models.Grade, error) {
	var g models.Grade
	err := row.Scan(
		&g.ID,
		&g.StudentID,
		&g.Subject,
		&g.Score,
		&g.MaxScore,
		&g.Term,
		&g.Date,
	)
	return g, err
}

func (r *GradeRepository) queryGrades(ctx context.Context, sql string, args ...any) ([]models.Grade, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying grades: %w", err)
	}
	defer rows.Close()

	var grades []models.Grade
	for rows.Next() {
		g, err := scanGrade(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning grade: %w", err)
		}
		grades = append(grades, g)
	}
	return grades, rows.Err()
}

// GetAll retrieves all grades ordered by id.
func (r *GradeRepository) GetAll(ctx context.Context) ([]models.Grade, error) {
	return r.queryGrades(ctx, `SELECT `+gradeColumns+` FROM grades ORDER BY id`)
}

// GetByID retrieves a grade by id.
func (r *GradeRepository) GetByID(ctx context.Context, id int64) (models.Grade, error) {
	g, err := scanGrade(r.db.QueryRow(ctx, `SELECT `+gradeColumns+` FROM grades WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Grade{}, apperrors.ErrGradeNotFound
	}
	if err != nil {
		return models.Grade{}, fmt.Errorf("error retrieving grade: %w", err)
	}
	return g, nil
}

// Create inserts a new grade.
func (r *GradeRepository) Create(ctx context.Context, grade models.Grade) (models.Grade, error) {
	query := `
		INSERT INTO grades (student_id, subject, score, max_score, term, date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		grade.StudentID,
		grade.Subject,
		grade.Score,
		grade.MaxScore,
		grade.Term,
		grade.Date,
	).Scan(&grade.ID)
	if err != nil {
		return models.Grade{}, fmt.Errorf("error creating grade: %w", err)
	}
	return grade, nil
}

// Update applies the non-nil patch fields and returns the merged record.
func (r *GradeRepository) Update(ctx context.Context, id int64, patch models.GradePatch) (models.Grade, error) {
	update := squirrel.Update("grades").PlaceholderFormat(squirrel.Dollar)
	sets := 0
	set := func(column string, value any) {
		update = update.Set(column, value)
		sets++
	}
	if patch.StudentID != nil {
		set("student_id", *patch.StudentID)
	}
	if patch.Subject != nil {
		set("subject", *patch.Subject)
	}
	if patch.Score != nil {
		set("score", *patch.Score)
	}
	if patch.MaxScore != nil {
		set("max_score", *patch.MaxScore)
	}
	if patch.Term != nil {
		set("term", *patch.Term)
	}
	if patch.Date != nil {
		set("date", *patch.Date)
	}
	if sets == 0 {
		return r.GetByID(ctx, id)
	}

	sql, args, err := update.Where("id = ?", id).Suffix("RETURNING " + gradeColumns).ToSql()
	if err != nil {
		return models.Grade{}, fmt.Errorf("error building SQL: %w", err)
	}

	g, err := scanGrade(r.db.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Grade{}, apperrors.ErrGradeNotFound
	}
	if err != nil {
		return models.Grade{}, fmt.Errorf("error updating grade: %w", err)
	}
	return g, nil
}

// Delete removes a grade and returns the removed row.
func (r *GradeRepository) Delete(ctx context.Context, id int64) (models.Grade, error) {
	g, err := scanGrade(r.db.QueryRow(ctx, `DELETE FROM grades WHERE id = $1 RETURNING `+gradeColumns, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Grade{}, apperrors.ErrGradeNotFound
	}
	if err != nil {
		return models.Grade{}, fmt.Errorf("error deleting grade: %w", err)
	}
	return g, nil
}

// GetByStudent retrieves all grades for the given student in insertion order.
func (r *GradeRepository) GetByStudent(ctx context.Context, studentID int64) ([]models.Grade, error) {
	return r.queryGrades(ctx,
		`SELECT `+gradeColumns+` FROM grades WHERE student_id = $1 ORDER BY id`, studentID)
}

// GetBySubject retrieves all grades for a subject. Subjects compare
// case-sensitively.
func (r *GradeRepository) GetBySubject(ctx context.Context, subject string) ([]models.Grade, error) {
	return r.queryGrades(ctx,
		`SELECT `+gradeColumns+` FROM grades WHERE subject = $1 ORDER BY id`, subject)
}
