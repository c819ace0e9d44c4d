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

const parentColumns = `id, first_name, last_name, email, phone, address, relationship,
	occupation, work_phone, is_primary, emergency_contact`

// ParentRepository handles database operations for parent contacts and the
// parent_students link table.
type ParentRepository struct {
	db *pgxpool.Pool
}

// NewParentRepository creates a new parent repository.
func NewParentRepository(db *pgxpool.Pool) *ParentRepository {
	return &ParentRepository{db: db}
}

func scanParent(row rowScanner) (models.Parent, error) {
	var p models.Parent
	err := row.Scan(
		&p.ID,
		&p.FirstName,
		&p.LastName,
		&p.Email,
		&p.Phone,
		&p.Address,
		&p.Relationship,
		&p.Occupation,
		&p.WorkPhone,
		&p.IsPrimary,
		&p.EmergencyContact,
	)
	return p, err
}

// loadStudentIDs fills in StudentIDs for every parent in the slice with one
// query against the link table.
func (r *ParentRepository) loadStudentIDs(ctx context.Context, parents []models.Parent) error {
	if len(parents) == 0 {
		return nil
	}

	ids := make([]int64, len(parents))
	index := make(map[int64]int, len(parents))
	for i, p := range parents {
		ids[i] = p.ID
		index[p.ID] = i
	}

	rows, err := r.db.Query(ctx,
		`SELECT parent_id, student_id FROM parent_students WHERE parent_id = ANY($1) ORDER BY student_id`, ids)
	if err != nil {
		return fmt.Errorf("error querying parent students: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var parentID, studentID int64
		if err := rows.Scan(&parentID, &studentID); err != nil {
			return fmt.Errorf("error scanning parent student link: %w", err)
		}
		i := index[parentID]
		parents[i].StudentIDs = append(parents[i].StudentIDs, studentID)
	}
	return rows.Err()
}

func (r *ParentRepository) queryParents(ctx context.Context, sql string, args ...any) ([]models.Parent, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying parents: %w", err)
	}
	defer rows.Close()

	var parents []models.Parent
	for rows.Next() {
		p, err := scanParent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning parent: %w", err)
		}
		parents = append(parents, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.loadStudentIDs(ctx, parents); err != nil {
		return nil, err
	}
	return parents, nil
}

// GetAll retrieves all parents with their student links.
func (r *ParentRepository) GetAll(ctx context.Context) ([]models.Parent, error) {
	return r.queryParents(ctx, `SELECT `+parentColumns+` FROM parents ORDER BY id`)
}

// GetByID retrieves a parent by id with their student links.
func (r *ParentRepository) GetByID(ctx context.Context, id int64) (models.Parent, error) {
	p, err := scanParent(r.db.QueryRow(ctx, `SELECT `+parentColumns+` FROM parents WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Parent{}, apperrors.ErrParentNotFound
	}
	if err != nil {
		return models.Parent{}, fmt.Errorf("error retrieving parent: %w", err)
	}

	parents := []models.Parent{p}
	if err := r.loadStudentIDs(ctx, parents); err != nil {
		return models.Parent{}, err
	}
	return parents[0], nil
}

func insertParentStudents(ctx context.Context, tx pgx.Tx, parentID int64, studentIDs []int64) error {
	for _, studentID := range studentIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO parent_students (parent_id, student_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			parentID, studentID)
		if err != nil {
			return fmt.Errorf("error linking parent to student %d: %w", studentID, err)
		}
	}
	return nil
}

// Create inserts a new parent and its student links in one transaction.
func (r *ParentRepository) Create(ctx context.Context, parent models.Parent) (models.Parent, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return models.Parent{}, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO parents (first_name, last_name, email, phone, address, relationship,
			occupation, work_phone, is_primary, emergency_contact)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	err = tx.QueryRow(ctx, query,
		parent.FirstName,
		parent.LastName,
		parent.Email,
		parent.Phone,
		parent.Address,
		parent.Relationship,
		parent.Occupation,
		parent.WorkPhone,
		parent.IsPrimary,
		parent.EmergencyContact,
	).Scan(&parent.ID)
	if err != nil {
		return models.Parent{}, fmt.Errorf("error creating parent: %w", err)
	}

	if err := insertParentStudents(ctx, tx, parent.ID, parent.StudentIDs); err != nil {
		return models.Parent{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return models.Parent{}, fmt.Errorf("error committing transaction: %w", err)
	}
	return parent, nil
}

// Update applies the non-nil patch fields and, when StudentIDs is present,
// replaces the link set wholesale. Runs in one transaction.
func (r *ParentRepository) Update(ctx context.Context, id int64, patch models.ParentPatch) (models.Parent, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return models.Parent{}, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	update := squirrel.Update("parents").PlaceholderFormat(squirrel.Dollar)
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
	if patch.Email != nil {
		set("email", *patch.Email)
	}
	if patch.Phone != nil {
		set("phone", *patch.Phone)
	}
	if patch.Address != nil {
		set("address", *patch.Address)
	}
	if patch.Relationship != nil {
		set("relationship", *patch.Relationship)
	}
	if patch.Occupation != nil {
		set("occupation", *patch.Occupation)
	}
	if patch.WorkPhone != nil {
		set("work_phone", *patch.WorkPhone)
	}
	if patch.IsPrimary != nil {
		set("is_primary", *patch.IsPrimary)
	}
	if patch.EmergencyContact != nil {
		set("emergency_contact", *patch.EmergencyContact)
	}

	if sets > 0 {
		sql, args, err := update.Where("id = ?", id).Suffix("RETURNING id").ToSql()
		if err != nil {
			return models.Parent{}, fmt.Errorf("error building SQL: %w", err)
		}
		var updatedID int64
		err = tx.QueryRow(ctx, sql, args...).Scan(&updatedID)
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Parent{}, apperrors.ErrParentNotFound
		}
		if err != nil {
			return models.Parent{}, fmt.Errorf("error updating parent: %w", err)
		}
	} else {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM parents WHERE id = $1)`, id).Scan(&exists); err != nil {
			return models.Parent{}, fmt.Errorf("error checking parent: %w", err)
		}
		if !exists {
			return models.Parent{}, apperrors.ErrParentNotFound
		}
	}

	if patch.StudentIDs != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM parent_students WHERE parent_id = $1`, id); err != nil {
			return models.Parent{}, fmt.Errorf("error clearing parent student links: %w", err)
		}
		if err := insertParentStudents(ctx, tx, id, patch.StudentIDs); err != nil {
			return models.Parent{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return models.Parent{}, fmt.Errorf("error committing transaction: %w", err)
	}
	return r.GetByID(ctx, id)
}

// Delete removes a parent, its student links, and returns the removed record.
func (r *ParentRepository) Delete(ctx context.Context, id int64) (models.Parent, error) {
	removed, err := r.GetByID(ctx, id)
	if err != nil {
		return models.Parent{}, err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return models.Parent{}, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM parent_students WHERE parent_id = $1`, id); err != nil {
		return models.Parent{}, fmt.Errorf("error clearing parent student links: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM parents WHERE id = $1`, id); err != nil {
		return models.Parent{}, fmt.Errorf("error deleting parent: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return models.Parent{}, fmt.Errorf("error committing transaction: %w", err)
	}
	return removed, nil
}

// GetByStudent retrieves every parent linked to the given student.
func (r *ParentRepository) GetByStudent(ctx context.Context, studentID int64) ([]models.Parent, error) {
	query := `
		SELECT ` + parentColumns + ` FROM parents
		WHERE id IN (SELECT parent_id FROM parent_students WHERE student_id = $1)
		ORDER BY id
	`
	return r.queryParents(ctx, query, studentID)
}
