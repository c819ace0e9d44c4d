package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scholarhub/scholarhub/internal/app/models"
	"github.com/scholarhub/scholarhub/internal/pkg/apperrors"
)

const communicationColumns = `id, parent_id, teacher_id, type, subject, notes, follow_up_required, follow_up_date, created_at, updated_at`

// CommunicationRepository handles database operations for parent
// communication logs. Student references live in the
// communication_students join table.
type CommunicationRepository struct {
	db *pgxpool.Pool
}

// NewCommunicationRepository creates a new communication repository.
func NewCommunicationRepository(db *pgxpool.Pool) *CommunicationRepository {
	return &CommunicationRepository{db: db}
}

func scanCommunication(row rowScanner) (models.Communication, error) {
	var c models.Communication
	err := row.Scan(
		&c.ID,
		&c.ParentID,
		&c.TeacherID,
		&c.Type,
		&c.Subject,
		&c.Notes,
		&c.FollowUpRequired,
		&c.FollowUpDate,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

func (r *CommunicationRepository) loadStudentIDs(ctx context.Context, comms []models.Communication) error {
	if len(comms) == 0 {
		return nil
	}

	ids := make([]int64, len(comms))
	index := make(map[int64]*models.Communication, len(comms))
	for i := range comms {
		ids[i] = comms[i].ID
		index[comms[i].ID] = &comms[i]
	}

	rows, err := r.db.Query(ctx,
		`SELECT communication_id, student_id FROM communication_students WHERE communication_id = ANY($1) ORDER BY communication_id, student_id`,
		ids)
	if err != nil {
		return fmt.Errorf("error querying communication students: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var commID, studentID int64
		if err := rows.Scan(&commID, &studentID); err != nil {
			return fmt.Errorf("error scanning communication student: %w", err)
		}
		if c, ok := index[commID]; ok {
			c.StudentIDs = append(c.StudentIDs, studentID)
		}
	}
	return rows.Err()
}

func (r *CommunicationRepository) queryCommunications(ctx context.Context, sql string, args ...any) ([]models.Communication, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying communications: %w", err)
	}
	defer rows.Close()

	var comms []models.Communication
	for rows.Next() {
		c, err := scanCommunication(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning communication: %w", err)
		}
		comms = append(comms, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadStudentIDs(ctx, comms); err != nil {
		return nil, err
	}
	return comms, nil
}

// GetAll retrieves all communications ordered by id.
func (r *CommunicationRepository) GetAll(ctx context.Context) ([]models.Communication, error) {
	return r.queryCommunications(ctx, `SELECT `+communicationColumns+` FROM communications ORDER BY id`)
}

// GetByID retrieves a communication by id.
func (r *CommunicationRepository) GetByID(ctx context.Context, id int64) (models.Communication, error) {
	c, err := scanCommunication(r.db.QueryRow(ctx,
		`SELECT `+communicationColumns+` FROM communications WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Communication{}, apperrors.ErrCommunicationNotFound
	}
	if err != nil {
		return models.Communication{}, fmt.Errorf("error retrieving communication: %w", err)
	}

	comms := []models.Communication{c}
	if err := r.loadStudentIDs(ctx, comms); err != nil {
		return models.Communication{}, err
	}
	return comms[0], nil
}

func insertCommunicationStudents(ctx context.Context, tx pgx.Tx, commID int64, studentIDs []int64) error {
	for _, studentID := range studentIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO communication_students (communication_id, student_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			commID, studentID)
		if err != nil {
			return fmt.Errorf("error linking communication to student: %w", err)
		}
	}
	return nil
}

// Create inserts a new communication together with its student links.
func (r *CommunicationRepository) Create(ctx context.Context, comm models.Communication) (models.Communication, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return models.Communication{}, fmt.Errorf("error beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO communications (parent_id, teacher_id, type, subject, notes, follow_up_required, follow_up_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err = tx.QueryRow(ctx, query,
		comm.ParentID,
		comm.TeacherID,
		comm.Type,
		comm.Subject,
		comm.Notes,
		comm.FollowUpRequired,
		comm.FollowUpDate,
		comm.CreatedAt,
		comm.UpdatedAt,
	).Scan(&comm.ID)
	if err != nil {
		return models.Communication{}, fmt.Errorf("error creating communication: %w", err)
	}

	if err := insertCommunicationStudents(ctx, tx, comm.ID, comm.StudentIDs); err != nil {
		return models.Communication{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return models.Communication{}, fmt.Errorf("error committing transaction: %w", err)
	}
	return comm, nil
}

// Update applies the non-nil patch fields and returns the merged record.
// A non-nil StudentIDs replaces the student links wholesale.
func (r *CommunicationRepository) Update(ctx context.Context, id int64, patch models.CommunicationPatch) (models.Communication, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return models.Communication{}, fmt.Errorf("error beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	update := squirrel.Update("communications").
		PlaceholderFormat(squirrel.Dollar).
		Set("updated_at", time.Now().UTC())
	set := func(column string, value any) {
		update = update.Set(column, value)
	}
	if patch.ParentID != nil {
		set("parent_id", *patch.ParentID)
	}
	if patch.TeacherID != nil {
		set("teacher_id", *patch.TeacherID)
	}
	if patch.Type != nil {
		set("type", *patch.Type)
	}
	if patch.Subject != nil {
		set("subject", *patch.Subject)
	}
	if patch.Notes != nil {
		set("notes", *patch.Notes)
	}
	if patch.FollowUpRequired != nil {
		set("follow_up_required", *patch.FollowUpRequired)
	}
	if patch.FollowUpDate != nil {
		set("follow_up_date", *patch.FollowUpDate)
	}

	sql, args, err := update.Where("id = ?", id).Suffix("RETURNING id").ToSql()
	if err != nil {
		return models.Communication{}, fmt.Errorf("error building SQL: %w", err)
	}
	var updatedID int64
	err = tx.QueryRow(ctx, sql, args...).Scan(&updatedID)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Communication{}, apperrors.ErrCommunicationNotFound
	}
	if err != nil {
		return models.Communication{}, fmt.Errorf("error updating communication: %w", err)
	}

	if patch.StudentIDs != nil {
		_, err = tx.Exec(ctx, `DELETE FROM communication_students WHERE communication_id = $1`, id)
		if err != nil {
			return models.Communication{}, fmt.Errorf("error clearing communication students: %w", err)
		}
		if err := insertCommunicationStudents(ctx, tx, id, patch.StudentIDs); err != nil {
			return models.Communication{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return models.Communication{}, fmt.Errorf("error committing transaction: %w", err)
	}
	return r.GetByID(ctx, id)
}

// Delete removes a communication and its student links, returning the
// removed record.
func (r *CommunicationRepository) Delete(ctx context.Context, id int64) (models.Communication, error) {
	comm, err := r.GetByID(ctx, id)
	if err != nil {
		return models.Communication{}, err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return models.Communication{}, fmt.Errorf("error beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM communication_students WHERE communication_id = $1`, id); err != nil {
		return models.Communication{}, fmt.Errorf("error deleting communication students: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM communications WHERE id = $1`, id); err != nil {
		return models.Communication{}, fmt.Errorf("error deleting communication: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return models.Communication{}, fmt.Errorf("error committing transaction: %w", err)
	}
	return comm, nil
}

// GetByParent retrieves all communications logged for a parent in
// insertion order.
func (r *CommunicationRepository) GetByParent(ctx context.Context, parentID int64) ([]models.Communication, error) {
	return r.queryCommunications(ctx,
		`SELECT `+communicationColumns+` FROM communications WHERE parent_id = $1 ORDER BY id`, parentID)
}
