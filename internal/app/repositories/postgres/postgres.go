// Package postgres implements the repository contract on PostgreSQL using
// pgx. Ids come from BIGSERIAL sequences, so deleted ids are never reused.
// Calendar days are stored as ISO yyyy-mm-dd text, which makes text
// comparison match chronological order.
package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scholarhub/scholarhub/internal/app/repositories"
)

// NewRepositories wires every PostgreSQL repository over a shared pool.
func NewRepositories(db *pgxpool.Pool) *repositories.Repositories {
	return &repositories.Repositories{
		Students:       NewStudentRepository(db),
		Parents:        NewParentRepository(db),
		Grades:         NewGradeRepository(db),
		Attendance:     NewAttendanceRepository(db),
		Communications: NewCommunicationRepository(db),
	}
}
