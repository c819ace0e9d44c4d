// Package services holds the business rules that sit between the HTTP
// controllers and the repositories: enum and cross-entity validation,
// defaults, server-side timestamps and the grade/attendance aggregations.
package services

import "github.com/scholarhub/scholarhub/internal/app/repositories"

// Services bundles every service for dependency injection.
type Services struct {
	Students       StudentService
	Parents        ParentService
	Grades         GradeService
	Attendance     AttendanceService
	Communications CommunicationService
	Reports        ReportService
}

// NewServices wires all services over a repository set.
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		Students:       NewStudentService(repos.Students),
		Parents:        NewParentService(repos.Parents, repos.Students),
		Grades:         NewGradeService(repos.Grades, repos.Students),
		Attendance:     NewAttendanceService(repos.Attendance, repos.Students),
		Communications: NewCommunicationService(repos.Communications, repos.Parents),
		Reports:        NewReportService(repos),
	}
}
