package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/scholarhub/scholarhub/internal/app/attendance"
	"github.com/scholarhub/scholarhub/internal/app/grading"
	"github.com/scholarhub/scholarhub/internal/app/models"
	"github.com/scholarhub/scholarhub/internal/app/models/dto"
	"github.com/scholarhub/scholarhub/internal/app/repositories"
)

// ReportService defines the interface for school-wide reporting.
type ReportService interface {
	Overview(ctx context.Context) (dto.SchoolReport, error)
}

// reportServiceImpl implements ReportService
type reportServiceImpl struct {
	repos *repositories.Repositories
}

// NewReportService creates a new ReportService
func NewReportService(repos *repositories.Repositories) ReportService {
	return &reportServiceImpl{repos: repos}
}

// Overview composes the school-wide report from the roster, the grade book
// and the attendance log. Empty datasets yield zeroed sections rather than
// an error.
func (s *reportServiceImpl) Overview(ctx context.Context) (dto.SchoolReport, error) {
	students, err := s.repos.Students.GetAll(ctx)
	if err != nil {
		return dto.SchoolReport{}, fmt.Errorf("error retrieving students: %w", err)
	}
	grades, err := s.repos.Grades.GetAll(ctx)
	if err != nil {
		return dto.SchoolReport{}, fmt.Errorf("error retrieving grades: %w", err)
	}
	records, err := s.repos.Attendance.GetAll(ctx)
	if err != nil {
		return dto.SchoolReport{}, fmt.Errorf("error retrieving attendance records: %w", err)
	}

	gradeStats := grading.Compute(grades)
	attendanceStats := attendance.Compute(records, nil)

	report := dto.SchoolReport{
		TotalStudents:          len(students),
		ActiveStudents:         countActive(students),
		TotalGrades:            len(grades),
		TotalAttendanceRecords: len(records),
		TotalRecords:           len(grades) + len(records),
		AttendanceRate:         attendanceStats.AttendanceRate,
		AverageGPA:             gradeStats.AverageGPA,
		GradeDistribution:      gradeStats.Distribution,
		SubjectAverages:        gradeStats.SubjectAverages,
		GradeLevelBreakdown:    gradeLevelBreakdown(students),
		SubjectRanking:         subjectRanking(gradeStats, grades),
		Attendance:             attendanceStats,
	}
	return report, nil
}

func countActive(students []models.Student) int {
	active := 0
	for _, st := range students {
		if st.Status == models.StudentStatusActive {
			active++
		}
	}
	return active
}

// gradeLevelBreakdown counts students per grade level, sorted by level
// name so the output is stable.
func gradeLevelBreakdown(students []models.Student) []dto.GradeLevelCount {
	counts := make(map[string]int)
	for _, st := range students {
		counts[st.GradeLevel]++
	}

	levels := make([]string, 0, len(counts))
	for level := range counts {
		levels = append(levels, level)
	}
	sort.Strings(levels)

	breakdown := make([]dto.GradeLevelCount, 0, len(levels))
	for _, level := range levels {
		breakdown = append(breakdown, dto.GradeLevelCount{GradeLevel: level, Students: counts[level]})
	}
	return breakdown
}

// subjectRanking orders subjects by average percentage, best first.
// Subjects with equal averages keep their first-seen order.
func subjectRanking(stats grading.Stats, grades []models.Grade) []dto.SubjectRank {
	counts := make(map[string]int)
	for _, g := range grades {
		counts[g.Subject]++
	}

	ranking := make([]dto.SubjectRank, 0, len(stats.SubjectAverages))
	for _, subject := range stats.Subjects() {
		ranking = append(ranking, dto.SubjectRank{
			Subject: subject,
			Average: stats.SubjectAverages[subject],
			Count:   counts[subject],
		})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Average > ranking[j].Average
	})
	return ranking
}
