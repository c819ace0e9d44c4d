package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scholarhub/scholarhub/internal/app/models"
)

func record(date string, status models.AttendanceStatus) models.AttendanceRecord {
	return models.AttendanceRecord{StudentID: 1, Date: date, Status: status}
}

func TestComputeEmpty(t *testing.T) {
	stats := Compute(nil, nil)

	assert.Equal(t, Stats{}, stats)
	assert.Equal(t, 0.0, stats.AttendanceRate)
}

func TestComputeCounts(t *testing.T) {
	records := []models.AttendanceRecord{
		record("2024-09-02", models.AttendancePresent),
		record("2024-09-03", models.AttendancePresent),
		record("2024-09-04", models.AttendanceAbsent),
		record("2024-09-05", models.AttendanceLate),
		record("2024-09-06", models.AttendanceExcused),
	}

	stats := Compute(records, nil)

	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 2, stats.Present)
	assert.Equal(t, 1, stats.Absent)
	assert.Equal(t, 1, stats.Late)
	assert.Equal(t, 1, stats.Excused)
	assert.Equal(t, stats.Total, stats.Present+stats.Absent+stats.Late+stats.Excused)
	// 4 of 5 records count as attended
	assert.Equal(t, 80.0, stats.AttendanceRate)
}

func TestComputeRateCountsLateAndExcusedAsAttended(t *testing.T) {
	var records []models.AttendanceRecord
	for i := 0; i < 7; i++ {
		records = append(records, record("2024-09-02", models.AttendancePresent))
	}
	records = append(records,
		record("2024-09-03", models.AttendanceLate),
		record("2024-09-04", models.AttendanceExcused),
		record("2024-09-05", models.AttendanceAbsent),
	)

	stats := Compute(records, nil)

	assert.Equal(t, 10, stats.Total)
	assert.Equal(t, 90.0, stats.AttendanceRate)
}

func TestComputeRateRoundsToOneDecimal(t *testing.T) {
	records := []models.AttendanceRecord{
		record("2024-09-02", models.AttendancePresent),
		record("2024-09-03", models.AttendancePresent),
		record("2024-09-04", models.AttendanceAbsent),
	}

	stats := Compute(records, nil)

	// 2/3 = 66.66...% rounds to 66.7
	assert.Equal(t, 66.7, stats.AttendanceRate)
}

func TestComputeRange(t *testing.T) {
	records := []models.AttendanceRecord{
		record("2024-09-01", models.AttendancePresent),
		record("2024-09-02", models.AttendanceAbsent),
		record("2024-09-03", models.AttendancePresent),
		record("2024-09-04", models.AttendanceLate),
	}

	testCases := []struct {
		name     string
		rng      Range
		expected int
	}{
		{name: "Bounds are inclusive", rng: Range{Start: "2024-09-02", End: "2024-09-03"}, expected: 2},
		{name: "Open start", rng: Range{End: "2024-09-02"}, expected: 2},
		{name: "Open end", rng: Range{Start: "2024-09-03"}, expected: 2},
		{name: "Empty range matches everything", rng: Range{}, expected: 4},
		{name: "No overlap", rng: Range{Start: "2024-10-01"}, expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stats := Compute(records, &tc.rng)
			assert.Equal(t, tc.expected, stats.Total)
		})
	}
}

func TestRangeContains(t *testing.T) {
	rng := Range{Start: "2024-09-01", End: "2024-09-30"}

	assert.True(t, rng.Contains("2024-09-01"))
	assert.True(t, rng.Contains("2024-09-30"))
	assert.True(t, rng.Contains("2024-09-15"))
	assert.False(t, rng.Contains("2024-08-31"))
	assert.False(t, rng.Contains("2024-10-01"))
}
