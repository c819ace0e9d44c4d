package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholarhub/scholarhub/internal/app/controllers"
	"github.com/scholarhub/scholarhub/internal/app/repositories/memory"
	"github.com/scholarhub/scholarhub/internal/app/services"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svcs := services.NewServices(memory.NewRepositories())

	router := gin.New()
	SetupRouter(router,
		controllers.NewStudentController(svcs.Students),
		controllers.NewParentController(svcs.Parents),
		controllers.NewGradeController(svcs.Grades),
		controllers.NewAttendanceController(svcs.Attendance),
		controllers.NewCommunicationController(svcs.Communications),
		controllers.NewReportController(svcs.Reports),
	)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func createStudent(t *testing.T, router *gin.Engine) int64 {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/v1/students", map[string]interface{}{
		"firstName":                    "Emma",
		"lastName":                     "Johnson",
		"dateOfBirth":                  "2012-04-17",
		"grade":                        "6th Grade",
		"enrollmentDate":               "2024-08-26",
		"guardianName":                 "Sarah Johnson",
		"guardianPhone":                "555-0143",
		"emergencyContactName":         "Mark Johnson",
		"emergencyContactPhone":        "555-0144",
		"emergencyContactRelationship": "Parent",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Data struct {
			ID int64 `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Data.ID
}

func TestStudentLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter()
	id := createStudent(t, router)

	rec := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/students/%d", id), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/v1/students/%d", id), map[string]interface{}{
		"grade": "7th Grade",
	})
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/students/%d", id), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/students/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStudentValidationErrorsOverHTTP(t *testing.T) {
	router := newTestRouter()

	// missing required fields are caught by binding
	rec := doJSON(t, router, http.MethodPost, "/api/v1/students", map[string]interface{}{
		"firstName": "Emma",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// non-numeric id path param
	rec = doJSON(t, router, http.MethodGet, "/api/v1/students/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMarkAttendanceOverHTTP(t *testing.T) {
	router := newTestRouter()
	id := createStudent(t, router)

	payload := map[string]interface{}{
		"studentId": id,
		"date":      "2026-03-02",
		"status":    "present",
	}
	rec := doJSON(t, router, http.MethodPost, "/api/v1/attendance/mark", payload)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// marking again replaces the record instead of duplicating it
	payload["status"] = "late"
	rec = doJSON(t, router, http.MethodPost, "/api/v1/attendance/mark", payload)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/attendance", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Data []struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Data, 1)
	assert.Equal(t, "late", list.Data[0].Status)
}

func TestAttendanceStatsOverHTTP(t *testing.T) {
	router := newTestRouter()
	id := createStudent(t, router)

	for date, status := range map[string]string{
		"2026-03-02": "present",
		"2026-03-03": "absent",
	} {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/attendance/mark", map[string]interface{}{
			"studentId": id,
			"date":      date,
			"status":    status,
		})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := doJSON(t, router, http.MethodGet, "/api/v1/attendance/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Data struct {
			Total          int     `json:"total"`
			AttendanceRate float64 `json:"attendanceRate"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Data.Total)
	assert.InDelta(t, 50.0, resp.Data.AttendanceRate, 0.001)

	// malformed range bounds are rejected before aggregation
	rec = doJSON(t, router, http.MethodGet, "/api/v1/attendance/stats?startDate=yesterday", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestValidationErrorBodyNamesField(t *testing.T) {
	router := newTestRouter()
	id := createStudent(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/grades", map[string]interface{}{
		"studentId": id,
		"subject":   "Mathematics",
		"score":     110,
		"maxScore":  100,
		"term":      "First Quarter",
		"date":      "2026-03-02",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error struct {
			Code  string `json:"code"`
			Field string `json:"field"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "VAL_001", resp.Error.Code)
	assert.Equal(t, "score", resp.Error.Field)
}

func TestReportOverviewOverHTTP(t *testing.T) {
	router := newTestRouter()
	id := createStudent(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/grades", map[string]interface{}{
		"studentId": id,
		"subject":   "Mathematics",
		"score":     95,
		"maxScore":  100,
		"term":      "First Quarter",
		"date":      "2026-03-02",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/v1/reports/overview", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			TotalStudents int `json:"totalStudents"`
			TotalGrades   int `json:"totalGrades"`
			TotalRecords  int `json:"totalRecords"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Data.TotalStudents)
	assert.Equal(t, 1, resp.Data.TotalGrades)
	assert.Equal(t, 1, resp.Data.TotalRecords)
}
