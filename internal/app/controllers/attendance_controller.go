package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/scholarhub/scholarhub/internal/app/attendance"
	"github.com/scholarhub/scholarhub/internal/app/models"
	"github.com/scholarhub/scholarhub/internal/app/models/dto"
	"github.com/scholarhub/scholarhub/internal/app/services"
	"github.com/scholarhub/scholarhub/internal/middleware"
)

// AttendanceController handles daily attendance endpoints
type AttendanceController struct {
	attendanceService services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService services.AttendanceService) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService}
}

// GetAllRecords retrieves attendance records
// @Summary Get all attendance records
// @Description Retrieves attendance records, optionally filtered by student or calendar day
// @Tags attendance
// @Accept json
// @Produce json
// @Param studentId query int false "Filter by student ID"
// @Param date query string false "Filter by calendar day (yyyy-mm-dd)"
// @Success 200 {object} dto.APIResponse{data=[]models.AttendanceRecord} "Records retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance [get]
func (c *AttendanceController) GetAllRecords(ctx *gin.Context) {
	var (
		records []models.AttendanceRecord
		err     error
	)
	switch {
	case ctx.Query("studentId") != "":
		studentID, parseErr := strconv.ParseInt(ctx.Query("studentId"), 10, 64)
		if parseErr != nil {
			bindJSONError(ctx, parseErr, "Invalid student ID")
			return
		}
		records, err = c.attendanceService.GetRecordsByStudent(ctx, studentID)
	case ctx.Query("date") != "":
		records, err = c.attendanceService.GetRecordsByDate(ctx, ctx.Query("date"))
	default:
		records, err = c.attendanceService.GetAllRecords(ctx)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: records, Timestamp: time.Now()})
}

// GetRecordByID retrieves an attendance record by ID
// @Summary Get attendance record by ID
// @Description Retrieves a specific attendance record by its ID
// @Tags attendance
// @Accept json
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} dto.APIResponse{data=models.AttendanceRecord} "Record retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid record ID"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance/{id} [get]
func (c *AttendanceController) GetRecordByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	record, err := c.attendanceService.GetRecordByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: record, Timestamp: time.Now()})
}

// MarkAttendance records or overwrites attendance for a student and day
// @Summary Mark attendance
// @Description Records attendance for a student on a day; marking the same student and day again overwrites the existing record
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body models.AttendanceRecord true "Attendance information"
// @Success 200 {object} dto.APIResponse{data=models.AttendanceRecord} "Attendance marked successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid attendance data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance/mark [post]
func (c *AttendanceController) MarkAttendance(ctx *gin.Context) {
	var record models.AttendanceRecord
	if err := ctx.ShouldBindJSON(&record); err != nil {
		bindJSONError(ctx, err, "Invalid attendance data")
		return
	}

	marked, err := c.attendanceService.Mark(ctx, record)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: marked, Timestamp: time.Now()})
}

// UpdateRecord partially updates an attendance record
// @Summary Update an attendance record
// @Description Applies a partial update; omitted fields keep their current values
// @Tags attendance
// @Accept json
// @Produce json
// @Param id path int true "Record ID"
// @Param request body models.AttendancePatch true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.AttendanceRecord} "Record updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid attendance data"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Failure 409 {object} dto.ErrorResponse "Another record exists for the student and day"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance/{id} [put]
func (c *AttendanceController) UpdateRecord(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var patch models.AttendancePatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		bindJSONError(ctx, err, "Invalid attendance data")
		return
	}

	record, err := c.attendanceService.UpdateRecord(ctx, id, patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: record, Timestamp: time.Now()})
}

// DeleteRecord removes an attendance record
// @Summary Delete an attendance record
// @Description Removes an attendance record and returns the removed row
// @Tags attendance
// @Accept json
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} dto.APIResponse{data=models.AttendanceRecord} "Record deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid record ID"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance/{id} [delete]
func (c *AttendanceController) DeleteRecord(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	record, err := c.attendanceService.DeleteRecord(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: record, Timestamp: time.Now()})
}

// GetAttendanceStats aggregates attendance
// @Summary Get attendance statistics
// @Description Aggregates attendance into per-status counts and an attendance rate, optionally per student or date range
// @Tags attendance
// @Accept json
// @Produce json
// @Param studentId query int false "Restrict the aggregation to one student"
// @Param startDate query string false "Inclusive range start (yyyy-mm-dd)"
// @Param endDate query string false "Inclusive range end (yyyy-mm-dd)"
// @Success 200 {object} dto.APIResponse{data=attendance.Stats} "Statistics computed successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance/stats [get]
func (c *AttendanceController) GetAttendanceStats(ctx *gin.Context) {
	var dateRange *attendance.Range
	start, end := ctx.Query("startDate"), ctx.Query("endDate")
	if start != "" || end != "" {
		dateRange = &attendance.Range{Start: start, End: end}
	}

	if raw := ctx.Query("studentId"); raw != "" {
		studentID, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil {
			bindJSONError(ctx, parseErr, "Invalid student ID")
			return
		}
		stats, err := c.attendanceService.GetStudentStats(ctx, studentID, dateRange)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.APIResponse{Data: stats, Timestamp: time.Now()})
		return
	}

	stats, err := c.attendanceService.GetStats(ctx, dateRange)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: stats, Timestamp: time.Now()})
}
