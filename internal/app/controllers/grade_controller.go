package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/scholarhub/scholarhub/internal/app/models"
	"github.com/scholarhub/scholarhub/internal/app/models/dto"
	"github.com/scholarhub/scholarhub/internal/app/services"
	"github.com/scholarhub/scholarhub/internal/middleware"
)

// GradeController handles grade book endpoints
type GradeController struct {
	gradeService services.GradeService
}

// NewGradeController creates a new GradeController
func NewGradeController(gradeService services.GradeService) *GradeController {
	return &GradeController{gradeService: gradeService}
}

// GetAllGrades retrieves the grade book
// @Summary Get all grades
// @Description Retrieves all grades, optionally filtered by student or subject
// @Tags grades
// @Accept json
// @Produce json
// @Param studentId query int false "Filter by student ID"
// @Param subject query string false "Exact subject filter (case-sensitive)"
// @Success 200 {object} dto.APIResponse{data=[]models.Grade} "Grades retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /grades [get]
func (c *GradeController) GetAllGrades(ctx *gin.Context) {
	var (
		grades []models.Grade
		err    error
	)
	switch {
	case ctx.Query("studentId") != "":
		studentID, parseErr := strconv.ParseInt(ctx.Query("studentId"), 10, 64)
		if parseErr != nil {
			bindJSONError(ctx, parseErr, "Invalid student ID")
			return
		}
		grades, err = c.gradeService.GetGradesByStudent(ctx, studentID)
	case ctx.Query("subject") != "":
		grades, err = c.gradeService.GetGradesBySubject(ctx, ctx.Query("subject"))
	default:
		grades, err = c.gradeService.GetAllGrades(ctx)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: grades, Timestamp: time.Now()})
}

// GetGradeByID retrieves a grade by ID
// @Summary Get grade by ID
// @Description Retrieves a specific grade by its ID
// @Tags grades
// @Accept json
// @Produce json
// @Param id path int true "Grade ID"
// @Success 200 {object} dto.APIResponse{data=models.Grade} "Grade retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid grade ID"
// @Failure 404 {object} dto.ErrorResponse "Grade not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /grades/{id} [get]
func (c *GradeController) GetGradeByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	grade, err := c.gradeService.GetGradeByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: grade, Timestamp: time.Now()})
}

// CreateGrade records a new grade
// @Summary Create a new grade
// @Description Records a scored assessment for an existing student
// @Tags grades
// @Accept json
// @Produce json
// @Param request body models.Grade true "Grade information"
// @Success 201 {object} dto.APIResponse{data=models.Grade} "Grade created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid grade data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /grades [post]
func (c *GradeController) CreateGrade(ctx *gin.Context) {
	var grade models.Grade
	if err := ctx.ShouldBindJSON(&grade); err != nil {
		bindJSONError(ctx, err, "Invalid grade data")
		return
	}

	created, err := c.gradeService.CreateGrade(ctx, grade)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: created, Timestamp: time.Now()})
}

// UpdateGrade partially updates a grade
// @Summary Update a grade
// @Description Applies a partial update; omitted fields keep their current values
// @Tags grades
// @Accept json
// @Produce json
// @Param id path int true "Grade ID"
// @Param request body models.GradePatch true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Grade} "Grade updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid grade data"
// @Failure 404 {object} dto.ErrorResponse "Grade not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /grades/{id} [put]
func (c *GradeController) UpdateGrade(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var patch models.GradePatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		bindJSONError(ctx, err, "Invalid grade data")
		return
	}

	grade, err := c.gradeService.UpdateGrade(ctx, id, patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: grade, Timestamp: time.Now()})
}

// DeleteGrade removes a grade
// @Summary Delete a grade
// @Description Removes a grade and returns the removed record
// @Tags grades
// @Accept json
// @Produce json
// @Param id path int true "Grade ID"
// @Success 200 {object} dto.APIResponse{data=models.Grade} "Grade deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid grade ID"
// @Failure 404 {object} dto.ErrorResponse "Grade not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /grades/{id} [delete]
func (c *GradeController) DeleteGrade(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	grade, err := c.gradeService.DeleteGrade(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: grade, Timestamp: time.Now()})
}

// GetGradeStats aggregates the grade book
// @Summary Get grade statistics
// @Description Aggregates grades into GPA, letter distribution and per-subject averages, school-wide or for one student
// @Tags grades
// @Accept json
// @Produce json
// @Param studentId query int false "Restrict the aggregation to one student"
// @Success 200 {object} dto.APIResponse{data=grading.Stats} "Statistics computed successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /grades/stats [get]
func (c *GradeController) GetGradeStats(ctx *gin.Context) {
	if raw := ctx.Query("studentId"); raw != "" {
		studentID, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil {
			bindJSONError(ctx, parseErr, "Invalid student ID")
			return
		}
		stats, err := c.gradeService.GetStudentStats(ctx, studentID)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.APIResponse{Data: stats, Timestamp: time.Now()})
		return
	}

	stats, err := c.gradeService.GetStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: stats, Timestamp: time.Now()})
}
