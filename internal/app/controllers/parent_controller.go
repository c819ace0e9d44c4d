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

// ParentController handles parent contact endpoints
type ParentController struct {
	parentService services.ParentService
}

// NewParentController creates a new ParentController
func NewParentController(parentService services.ParentService) *ParentController {
	return &ParentController{parentService: parentService}
}

// GetAllParents retrieves all parent contacts
// @Summary Get all parents
// @Description Retrieves all parent contacts, optionally filtered by linked student
// @Tags parents
// @Accept json
// @Produce json
// @Param studentId query int false "Filter by linked student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Parent} "Parents retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /parents [get]
func (c *ParentController) GetAllParents(ctx *gin.Context) {
	var (
		parents []models.Parent
		err     error
	)
	if raw := ctx.Query("studentId"); raw != "" {
		studentID, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil {
			bindJSONError(ctx, parseErr, "Invalid student ID")
			return
		}
		parents, err = c.parentService.GetParentsByStudent(ctx, studentID)
	} else {
		parents, err = c.parentService.GetAllParents(ctx)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: parents, Timestamp: time.Now()})
}

// GetParentByID retrieves a parent by ID
// @Summary Get parent by ID
// @Description Retrieves a specific parent contact by its ID
// @Tags parents
// @Accept json
// @Produce json
// @Param id path int true "Parent ID"
// @Success 200 {object} dto.APIResponse{data=models.Parent} "Parent retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid parent ID"
// @Failure 404 {object} dto.ErrorResponse "Parent not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /parents/{id} [get]
func (c *ParentController) GetParentByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	parent, err := c.parentService.GetParentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: parent, Timestamp: time.Now()})
}

// CreateParent registers a new parent contact
// @Summary Create a new parent
// @Description Registers a parent contact linked to one or more existing students
// @Tags parents
// @Accept json
// @Produce json
// @Param request body models.Parent true "Parent information"
// @Success 201 {object} dto.APIResponse{data=models.Parent} "Parent created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid parent data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /parents [post]
func (c *ParentController) CreateParent(ctx *gin.Context) {
	var parent models.Parent
	if err := ctx.ShouldBindJSON(&parent); err != nil {
		bindJSONError(ctx, err, "Invalid parent data")
		return
	}

	created, err := c.parentService.CreateParent(ctx, parent)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: created, Timestamp: time.Now()})
}

// UpdateParent partially updates a parent
// @Summary Update a parent
// @Description Applies a partial update; a studentIds value replaces the linked students wholesale
// @Tags parents
// @Accept json
// @Produce json
// @Param id path int true "Parent ID"
// @Param request body models.ParentPatch true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Parent} "Parent updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid parent data"
// @Failure 404 {object} dto.ErrorResponse "Parent not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /parents/{id} [put]
func (c *ParentController) UpdateParent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var patch models.ParentPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		bindJSONError(ctx, err, "Invalid parent data")
		return
	}

	parent, err := c.parentService.UpdateParent(ctx, id, patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: parent, Timestamp: time.Now()})
}

// DeleteParent removes a parent
// @Summary Delete a parent
// @Description Removes a parent contact and returns the removed record
// @Tags parents
// @Accept json
// @Produce json
// @Param id path int true "Parent ID"
// @Success 200 {object} dto.APIResponse{data=models.Parent} "Parent deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid parent ID"
// @Failure 404 {object} dto.ErrorResponse "Parent not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /parents/{id} [delete]
func (c *ParentController) DeleteParent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	parent, err := c.parentService.DeleteParent(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: parent, Timestamp: time.Now()})
}
