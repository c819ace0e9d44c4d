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

// CommunicationController handles parent communication log endpoints
type CommunicationController struct {
	commService services.CommunicationService
}

// NewCommunicationController creates a new CommunicationController
func NewCommunicationController(commService services.CommunicationService) *CommunicationController {
	return &CommunicationController{commService: commService}
}

// GetAllCommunications retrieves the communication log
// @Summary Get all communications
// @Description Retrieves the communication log, optionally filtered by parent
// @Tags communications
// @Accept json
// @Produce json
// @Param parentId query int false "Filter by parent ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Communication} "Communications retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid parent ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /communications [get]
func (c *CommunicationController) GetAllCommunications(ctx *gin.Context) {
	var (
		comms []models.Communication
		err   error
	)
	if raw := ctx.Query("parentId"); raw != "" {
		parentID, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil {
			bindJSONError(ctx, parseErr, "Invalid parent ID")
			return
		}
		comms, err = c.commService.GetCommunicationsByParent(ctx, parentID)
	} else {
		comms, err = c.commService.GetAllCommunications(ctx)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: comms, Timestamp: time.Now()})
}

// GetCommunicationByID retrieves a communication by ID
// @Summary Get communication by ID
// @Description Retrieves a specific communication log entry by its ID
// @Tags communications
// @Accept json
// @Produce json
// @Param id path int true "Communication ID"
// @Success 200 {object} dto.APIResponse{data=models.Communication} "Communication retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid communication ID"
// @Failure 404 {object} dto.ErrorResponse "Communication not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /communications/{id} [get]
func (c *CommunicationController) GetCommunicationByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	comm, err := c.commService.GetCommunicationByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: comm, Timestamp: time.Now()})
}

// CreateCommunication logs a new communication
// @Summary Create a new communication
// @Description Logs a parent-teacher interaction; timestamps are assigned server-side
// @Tags communications
// @Accept json
// @Produce json
// @Param request body models.Communication true "Communication information"
// @Success 201 {object} dto.APIResponse{data=models.Communication} "Communication created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid communication data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /communications [post]
func (c *CommunicationController) CreateCommunication(ctx *gin.Context) {
	var comm models.Communication
	if err := ctx.ShouldBindJSON(&comm); err != nil {
		bindJSONError(ctx, err, "Invalid communication data")
		return
	}

	created, err := c.commService.CreateCommunication(ctx, comm)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: created, Timestamp: time.Now()})
}

// UpdateCommunication partially updates a communication
// @Summary Update a communication
// @Description Applies a partial update; omitted fields keep their current values
// @Tags communications
// @Accept json
// @Produce json
// @Param id path int true "Communication ID"
// @Param request body models.CommunicationPatch true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Communication} "Communication updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid communication data"
// @Failure 404 {object} dto.ErrorResponse "Communication not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /communications/{id} [put]
func (c *CommunicationController) UpdateCommunication(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var patch models.CommunicationPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		bindJSONError(ctx, err, "Invalid communication data")
		return
	}

	comm, err := c.commService.UpdateCommunication(ctx, id, patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: comm, Timestamp: time.Now()})
}

// DeleteCommunication removes a communication
// @Summary Delete a communication
// @Description Removes a communication log entry and returns the removed record
// @Tags communications
// @Accept json
// @Produce json
// @Param id path int true "Communication ID"
// @Success 200 {object} dto.APIResponse{data=models.Communication} "Communication deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid communication ID"
// @Failure 404 {object} dto.ErrorResponse "Communication not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /communications/{id} [delete]
func (c *CommunicationController) DeleteCommunication(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	comm, err := c.commService.DeleteCommunication(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: comm, Timestamp: time.Now()})
}
