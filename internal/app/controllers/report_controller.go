package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/scholarhub/scholarhub/internal/app/models/dto"
	"github.com/scholarhub/scholarhub/internal/app/services"
	"github.com/scholarhub/scholarhub/internal/middleware"
)

// ReportController handles school-wide reporting endpoints
type ReportController struct {
	reportService services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService services.ReportService) *ReportController {
	return &ReportController{reportService: reportService}
}

// GetOverview composes the school-wide report
// @Summary Get school overview report
// @Description Composes roster totals, grade statistics, attendance statistics, a per-grade-level breakdown and a subject ranking
// @Tags reports
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SchoolReport} "Report composed successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/overview [get]
func (c *ReportController) GetOverview(ctx *gin.Context) {
	report, err := c.reportService.Overview(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: report, Timestamp: time.Now()})
}
