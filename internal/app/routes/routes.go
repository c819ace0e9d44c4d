package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/scholarhub/scholarhub/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	parentController *controllers.ParentController,
	gradeController *controllers.GradeController,
	attendanceController *controllers.AttendanceController,
	communicationController *controllers.CommunicationController,
	reportController *controllers.ReportController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Student roster
	students := v1.Group("/students")
	{
		students.GET("", studentController.GetAllStudents)
		students.GET("/:id", studentController.GetStudentByID)
		students.POST("", studentController.CreateStudent)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
	}

	// Parent contacts
	parents := v1.Group("/parents")
	{
		parents.GET("", parentController.GetAllParents)
		parents.GET("/:id", parentController.GetParentByID)
		parents.POST("", parentController.CreateParent)
		parents.PUT("/:id", parentController.UpdateParent)
		parents.DELETE("/:id", parentController.DeleteParent)
	}

	// Grade book
	grades := v1.Group("/grades")
	{
		grades.GET("", gradeController.GetAllGrades)
		grades.GET("/stats", gradeController.GetGradeStats)
		grades.GET("/:id", gradeController.GetGradeByID)
		grades.POST("", gradeController.CreateGrade)
		grades.PUT("/:id", gradeController.UpdateGrade)
		grades.DELETE("/:id", gradeController.DeleteGrade)
	}

	// Daily attendance; marking goes through the upsert endpoint rather
	// than a plain create so repeated marks stay one record per day
	attendanceGroup := v1.Group("/attendance")
	{
		attendanceGroup.GET("", attendanceController.GetAllRecords)
		attendanceGroup.GET("/stats", attendanceController.GetAttendanceStats)
		attendanceGroup.GET("/:id", attendanceController.GetRecordByID)
		attendanceGroup.POST("/mark", attendanceController.MarkAttendance)
		attendanceGroup.PUT("/:id", attendanceController.UpdateRecord)
		attendanceGroup.DELETE("/:id", attendanceController.DeleteRecord)
	}

	// Communication log
	communications := v1.Group("/communications")
	{
		communications.GET("", communicationController.GetAllCommunications)
		communications.GET("/:id", communicationController.GetCommunicationByID)
		communications.POST("", communicationController.CreateCommunication)
		communications.PUT("/:id", communicationController.UpdateCommunication)
		communications.DELETE("/:id", communicationController.DeleteCommunication)
	}

	// Reports
	reports := v1.Group("/reports")
	{
		reports.GET("/overview", reportController.GetOverview)
	}
}
