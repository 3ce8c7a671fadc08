package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/edugate/students/internal/app/auth"
	"github.com/edugate/students/internal/app/controllers"
	"github.com/edugate/students/internal/app/models/dto"
	"github.com/edugate/students/internal/middleware"
)

// SetupRouter configures all application routes.
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	authMiddleware *middleware.AuthMiddleware,
	registry *prometheus.Registry,
) {
	// API version group
	v1 := router.Group("/api/v1")

	students := v1.Group("/students")
	students.Use(authMiddleware.RequireAuthHeaders())
	{
		// Secretarial surface: registration and record keeping.
		secretary := students.Group("/secretary")
		{
			secretary.POST("/create",
				authMiddleware.RequireRole(auth.OpCreateStudent),
				studentController.CreateStudent)
			secretary.GET("",
				authMiddleware.RequireRole(auth.OpListStudents),
				studentController.GetStudents)
			secretary.GET("/:id",
				authMiddleware.RequireRole(auth.OpGetStudent),
				studentController.GetStudentByID)
			secretary.PUT("/:id",
				authMiddleware.RequireRole(auth.OpUpdateStudent),
				studentController.UpdateStudent)
		}

		// Existence probe for sibling services (enrollment, grading).
		students.GET("/:id/exists",
			authMiddleware.RequireRole(auth.OpStudentExists),
			studentController.StudentExists)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewAPIResponse("ok", nil))
	})

	// Prometheus metrics (public, scrape target)
	if registry != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	}
}
