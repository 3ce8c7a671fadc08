package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edugate/students/internal/app/models/dto"
	"github.com/edugate/students/internal/app/services"
	"github.com/edugate/students/internal/middleware"
)

// StudentController handles student-related endpoints. The institution
// scope for every operation comes from the header gate, never from the
// request body or path.
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController.
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// CreateStudent handles student registration by secretarial staff.
// Duplicate document numbers within the institution are rejected with 400.
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid student data: "+middleware.BindingErrorMessage(err)))
		return
	}

	institutionID := middleware.InstitutionFromContext(ctx)
	student, err := c.studentService.CreateStudent(ctx.Request.Context(), &req, institutionID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse("Student created successfully", gin.H{
		"student": student,
	}))
}

// GetStudents lists every student of the caller's institution.
func (c *StudentController) GetStudents(ctx *gin.Context) {
	institutionID := middleware.InstitutionFromContext(ctx)
	students, err := c.studentService.GetStudentsByInstitution(ctx.Request.Context(), institutionID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse("Students retrieved successfully", students))
}

// GetStudentByID retrieves a single student; a miss is a 404 naming the
// identifier.
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	id := ctx.Param("id")

	student, err := c.studentService.GetStudentByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse("Student retrieved successfully", gin.H{
		"student": student,
	}))
}

// UpdateStudent applies a partial update: only fields present in the body
// change, everything else keeps its current value.
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid student data: "+middleware.BindingErrorMessage(err)))
		return
	}

	institutionID := middleware.InstitutionFromContext(ctx)
	student, err := c.studentService.UpdateStudent(ctx.Request.Context(), id, &req, institutionID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse("Student updated successfully", gin.H{
		"student": student,
	}))
}

// StudentExists is the existence probe used by sibling services. Unknown
// identifiers report false, never an error.
func (c *StudentController) StudentExists(ctx *gin.Context) {
	id := ctx.Param("id")

	exists, err := c.studentService.ExistsByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse("Student existence checked", gin.H{
		"exists": exists,
	}))
}
