// Package mapper holds the pure transformations between wire DTOs and the
// student entity. Nothing here touches a store.
package mapper

import (
	"time"

	"github.com/google/uuid"

	"github.com/edugate/students/internal/app/models"
	"github.com/edugate/students/internal/app/models/dto"
)

// ToEntity builds a new student from a creation request. The identifier is
// freshly generated, the institution scope comes from the caller's header,
// status defaults to ACTIVE and both timestamps are set to now.
func ToEntity(req *dto.CreateStudentRequest, institutionID string) *models.Student {
	now := time.Now()
	return &models.Student{
		ID:             uuid.New().String(),
		InstitutionID:  institutionID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		DocumentType:   req.DocumentType,
		DocumentNumber: req.DocumentNumber,
		BirthDate:      req.BirthDate,
		Gender:         req.Gender,
		Address:        req.Address,
		Phone:          req.Phone,
		ParentName:     req.ParentName,
		ParentPhone:    req.ParentPhone,
		ParentEmail:    req.ParentEmail,
		Status:         models.StatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// ToResponse projects a student into the response DTO. The entity is never
// mutated and empty optional fields carry through as-is.
func ToResponse(student *models.Student) *dto.StudentResponse {
	if student == nil {
		return nil
	}
	return &dto.StudentResponse{
		ID:             student.ID,
		InstitutionID:  student.InstitutionID,
		FirstName:      student.FirstName,
		LastName:       student.LastName,
		DocumentType:   student.DocumentType,
		DocumentNumber: student.DocumentNumber,
		BirthDate:      student.BirthDate,
		Gender:         student.Gender,
		Address:        student.Address,
		Phone:          student.Phone,
		ParentName:     student.ParentName,
		ParentPhone:    student.ParentPhone,
		ParentEmail:    student.ParentEmail,
		Status:         student.Status,
		CreatedAt:      student.CreatedAt,
		UpdatedAt:      student.UpdatedAt,
	}
}

// ToResponses projects a slice of students.
func ToResponses(students []*models.Student) []*dto.StudentResponse {
	responses := make([]*dto.StudentResponse, 0, len(students))
	for _, s := range students {
		responses = append(responses, ToResponse(s))
	}
	return responses
}

// UpdateEntity applies a partial update to an existing student in place and
// returns the same instance. Fields that are nil on the request keep their
// current value; ID, InstitutionID and CreatedAt are never touched.
// UpdatedAt always advances, even for a request with no fields set.
func UpdateEntity(student *models.Student, req *dto.UpdateStudentRequest) *models.Student {
	if req.FirstName != nil {
		student.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		student.LastName = *req.LastName
	}
	if req.DocumentType != nil {
		student.DocumentType = *req.DocumentType
	}
	if req.DocumentNumber != nil {
		student.DocumentNumber = *req.DocumentNumber
	}
	if req.BirthDate != nil {
		student.BirthDate = *req.BirthDate
	}
	if req.Gender != nil {
		student.Gender = *req.Gender
	}
	if req.Address != nil {
		student.Address = *req.Address
	}
	if req.Phone != nil {
		student.Phone = *req.Phone
	}
	if req.ParentName != nil {
		student.ParentName = *req.ParentName
	}
	if req.ParentPhone != nil {
		student.ParentPhone = *req.ParentPhone
	}
	if req.ParentEmail != nil {
		student.ParentEmail = *req.ParentEmail
	}
	if req.Status != nil {
		student.Status = *req.Status
	}

	// UpdatedAt must move strictly forward even for back-to-back updates
	// within the clock's resolution.
	now := time.Now()
	if !now.After(student.UpdatedAt) {
		now = student.UpdatedAt.Add(time.Nanosecond)
	}
	student.UpdatedAt = now
	return student
}
