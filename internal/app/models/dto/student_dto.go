package dto

import (
	"time"

	"github.com/edugate/students/internal/app/models"
)

// CreateStudentRequest represents the payload for registering a new student.
// Identity, status and timestamps are system-assigned and never accepted
// from the caller.
type CreateStudentRequest struct {
	FirstName      string              `json:"firstName" binding:"required"`
	LastName       string              `json:"lastName" binding:"required"`
	DocumentType   models.DocumentType `json:"documentType" binding:"required,oneof=DNI CE PASSPORT"`
	DocumentNumber string              `json:"documentNumber" binding:"required,min=8,max=20"`
	BirthDate      models.Date         `json:"birthDate"`
	Gender         models.Gender       `json:"gender" binding:"required,oneof=MALE FEMALE OTHER"`
	Address        string              `json:"address"`
	Phone          string              `json:"phone"`
	ParentName     string              `json:"parentName"`
	ParentPhone    string              `json:"parentPhone"`
	ParentEmail    string              `json:"parentEmail" binding:"omitempty,email"`
}

// UpdateStudentRequest carries a partial update. Every field is a pointer:
// nil means "not sent, keep the current value". Status is independently
// settable alongside the personal attributes.
type UpdateStudentRequest struct {
	FirstName      *string              `json:"firstName"`
	LastName       *string              `json:"lastName"`
	DocumentType   *models.DocumentType `json:"documentType" binding:"omitempty,oneof=DNI CE PASSPORT"`
	DocumentNumber *string              `json:"documentNumber" binding:"omitempty,min=8,max=20"`
	BirthDate      *models.Date         `json:"birthDate"`
	Gender         *models.Gender       `json:"gender" binding:"omitempty,oneof=MALE FEMALE OTHER"`
	Address        *string              `json:"address"`
	Phone          *string              `json:"phone"`
	ParentName     *string              `json:"parentName"`
	ParentPhone    *string              `json:"parentPhone"`
	ParentEmail    *string              `json:"parentEmail" binding:"omitempty,email"`
	Status         *models.Status       `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
}

// StudentResponse is the read-only projection of a student returned to
// callers.
type StudentResponse struct {
	ID             string              `json:"id"`
	InstitutionID  string              `json:"institutionId"`
	FirstName      string              `json:"firstName"`
	LastName       string              `json:"lastName"`
	DocumentType   models.DocumentType `json:"documentType"`
	DocumentNumber string              `json:"documentNumber"`
	BirthDate      models.Date         `json:"birthDate"`
	Gender         models.Gender       `json:"gender"`
	Address        string              `json:"address"`
	Phone          string              `json:"phone"`
	ParentName     string              `json:"parentName"`
	ParentPhone    string              `json:"parentPhone"`
	ParentEmail    string              `json:"parentEmail"`
	Status         models.Status       `json:"status"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}
