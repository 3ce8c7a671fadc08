package models

import "time"

// DocumentType identifies the kind of identity document a student holds.
type DocumentType string

const (
	DocumentTypeDNI      DocumentType = "DNI"
	DocumentTypeCE       DocumentType = "CE"
	DocumentTypePassport DocumentType = "PASSPORT"
)

// Valid reports whether the document type is one of the known values.
func (d DocumentType) Valid() bool {
	switch d {
	case DocumentTypeDNI, DocumentTypeCE, DocumentTypePassport:
		return true
	}
	return false
}

// Gender is the student's registered gender.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// Valid reports whether the gender is one of the known values.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Status is the lifecycle status of a student record.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

// Valid reports whether the status is one of the known values.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive:
		return true
	}
	return false
}

// Student defines the student model based on the 'students' table.
// ID, InstitutionID and CreatedAt are assigned once and never change
// afterwards; every other field is mutable through partial updates.
type Student struct {
	ID             string       `json:"id" db:"id"`
	InstitutionID  string       `json:"institutionId" db:"institution_id"`
	FirstName      string       `json:"firstName" db:"first_name"`
	LastName       string       `json:"lastName" db:"last_name"`
	DocumentType   DocumentType `json:"documentType" db:"document_type"`
	DocumentNumber string       `json:"documentNumber" db:"document_number"`
	BirthDate      Date         `json:"birthDate" db:"birth_date"`
	Gender         Gender       `json:"gender" db:"gender"`
	Address        string       `json:"address" db:"address"`
	Phone          string       `json:"phone" db:"phone"`
	ParentName     string       `json:"parentName" db:"parent_name"`
	ParentPhone    string       `json:"parentPhone" db:"parent_phone"`
	ParentEmail    string       `json:"parentEmail" db:"parent_email"`
	Status         Status       `json:"status" db:"status"`
	CreatedAt      time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time    `json:"updatedAt" db:"updated_at"`
}
