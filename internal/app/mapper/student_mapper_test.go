package mapper

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edugate/students/internal/app/models"
	"github.com/edugate/students/internal/app/models/dto"
)

func createRequest() *dto.CreateStudentRequest {
	return &dto.CreateStudentRequest{
		FirstName:      "Ana",
		LastName:       "Martinez",
		DocumentType:   models.DocumentTypeDNI,
		DocumentNumber: "98765432",
		BirthDate:      models.NewDate(2004, time.December, 25),
		Gender:         models.GenderFemale,
		Address:        "Calle Las Flores 789",
		Phone:          "955443322",
		ParentName:     "Roberto Martinez",
		ParentPhone:    "966554433",
		ParentEmail:    "roberto.martinez@email.com",
	}
}

func existingStudent() *models.Student {
	created := time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC)
	return &models.Student{
		ID:             "student-existing-123",
		InstitutionID:  "inst-456",
		FirstName:      "Ana",
		LastName:       "Martinez",
		DocumentType:   models.DocumentTypeDNI,
		DocumentNumber: "98765432",
		BirthDate:      models.NewDate(2004, time.December, 25),
		Gender:         models.GenderFemale,
		Address:        "Calle Las Flores 789",
		Phone:          "955443322",
		ParentName:     "Roberto Martinez",
		ParentPhone:    "966554433",
		ParentEmail:    "roberto.martinez@email.com",
		Status:         models.StatusActive,
		CreatedAt:      created,
		UpdatedAt:      created,
	}
}

func TestToEntityMapsAllFields(t *testing.T) {
	req := createRequest()

	student := ToEntity(req, "inst-456")

	require.NotEmpty(t, student.ID)
	_, err := uuid.Parse(student.ID)
	require.NoError(t, err, "generated ID must be a valid UUID")

	assert.Equal(t, "inst-456", student.InstitutionID)
	assert.Equal(t, req.FirstName, student.FirstName)
	assert.Equal(t, req.LastName, student.LastName)
	assert.Equal(t, req.DocumentType, student.DocumentType)
	assert.Equal(t, req.DocumentNumber, student.DocumentNumber)
	assert.True(t, req.BirthDate.Equal(student.BirthDate))
	assert.Equal(t, req.Gender, student.Gender)
	assert.Equal(t, req.Address, student.Address)
	assert.Equal(t, req.Phone, student.Phone)
	assert.Equal(t, req.ParentName, student.ParentName)
	assert.Equal(t, req.ParentPhone, student.ParentPhone)
	assert.Equal(t, req.ParentEmail, student.ParentEmail)

	assert.Equal(t, models.StatusActive, student.Status)
	assert.False(t, student.CreatedAt.IsZero())
	assert.False(t, student.UpdatedAt.IsZero())
	assert.False(t, student.UpdatedAt.Before(student.CreatedAt))
}

func TestToEntityGeneratesUniqueIDs(t *testing.T) {
	req := createRequest()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		student := ToEntity(req, "inst-456")
		_, err := uuid.Parse(student.ID)
		require.NoError(t, err)
		require.False(t, seen[student.ID], "duplicate ID generated: %s", student.ID)
		seen[student.ID] = true
	}
}

func TestToEntityToResponseRoundTrip(t *testing.T) {
	req := createRequest()

	resp := ToResponse(ToEntity(req, "inst-456"))

	require.NotNil(t, resp)
	assert.Equal(t, "inst-456", resp.InstitutionID)
	assert.Equal(t, req.FirstName, resp.FirstName)
	assert.Equal(t, req.LastName, resp.LastName)
	assert.Equal(t, req.DocumentType, resp.DocumentType)
	assert.Equal(t, req.DocumentNumber, resp.DocumentNumber)
	assert.True(t, req.BirthDate.Equal(resp.BirthDate))
	assert.Equal(t, req.Gender, resp.Gender)
	assert.Equal(t, req.Address, resp.Address)
	assert.Equal(t, req.Phone, resp.Phone)
	assert.Equal(t, req.ParentName, resp.ParentName)
	assert.Equal(t, req.ParentPhone, resp.ParentPhone)
	assert.Equal(t, req.ParentEmail, resp.ParentEmail)
	assert.Equal(t, models.StatusActive, resp.Status)
	assert.Equal(t, resp.CreatedAt, resp.UpdatedAt)
}

func TestToResponseCopiesAllFields(t *testing.T) {
	student := existingStudent()

	resp := ToResponse(student)

	require.NotNil(t, resp)
	assert.Equal(t, student.ID, resp.ID)
	assert.Equal(t, student.InstitutionID, resp.InstitutionID)
	assert.Equal(t, student.FirstName, resp.FirstName)
	assert.Equal(t, student.LastName, resp.LastName)
	assert.Equal(t, student.DocumentType, resp.DocumentType)
	assert.Equal(t, student.DocumentNumber, resp.DocumentNumber)
	assert.True(t, student.BirthDate.Equal(resp.BirthDate))
	assert.Equal(t, student.Gender, resp.Gender)
	assert.Equal(t, student.Address, resp.Address)
	assert.Equal(t, student.Phone, resp.Phone)
	assert.Equal(t, student.ParentName, resp.ParentName)
	assert.Equal(t, student.ParentPhone, resp.ParentPhone)
	assert.Equal(t, student.ParentEmail, resp.ParentEmail)
	assert.Equal(t, student.Status, resp.Status)
	assert.Equal(t, student.CreatedAt, resp.CreatedAt)
	assert.Equal(t, student.UpdatedAt, resp.UpdatedAt)

	// The source entity stays untouched.
	assert.Equal(t, "Ana", student.FirstName)
}

func TestToResponseHandlesEmptyOptionalFields(t *testing.T) {
	student := &models.Student{
		ID:        "test-id",
		FirstName: "Test",
		Status:    models.StatusActive,
	}

	var resp *dto.StudentResponse
	require.NotPanics(t, func() {
		resp = ToResponse(student)
	})
	assert.Equal(t, "Test", resp.FirstName)
	assert.Empty(t, resp.LastName)
	assert.Empty(t, resp.Address)
	assert.True(t, resp.BirthDate.IsZero())
}

func TestToResponseNil(t *testing.T) {
	assert.Nil(t, ToResponse(nil))
}

func TestUpdateEntityAppliesOnlyPresentFields(t *testing.T) {
	student := existingStudent()
	originalLastName := student.LastName
	originalDocType := student.DocumentType
	originalCreatedAt := student.CreatedAt
	originalUpdatedAt := student.UpdatedAt

	firstName := "Ana Lucia"
	address := "Av. Nueva Direccion 123"
	phone := "944332211"
	req := &dto.UpdateStudentRequest{
		FirstName: &firstName,
		Address:   &address,
		Phone:     &phone,
	}

	result := UpdateEntity(student, req)

	assert.Equal(t, firstName, result.FirstName)
	assert.Equal(t, address, result.Address)
	assert.Equal(t, phone, result.Phone)

	// Fields absent from the request keep their previous values.
	assert.Equal(t, originalLastName, result.LastName)
	assert.Equal(t, originalDocType, result.DocumentType)

	assert.Equal(t, originalCreatedAt, result.CreatedAt)
	assert.True(t, result.UpdatedAt.After(originalUpdatedAt))
}

func TestUpdateEntityAppliesAllFields(t *testing.T) {
	student := existingStudent()
	originalID := student.ID
	originalCreatedAt := student.CreatedAt

	firstName := "Nueva Ana"
	lastName := "Nuevo Martinez"
	docType := models.DocumentTypePassport
	docNumber := "ABC1234567"
	birthDate := models.NewDate(2005, time.January, 1)
	gender := models.GenderMale
	address := "Nueva Direccion 999"
	phone := "999888777"
	parentName := "Nuevo Padre"
	parentPhone := "888777666"
	parentEmail := "nuevo@email.com"
	status := models.StatusInactive

	req := &dto.UpdateStudentRequest{
		FirstName:      &firstName,
		LastName:       &lastName,
		DocumentType:   &docType,
		DocumentNumber: &docNumber,
		BirthDate:      &birthDate,
		Gender:         &gender,
		Address:        &address,
		Phone:          &phone,
		ParentName:     &parentName,
		ParentPhone:    &parentPhone,
		ParentEmail:    &parentEmail,
		Status:         &status,
	}

	result := UpdateEntity(student, req)

	assert.Equal(t, firstName, result.FirstName)
	assert.Equal(t, lastName, result.LastName)
	assert.Equal(t, docType, result.DocumentType)
	assert.Equal(t, docNumber, result.DocumentNumber)
	assert.True(t, birthDate.Equal(result.BirthDate))
	assert.Equal(t, gender, result.Gender)
	assert.Equal(t, address, result.Address)
	assert.Equal(t, phone, result.Phone)
	assert.Equal(t, parentName, result.ParentName)
	assert.Equal(t, parentPhone, result.ParentPhone)
	assert.Equal(t, parentEmail, result.ParentEmail)
	assert.Equal(t, status, result.Status)

	assert.Equal(t, originalID, result.ID)
	assert.Equal(t, originalCreatedAt, result.CreatedAt)
	assert.True(t, result.UpdatedAt.After(originalCreatedAt))
}

func TestUpdateEntityReturnsSameInstance(t *testing.T) {
	student := existingStudent()
	firstName := "Updated"
	req := &dto.UpdateStudentRequest{FirstName: &firstName}

	result := UpdateEntity(student, req)

	assert.Same(t, student, result, "update must mutate in place, not copy")
}

func TestUpdateEntityNoOpStillAdvancesUpdatedAt(t *testing.T) {
	student := existingStudent()
	before := student.UpdatedAt

	result := UpdateEntity(student, &dto.UpdateStudentRequest{})

	assert.True(t, result.UpdatedAt.After(before))
	assert.Equal(t, "Ana", result.FirstName)
}

func TestUpdateEntityMonotonicBackToBack(t *testing.T) {
	student := existingStudent()

	prev := student.UpdatedAt
	for i := 0; i < 10; i++ {
		UpdateEntity(student, &dto.UpdateStudentRequest{})
		require.True(t, student.UpdatedAt.After(prev), "UpdatedAt must strictly advance on every update")
		prev = student.UpdatedAt
	}
}
