package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/edugate/students/internal/app/mapper"
	"github.com/edugate/students/internal/app/metrics"
	"github.com/edugate/students/internal/app/models"
	"github.com/edugate/students/internal/app/models/dto"
	"github.com/edugate/students/internal/app/repositories"
	"github.com/edugate/students/internal/pkg/apperrors"
)

// StudentRepository is the gateway contract the service depends on.
type StudentRepository interface {
	Save(ctx context.Context, student *models.Student) (*models.Student, error)
	Update(ctx context.Context, student *models.Student) (*models.Student, error)
	FindByID(ctx context.Context, id string) (*models.Student, error)
	FindByDocumentNumberAndInstitution(ctx context.Context, documentNumber, institutionID string) (*models.Student, error)
	FindAllByInstitution(ctx context.Context, institutionID string) ([]*models.Student, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
}

// StudentService defines the interface for student-related operations.
type StudentService interface {
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest, institutionID string) (*dto.StudentResponse, error)
	GetStudentByID(ctx context.Context, id string) (*dto.StudentResponse, error)
	GetStudentsByInstitution(ctx context.Context, institutionID string) ([]*dto.StudentResponse, error)
	UpdateStudent(ctx context.Context, id string, req *dto.UpdateStudentRequest, institutionID string) (*dto.StudentResponse, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
}

// studentServiceImpl implements the StudentService interface.
type studentServiceImpl struct {
	studentRepo StudentRepository
	metrics     *metrics.Metrics
}

// NewStudentService creates a new student service instance. metrics may be
// nil, in which case counters are not recorded.
func NewStudentService(studentRepo StudentRepository, m *metrics.Metrics) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		metrics:     m,
	}
}

// CreateStudent registers a new student after checking that no student with
// the same document number exists within the institution.
//
// The duplicate check and the save are two independent statements with no
// transaction around them: two concurrent creations with the same document
// number can both pass the check. The backing table deliberately has no
// unique index on (institution_id, document_number), so the invariant is
// best-effort under concurrent writers.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest, institutionID string) (*dto.StudentResponse, error) {
	existing, err := s.studentRepo.FindByDocumentNumberAndInstitution(ctx, req.DocumentNumber, institutionID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("error checking for existing student: %w", err)
	}
	if existing != nil {
		if s.metrics != nil {
			s.metrics.DuplicatesRejected.Inc()
		}
		return nil, apperrors.NewDuplicateError(
			fmt.Sprintf("Student with document number %s already exists", req.DocumentNumber))
	}

	student := mapper.ToEntity(req, institutionID)
	saved, err := s.studentRepo.Save(ctx, student)
	if err != nil {
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	if s.metrics != nil {
		s.metrics.StudentsCreated.Inc()
	}
	return mapper.ToResponse(saved), nil
}

// GetStudentByID retrieves a student by identifier.
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id string) (*dto.StudentResponse, error) {
	student, err := s.studentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			if s.metrics != nil {
				s.metrics.LookupsNotFound.Inc()
			}
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("Student not found with id: %s", id))
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return mapper.ToResponse(student), nil
}

// GetStudentsByInstitution retrieves all students scoped to one institution.
func (s *studentServiceImpl) GetStudentsByInstitution(ctx context.Context, institutionID string) ([]*dto.StudentResponse, error) {
	students, err := s.studentRepo.FindAllByInstitution(ctx, institutionID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return mapper.ToResponses(students), nil
}

// UpdateStudent applies a partial update to an existing student. A student
// that belongs to a different institution is reported as not found so one
// tenant cannot probe another's identifiers.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id string, req *dto.UpdateStudentRequest, institutionID string) (*dto.StudentResponse, error) {
	student, err := s.studentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			if s.metrics != nil {
				s.metrics.LookupsNotFound.Inc()
			}
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("Student not found with id: %s", id))
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	if student.InstitutionID != institutionID {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("Student not found with id: %s", id))
	}

	mapper.UpdateEntity(student, req)

	updated, err := s.studentRepo.Update(ctx, student)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("Student not found with id: %s", id))
		}
		return nil, fmt.Errorf("error updating student: %w", err)
	}

	if s.metrics != nil {
		s.metrics.StudentsUpdated.Inc()
	}
	return mapper.ToResponse(updated), nil
}

// ExistsByID is a pure existence probe. Unknown identifiers, well formed or
// not, report false rather than an error.
func (s *studentServiceImpl) ExistsByID(ctx context.Context, id string) (bool, error) {
	exists, err := s.studentRepo.ExistsByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("error checking student existence: %w", err)
	}
	return exists, nil
}
