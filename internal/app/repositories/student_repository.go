package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edugate/students/internal/app/models"
	"github.com/edugate/students/internal/pkg/logger"
)

// ErrNotFound is returned when no student row matches the query.
var ErrNotFound = errors.New("not found")

// studentColumns is the canonical select list for the students table.
var studentColumns = []string{
	"id", "institution_id", "first_name", "last_name",
	"document_type", "document_number", "birth_date", "gender",
	"address", "phone", "parent_name", "parent_phone", "parent_email",
	"status", "created_at", "updated_at",
}

// StudentRepository handles student database operations.
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	student := &models.Student{}
	err := row.Scan(
		&student.ID, &student.InstitutionID, &student.FirstName, &student.LastName,
		&student.DocumentType, &student.DocumentNumber, &student.BirthDate, &student.Gender,
		&student.Address, &student.Phone, &student.ParentName, &student.ParentPhone,
		&student.ParentEmail, &student.Status, &student.CreatedAt, &student.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return student, nil
}

// Save inserts a new student row.
func (r *StudentRepository) Save(ctx context.Context, student *models.Student) (*models.Student, error) {
	sql, args, err := r.sb.Insert("students").
		Columns(studentColumns...).
		Values(
			student.ID, student.InstitutionID, student.FirstName, student.LastName,
			student.DocumentType, student.DocumentNumber, student.BirthDate, student.Gender,
			student.Address, student.Phone, student.ParentName, student.ParentPhone,
			student.ParentEmail, student.Status, student.CreatedAt, student.UpdatedAt,
		).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building save student SQL")
		return nil, fmt.Errorf("failed to build save student query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("studentID", student.ID).Msg("Error executing save student query")
		return nil, fmt.Errorf("error saving student: %w", err)
	}

	return student, nil
}

// Update overwrites the mutable columns of an existing student by ID.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) (*models.Student, error) {
	sql, args, err := r.sb.Update("students").
		SetMap(map[string]interface{}{
			"first_name":      student.FirstName,
			"last_name":       student.LastName,
			"document_type":   student.DocumentType,
			"document_number": student.DocumentNumber,
			"birth_date":      student.BirthDate,
			"gender":          student.Gender,
			"address":         student.Address,
			"phone":           student.Phone,
			"parent_name":     student.ParentName,
			"parent_phone":    student.ParentPhone,
			"parent_email":    student.ParentEmail,
			"status":          student.Status,
			"updated_at":      student.UpdatedAt,
		}).
		Where(squirrel.Eq{"id": student.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update student SQL")
		return nil, fmt.Errorf("failed to build update student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("studentID", student.ID).Msg("Error executing update student query")
		return nil, fmt.Errorf("error updating student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}

	return student, nil
}

// FindByID retrieves a student by identifier.
func (r *StudentRepository) FindByID(ctx context.Context, id string) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building find student by ID SQL")
		return nil, fmt.Errorf("failed to build find student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}

	return student, nil
}

// FindByDocumentNumberAndInstitution retrieves a student by its natural key
// within one institution scope.
func (r *StudentRepository) FindByDocumentNumberAndInstitution(ctx context.Context, documentNumber, institutionID string) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"document_number": documentNumber, "institution_id": institutionID}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building find student by document SQL")
		return nil, fmt.Errorf("failed to build find student by document query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).
			Str("documentNumber", documentNumber).
			Str("institutionID", institutionID).
			Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by document number: %w", err)
	}

	return student, nil
}

// FindAllByInstitution retrieves every student scoped to one institution.
func (r *StudentRepository) FindAllByInstitution(ctx context.Context, institutionID string) ([]*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"institution_id": institutionID}).
		OrderBy("last_name ASC", "first_name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list students SQL")
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("institutionID", institutionID).Msg("Error executing list students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning student row during list")
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating student rows")
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// ExistsByID reports whether a student row with the given ID exists.
func (r *StudentRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("students").
		Where(squirrel.Eq{"id": id}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building student exists SQL")
		return false, fmt.Errorf("failed to build student existence query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Str("studentID", id).Msg("Error checking student existence")
		return false, fmt.Errorf("error checking student existence: %w", err)
	}

	return exists, nil
}
