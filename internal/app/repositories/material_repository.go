package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/coursehub/internal/app/models"
	"github.com/emre/coursehub/internal/pkg/apperrors"
)

const materialColumns = "id, uuid, course_id, lesson_id, title, file_name, file_url, file_type, file_size, created_at"

// MaterialRepository handles database operations for course materials
type MaterialRepository struct {
	db *pgxpool.Pool
}

// NewMaterialRepository creates a new MaterialRepository
func NewMaterialRepository(db *pgxpool.Pool) *MaterialRepository {
	return &MaterialRepository{db: db}
}

func scanMaterial(row pgx.Row) (*models.Material, error) {
	var m models.Material
	err := row.Scan(&m.ID, &m.UUID, &m.CourseID, &m.LessonID, &m.Title,
		&m.FileName, &m.FileURL, &m.FileType, &m.FileSize, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create inserts a new material record
func (r *MaterialRepository) Create(ctx context.Context, material *models.Material) error {
	query := squirrel.Insert("materials").
		Columns("uuid", "course_id", "lesson_id", "title", "file_name", "file_url", "file_type", "file_size").
		Values(material.UUID, material.CourseID, material.LessonID, material.Title,
			material.FileName, material.FileURL, material.FileType, material.FileSize).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&material.ID, &material.CreatedAt)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// GetByUUID retrieves a material by public UUID
func (r *MaterialRepository) GetByUUID(ctx context.Context, uuid string) (*models.Material, error) {
	query := squirrel.Select(materialColumns).
		From("materials").
		Where(squirrel.Eq{"uuid": uuid}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	material, err := scanMaterial(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return material, nil
}

// GetByCourseID lists all materials attached to a course
func (r *MaterialRepository) GetByCourseID(ctx context.Context, courseID int64) ([]models.Material, error) {
	query := squirrel.Select(materialColumns).
		From("materials").
		Where(squirrel.Eq{"course_id": courseID}).
		OrderBy("created_at ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var materials []models.Material
	for rows.Next() {
		material, err := scanMaterial(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		materials = append(materials, *material)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading rows: %w", err)
	}

	return materials, nil
}

// Delete removes a material record
func (r *MaterialRepository) Delete(ctx context.Context, id int64) error {
	query := squirrel.Delete("materials").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}
