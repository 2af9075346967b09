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

// CommentRepository handles database operations for course comments
type CommentRepository struct {
	db *pgxpool.Pool
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{db: db}
}

func commentSelect() squirrel.SelectBuilder {
	return squirrel.Select("c.id", "c.uuid", "c.course_id", "c.author_id", "c.parent_id",
		"c.content", "c.created_at", "c.updated_at",
		"u.uuid", "u.name", "u.avatar_url").
		From("comments c").
		Join("users u ON u.id = c.author_id").
		PlaceholderFormat(squirrel.Dollar)
}

func scanComment(row pgx.Row) (*models.Comment, error) {
	var comment models.Comment
	var author models.User
	err := row.Scan(&comment.ID, &comment.UUID, &comment.CourseID, &comment.AuthorID, &comment.ParentID,
		&comment.Content, &comment.CreatedAt, &comment.UpdatedAt,
		&author.UUID, &author.Name, &author.AvatarURL)
	if err != nil {
		return nil, err
	}
	comment.Author = &author
	return &comment, nil
}

// Create inserts a new comment or reply
func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	query := squirrel.Insert("comments").
		Columns("uuid", "course_id", "author_id", "parent_id", "content").
		Values(comment.UUID, comment.CourseID, comment.AuthorID, comment.ParentID, comment.Content).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&comment.ID, &comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// GetByUUID retrieves a comment by public UUID
func (r *CommentRepository) GetByUUID(ctx context.Context, uuid string) (*models.Comment, error) {
	query := commentSelect().Where(squirrel.Eq{"c.uuid": uuid})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	comment, err := scanComment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return comment, nil
}

// GetByCourseID returns the comment tree for a course: top-level comments
// newest first, each carrying its replies oldest first.
func (r *CommentRepository) GetByCourseID(ctx context.Context, courseID int64) ([]models.Comment, error) {
	query := commentSelect().
		Where(squirrel.Eq{"c.course_id": courseID}).
		OrderBy("c.created_at ASC", "c.id ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var all []models.Comment
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		all = append(all, *comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading rows: %w", err)
	}

	return buildCommentTree(all), nil
}

// buildCommentTree groups replies under their parents. Input is in
// ascending creation order, so replies stay oldest first; top-level
// comments are reversed to newest first.
func buildCommentTree(all []models.Comment) []models.Comment {
	byID := make(map[int64]*models.Comment, len(all))
	var topLevel []*models.Comment

	for i := range all {
		c := &all[i]
		byID[c.ID] = c
		if c.ParentID == nil {
			topLevel = append(topLevel, c)
		}
	}
	for i := range all {
		c := &all[i]
		if c.ParentID == nil {
			continue
		}
		if parent, ok := byID[*c.ParentID]; ok {
			parent.Replies = append(parent.Replies, *c)
		}
	}

	result := make([]models.Comment, 0, len(topLevel))
	for i := len(topLevel) - 1; i >= 0; i-- {
		result = append(result, *topLevel[i])
	}
	return result
}

// Delete removes a comment and cascades to its replies
func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	query := squirrel.Delete("comments").
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
		return apperrors.ErrCommentNotFound
	}

	return nil
}
