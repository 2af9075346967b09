package seed

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/emre/coursehub/internal/app/models"
	"github.com/emre/coursehub/internal/pkg/auth"
)

// CreateDefaultData seeds a default admin account when the users table
// is empty, so a fresh deployment is immediately manageable.
func CreateDefaultData(ctx context.Context, db *pgxpool.Pool, lgr zerolog.Logger) error {
	var count int
	if err := db.QueryRow(ctx, `SELECT COUNT(1) FROM users`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hashed, err := auth.HashPassword("admin12345")
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}

	_, err = db.Exec(ctx,
		`INSERT INTO users (uuid, name, email, password, role, is_active) VALUES ($1, $2, $3, $4, $5, TRUE)`,
		uuid.NewString(), "Administrator", "admin@coursehub.local", hashed, models.RoleAdmin)
	if err != nil {
		return fmt.Errorf("failed to create default admin: %w", err)
	}

	lgr.Info().Str("email", "admin@coursehub.local").Msg("Default admin account created, change the password after first login")
	return nil
}
