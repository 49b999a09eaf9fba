package dbrepo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vyapardesk/billing-api/internal/models"
	"github.com/vyapardesk/billing-api/internal/utils"
)

type StaffRepo struct {
	db *pgxpool.Pool
}

func NewStaffRepo(db *pgxpool.Pool) *StaffRepo {
	return &StaffRepo{db: db}
}

// GetStaffByUsername fetches a staff user for signin (includes the hash).
func (r *StaffRepo) GetStaffByUsername(ctx context.Context, username string) (*models.Staff, error) {
	var s models.Staff
	err := r.db.QueryRow(ctx, `
		SELECT id, name, username, role, mobile, email, password, status, created_at, updated_at
		FROM staff
		WHERE username = $1
	`, username).Scan(
		&s.ID, &s.Name, &s.Username, &s.Role, &s.Mobile, &s.Email, &s.Password,
		&s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("invalid username or password")
	}
	if err != nil {
		return nil, fmt.Errorf("fetch staff failed: %w", err)
	}
	return &s, nil
}

// CreateStaff inserts a staff user with a bcrypt-hashed password.
func (r *StaffRepo) CreateStaff(ctx context.Context, s *models.Staff) error {
	hashed, err := utils.HashPassword(s.Password)
	if err != nil {
		return fmt.Errorf("hash password failed: %w", err)
	}
	if s.Status == "" {
		s.Status = "active"
	}

	err = r.db.QueryRow(ctx, `
		INSERT INTO staff(name, username, role, mobile, email, password, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id, created_at, updated_at
	`, s.Name, s.Username, s.Role, s.Mobile, s.Email, hashed, s.Status,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert staff failed: %w", err)
	}
	s.Password = ""
	return nil
}
