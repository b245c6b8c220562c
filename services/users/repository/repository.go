package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/swiftload/swiftload/internal/pkg/models"
)

// UserRepo handles user, OTP and profile persistence on Postgres.
type UserRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(cfg *models.Config, db *sqlx.DB) *UserRepo {
	return &UserRepo{
		cfg: cfg,
		db:  db,
	}
}
