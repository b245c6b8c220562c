package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/swiftload/swiftload/internal/pkg/models"
)

// OrderRepo handles order, package and matching persistence on Postgres.
type OrderRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewOrderRepo creates a new order repository
func NewOrderRepo(cfg *models.Config, db *sqlx.DB) *OrderRepo {
	return &OrderRepo{
		cfg: cfg,
		db:  db,
	}
}
