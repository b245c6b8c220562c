package usecase

import (
	"github.com/swiftload/swiftload/internal/pkg/models"
	"github.com/swiftload/swiftload/services/users"
)

// UserUC implements the user usecase operations.
type UserUC struct {
	cfg      *models.Config
	userRepo users.UserRepo
	userGW   users.UserGW
}

// NewUserUC creates a new user usecase
func NewUserUC(cfg *models.Config, userRepo users.UserRepo, userGW users.UserGW) *UserUC {
	return &UserUC{
		cfg:      cfg,
		userRepo: userRepo,
		userGW:   userGW,
	}
}
