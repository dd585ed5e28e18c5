package services

import (
	"foodorder/internal/apperrors"
	"foodorder/internal/models"
	"foodorder/internal/repositories"
)

// UserService handles the admin-facing user management surface.
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// ListUsers returns all user accounts.
func (s *UserService) ListUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}

// UpdateUserStatus sets an account to "active" or "inactive". Any other
// status value fails with BadRequest.
func (s *UserService) UpdateUserStatus(userID, status string) (*models.User, error) {
	if status != models.UserActive && status != models.UserInactive {
		return nil, apperrors.BadRequest("invalid user status: %s", status)
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	user.Status = status
	user.Active = status == models.UserActive
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
