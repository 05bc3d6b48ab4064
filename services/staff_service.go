package services

import (
	"errors"
	"fmt"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

// StaffService manages the manager and delivery-crew role groups. Roles are a
// flat column on the user row; granting replaces the old role and revoking
// drops the user back to customer.
type StaffService struct {
	UserRepo *repository.UserRepository
}

func NewStaffService(repo *repository.UserRepository) *StaffService {
	return &StaffService{UserRepo: repo}
}

type AssignStaffIn struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

func (s *StaffService) List(role string) ([]entity.User, error) {
	return s.UserRepo.ListByRole(role)
}

// Assign grants role to the user named by id or username; id wins when both
// are present, matching the original endpoint contract.
func (s *StaffService) Assign(in *AssignStaffIn, role string) (*entity.User, error) {
	if in.ID == 0 && in.Username == "" {
		return nil, fmt.Errorf("%w: id or username is required", ErrEmptyUpdate)
	}

	var user *entity.User
	var err error
	if in.ID != 0 {
		user, err = s.UserRepo.FindByID(in.ID)
	} else {
		user, err = s.UserRepo.FindByUsername(in.Username)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := s.UserRepo.UpdateRole(user.ID, role); err != nil {
		return nil, err
	}
	user.Role = role
	return user, nil
}

// Remove revokes role from the user; they become a plain customer again.
func (s *StaffService) Remove(userID uint, role string) (*entity.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if user.Role != role {
		return nil, ErrNotFound
	}

	if err := s.UserRepo.UpdateRole(user.ID, entity.RoleCustomer); err != nil {
		return nil, err
	}
	user.Role = entity.RoleCustomer
	return user, nil
}
