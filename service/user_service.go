package service

import (
	"log"

	"payanam.app/errors"
	"payanam.app/models"
	"payanam.app/pkg/validation"
)

// UserService handles account business logic
type UserService struct {
	userRepo UserRepositoryInterface
}

// NewUserService creates a new user service
func NewUserService(userRepo UserRepositoryInterface) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register creates a new account. Email addresses are unique.
func (s *UserService) Register(req *models.RegisterUserRequest) (*models.User, error) {
	log.Printf("[DEBUG] UserService.Register: email=%s\n", req.Email)

	if req.Name == "" {
		return nil, errors.NewValidationError("name is required")
	}
	if !validation.IsValidEmail(req.Email) {
		return nil, errors.NewValidationError("email must be a valid email address")
	}

	existing, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewAlreadyExistsError("email already registered")
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		LanguagePref: "en",
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetProfile retrieves the caller's own account record
func (s *UserService) GetProfile(userID string) (*models.User, error) {
	if userID == "" {
		return nil, errors.NewAuthorizationError("caller identity is required")
	}
	return s.userRepo.FindByID(userID)
}

// UpdateProfile applies a partial profile patch; nil fields are retained
func (s *UserService) UpdateProfile(userID string, patch *models.UpdateUserRequest) (*models.User, error) {
	log.Printf("[DEBUG] UserService.UpdateProfile: user=%s\n", userID)

	if patch == nil {
		return nil, errors.NewValidationError("patch cannot be empty")
	}

	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, errors.NewValidationError("name cannot be empty")
		}
		user.Name = *patch.Name
	}
	if patch.AvatarURL != nil {
		user.AvatarURL = *patch.AvatarURL
	}
	if patch.LanguagePref != nil {
		user.LanguagePref = *patch.LanguagePref
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteAccount removes the account and cascades to every owned trip
func (s *UserService) DeleteAccount(userID string) error {
	log.Printf("[DEBUG] UserService.DeleteAccount: user=%s\n", userID)

	user, err := s.GetProfile(userID)
	if err != nil {
		return err
	}

	return s.userRepo.DeleteWithTrips(user)
}
