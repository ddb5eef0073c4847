// Package repository implements data access layer for the application
package repository

import (
	stderrors "errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"payanam.app/errors"
	"payanam.app/models"
)

// UserRepository handles data access operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new repository for user data
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create persists a new user, allocating an id when none is set
func (r *UserRepository) Create(user *models.User) error {
	log.Printf("[DEBUG] UserRepository.Create: email=%s\n", user.Email)

	if user.UserID == "" {
		user.UserID = uuid.NewString()
	}

	result := r.db.Create(user)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when creating user: %v\n", result.Error)
		return errors.NewDatabaseError("failed to create user", result.Error)
	}

	log.Printf("[DEBUG] Created user with ID: %s\n", user.UserID)
	return nil
}

// FindByID retrieves a user by its ID
func (r *UserRepository) FindByID(userID string) (*models.User, error) {
	log.Printf("[DEBUG] UserRepository.FindByID: id=%s\n", userID)

	if userID == "" {
		return nil, errors.NewValidationError("user ID cannot be empty")
	}

	var user models.User
	result := r.db.Where("user_id = ?", userID).First(&user)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("user not found")
		}
		log.Printf("[ERROR] Database error when finding user by ID: %v\n", result.Error)
		return nil, errors.NewDatabaseError("failed to find user", result.Error)
	}

	return &user, nil
}

// FindByEmail retrieves a user by email; returns nil without error when absent
func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	log.Printf("[DEBUG] UserRepository.FindByEmail: email=%s\n", email)

	if email == "" {
		return nil, errors.NewValidationError("email cannot be empty")
	}

	var user models.User
	result := r.db.Where("email = ?", email).First(&user)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			log.Println("[DEBUG] No user found")
			return nil, nil
		}
		log.Printf("[ERROR] Database error when finding user by email: %v\n", result.Error)
		return nil, errors.NewDatabaseError("failed to find user", result.Error)
	}

	return &user, nil
}

// Update modifies an existing user
func (r *UserRepository) Update(user *models.User) error {
	log.Printf("[DEBUG] UserRepository.Update: id=%s\n", user.UserID)

	result := r.db.Save(user)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when updating user: %v\n", result.Error)
		return errors.NewDatabaseError("failed to update user", result.Error)
	}

	return nil
}

// DeleteWithTrips removes a user and every trip it owns in one transaction.
// The cascade is explicit at the application level rather than delegated to
// foreign-key configuration.
func (r *UserRepository) DeleteWithTrips(user *models.User) error {
	log.Printf("[DEBUG] UserRepository.DeleteWithTrips: id=%s\n", user.UserID)

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.UserID).Delete(&models.Trip{}).Error; err != nil {
			return err
		}
		return tx.Delete(user).Error
	})
	if err != nil {
		log.Printf("[ERROR] Database error when deleting user with trips: %v\n", err)
		return errors.NewDatabaseError("failed to delete user", err)
	}

	log.Println("[DEBUG] Deleted user and owned trips successfully")
	return nil
}
