package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/journalapp/journal-api/internal/models"
	"github.com/journalapp/journal-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrUserValidation = errors.New("user validation failed")
	ErrUserDeleted    = errors.New("user is deleted")
)

var validate = validator.New()

// UserService handles user business logic: validation, normalization, and
// lifecycle rules.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUserInput holds the client-supplied fields for a new user.
// Timestamps and the deleted flag are server-controlled.
type CreateUserInput struct {
	Email         string
	Username      string
	FirstName     string
	LastName      string
	Password      string
	EmailVerified bool
}

// UpdateUserInput holds the fields a partial update may touch. Nil means the
// field is left unchanged. date_created is rejected before this point.
type UpdateUserInput struct {
	Email         *string
	Username      *string
	FirstName     *string
	LastName      *string
	Password      *string
	EmailVerified *bool
	IsAdmin       *bool
	Deleted       *bool
	LastLogin     *time.Time
}

// Create validates, normalizes, and persists a new user.
func (s *UserService) Create(input CreateUserInput) (*models.User, error) {
	email := strings.ToLower(input.Email)
	username := strings.ToLower(input.Username)

	if err := validate.Var(email, "required,email"); err != nil {
		return nil, fmt.Errorf("%w: invalid email", ErrUserValidation)
	}
	if len(email) < 5 || len(email) > 254 {
		return nil, fmt.Errorf("%w: email length", ErrUserValidation)
	}
	if len(username) < 5 || len(username) > 20 {
		return nil, fmt.Errorf("%w: username length", ErrUserValidation)
	}
	if len(input.FirstName) < 2 || len(input.FirstName) > 150 {
		return nil, fmt.Errorf("%w: first name length", ErrUserValidation)
	}
	if len(input.LastName) < 2 || len(input.LastName) > 100 {
		return nil, fmt.Errorf("%w: last name length", ErrUserValidation)
	}
	if len(input.Password) < 12 || len(input.Password) > 100 {
		return nil, fmt.Errorf("%w: password length", ErrUserValidation)
	}

	if err := s.ensureEmailAvailable(email, uuid.Nil); err != nil {
		return nil, err
	}
	if err := s.ensureUsernameAvailable(username, uuid.Nil); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := truncateSecond(time.Now())
	user := &models.User{
		Email:         email,
		Username:      username,
		FirstName:     capitalize(input.FirstName),
		LastName:      capitalize(input.LastName),
		PasswordHash:  string(hashedPassword),
		EmailVerified: input.EmailVerified,
		Deleted:       false,
		DateCreated:   now,
		LastLogin:     now,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUserValidation, err)
	}

	return user, nil
}

// Get retrieves a user by ID.
func (s *UserService) Get(id uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// ListActive returns all users not flagged deleted.
func (s *UserService) ListActive() ([]models.User, error) {
	users, err := s.userRepo.ListActive()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if len(users) == 0 {
		return nil, ErrUserNotFound
	}
	return users, nil
}

// Update applies a partial update. A user flagged deleted is only touchable
// when the update explicitly clears that flag.
func (s *UserService) Update(id uuid.UUID, input UpdateUserInput) (*models.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if user.Deleted && (input.Deleted == nil || *input.Deleted) {
		return nil, ErrUserDeleted
	}

	if input.Email != nil {
		email := strings.ToLower(*input.Email)
		if err := validate.Var(email, "required,email"); err != nil {
			return nil, fmt.Errorf("%w: invalid email", ErrUserValidation)
		}
		if len(email) < 5 || len(email) > 254 {
			return nil, fmt.Errorf("%w: email length", ErrUserValidation)
		}
		if err := s.ensureEmailAvailable(email, user.ID); err != nil {
			return nil, err
		}
		user.Email = email
	}
	if input.Username != nil {
		username := strings.ToLower(*input.Username)
		if len(username) < 5 || len(username) > 20 {
			return nil, fmt.Errorf("%w: username length", ErrUserValidation)
		}
		if err := s.ensureUsernameAvailable(username, user.ID); err != nil {
			return nil, err
		}
		user.Username = username
	}
	if input.FirstName != nil {
		if len(*input.FirstName) < 2 || len(*input.FirstName) > 150 {
			return nil, fmt.Errorf("%w: first name length", ErrUserValidation)
		}
		user.FirstName = capitalize(*input.FirstName)
	}
	if input.LastName != nil {
		if len(*input.LastName) < 2 || len(*input.LastName) > 100 {
			return nil, fmt.Errorf("%w: last name length", ErrUserValidation)
		}
		user.LastName = capitalize(*input.LastName)
	}
	if input.Password != nil {
		if len(*input.Password) < 12 || len(*input.Password) > 100 {
			return nil, fmt.Errorf("%w: password length", ErrUserValidation)
		}
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(hashedPassword)
	}
	if input.EmailVerified != nil {
		user.EmailVerified = *input.EmailVerified
	}
	if input.IsAdmin != nil {
		user.IsAdmin = *input.IsAdmin
	}
	if input.Deleted != nil {
		user.Deleted = *input.Deleted
	}
	if input.LastLogin != nil {
		user.LastLogin = truncateSecond(*input.LastLogin)
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUserValidation, err)
	}

	return user, nil
}

// Delete hard-deletes a user; owned tags and journals go with it.
func (s *UserService) Delete(id uuid.UUID) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	if err := s.userRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (s *UserService) ensureEmailAvailable(email string, selfID uuid.UUID) error {
	existing, err := s.userRepo.FindByEmail(email)
	if err == nil {
		if existing.ID != selfID {
			return fmt.Errorf("%w: email already exists", ErrUserValidation)
		}
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check email: %w", err)
	}
	return nil
}

func (s *UserService) ensureUsernameAvailable(username string, selfID uuid.UUID) error {
	existing, err := s.userRepo.FindByUsername(username)
	if err == nil {
		if existing.ID != selfID {
			return fmt.Errorf("%w: username already exists", ErrUserValidation)
		}
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check username: %w", err)
	}
	return nil
}
