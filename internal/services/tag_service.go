package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/journalapp/journal-api/internal/models"
	"github.com/journalapp/journal-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTagNotFound   = errors.New("tag not found")
	ErrTagValidation = errors.New("tag validation failed")
)

// TagService handles tag business logic.
type TagService struct {
	tagRepo  repository.TagRepository
	userRepo repository.UserRepository
}

// NewTagService creates a new TagService
func NewTagService(tagRepo repository.TagRepository, userRepo repository.UserRepository) *TagService {
	return &TagService{
		tagRepo:  tagRepo,
		userRepo: userRepo,
	}
}

// CreateTagInput holds the client-supplied fields for a new tag.
type CreateTagInput struct {
	UserID uuid.UUID
	Name   string
}

// UpdateTagInput holds the fields a partial update may touch.
type UpdateTagInput struct {
	Name *string
}

// Create validates and persists a new tag. The name is title-cased on write
// and must be unique across all tags.
func (s *TagService) Create(input CreateTagInput) (*models.Tag, error) {
	name, err := s.normalizeName(input.Name, uuid.Nil)
	if err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByID(input.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: owning user does not exist", ErrTagValidation)
		}
		return nil, fmt.Errorf("failed to check user: %w", err)
	}

	tag := &models.Tag{
		UserID:      input.UserID,
		Name:        name,
		DateCreated: truncateSecond(time.Now()),
	}

	if err := s.tagRepo.Create(tag); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTagValidation, err)
	}

	return tag, nil
}

// Get retrieves a tag by ID.
func (s *TagService) Get(id uuid.UUID) (*models.Tag, error) {
	tag, err := s.tagRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, fmt.Errorf("failed to find tag: %w", err)
	}
	return tag, nil
}

// ListAll returns every tag ordered by name.
func (s *TagService) ListAll() ([]models.Tag, error) {
	tags, err := s.tagRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	if len(tags) == 0 {
		return nil, ErrTagNotFound
	}
	return tags, nil
}

// ListByUser returns a user's tags ordered by name.
func (s *TagService) ListByUser(userID uuid.UUID) ([]models.Tag, error) {
	tags, err := s.tagRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	if len(tags) == 0 {
		return nil, ErrTagNotFound
	}
	return tags, nil
}

// CheckName reports whether a tag with the exact name exists for the user.
func (s *TagService) CheckName(name string, userID uuid.UUID) error {
	if _, err := s.tagRepo.FindByNameForUser(name, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTagNotFound
		}
		return fmt.Errorf("failed to check tag name: %w", err)
	}
	return nil
}

// Update applies a partial update to a tag.
func (s *TagService) Update(id uuid.UUID, input UpdateTagInput) (*models.Tag, error) {
	tag, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name, err := s.normalizeName(*input.Name, tag.ID)
		if err != nil {
			return nil, err
		}
		tag.Name = name
	}

	if err := s.tagRepo.Update(tag); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTagValidation, err)
	}

	return tag, nil
}

// Delete removes a tag and detaches it from any journals.
func (s *TagService) Delete(id uuid.UUID) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	if err := s.tagRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}
	return nil
}

// normalizeName title-cases a tag name and enforces the length and global
// uniqueness rules. selfID exempts the tag being updated from the uniqueness
// check.
func (s *TagService) normalizeName(raw string, selfID uuid.UUID) (string, error) {
	if len(raw) < 2 || len(raw) > 50 {
		return "", fmt.Errorf("%w: name length", ErrTagValidation)
	}
	name := titleCase(raw)

	existing, err := s.tagRepo.FindByName(name)
	if err == nil {
		if existing.ID != selfID {
			return "", fmt.Errorf("%w: name already exists", ErrTagValidation)
		}
		return name, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("failed to check tag name: %w", err)
	}
	return name, nil
}
