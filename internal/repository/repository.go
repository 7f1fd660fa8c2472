package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/journalapp/journal-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uuid.UUID) (*models.User, error)

	// FindByEmail finds a user by (lower-cased) email
	FindByEmail(email string) (*models.User, error)

	// FindByUsername finds a user by (lower-cased) username
	FindByUsername(username string) (*models.User, error)

	// ListActive lists all users whose deleted flag is unset
	ListActive() ([]models.User, error)

	// Update persists changes to a user
	Update(user *models.User) error

	// Delete hard-deletes a user and cascades to owned tags and journals
	Delete(id uuid.UUID) error
}

// TagRepository defines the interface for tag data access
type TagRepository interface {
	// Create creates a new tag
	Create(tag *models.Tag) error

	// FindByID finds a tag by ID with its journals loaded
	FindByID(id uuid.UUID) (*models.Tag, error)

	// FindByName finds a tag by exact name across all users
	FindByName(name string) (*models.Tag, error)

	// FindByNameForUser finds a tag by exact name owned by a user
	FindByNameForUser(name string, userID uuid.UUID) (*models.Tag, error)

	// ListAll lists every tag ordered by name
	ListAll() ([]models.Tag, error)

	// ListByUser lists a user's tags ordered by name
	ListByUser(userID uuid.UUID) ([]models.Tag, error)

	// SearchByName lists a user's tags whose name contains the token,
	// case-insensitively
	SearchByName(userID uuid.UUID, token string) ([]models.Tag, error)

	// Update persists changes to a tag
	Update(tag *models.Tag) error

	// Delete deletes a tag and its journal associations
	Delete(id uuid.UUID) error
}

// JournalRepository defines the interface for journal data access
type JournalRepository interface {
	// Create creates a new journal and attaches the given tags
	Create(journal *models.Journal, tagIDs []uuid.UUID) error

	// FindByID finds a journal by ID with tags loaded
	FindByID(id uuid.UUID) (*models.Journal, error)

	// ListAll lists every journal
	ListAll() ([]models.Journal, error)

	// ListByUser lists a user's journals ordered by title
	ListByUser(userID uuid.UUID) ([]models.Journal, error)

	// FindByDay lists a user's journals created on the given UTC calendar
	// day, ordered by title
	FindByDay(userID uuid.UUID, day time.Time) ([]models.Journal, error)

	// SearchKeyword returns ids of a user's journals whose title or content
	// contains the token, case-insensitively
	SearchKeyword(userID uuid.UUID, field, token string) ([]uuid.UUID, error)

	// FindByIDs lists a user's journals matching the ids, ordered by title
	FindByIDs(userID uuid.UUID, ids []uuid.UUID) ([]models.Journal, error)

	// FindByTagIDs lists a user's journals carrying any of the tags,
	// ordered by title
	FindByTagIDs(userID uuid.UUID, tagIDs []uuid.UUID) ([]models.Journal, error)

	// Update persists changes to a journal
	Update(journal *models.Journal) error

	// ReplaceTags swaps the journal's tag set for the given tags
	ReplaceTags(journal *models.Journal, tagIDs []uuid.UUID) error

	// Delete deletes a journal and its tag associations
	Delete(id uuid.UUID) error
}
