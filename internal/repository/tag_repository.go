package repository

import (
	"github.com/google/uuid"
	"github.com/journalapp/journal-api/internal/models"
	"gorm.io/gorm"
)

// GormTagRepository is a GORM implementation of TagRepository
type GormTagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new TagRepository
func NewTagRepository(db *gorm.DB) TagRepository {
	return &GormTagRepository{db: db}
}

// Create creates a new tag
func (r *GormTagRepository) Create(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

// FindByID finds a tag by ID with its journals loaded
func (r *GormTagRepository) FindByID(id uuid.UUID) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.Preload("Journals").Where("id = ?", id).First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// FindByName finds a tag by exact name across all users
func (r *GormTagRepository) FindByName(name string) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.Where("name = ?", name).First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// FindByNameForUser finds a tag by exact name owned by a user
func (r *GormTagRepository) FindByNameForUser(name string, userID uuid.UUID) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.Where("name = ? AND user_id = ?", name, userID).First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// ListAll lists every tag ordered by name
func (r *GormTagRepository) ListAll() ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.Preload("Journals").Order("name").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// ListByUser lists a user's tags ordered by name
func (r *GormTagRepository) ListByUser(userID uuid.UUID) ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.Preload("Journals").
		Where("user_id = ?", userID).
		Order("name").
		Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// SearchByName lists a user's tags whose name contains the token. The token
// must already be lower-cased; LOWER() keeps the match portable across
// dialects.
func (r *GormTagRepository) SearchByName(userID uuid.UUID, token string) ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.
		Where("user_id = ? AND LOWER(name) LIKE ?", userID, "%"+token+"%").
		Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// Update persists changes to a tag
func (r *GormTagRepository) Update(tag *models.Tag) error {
	return r.db.Save(tag).Error
}

// Delete deletes a tag and its journal associations in a transaction
func (r *GormTagRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM journal_tags WHERE tag_id = ?", id).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", id).Delete(&models.Tag{}).Error
	})
}
