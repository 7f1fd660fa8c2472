package repository

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/journalapp/journal-api/internal/models"
	"gorm.io/gorm"
)

// GormJournalRepository is a GORM implementation of JournalRepository
type GormJournalRepository struct {
	db *gorm.DB
}

// NewJournalRepository creates a new JournalRepository
func NewJournalRepository(db *gorm.DB) JournalRepository {
	return &GormJournalRepository{db: db}
}

// Create creates a new journal and attaches the given tags in a transaction
func (r *GormJournalRepository) Create(journal *models.Journal, tagIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(journal).Error; err != nil {
			return err
		}

		if len(tagIDs) == 0 {
			return nil
		}

		var tags []models.Tag
		if err := tx.Where("id IN ?", tagIDs).Find(&tags).Error; err != nil {
			return err
		}

		return tx.Model(journal).Association("Tags").Append(&tags)
	})
}

// FindByID finds a journal by ID with tags and their journals loaded
func (r *GormJournalRepository) FindByID(id uuid.UUID) (*models.Journal, error) {
	var journal models.Journal
	if err := r.db.Preload("Tags.Journals").Where("id = ?", id).First(&journal).Error; err != nil {
		return nil, err
	}
	return &journal, nil
}

// ListAll lists every journal
func (r *GormJournalRepository) ListAll() ([]models.Journal, error) {
	var journals []models.Journal
	if err := r.db.Preload("Tags.Journals").Find(&journals).Error; err != nil {
		return nil, err
	}
	return journals, nil
}

// ListByUser lists a user's journals ordered by title
func (r *GormJournalRepository) ListByUser(userID uuid.UUID) ([]models.Journal, error) {
	var journals []models.Journal
	if err := r.db.Preload("Tags.Journals").
		Where("user_id = ?", userID).
		Order("title").
		Find(&journals).Error; err != nil {
		return nil, err
	}
	return journals, nil
}

// FindByDay lists a user's journals created on the given UTC calendar day,
// regardless of time-of-day, ordered by title
func (r *GormJournalRepository) FindByDay(userID uuid.UUID, day time.Time) ([]models.Journal, error) {
	startOfDay := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	endOfDay := startOfDay.Add(24 * time.Hour)

	var journals []models.Journal
	if err := r.db.Preload("Tags.Journals").
		Where("user_id = ? AND date_created >= ? AND date_created < ?", userID, startOfDay, endOfDay).
		Order("title").
		Find(&journals).Error; err != nil {
		return nil, err
	}
	return journals, nil
}

// SearchKeyword returns ids of a user's journals whose title or content
// contains the token. The token must already be lower-cased.
func (r *GormJournalRepository) SearchKeyword(userID uuid.UUID, field, token string) ([]uuid.UUID, error) {
	var column string
	switch field {
	case "title":
		column = "LOWER(title)"
	case "content":
		column = "LOWER(content)"
	default:
		return nil, fmt.Errorf("unsupported search field: %s", field)
	}

	var ids []uuid.UUID
	if err := r.db.Model(&models.Journal{}).
		Where("user_id = ? AND "+column+" LIKE ?", userID, "%"+token+"%").
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// FindByIDs lists a user's journals matching the ids, ordered by title
func (r *GormJournalRepository) FindByIDs(userID uuid.UUID, ids []uuid.UUID) ([]models.Journal, error) {
	if len(ids) == 0 {
		return []models.Journal{}, nil
	}

	var journals []models.Journal
	if err := r.db.Preload("Tags.Journals").
		Where("user_id = ? AND id IN ?", userID, ids).
		Order("title").
		Find(&journals).Error; err != nil {
		return nil, err
	}
	return journals, nil
}

// FindByTagIDs lists a user's journals carrying any of the tags, ordered by title
func (r *GormJournalRepository) FindByTagIDs(userID uuid.UUID, tagIDs []uuid.UUID) ([]models.Journal, error) {
	if len(tagIDs) == 0 {
		return []models.Journal{}, nil
	}

	var journals []models.Journal
	if err := r.db.Preload("Tags.Journals").
		Joins("JOIN journal_tags ON journal_tags.journal_id = journals.id").
		Where("journals.user_id = ? AND journal_tags.tag_id IN ?", userID, tagIDs).
		Distinct("journals.*").
		Order("journals.title").
		Find(&journals).Error; err != nil {
		return nil, err
	}
	return journals, nil
}

// Update persists changes to a journal
func (r *GormJournalRepository) Update(journal *models.Journal) error {
	return r.db.Omit("Tags").Save(journal).Error
}

// ReplaceTags swaps the journal's tag set for the given tags
func (r *GormJournalRepository) ReplaceTags(journal *models.Journal, tagIDs []uuid.UUID) error {
	var tags []models.Tag
	if err := r.db.Where("id IN ?", tagIDs).Find(&tags).Error; err != nil {
		return err
	}

	return r.db.Model(journal).Association("Tags").Replace(&tags)
}

// Delete deletes a journal and its tag associations in a transaction
func (r *GormJournalRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM journal_tags WHERE journal_id = ?", id).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", id).Delete(&models.Journal{}).Error
	})
}
