package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tag is a user-owned label attached to journals. Names are unique across all
// users even though lookups are user-scoped.
type Tag struct {
	ID          uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID      uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user"`
	Name        string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	DateCreated time.Time `gorm:"not null" json:"date_created"`

	// Relations
	User     User      `gorm:"foreignKey:UserID" json:"-"`
	Journals []Journal `gorm:"many2many:journal_tags;" json:"-"`
}

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
