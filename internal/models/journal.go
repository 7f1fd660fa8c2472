package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Journal struct {
	ID          uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID      uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user"`
	Title       string    `gorm:"type:varchar(100);not null" json:"title"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	DateCreated time.Time `gorm:"not null" json:"date_created"`

	// Relations
	User User  `gorm:"foreignKey:UserID" json:"-"`
	Tags []Tag `gorm:"many2many:journal_tags;" json:"tags,omitempty"`
}

func (j *Journal) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}
