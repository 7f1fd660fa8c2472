package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID            uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	Email         string    `gorm:"type:varchar(254);uniqueIndex;not null" json:"email"`
	Username      string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"username"`
	FirstName     string    `gorm:"type:varchar(150);not null" json:"first_name"`
	LastName      string    `gorm:"type:varchar(100);not null" json:"last_name"`
	PasswordHash  string    `gorm:"type:varchar(100);not null" json:"-"`
	EmailVerified bool      `gorm:"not null" json:"email_verified"`
	IsAdmin       bool      `gorm:"not null;default:false" json:"is_admin"`
	Deleted       bool      `gorm:"not null;default:false" json:"deleted"`
	DateCreated   time.Time `gorm:"not null" json:"date_created"`
	LastLogin     time.Time `gorm:"not null" json:"last_login"`

	// Relations
	Tags     []Tag     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Journals []Journal `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate assigns the UUID primary key. The id is immutable after creation.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
