package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/journalapp/journal-api/internal/models"
)

// UserDTO is the field subset of a user exposed by the API. The password hash
// and date_created are never serialized.
type UserDTO struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Username      string    `json:"username"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	EmailVerified bool      `json:"email_verified"`
	IsAdmin       bool      `json:"is_admin"`
	LastLogin     time.Time `json:"last_login"`
	Deleted       bool      `json:"deleted"`
}

// ToUserDTO projects a User model onto the exposed field set.
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:            user.ID,
		Email:         user.Email,
		Username:      user.Username,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		EmailVerified: user.EmailVerified,
		IsAdmin:       user.IsAdmin,
		LastLogin:     user.LastLogin,
		Deleted:       user.Deleted,
	}
}

// ToUserDTOs converts a slice of users.
func ToUserDTOs(users []models.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i, user := range users {
		dtos[i] = ToUserDTO(user)
	}
	return dtos
}
