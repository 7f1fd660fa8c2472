package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/journalapp/journal-api/internal/models"
)

// TagDTO represents a tag in API responses. TaggedJournals is the number of
// journals carrying the tag and requires the Journals relation to be loaded.
type TagDTO struct {
	ID             uuid.UUID `json:"id"`
	User           uuid.UUID `json:"user"`
	Name           string    `json:"name"`
	DateCreated    time.Time `json:"date_created"`
	TaggedJournals int       `json:"tagged_journals"`
}

// ToTagDTO converts a Tag model to TagDTO.
func ToTagDTO(tag models.Tag) TagDTO {
	return TagDTO{
		ID:             tag.ID,
		User:           tag.UserID,
		Name:           tag.Name,
		DateCreated:    tag.DateCreated,
		TaggedJournals: len(tag.Journals),
	}
}

// ToTagDTOs converts a slice of tags.
func ToTagDTOs(tags []models.Tag) []TagDTO {
	dtos := make([]TagDTO, len(tags))
	for i, tag := range tags {
		dtos[i] = ToTagDTO(tag)
	}
	return dtos
}
