package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/journalapp/journal-api/internal/models"
)

// JournalDTO represents a journal in API responses, with its tags nested.
type JournalDTO struct {
	ID          uuid.UUID `json:"id"`
	User        uuid.UUID `json:"user"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	DateCreated time.Time `json:"date_created"`
	Tags        []TagDTO  `json:"tags"`
}

// ToJournalDTO converts a Journal model to JournalDTO.
func ToJournalDTO(journal models.Journal) JournalDTO {
	return JournalDTO{
		ID:          journal.ID,
		User:        journal.UserID,
		Title:       journal.Title,
		Content:     journal.Content,
		DateCreated: journal.DateCreated,
		Tags:        ToTagDTOs(journal.Tags),
	}
}

// ToJournalDTOs converts a slice of journals.
func ToJournalDTOs(journals []models.Journal) []JournalDTO {
	dtos := make([]JournalDTO, len(journals))
	for i, journal := range journals {
		dtos[i] = ToJournalDTO(journal)
	}
	return dtos
}
