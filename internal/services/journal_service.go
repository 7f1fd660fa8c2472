package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/journalapp/journal-api/internal/models"
	"github.com/journalapp/journal-api/internal/repository"
	"github.com/journalapp/journal-api/internal/search"
	"gorm.io/gorm"
)

var (
	ErrJournalNotFound   = errors.New("journal not found")
	ErrJournalValidation = errors.New("journal validation failed")
	ErrInvalidSearch     = errors.New("invalid search request")
)

// Search kinds accepted by Search.
const (
	SearchKindTitle   = "title"
	SearchKindContent = "content"
	SearchKindTags    = "tags"
	SearchKindDate    = "date"
)

var searchDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// JournalService handles journal business logic, including the search
// operations.
type JournalService struct {
	journalRepo repository.JournalRepository
	tagRepo     repository.TagRepository
	userRepo    repository.UserRepository
}

// NewJournalService creates a new JournalService
func NewJournalService(journalRepo repository.JournalRepository, tagRepo repository.TagRepository, userRepo repository.UserRepository) *JournalService {
	return &JournalService{
		journalRepo: journalRepo,
		tagRepo:     tagRepo,
		userRepo:    userRepo,
	}
}

// CreateJournalInput holds the client-supplied fields for a new journal.
type CreateJournalInput struct {
	UserID  uuid.UUID
	Title   string
	Content string
	TagList []uuid.UUID
}

// UpdateJournalInput holds the fields a partial update may touch. A non-empty
// TagList replaces the journal's tag set; an empty or absent one leaves it
// untouched.
type UpdateJournalInput struct {
	Title   *string
	Content *string
	TagList []uuid.UUID
}

// Create validates and persists a new journal with its tags attached.
func (s *JournalService) Create(input CreateJournalInput) (*models.Journal, error) {
	if len(input.Title) < 2 || len(input.Title) > 100 {
		return nil, fmt.Errorf("%w: title length", ErrJournalValidation)
	}
	if len(input.Content) < 2 {
		return nil, fmt.Errorf("%w: content length", ErrJournalValidation)
	}

	if _, err := s.userRepo.FindByID(input.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: owning user does not exist", ErrJournalValidation)
		}
		return nil, fmt.Errorf("failed to check user: %w", err)
	}

	journal := &models.Journal{
		UserID:      input.UserID,
		Title:       titleCase(input.Title),
		Content:     input.Content,
		DateCreated: truncateSecond(time.Now()),
	}

	if err := s.journalRepo.Create(journal, input.TagList); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrJournalValidation, err)
	}

	return journal, nil
}

// Get retrieves a journal by ID.
func (s *JournalService) Get(id uuid.UUID) (*models.Journal, error) {
	journal, err := s.journalRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJournalNotFound
		}
		return nil, fmt.Errorf("failed to find journal: %w", err)
	}
	return journal, nil
}

// ListAll returns every journal.
func (s *JournalService) ListAll() ([]models.Journal, error) {
	journals, err := s.journalRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list journals: %w", err)
	}
	if len(journals) == 0 {
		return nil, ErrJournalNotFound
	}
	return journals, nil
}

// ListByUser returns a user's journals ordered by title.
func (s *JournalService) ListByUser(userID uuid.UUID) ([]models.Journal, error) {
	journals, err := s.journalRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list journals: %w", err)
	}
	if len(journals) == 0 {
		return nil, ErrJournalNotFound
	}
	return journals, nil
}

// Search runs one of the four search kinds over a user's journals.
// An unparsable date or unknown kind yields ErrInvalidSearch; a well-formed
// search with no matches yields ErrJournalNotFound.
func (s *JournalService) Search(userID uuid.UUID, kind, text string) ([]models.Journal, error) {
	switch kind {
	case SearchKindDate:
		day, err := parseSearchDate(text)
		if err != nil {
			return nil, ErrInvalidSearch
		}
		return s.searchByDate(userID, day)
	case SearchKindTitle, SearchKindContent:
		return s.searchByKeyword(userID, kind, search.Tokenize(text))
	case SearchKindTags:
		return s.searchByTags(userID, search.Tokenize(text))
	default:
		return nil, ErrInvalidSearch
	}
}

// Update applies a partial update, replacing the tag set when a non-empty
// tag_list is supplied.
func (s *JournalService) Update(id uuid.UUID, input UpdateJournalInput) (*models.Journal, error) {
	journal, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if len(*input.Title) < 2 || len(*input.Title) > 100 {
			return nil, fmt.Errorf("%w: title length", ErrJournalValidation)
		}
		journal.Title = titleCase(*input.Title)
	}
	if input.Content != nil {
		if len(*input.Content) < 2 {
			return nil, fmt.Errorf("%w: content length", ErrJournalValidation)
		}
		journal.Content = *input.Content
	}

	if err := s.journalRepo.Update(journal); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrJournalValidation, err)
	}

	if len(input.TagList) > 0 {
		if err := s.journalRepo.ReplaceTags(journal, input.TagList); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrJournalValidation, err)
		}
	}

	return journal, nil
}

// Delete removes a journal and its tag associations.
func (s *JournalService) Delete(id uuid.UUID) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	if err := s.journalRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete journal: %w", err)
	}
	return nil
}

func (s *JournalService) searchByDate(userID uuid.UUID, day time.Time) ([]models.Journal, error) {
	journals, err := s.journalRepo.FindByDay(userID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to search journals by date: %w", err)
	}
	if len(journals) == 0 {
		return nil, ErrJournalNotFound
	}
	return journals, nil
}

func (s *JournalService) searchByKeyword(userID uuid.UUID, field string, tokens []string) ([]models.Journal, error) {
	matched := map[uuid.UUID]struct{}{}
	for _, token := range tokens {
		ids, err := s.journalRepo.SearchKeyword(userID, field, token)
		if err != nil {
			return nil, fmt.Errorf("failed to search journals: %w", err)
		}
		for _, id := range ids {
			matched[id] = struct{}{}
		}
	}
	if len(matched) == 0 {
		return nil, ErrJournalNotFound
	}

	ids := make([]uuid.UUID, 0, len(matched))
	for id := range matched {
		ids = append(ids, id)
	}

	journals, err := s.journalRepo.FindByIDs(userID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load journals: %w", err)
	}
	if len(journals) == 0 {
		return nil, ErrJournalNotFound
	}
	return journals, nil
}

func (s *JournalService) searchByTags(userID uuid.UUID, tokens []string) ([]models.Journal, error) {
	matched := map[uuid.UUID]struct{}{}
	for _, token := range tokens {
		tags, err := s.tagRepo.SearchByName(userID, token)
		if err != nil {
			return nil, fmt.Errorf("failed to search tags: %w", err)
		}
		for _, tag := range tags {
			matched[tag.ID] = struct{}{}
		}
	}
	if len(matched) == 0 {
		return nil, ErrJournalNotFound
	}

	tagIDs := make([]uuid.UUID, 0, len(matched))
	for id := range matched {
		tagIDs = append(tagIDs, id)
	}

	journals, err := s.journalRepo.FindByTagIDs(userID, tagIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load journals: %w", err)
	}
	if len(journals) == 0 {
		return nil, ErrJournalNotFound
	}
	return journals, nil
}

func parseSearchDate(text string) (time.Time, error) {
	for _, layout := range searchDateLayouts {
		if day, err := time.Parse(layout, text); err == nil {
			return day.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable date: %q", text)
}
