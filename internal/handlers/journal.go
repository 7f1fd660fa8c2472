package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/journalapp/journal-api/internal/dto"
	"github.com/journalapp/journal-api/internal/responses"
	"github.com/journalapp/journal-api/internal/services"
)

var validSearchKinds = map[string]struct{}{
	services.SearchKindTitle:   {},
	services.SearchKindContent: {},
	services.SearchKindTags:    {},
	services.SearchKindDate:    {},
}

// JournalHandler handles requests to the 'journal/journals' routes.
type JournalHandler struct {
	journalService *services.JournalService
	exportService  *services.ExportService
}

// NewJournalHandler creates a new JournalHandler.
func NewJournalHandler(journalService *services.JournalService, exportService *services.ExportService) *JournalHandler {
	return &JournalHandler{
		journalService: journalService,
		exportService:  exportService,
	}
}

// AddJournal handles POST /journal/journals/add_journal. tag_list attaches
// existing tags to the new journal.
func (h *JournalHandler) AddJournal(c *gin.Context) {
	type AddJournalRequest struct {
		User    string   `json:"user"`
		Title   string   `json:"title"`
		Content string   `json:"content"`
		TagList []string `json:"tag_list"`
	}

	var req AddJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Detail(c, http.StatusBadRequest, responses.InvalidRequestBody)
		return
	}

	userID, err := uuid.Parse(req.User)
	if err != nil {
		responses.Detail(c, http.StatusMultiStatus, responses.CreateJournalFailed)
		return
	}

	tagIDs, err := parseUUIDs(req.TagList)
	if err != nil {
		responses.Detail(c, http.StatusMultiStatus, responses.CreateJournalFailed)
		return
	}

	journal, err := h.journalService.Create(services.CreateJournalInput{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
		TagList: tagIDs,
	})
	if err != nil {
		if errors.Is(err, services.ErrJournalValidation) {
			responses.Detail(c, http.StatusMultiStatus, responses.CreateJournalFailed)
			return
		}
		responses.Detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	responses.Detail(c, http.StatusOK, journal.ID)
}

// List handles GET /journal/journals.
func (h *JournalHandler) List(c *gin.Context) {
	journals, err := h.journalService.ListAll()
	if err != nil {
		if errors.Is(err, services.ErrJournalNotFound) {
			responses.Detail(c, http.StatusNotFound, responses.NoJournalFound)
			return
		}
		responses.Detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	responses.Detail(c, http.StatusOK, dto.ToJournalDTOs(journals))
}

// UserJournals handles POST /journal/journals/user_journals.
func (h *JournalHandler) UserJournals(c *gin.Context) {
	type UserJournalsRequest struct {
		User string `json:"user" binding:"required"`
	}

	var req UserJournalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Detail(c, http.StatusBadRequest, responses.InvalidRequestBody)
		return
	}

	userID, err := uuid.Parse(req.User)
	if err != nil {
		responses.Detail(c, http.StatusBadRequest, responses.InvalidRequestBody)
		return
	}

	journals, err := h.journalService.ListByUser(userID)
	if err != nil {
		if errors.Is(err, services.ErrJournalNotFound) {
			responses.Detail(c, http.StatusMultiStatus, responses.NoJournalFound)
			return
		}
		responses.Detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	responses.Detail(c, http.StatusOK, dto.ToJournalDTOs(journals))
}

// SearchJournals handles POST /journal/journals/search_journals. The search
// kind must be one of title, content, tags, or date.
func (h *JournalHandler) SearchJournals(c *gin.Context) {
	type SearchJournalsRequest struct {
		User       string  `json:"user" binding:"required"`
		SearchType string  `json:"search_type" binding:"required"`
		SearchText *string `json:"search_text"`
	}

	var req SearchJournalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Detail(c, http.StatusBadRequest, responses.InvalidRequestBody)
		return
	}
	if req.SearchText == nil {
		responses.Detail(c, http.StatusBadRequest, responses.InvalidRequestBody)
		return
	}
	if _, ok := validSearchKinds[req.SearchType]; !ok {
		responses.Detail(c, http.StatusBadRequest, responses.InvalidRequestBody)
		return
	}

	userID, err := uuid.Parse(req.User)
	if err != nil {
		responses.Detail(c, http.StatusBadRequest, responses.InvalidRequestBody)
		return
	}

	journals, err := h.journalService.Search(userID, req.SearchType, *req.SearchText)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidSearch):
			responses.Detail(c, http.StatusBadRequest, responses.InvalidRequestBody)
		case errors.Is(err, services.ErrJournalNotFound):
			responses.Detail(c, http.StatusMultiStatus, responses.NoJournalFound)
		default:
			responses.Detail(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	responses.Detail(c, http.StatusOK, dto.ToJournalDTOs(journals))
}

// GetJournal handles POST /journal/journals/get_journal.
func (h *JournalHandler) GetJournal(c *gin.Context) {
	type GetJournalRequest struct {
		JournalID string `json:"journal_id" binding:"required"`
	}

	var req GetJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Detail(c, http.StatusBadRequest, responses.InvalidRequestBody)
		return
	}

	journalID, err := uuid.Parse(req.JournalID)
	if err != nil {
		responses.Detail(c, http.StatusBadRequest, responses.InvalidRequestBody)
		return
	}

	journal, err := h.journalService.Get(journalID)
	if err != nil {
		if errors.Is(err, services.ErrJournalNotFound) {
			responses.Detail(c, http.StatusMultiStatus, responses.NoJournalFound)
			return
		}
		responses.Detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	responses.Detail(c, http.StatusOK, dto.ToJournalDTO(*journal))
}

// ExportJournal handles POST /journal/journals/export_journal. It renders the
// supplied HTML to PDF and returns the base64 document; nothing is read from
// storage.
func (h *JournalHandler) ExportJournal(c *gin.Context) {
	type ExportJournalRequest struct {
		User        string `json:"user"`
		HTMLContent string `json:"html_content" binding:"required"`
	}

	var req ExportJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Detail(c, http.StatusBadRequest, responses.InvalidRequestBody)
		return
	}

	encoded, err := h.exportService.ExportPDF(req.HTMLContent)
	if err != nil {
		responses.Detail(c, http.StatusBadRequest, responses.ExportFailed)
		return
	}

	responses.Detail(c, http.StatusOK, encoded)
}

// UpdateJournal handles PATCH /journal/journals/update_journal. date_created
// is immutable; a non-empty tag_list replaces the journal's tag set.
func (h *JournalHandler) UpdateJournal(c *gin.Context) {
	type UpdateJournalRequest struct {
		JournalID   string   `json:"journal_id" binding:"required"`
		Title       *string  `json:"title"`
		Content     *string  `json:"content"`
		TagList     []string `json:"tag_list"`
		DateCreated *string  `json:"date_created"`
	}

	var req UpdateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Detail(c, http.StatusBadRequest, responses.InvalidRequestBody)
		return
	}

	if req.DateCreated != nil {
		responses.Detail(c, http.StatusBadRequest, responses.InvalidRequestBody)
		return
	}

	journalID, err := uuid.Parse(req.JournalID)
	if err != nil {
		responses.Detail(c, http.StatusBadRequest, responses.InvalidRequestBody)
		return
	}

	tagIDs, err := parseUUIDs(req.TagList)
	if err != nil {
		responses.Detail(c, http.StatusBadRequest, responses.JournalUpdateFailed)
		return
	}

	journal, err := h.journalService.Update(journalID, services.UpdateJournalInput{
		Title:   req.Title,
		Content: req.Content,
		TagList: tagIDs,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrJournalNotFound):
			responses.Detail(c, http.StatusMultiStatus, responses.NoJournalFound)
		case errors.Is(err, services.ErrJournalValidation):
			responses.Detail(c, http.StatusBadRequest, responses.JournalUpdateFailed)
		default:
			responses.Detail(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	responses.Detail(c, http.StatusOK, journal.ID)
}

// RemoveJournal handles DELETE /journal/journals/remove_journal.
func (h *JournalHandler) RemoveJournal(c *gin.Context) {
	type RemoveJournalRequest struct {
		JournalID string `json:"journal_id" binding:"required"`
	}

	var req RemoveJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Detail(c, http.StatusBadRequest, responses.InvalidRequestBody)
		return
	}

	journalID, err := uuid.Parse(req.JournalID)
	if err != nil {
		responses.Detail(c, http.StatusBadRequest, responses.InvalidRequestBody)
		return
	}

	if err := h.journalService.Delete(journalID); err != nil {
		if errors.Is(err, services.ErrJournalNotFound) {
			responses.Detail(c, http.StatusMultiStatus, responses.NoJournalFound)
			return
		}
		responses.Detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	responses.Detail(c, http.StatusOK, responses.JournalDeleted)
}

func parseUUIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
