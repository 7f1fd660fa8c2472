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

// TagHandler handles requests to the 'dashboard/tags' routes.
type TagHandler struct {
	tagService *services.TagService
}

// NewTagHandler creates a new TagHandler.
func NewTagHandler(tagService *services.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

// AddTag handles POST /dashboard/tags/add_tag.
func (h *TagHandler) AddTag(c *gin.Context) {
	type AddTagRequest struct {
		User string `json:"user"`
		Name string `json:"name"`
	}

	var req AddTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Detail(c, http.StatusBadRequest, responses.InvalidRequestBody)
		return
	}

	// A missing or malformed owner id fails validation like any other field
	userID, err := uuid.Parse(req.User)
	if err != nil {
		responses.Detail(c, http.StatusMultiStatus, responses.CreateTagFailed)
		return
	}

	tag, err := h.tagService.Create(services.CreateTagInput{
		UserID: userID,
		Name:   req.Name,
	})
	if err != nil {
		if errors.Is(err, services.ErrTagValidation) {
			responses.Detail(c, http.StatusMultiStatus, responses.CreateTagFailed)
			return
		}
		responses.Detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	responses.Detail(c, http.StatusOK, tag.ID)
}

// List handles GET /dashboard/tags.
func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.tagService.ListAll()
	if err != nil {
		if errors.Is(err, services.ErrTagNotFound) {
			responses.Detail(c, http.StatusNotFound, responses.NoTagFound)
			return
		}
		responses.Detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	responses.Detail(c, http.StatusOK, dto.ToTagDTOs(tags))
}

// UserTags handles POST /dashboard/tags/user_tags.
func (h *TagHandler) UserTags(c *gin.Context) {
	type UserTagsRequest struct {
		User string `json:"user" binding:"required"`
	}

	var req UserTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Detail(c, http.StatusBadRequest, responses.InvalidRequestBody)
		return
	}

	userID, err := uuid.Parse(req.User)
	if err != nil {
		responses.Detail(c, http.StatusBadRequest, responses.InvalidRequestBody)
		return
	}

	tags, err := h.tagService.ListByUser(userID)
	if err != nil {
		if errors.Is(err, services.ErrTagNotFound) {
			responses.Detail(c, http.StatusMultiStatus, responses.NoTagFound)
			return
		}
		responses.Detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	responses.Detail(c, http.StatusOK, dto.ToTagDTOs(tags))
}

// GetTag handles POST /dashboard/tags/get_tag.
func (h *TagHandler) GetTag(c *gin.Context) {
	type GetTagRequest struct {
		TagID string `json:"tag_id" binding:"required"`
	}

	var req GetTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Detail(c, http.StatusBadRequest, responses.InvalidRequestBody)
		return
	}

	tagID, err := uuid.Parse(req.TagID)
	if err != nil {
		responses.Detail(c, http.StatusBadRequest, responses.InvalidRequestBody)
		return
	}

	tag, err := h.tagService.Get(tagID)
	if err != nil {
		if errors.Is(err, services.ErrTagNotFound) {
			responses.Detail(c, http.StatusMultiStatus, responses.NoTagFound)
			return
		}
		responses.Detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	responses.Detail(c, http.StatusOK, dto.ToTagDTO(*tag))
}

// CheckName handles POST /dashboard/tags/check_name. The name is matched
// exactly as stored (tag names are title-cased on write).
func (h *TagHandler) CheckName(c *gin.Context) {
	type CheckNameRequest struct {
		TagName string `json:"tag_name" binding:"required"`
		User    string `json:"user" binding:"required"`
	}

	var req CheckNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Detail(c, http.StatusBadRequest, responses.InvalidRequestBody)
		return
	}

	userID, err := uuid.Parse(req.User)
	if err != nil {
		responses.Detail(c, http.StatusBadRequest, responses.InvalidRequestBody)
		return
	}

	if err := h.tagService.CheckName(req.TagName, userID); err != nil {
		if errors.Is(err, services.ErrTagNotFound) {
			responses.Detail(c, http.StatusMultiStatus, responses.NoTagFound)
			return
		}
		responses.Detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	responses.Detail(c, http.StatusOK, responses.TagExists)
}

// UpdateTag handles PATCH /dashboard/tags/update_tag. date_created is
// immutable and its presence in the payload rejects the request.
func (h *TagHandler) UpdateTag(c *gin.Context) {
	type UpdateTagRequest struct {
		TagID       string  `json:"tag_id" binding:"required"`
		Name        *string `json:"name"`
		DateCreated *string `json:"date_created"`
	}

	var req UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Detail(c, http.StatusBadRequest, responses.InvalidRequestBody)
		return
	}

	if req.DateCreated != nil {
		responses.Detail(c, http.StatusBadRequest, responses.InvalidRequestBody)
		return
	}

	tagID, err := uuid.Parse(req.TagID)
	if err != nil {
		responses.Detail(c, http.StatusBadRequest, responses.InvalidRequestBody)
		return
	}

	tag, err := h.tagService.Update(tagID, services.UpdateTagInput{Name: req.Name})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTagNotFound):
			responses.Detail(c, http.StatusMultiStatus, responses.NoTagFound)
		case errors.Is(err, services.ErrTagValidation):
			responses.Detail(c, http.StatusBadRequest, responses.TagUpdateFailed)
		default:
			responses.Detail(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	responses.Detail(c, http.StatusOK, tag.ID)
}

// RemoveTag handles DELETE /dashboard/tags/remove_tag.
func (h *TagHandler) RemoveTag(c *gin.Context) {
	type RemoveTagRequest struct {
		TagID string `json:"tag_id" binding:"required"`
	}

	var req RemoveTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Detail(c, http.StatusBadRequest, responses.InvalidRequestBody)
		return
	}

	tagID, err := uuid.Parse(req.TagID)
	if err != nil {
		responses.Detail(c, http.StatusBadRequest, responses.InvalidRequestBody)
		return
	}

	if err := h.tagService.Delete(tagID); err != nil {
		if errors.Is(err, services.ErrTagNotFound) {
			responses.Detail(c, http.StatusMultiStatus, responses.NoTagFound)
			return
		}
		responses.Detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	responses.Detail(c, http.StatusOK, responses.TagDeleted)
}
