package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/journalapp/journal-api/internal/dto"
	"github.com/journalapp/journal-api/internal/responses"
	"github.com/journalapp/journal-api/internal/services"
)

func newTagRouter(env testEnv) *gin.Engine {
	r := gin.New()
	tags := r.Group("/dashboard/tags")
	tags.POST("/add_tag", env.tagHandler.AddTag)
	tags.GET("", env.tagHandler.List)
	tags.POST("/user_tags", env.tagHandler.UserTags)
	tags.POST("/get_tag", env.tagHandler.GetTag)
	tags.POST("/check_name", env.tagHandler.CheckName)
	tags.PATCH("/update_tag", env.tagHandler.UpdateTag)
	tags.DELETE("/remove_tag", env.tagHandler.RemoveTag)
	return r
}

func TestTagHandler_AddTag_TitleCasesName(t *testing.T) {
	env := setupTestEnv(t)
	r := newTagRouter(env)

	user := createTestUser(t, env, "jane@example.com", "janedoe")

	w := performJSON(t, r, http.MethodPost, "/dashboard/tags/add_tag", map[string]interface{}{
		"user": user.ID.String(),
		"name": "travel log",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var id uuid.UUID
	detailOf(t, w, &id)

	tag, err := env.tagService.Get(id)
	require.NoError(t, err)
	require.Equal(t, "Travel Log", tag.Name)
	require.Zero(t, tag.DateCreated.Nanosecond())
}

func TestTagHandler_AddTag_DuplicateName(t *testing.T) {
	env := setupTestEnv(t)
	r := newTagRouter(env)

	user := createTestUser(t, env, "jane@example.com", "janedoe")
	other := createTestUser(t, env, "john@example.com", "johndoe")

	_, err := env.tagService.Create(services.CreateTagInput{UserID: user.ID, Name: "Travel"})
	require.NoError(t, err)

	// Uniqueness is global, so another user's identical name is rejected too
	w := performJSON(t, r, http.MethodPost, "/dashboard/tags/add_tag", map[string]interface{}{
		"user": other.ID.String(),
		"name": "travel",
	})

	require.Equal(t, http.StatusMultiStatus, w.Code)
	require.Equal(t, responses.CreateTagFailed, detailString(t, w))
}

func TestTagHandler_AddTag_UnknownOwner(t *testing.T) {
	env := setupTestEnv(t)
	r := newTagRouter(env)

	w := performJSON(t, r, http.MethodPost, "/dashboard/tags/add_tag", map[string]interface{}{
		"user": uuid.NewString(),
		"name": "travel",
	})

	require.Equal(t, http.StatusMultiStatus, w.Code)
	require.Equal(t, responses.CreateTagFailed, detailString(t, w))
}

func TestTagHandler_List_OrderedByName(t *testing.T) {
	env := setupTestEnv(t)
	r := newTagRouter(env)

	user := createTestUser(t, env, "jane@example.com", "janedoe")
	for _, name := range []string{"Zebra", "Alpha", "Middle"} {
		_, err := env.tagService.Create(services.CreateTagInput{UserID: user.ID, Name: name})
		require.NoError(t, err)
	}

	w := performJSON(t, r, http.MethodGet, "/dashboard/tags", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var tags []dto.TagDTO
	detailOf(t, w, &tags)
	require.Len(t, tags, 3)
	require.Equal(t, "Alpha", tags[0].Name)
	require.Equal(t, "Middle", tags[1].Name)
	require.Equal(t, "Zebra", tags[2].Name)
}

func TestTagHandler_List_Empty(t *testing.T) {
	env := setupTestEnv(t)
	r := newTagRouter(env)

	w := performJSON(t, r, http.MethodGet, "/dashboard/tags", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, responses.NoTagFound, detailString(t, w))
}

func TestTagHandler_UserTags(t *testing.T) {
	env := setupTestEnv(t)
	r := newTagRouter(env)

	user := createTestUser(t, env, "jane@example.com", "janedoe")
	other := createTestUser(t, env, "john@example.com", "johndoe")

	_, err := env.tagService.Create(services.CreateTagInput{UserID: user.ID, Name: "Mine"})
	require.NoError(t, err)
	_, err = env.tagService.Create(services.CreateTagInput{UserID: other.ID, Name: "Theirs"})
	require.NoError(t, err)

	w := performJSON(t, r, http.MethodPost, "/dashboard/tags/user_tags", map[string]interface{}{
		"user": user.ID.String(),
	})

	require.Equal(t, http.StatusOK, w.Code)

	var tags []dto.TagDTO
	detailOf(t, w, &tags)
	require.Len(t, tags, 1)
	require.Equal(t, "Mine", tags[0].Name)

	// Missing user key is a malformed request
	w = performJSON(t, r, http.MethodPost, "/dashboard/tags/user_tags", map[string]interface{}{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, responses.InvalidRequestBody, detailString(t, w))
}

func TestTagHandler_GetTag_CountsTaggedJournals(t *testing.T) {
	env := setupTestEnv(t)
	r := newTagRouter(env)

	user := createTestUser(t, env, "jane@example.com", "janedoe")
	tag, err := env.tagService.Create(services.CreateTagInput{UserID: user.ID, Name: "Travel"})
	require.NoError(t, err)

	for _, title := range []string{"first trip", "second trip"} {
		_, err := env.journalService.Create(services.CreateJournalInput{
			UserID:  user.ID,
			Title:   title,
			Content: "some words",
			TagList: []uuid.UUID{tag.ID},
		})
		require.NoError(t, err)
	}

	w := performJSON(t, r, http.MethodPost, "/dashboard/tags/get_tag", map[string]interface{}{
		"tag_id": tag.ID.String(),
	})

	require.Equal(t, http.StatusOK, w.Code)

	var got dto.TagDTO
	detailOf(t, w, &got)
	require.Equal(t, tag.ID, got.ID)
	require.Equal(t, 2, got.TaggedJournals)
}

func TestTagHandler_GetTag_NotFound(t *testing.T) {
	env := setupTestEnv(t)
	r := newTagRouter(env)

	w := performJSON(t, r, http.MethodPost, "/dashboard/tags/get_tag", map[string]interface{}{
		"tag_id": uuid.NewString(),
	})

	require.Equal(t, http.StatusMultiStatus, w.Code)
	require.Equal(t, responses.NoTagFound, detailString(t, w))
}

func TestTagHandler_CheckName(t *testing.T) {
	env := setupTestEnv(t)
	r := newTagRouter(env)

	user := createTestUser(t, env, "jane@example.com", "janedoe")
	_, err := env.tagService.Create(services.CreateTagInput{UserID: user.ID, Name: "Travel"})
	require.NoError(t, err)

	w := performJSON(t, r, http.MethodPost, "/dashboard/tags/check_name", map[string]interface{}{
		"tag_name": "Travel",
		"user":     user.ID.String(),
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, responses.TagExists, detailString(t, w))

	w = performJSON(t, r, http.MethodPost, "/dashboard/tags/check_name", map[string]interface{}{
		"tag_name": "Cooking",
		"user":     user.ID.String(),
	})
	require.Equal(t, http.StatusMultiStatus, w.Code)
	require.Equal(t, responses.NoTagFound, detailString(t, w))
}

func TestTagHandler_UpdateTag(t *testing.T) {
	env := setupTestEnv(t)
	r := newTagRouter(env)

	user := createTestUser(t, env, "jane@example.com", "janedoe")
	tag, err := env.tagService.Create(services.CreateTagInput{UserID: user.ID, Name: "Travel"})
	require.NoError(t, err)

	w := performJSON(t, r, http.MethodPatch, "/dashboard/tags/update_tag", map[string]interface{}{
		"tag_id": tag.ID.String(),
		"name":   "city breaks",
	})

	require.Equal(t, http.StatusOK, w.Code)

	updated, err := env.tagService.Get(tag.ID)
	require.NoError(t, err)
	require.Equal(t, "City Breaks", updated.Name)
}

func TestTagHandler_UpdateTag_RejectsDateCreated(t *testing.T) {
	env := setupTestEnv(t)
	r := newTagRouter(env)

	user := createTestUser(t, env, "jane@example.com", "janedoe")
	tag, err := env.tagService.Create(services.CreateTagInput{UserID: user.ID, Name: "Travel"})
	require.NoError(t, err)

	w := performJSON(t, r, http.MethodPatch, "/dashboard/tags/update_tag", map[string]interface{}{
		"tag_id":       tag.ID.String(),
		"name":         "other",
		"date_created": "2024-01-01T00:00:00Z",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, responses.InvalidRequestBody, detailString(t, w))
}

func TestTagHandler_RemoveTag(t *testing.T) {
	env := setupTestEnv(t)
	r := newTagRouter(env)

	user := createTestUser(t, env, "jane@example.com", "janedoe")
	tag, err := env.tagService.Create(services.CreateTagInput{UserID: user.ID, Name: "Travel"})
	require.NoError(t, err)

	w := performJSON(t, r, http.MethodDelete, "/dashboard/tags/remove_tag", map[string]interface{}{
		"tag_id": tag.ID.String(),
	})

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, responses.TagDeleted, detailString(t, w))

	_, err = env.tagService.Get(tag.ID)
	require.ErrorIs(t, err, services.ErrTagNotFound)
}
