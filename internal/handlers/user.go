package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/journalapp/journal-api/internal/dto"
	"github.com/journalapp/journal-api/internal/responses"
	"github.com/journalapp/journal-api/internal/services"
)

// UserHandler handles requests to the 'login/users' routes.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Create handles POST /login/users. Timestamps and the deleted flag are
// server-controlled; validation failure is a business-level outcome (207).
func (h *UserHandler) Create(c *gin.Context) {
	type CreateUserRequest struct {
		Email         string `json:"email"`
		Username      string `json:"username"`
		FirstName     string `json:"first_name"`
		LastName      string `json:"last_name"`
		Password      string `json:"password"`
		EmailVerified bool   `json:"email_verified"`
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Detail(c, http.StatusBadRequest, responses.InvalidRequestBody)
		return
	}

	user, err := h.userService.Create(services.CreateUserInput{
		Email:         req.Email,
		Username:      req.Username,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Password:      req.Password,
		EmailVerified: req.EmailVerified,
	})
	if err != nil {
		if errors.Is(err, services.ErrUserValidation) {
			responses.Detail(c, http.StatusMultiStatus, responses.CreateUserFailed)
			return
		}
		responses.Detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	responses.Detail(c, http.StatusOK, user.ID)
}

// List handles GET /login/users. Soft-deleted users are excluded.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.ListActive()
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			responses.Detail(c, http.StatusNotFound, responses.NoUserFound)
			return
		}
		responses.Detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	responses.Detail(c, http.StatusOK, dto.ToUserDTOs(users))
}

// Retrieve handles GET /login/users/:id.
func (h *UserHandler) Retrieve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		responses.Detail(c, http.StatusNotFound, responses.NoUserFound)
		return
	}

	user, err := h.userService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			responses.Detail(c, http.StatusNotFound, responses.NoUserFound)
			return
		}
		responses.Detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	if user.Deleted {
		responses.Detail(c, http.StatusNotFound, responses.UserDeleted)
		return
	}

	responses.Detail(c, http.StatusOK, dto.ToUserDTO(*user))
}

// PartialUpdate handles PATCH /login/users/:id. Supplying date_created is
// rejected outright; a soft-deleted user can only be updated by a payload
// that explicitly clears the flag.
func (h *UserHandler) PartialUpdate(c *gin.Context) {
	type UpdateUserRequest struct {
		Email         *string    `json:"email"`
		Username      *string    `json:"username"`
		FirstName     *string    `json:"first_name"`
		LastName      *string    `json:"last_name"`
		Password      *string    `json:"password"`
		EmailVerified *bool      `json:"email_verified"`
		IsAdmin       *bool      `json:"is_admin"`
		Deleted       *bool      `json:"deleted"`
		LastLogin     *time.Time `json:"last_login"`
		DateCreated   *string    `json:"date_created"`
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		responses.Detail(c, http.StatusNotFound, responses.NoUserFound)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Detail(c, http.StatusBadRequest, responses.InvalidRequestBody)
		return
	}

	if req.DateCreated != nil {
		responses.Detail(c, http.StatusBadRequest, responses.InvalidRequestBody)
		return
	}

	user, err := h.userService.Update(id, services.UpdateUserInput{
		Email:         req.Email,
		Username:      req.Username,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Password:      req.Password,
		EmailVerified: req.EmailVerified,
		IsAdmin:       req.IsAdmin,
		Deleted:       req.Deleted,
		LastLogin:     req.LastLogin,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			responses.Detail(c, http.StatusNotFound, responses.NoUserFound)
		case errors.Is(err, services.ErrUserDeleted):
			responses.Detail(c, http.StatusNotFound, responses.UserDeleted)
		case errors.Is(err, services.ErrUserValidation):
			responses.Detail(c, http.StatusBadRequest, responses.UserUpdateFailed)
		default:
			responses.Detail(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	responses.Detail(c, http.StatusOK, user.ID)
}

// Remove handles DELETE /login/users/:id. This is a hard delete that cascades
// to the user's tags and journals.
func (h *UserHandler) Remove(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		responses.Detail(c, http.StatusNotFound, responses.NoUserFound)
		return
	}

	if err := h.userService.Delete(id); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			responses.Detail(c, http.StatusNotFound, responses.NoUserFound)
			return
		}
		responses.Detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	responses.Detail(c, http.StatusOK, responses.UserDeleted)
}
