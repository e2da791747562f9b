package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jobhive/jobhive/internal/apperr"
	"github.com/jobhive/jobhive/internal/auth"
	"github.com/jobhive/jobhive/internal/dtos"
	"github.com/jobhive/jobhive/internal/services"
)

type UserHandler struct {
	Users *services.UserService
	Codec *auth.Codec
}

func NewUserHandler(users *services.UserService, codec *auth.Codec) *UserHandler {
	return &UserHandler{Users: users, Codec: codec}
}

// Create is POST /users, admin only; unlike self-registration it may
// set the admin flag. Returns the user plus a token for them.
func (h *UserHandler) Create(c *gin.Context) {
	var req dtos.UserCreateRequest
	if err := bindJSON(c, &req); err != nil {
		renderError(c, err)
		return
	}
	user, err := h.Users.Create(c.Request.Context(), &req)
	if err != nil {
		renderError(c, err)
		return
	}
	token, err := h.Codec.SignToken(auth.Identity{Username: user.Username, IsAdmin: user.IsAdmin})
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

// List is GET /users, admin only.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Users.List(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// Get is GET /users/:username, admin or self; applied job ids
// included.
func (h *UserHandler) Get(c *gin.Context) {
	user, jobIDs, err := h.Users.Get(c.Request.Context(), c.Param("username"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "jobs": jobIDs})
}

// Update is PATCH /users/:username, admin or self.
func (h *UserHandler) Update(c *gin.Context) {
	var req dtos.UserUpdateRequest
	if err := bindJSON(c, &req); err != nil {
		renderError(c, err)
		return
	}
	user, err := h.Users.Update(c.Request.Context(), c.Param("username"), &req)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Delete is DELETE /users/:username, admin or self.
func (h *UserHandler) Delete(c *gin.Context) {
	username := c.Param("username")
	if err := h.Users.Delete(c.Request.Context(), username); err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": username})
}

// Apply is POST /users/:username/jobs/:id, admin or self.
func (h *UserHandler) Apply(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		renderError(c, apperr.Validation("job id must be an integer"))
		return
	}
	if err := h.Users.Apply(c.Request.Context(), c.Param("username"), id); err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"applied": id})
}
