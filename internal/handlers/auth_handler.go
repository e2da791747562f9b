package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobhive/jobhive/internal/auth"
	"github.com/jobhive/jobhive/internal/dtos"
	"github.com/jobhive/jobhive/internal/services"
)

type AuthHandler struct {
	Users *services.UserService
	Codec *auth.Codec
}

func NewAuthHandler(users *services.UserService, codec *auth.Codec) *AuthHandler {
	return &AuthHandler{Users: users, Codec: codec}
}

// Register is POST /auth/register. Self-registration never grants the
// admin flag.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := bindJSON(c, &req); err != nil {
		renderError(c, err)
		return
	}
	user, err := h.Users.Create(c.Request.Context(), &dtos.UserCreateRequest{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		renderError(c, err)
		return
	}
	token, err := h.Codec.SignToken(auth.Identity{Username: user.Username, IsAdmin: user.IsAdmin})
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": token})
}

// Login is POST /auth/token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := bindJSON(c, &req); err != nil {
		renderError(c, err)
		return
	}
	user, err := h.Users.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		renderError(c, err)
		return
	}
	token, err := h.Codec.SignToken(auth.Identity{Username: user.Username, IsAdmin: user.IsAdmin})
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
