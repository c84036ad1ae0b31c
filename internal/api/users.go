package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/inkwellhq/inkwell/internal/api/objects"
	"github.com/inkwellhq/inkwell/internal/auth"
	"github.com/inkwellhq/inkwell/internal/models"
	"github.com/inkwellhq/inkwell/pkg/logging"
)

// UserHandler handles registration and login
type UserHandler struct {
	users  UserStore
	auth   *auth.Service
	logger *zap.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(users UserStore, authService *auth.Service) *UserHandler {
	return &UserHandler{
		users:  users,
		auth:   authService,
		logger: logging.WithComponent("users"),
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Register handles POST /api/users/register
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, NewValidationError("malformed request body"), nil)
		return
	}
	if req.Email == "" || req.Username == "" || req.Password == "" {
		respondError(c, NewValidationError("email, username and password are required"), nil)
		return
	}

	role := models.RoleUser
	if req.Role != "" {
		role = models.Role(req.Role)
		if !role.Valid() {
			respondError(c, NewValidationError("unknown role"), nil)
			return
		}
	}

	hash, err := h.auth.HashPassword(req.Password)
	if err != nil {
		respondError(c, NewServerError("failed to register user"), err)
		return
	}

	user := &models.User{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: hash,
		Role:         role,
	}
	if err := h.users.Create(c.Request.Context(), user); err != nil {
		respondError(c, FromDatabase(err, "failed to register user"), err)
		return
	}

	h.logger.Info("user registered", zap.Int64("user_id", user.ID), zap.String("username", user.Username))
	c.JSON(http.StatusCreated, objects.NewUser(user))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/users/login
func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, NewValidationError("malformed request body"), nil)
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(c, NewValidationError("email and password are required"), nil)
		return
	}

	user, err := h.users.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, NewServerError("failed to log in"), err)
		return
	}
	if user == nil || !h.auth.CheckPassword(user.PasswordHash, req.Password) {
		respondError(c, NewAuthError("invalid email or password"), nil)
		return
	}

	token, err := h.auth.IssueToken(user)
	if err != nil {
		respondError(c, NewServerError("failed to log in"), err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  objects.NewUser(user),
	})
}
