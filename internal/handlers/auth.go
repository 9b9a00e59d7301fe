package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/workflow-hq/workflow-api/internal/constants"
	"github.com/workflow-hq/workflow-api/internal/dto"
	apierrors "github.com/workflow-hq/workflow-api/internal/errors"
	"github.com/workflow-hq/workflow-api/internal/middleware"
	"github.com/workflow-hq/workflow-api/internal/models"
	"github.com/workflow-hq/workflow-api/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Signup registers a new employee account, pending admin approval.
func (h *AuthHandler) Signup(c *gin.Context) {
	type SignupRequest struct {
		FirstName       string `json:"first_name" binding:"required,max=100"`
		LastName        string `json:"last_name" binding:"required,max=100"`
		Username        string `json:"username" binding:"required,min=3,max=50"`
		Password        string `json:"password" binding:"required"`
		ConfirmPassword string `json:"confirm_password" binding:"required"`
		Email           string `json:"email" binding:"required"`
		Mobile          string `json:"mobile" binding:"required"`
		OrganizationID  string `json:"organization_id" binding:"required"`
	}

	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	employee, err := h.authService.Signup(services.SignupInput{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Username:         req.Username,
		Password:         req.Password,
		ConfirmPassword:  req.ConfirmPassword,
		Email:            req.Email,
		Mobile:           req.Mobile,
		OrganizationSlug: req.OrganizationID,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Registration is pending admin approval",
		"employee": dto.ToEmployeeDTO(*employee),
	})
}

// Login authenticates an admin or employee and initializes the session.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		UsernameOrID string `json:"username_or_id" binding:"required"`
		Password     string `json:"password" binding:"required"`
		Role         string `json:"role" binding:"required,oneof=admin employee"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	actor, err := h.authService.Login(services.LoginInput{
		UsernameOrID: req.UsernameOrID,
		Password:     req.Password,
		Role:         models.Role(req.Role),
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	session := sessions.Default(c)
	session.Set(constants.ContextKeyUserID, actor.UserID())
	session.Set(constants.ContextKeyUserRole, string(actor.Role))
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	c.JSON(http.StatusOK, dto.ToActorDTO(actor))
}

// Logout removes the authentication session. Never fails for the caller.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to logout")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// GetCurrentUser returns the authenticated actor.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	c.JSON(http.StatusOK, dto.ToActorDTO(actor))
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.UnauthorizedWithCode(c, apierrors.ErrCodeInvalidCredentials, err.Error())
	case errors.Is(err, services.ErrAccountNotApproved):
		apierrors.ForbiddenWithCode(c, apierrors.ErrCodeAccountNotApproved, err.Error())
	case errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrEmailTaken):
		apierrors.ConflictWithCode(c, apierrors.ErrCodeAlreadyExists, err.Error())
	case errors.Is(err, services.ErrPasswordsMismatch),
		errors.Is(err, services.ErrInvalidEmailFormat),
		errors.Is(err, services.ErrInvalidMobileFormat),
		errors.Is(err, services.ErrUnknownOrganization):
		apierrors.BadRequestWithCode(c, apierrors.ErrCodeInvalidFormat, err.Error())
	case errors.Is(err, services.ErrPasswordTooShort):
		apierrors.BadRequest(c, fmt.Sprintf("Password must be at least %d characters", constants.MinPasswordLength))
	case errors.Is(err, services.ErrActorNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
