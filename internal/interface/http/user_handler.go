package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mesto-app/mesto-api/internal/application"
	"github.com/mesto-app/mesto-api/internal/interface/middleware"
	"github.com/mesto-app/mesto-api/pkg/apperror"
	"github.com/mesto-app/mesto-api/pkg/helpers"
	"github.com/mesto-app/mesto-api/pkg/response"
	"github.com/mesto-app/mesto-api/pkg/validation"
)

type UserHandler struct {
	Svc     *application.UserService
	Logger  *logrus.Logger
	Cookies *helpers.CookieManager
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger, cookies *helpers.CookieManager) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger, Cookies: cookies}
}

type registerRequest struct {
	Name     string `json:"name" binding:"omitempty,min=2,max=30"`
	About    string `json:"about" binding:"omitempty,min=2,max=30"`
	Avatar   string `json:"avatar" binding:"omitempty,photourl"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type updateProfileRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=30"`
	About string `json:"about" binding:"required,min=2,max=30"`
}

type updateAvatarRequest struct {
	Avatar string `json:"avatar" binding:"required,photourl"`
}

type userURI struct {
	UserID string `uri:"userId" binding:"required,uuid"`
}

// Register POST /signup
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.BadRequest(validation.Message(err)))
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Name:     req.Name,
		About:    req.About,
		Avatar:   req.Avatar,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.fail(c, err, "registration failed")
		return
	}
	c.JSON(http.StatusOK, u)
}

// Login POST /signin — sets the session cookie on success.
func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.BadRequest(validation.Message(err)))
		return
	}

	u, token, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(c, err, "login failed")
		return
	}
	h.Cookies.Set(c, token)
	c.JSON(http.StatusOK, gin.H{"message": "Authentication successful", "token": token, "user": u})
}

// Logoff POST /logoff — clears the cookie; tokens are stateless so there is
// nothing to invalidate server-side.
func (h *UserHandler) Logoff(c *gin.Context) {
	h.Cookies.Clear(c)
	response.Message(c, http.StatusOK, "You are logged off")
}

// List GET /users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.fail(c, err, "list users failed")
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetMe GET /users/me
func (h *UserHandler) GetMe(c *gin.Context) {
	u, err := h.Svc.GetByID(c.Request.Context(), c.GetString(middleware.CtxUserIDKey))
	if err != nil {
		h.fail(c, err, "get own info failed")
		return
	}
	c.JSON(http.StatusOK, u)
}

// GetByID GET /users/:userId — the id format check runs before any store
// access.
func (h *UserHandler) GetByID(c *gin.Context) {
	var uri userURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.BadRequest("Invalid user id"))
		return
	}

	u, err := h.Svc.GetByID(c.Request.Context(), uri.UserID)
	if err != nil {
		h.fail(c, err, "get user failed")
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdateProfile PATCH /users/me
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.BadRequest(validation.Message(err)))
		return
	}

	u, err := h.Svc.UpdateProfile(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), req.Name, req.About)
	if err != nil {
		h.fail(c, err, "update profile failed")
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdateAvatar PATCH /users/me/avatar
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	var req updateAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.BadRequest(validation.Message(err)))
		return
	}

	u, err := h.Svc.UpdateAvatar(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), req.Avatar)
	if err != nil {
		h.fail(c, err, "update avatar failed")
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) fail(c *gin.Context, err error, msg string) {
	if apperror.Status(err) >= http.StatusInternalServerError {
		h.Logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error(msg)
	}
	response.Error(c, err)
}
