package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mesto-app/mesto-api/internal/application"
	"github.com/mesto-app/mesto-api/internal/interface/middleware"
	"github.com/mesto-app/mesto-api/pkg/apperror"
	"github.com/mesto-app/mesto-api/pkg/response"
	"github.com/mesto-app/mesto-api/pkg/validation"
)

type CardHandler struct {
	Svc    *application.CardService
	Logger *logrus.Logger
}

func NewCardHandler(svc *application.CardService, logger *logrus.Logger) *CardHandler {
	return &CardHandler{Svc: svc, Logger: logger}
}

type createCardRequest struct {
	Name string `json:"name" binding:"required,min=2,max=30"`
	Link string `json:"link" binding:"required,photourl"`
}

type cardURI struct {
	CardID string `uri:"cardId" binding:"required,uuid"`
}

// List GET /cards
func (h *CardHandler) List(c *gin.Context) {
	cards, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.fail(c, err, "list cards failed")
		return
	}
	c.JSON(http.StatusOK, cards)
}

// Create POST /cards — owner comes from the session, never the payload.
func (h *CardHandler) Create(c *gin.Context) {
	var req createCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.BadRequest(validation.Message(err)))
		return
	}

	card, err := h.Svc.Create(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), req.Name, req.Link)
	if err != nil {
		h.fail(c, err, "create card failed")
		return
	}
	c.JSON(http.StatusOK, card)
}

// Delete DELETE /cards/:cardId
func (h *CardHandler) Delete(c *gin.Context) {
	var uri cardURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.BadRequest("Invalid card id"))
		return
	}

	if err := h.Svc.Delete(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), uri.CardID); err != nil {
		h.fail(c, err, "delete card failed")
		return
	}
	response.Message(c, http.StatusOK, "Card deleted")
}

// Like PUT /cards/:cardId/likes
func (h *CardHandler) Like(c *gin.Context) {
	var uri cardURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.BadRequest("Invalid card id"))
		return
	}

	card, err := h.Svc.Like(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), uri.CardID)
	if err != nil {
		h.fail(c, err, "like card failed")
		return
	}
	c.JSON(http.StatusOK, card)
}

// Unlike DELETE /cards/:cardId/likes
func (h *CardHandler) Unlike(c *gin.Context) {
	var uri cardURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.BadRequest("Invalid card id"))
		return
	}

	card, err := h.Svc.Unlike(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), uri.CardID)
	if err != nil {
		h.fail(c, err, "unlike card failed")
		return
	}
	c.JSON(http.StatusOK, card)
}

func (h *CardHandler) fail(c *gin.Context, err error, msg string) {
	if apperror.Status(err) >= http.StatusInternalServerError {
		h.Logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error(msg)
	}
	response.Error(c, err)
}
