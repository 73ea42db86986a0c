package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/mesto-app/mesto-api/internal/interface/http"
	"github.com/mesto-app/mesto-api/internal/interface/middleware"
	"github.com/mesto-app/mesto-api/pkg/helpers"
)

// CardModule wires the card routes, all behind cookie auth mounted once at
// the /cards group.

type CardModule struct {
	Handler *handlers.CardHandler
	JWT     *helpers.JWTManager
}

func NewCardModule(h *handlers.CardHandler, jwt *helpers.JWTManager) *CardModule {
	return &CardModule{Handler: h, JWT: jwt}
}

func (m *CardModule) Register(rg *gin.RouterGroup) {
	cards := rg.Group("/cards")
	cards.Use(middleware.Auth(m.JWT))
	{
		cards.GET("", m.Handler.List)
		cards.POST("", m.Handler.Create)
		cards.DELETE("/:cardId", m.Handler.Delete)
		cards.PUT("/:cardId/likes", m.Handler.Like)
		cards.DELETE("/:cardId/likes", m.Handler.Unlike)
	}
}
