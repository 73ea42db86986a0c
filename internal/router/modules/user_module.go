package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mesto-app/mesto-api/internal/container"
	handlers "github.com/mesto-app/mesto-api/internal/interface/http"
	"github.com/mesto-app/mesto-api/internal/interface/middleware"
	"github.com/mesto-app/mesto-api/pkg/helpers"
)

// UserModule wires the public auth routes and the protected user routes.
// Public: POST /signup, POST /signin, POST /logoff
// Protected (cookie auth at the group mount):
//   GET /users, GET /users/me, GET /users/:userId,
//   PATCH /users/me, PATCH /users/me/avatar

type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	// Throttle the public credential endpoints per IP
	signupLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())
	signinLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())

	rg.POST("/signup", signupLimiter, m.Handler.Register)
	rg.POST("/signin", signinLimiter, m.Handler.Login)
	rg.POST("/logoff", m.Handler.Logoff)

	users := rg.Group("/users")
	users.Use(middleware.Auth(m.JWT))
	{
		users.GET("", m.Handler.List)
		users.GET("/me", m.Handler.GetMe)
		users.GET("/:userId", m.Handler.GetByID)
		users.PATCH("/me", m.Handler.UpdateProfile)
		users.PATCH("/me/avatar", m.Handler.UpdateAvatar)
	}
}
