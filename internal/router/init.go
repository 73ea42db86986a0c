package router

import (
	"github.com/mesto-app/mesto-api/internal/application"
	"github.com/mesto-app/mesto-api/internal/container"
	pginfra "github.com/mesto-app/mesto-api/internal/infrastructure/postgres"
	handlers "github.com/mesto-app/mesto-api/internal/interface/http"
	"github.com/mesto-app/mesto-api/internal/router/modules"
	"github.com/mesto-app/mesto-api/pkg/helpers"
)

func buildUserModule() *modules.UserModule {
	cfg := container.GetConfig()
	repo := pginfra.NewUserRepository(container.GetPGPool())
	svc := application.NewUserService(repo, container.GetJWT(), container.GetLogger())
	cookies := helpers.NewCookie(cfg.CookieDomain, cfg.CookieSecure, cfg.SessionTTL)
	h := handlers.NewUserHandler(svc, container.GetLogger(), cookies)
	return modules.NewUserModule(h, container.GetJWT())
}

func buildCardModule() *modules.CardModule {
	repo := pginfra.NewCardRepository(container.GetPGPool())
	svc := application.NewCardService(repo, container.GetLogger())
	h := handlers.NewCardHandler(svc, container.GetLogger())
	return modules.NewCardModule(h, container.GetJWT())
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	r.Add(buildUserModule())
	r.Add(buildCardModule())
}
