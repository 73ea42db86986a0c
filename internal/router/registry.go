package router

import (
	"github.com/gin-gonic/gin"

	"github.com/mesto-app/mesto-api/pkg/apperror"
	"github.com/mesto-app/mesto-api/pkg/response"
)

type Registry struct {
	Engine      *gin.Engine
	Root        *gin.RouterGroup
	middlewares []gin.HandlerFunc
	modules     []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{Engine: engine, Root: &engine.RouterGroup}
}

func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.middlewares = append(r.middlewares, mw...)
}

func (r *Registry) Add(mod Module) {
	r.modules = append(r.modules, mod)
}

func (r *Registry) RegisterAll() {
	if len(r.middlewares) > 0 {
		r.Root.Use(r.middlewares...)
	}
	for _, m := range r.modules {
		m.Register(r.Root)
	}
	r.Engine.NoRoute(func(c *gin.Context) {
		response.Error(c, apperror.NotFound("Page not found"))
	})
}
