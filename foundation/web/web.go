package web

import (
	"github.com/gin-gonic/gin"
)

// Handler is the signature every application handler implements. Errors
// returned here are turned into responses by RespondError.
type Handler func(c *Context) error

// Middleware wraps a Handler with pre/post processing.
type Middleware func(Handler) Handler

// App is the gin engine plus the handler adaptation used across controllers.
type App struct {
	*gin.Engine
}

func NewApp() *App {
	return &App{Engine: gin.New()}
}

func (a *App) handle(method, path string, handler Handler, middlewares []Middleware) {
	h := handler
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}

	a.Engine.Handle(method, path, func(gc *gin.Context) {
		c := &Context{Context: gc, Ctx: gc.Request.Context()}
		if err := h(c); err != nil {
			_ = c.RespondError(err)
		}
	})
}

func (a *App) Get(path string, handler Handler, middlewares ...Middleware) {
	a.handle("GET", path, handler, middlewares)
}

func (a *App) Post(path string, handler Handler, middlewares ...Middleware) {
	a.handle("POST", path, handler, middlewares)
}

func (a *App) Put(path string, handler Handler, middlewares ...Middleware) {
	a.handle("PUT", path, handler, middlewares)
}

func (a *App) Patch(path string, handler Handler, middlewares ...Middleware) {
	a.handle("PATCH", path, handler, middlewares)
}

func (a *App) Delete(path string, handler Handler, middlewares ...Middleware) {
	a.handle("DELETE", path, handler, middlewares)
}
