package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc runs before the handler. It can derive a new context for the
// downstream chain, or stop the request by returning an error.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

type Router struct {
	Inner gin.IRouter

	base    context.Context
	befores []MiddlewareFunc
}

// New creates a Router whose handlers run with the values of base (database,
// configs, logger, token engine) merged into every request context.
func New(base context.Context) *Router {
	return &Router{Inner: gin.New(), base: base}
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.Inner.GET(pattern, wrapHandler(r, http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.Inner.POST(pattern, wrapHandler(r, http.MethodPost, handler))
}

// Branch returns a Router sharing the underlying engine but with an
// independent middleware chain.
func (r *Router) Branch() *Router {
	return &Router{
		Inner:   r.Inner,
		base:    r.base,
		befores: append([]MiddlewareFunc{}, r.befores...),
	}
}

func (r *Router) Before(m MiddlewareFunc) {
	r.befores = append(r.befores, m)
}

// Use installs a raw gin middleware on the underlying engine. It applies to
// every route, including ones registered on other branches.
func (r *Router) Use(middleware ...gin.HandlerFunc) {
	r.Inner.Use(middleware...)
}

func (r *Router) Static(relativePath, root string) {
	r.Inner.Static(relativePath, root)
}

func (r *Router) Handler() http.Handler {
	return r.Inner.(*gin.Engine)
}
