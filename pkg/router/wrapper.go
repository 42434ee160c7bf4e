package router

import (
	"context"
	"net/http"
	"strings"

	"github.com/chirp-lab/backend/pkg/errorx"
	"github.com/chirp-lab/backend/pkg/xcontext"
	"github.com/gin-gonic/gin"
)

// mergedContext follows the request context for deadline and cancellation but
// falls back to the server's base context for values.
type mergedContext struct {
	context.Context
	values context.Context
}

func (c mergedContext) Value(key any) any {
	if v := c.Context.Value(key); v != nil {
		return v
	}

	return c.values.Value(key)
}

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) gin.HandlerFunc {
	befores := append([]MiddlewareFunc{}, router.befores...)

	return func(gctx *gin.Context) {
		var req Request
		var err error
		switch method {
		case http.MethodGet:
			err = gctx.ShouldBindQuery(&req)
		case http.MethodPost:
			if strings.HasPrefix(gctx.ContentType(), "multipart/form-data") {
				err = gctx.ShouldBind(&req)
			} else {
				err = gctx.ShouldBindJSON(&req)
			}
		default:
			err = errorx.New(errorx.NotImplemented, "Not supported method %s", method)
		}
		if err != nil {
			writeError(gctx, errorx.New(errorx.BadRequest, "Cannot bind the request"))
			return
		}

		ctx := context.Context(mergedContext{
			Context: gctx.Request.Context(),
			values:  router.base,
		})
		ctx = xcontext.WithHTTPRequest(ctx, gctx.Request)

		for _, m := range befores {
			ctx, err = m(ctx)
			if err != nil {
				writeError(gctx, err)
				return
			}
		}

		resp, err := handler(ctx, &req)
		if err != nil {
			writeError(gctx, err)
			return
		}

		gctx.JSON(http.StatusOK, newResponse(resp))
	}
}
