package router

import (
	"errors"
	"net/http"

	"github.com/chirp-lab/backend/pkg/errorx"
	"github.com/gin-gonic/gin"
)

type response struct {
	Code  int64  `json:"code"`
	Error string `json:"error,omitempty"`
	Data  any    `json:"data,omitempty"`
}

func newResponse(data any) response {
	return response{
		Code: 0,
		Data: data,
	}
}

func writeError(gctx *gin.Context, err error) {
	errx := errorx.Error{}
	if !errors.As(err, &errx) {
		errx = errorx.Unknown
	}

	gctx.AbortWithStatusJSON(httpStatus(errx.Code), response{
		Code:  int64(errx.Code),
		Error: errx.Message,
	})
}

func httpStatus(code errorx.Code) int {
	switch code {
	case errorx.BadRequest:
		return http.StatusBadRequest
	case errorx.NotFound:
		return http.StatusNotFound
	case errorx.Unauthenticated:
		return http.StatusUnauthorized
	case errorx.AlreadyExists:
		return http.StatusConflict
	case errorx.PermissionDenied:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
