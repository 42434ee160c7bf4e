package middleware

import (
	"context"
	"strings"

	"github.com/chirp-lab/backend/internal/model"
	"github.com/chirp-lab/backend/pkg/errorx"
	"github.com/chirp-lab/backend/pkg/router"
	"github.com/chirp-lab/backend/pkg/xcontext"
)

// Authenticate verifies the access token and stores the request user id into
// the context for the downstream handler.
func Authenticate() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		token := getAccessToken(ctx)
		if token == "" {
			return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
		}

		var user model.User
		if err := xcontext.TokenEngine(ctx).Verify(token, &user); err != nil {
			return nil, errorx.New(errorx.Unauthenticated, "Invalid or expired token")
		}

		return xcontext.WithRequestUserID(ctx, user.ID), nil
	}
}

func getAccessToken(ctx context.Context) string {
	req := xcontext.HTTPRequest(ctx)
	authorization := req.Header.Get("Authorization")
	auth, token, found := strings.Cut(authorization, " ")
	if found {
		if auth == "Bearer" {
			return token
		}
		return ""
	}

	cookie, err := req.Cookie(xcontext.Configs(ctx).Auth.AccessToken.Name)
	if err != nil {
		return ""
	}

	return cookie.Value
}
