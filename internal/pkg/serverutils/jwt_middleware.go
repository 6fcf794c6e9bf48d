// FILE: internal/pkg/serverutils/jwt_middleware.go
package serverutils

import (
	"context"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	UserIDLocal     = "user_id"
	AccessTokenName = "access_token"
)

// TokenAuthenticator resolves an access token to a user id.
type TokenAuthenticator interface {
	Authenticate(ctx context.Context, token string) (uuid.UUID, error)
}

// SessionMiddleware identifies the caller from a bearer token or the
// access_token cookie. Requests without a valid token continue anonymously.
func SessionMiddleware(auth TokenAuthenticator) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenStr := AccessToken(ctx)
		if tokenStr == "" {
			return ctx.Next()
		}

		userId, err := auth.Authenticate(ctx.Context(), tokenStr)
		if err == nil && userId != uuid.Nil {
			ctx.Locals(UserIDLocal, userId)
		}
		return ctx.Next()
	}
}

// LoginRequired sends anonymous callers to loginURL, keeping the requested
// URI in the next parameter.
func LoginRequired(loginURL string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if CurrentUserID(ctx) == uuid.Nil {
			return RedirectToLogin(ctx, loginURL)
		}
		return ctx.Next()
	}
}

func RedirectToLogin(ctx *fiber.Ctx, loginURL string) error {
	return ctx.Redirect(LoginRedirectURL(loginURL, ctx.OriginalURL()), fiber.StatusFound)
}

// LoginRedirectURL builds "<loginURL>?next=<next>", leaving slashes readable.
func LoginRedirectURL(loginURL, next string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(next), "%2F", "/")
	sep := "?"
	if strings.Contains(loginURL, "?") {
		sep = "&"
	}
	return loginURL + sep + "next=" + escaped
}

// SafeNext accepts only local absolute paths, so a crafted next parameter
// cannot bounce a fresh login to another host.
func SafeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return ""
	}
	u, err := url.Parse(next)
	if err != nil || u.Host != "" || u.Scheme != "" {
		return ""
	}
	return next
}

func AccessToken(ctx *fiber.Ctx) string {
	authHeader := ctx.Get(fiber.HeaderAuthorization)
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ctx.Cookies(AccessTokenName)
}

// CurrentUserID returns the authenticated user, or uuid.Nil for anonymous requests.
func CurrentUserID(ctx *fiber.Ctx) uuid.UUID {
	if userId, ok := ctx.Locals(UserIDLocal).(uuid.UUID); ok {
		return userId
	}
	return uuid.Nil
}
