package middleware

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/spst-logistics/spst-backend/internal/identity"
)

// ContextEmailKey is where gate middleware stores the resolved caller email.
const ContextEmailKey = "userEmail"

// SessionGate intercepts protected paths before their handlers run.
type SessionGate struct {
	resolver  *identity.Resolver
	loginPath string
	homePath  string
}

func NewSessionGate(resolver *identity.Resolver, loginPath, homePath string) *SessionGate {
	return &SessionGate{resolver: resolver, loginPath: loginPath, homePath: homePath}
}

// RequireSession redirects unauthenticated requests to the login entry
// point, carrying the original path as a return hint.
func (g *SessionGate) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		email, ok := g.resolver.FromRequest(c.Request().Context(), c.Request())
		if !ok {
			target := g.loginPath + "?redirect=" + url.QueryEscape(c.Request().URL.RequestURI())
			return c.Redirect(http.StatusFound, target)
		}
		c.Set(ContextEmailKey, email)
		return next(c)
	}
}

// RedirectIfAuthenticated sends an already-authenticated caller visiting the
// login entry point to the default landing path.
func (g *SessionGate) RedirectIfAuthenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := g.resolver.FromRequest(c.Request().Context(), c.Request()); ok {
			return c.Redirect(http.StatusFound, g.homePath)
		}
		return next(c)
	}
}
