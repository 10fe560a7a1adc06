package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/spst-logistics/spst-backend/internal/identity"
)

// session cookies live for 5 days, matching what the identity provider is
// asked to mint.
const sessionTTL = 5 * 24 * time.Hour

// SessionIssuer exchanges a verified identity-provider token for an opaque
// session credential. *auth.Client satisfies it.
type SessionIssuer interface {
	SessionCookie(ctx context.Context, idToken string, expiresIn time.Duration) (string, error)
}

type SessionHandler struct {
	issuer    SessionIssuer
	secure    bool
	loginPath string
}

func NewSessionHandler(issuer SessionIssuer, secure bool, loginPath string) *SessionHandler {
	return &SessionHandler{issuer: issuer, secure: secure, loginPath: loginPath}
}

type createSessionRequest struct {
	Token string `json:"token"`
}

// Create exchanges the bearer token for a session cookie. The issuer
// verifies the token as part of minting, so an invalid token fails here.
func (h *SessionHandler) Create(c echo.Context) error {
	var req createSessionRequest
	if err := c.Bind(&req); err != nil || req.Token == "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse(codeBadRequest, "token is required"))
	}
	cred, err := h.issuer.SessionCookie(c.Request().Context(), req.Token, sessionTTL)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse(codeAuthRequired, "token could not be verified"))
	}
	c.SetCookie(&http.Cookie{
		Name:     identity.SessionCookieName,
		Value:    cred,
		Path:     "/",
		MaxAge:   int(sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteStrictMode,
	})
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// Logout clears the session cookie and sends the caller back to login.
func (h *SessionHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     identity.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteStrictMode,
	})
	return c.Redirect(http.StatusFound, h.loginPath)
}
