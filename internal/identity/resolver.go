// Package identity resolves the caller's verified email from the
// credentials an inbound request carries. Resolution is an ordered list of
// independent strategies; a strategy that fails (malformed token, expired
// cookie) yields nothing and never aborts the request.
package identity

import (
	"context"
	"errors"
	"net/http"
	"strings"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// SessionCookieName is the cookie holding the server-issued session
// credential.
const SessionCookieName = "spst_session"

// ErrUnauthenticated is returned by operations that require an identity when
// no strategy produced one.
var ErrUnauthenticated = errors.New("authentication required")

// Verifier is the slice of the identity provider the resolver needs.
// *auth.Client satisfies it.
type Verifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
	VerifySessionCookie(ctx context.Context, sessionCookie string) (*auth.Token, error)
}

// NewAuthClient builds the Firebase auth client. credentialsJSON may be
// empty, in which case application-default credentials apply.
func NewAuthClient(ctx context.Context, projectID, credentialsJSON string) (*auth.Client, error) {
	conf := &firebase.Config{ProjectID: projectID}
	var opts []option.ClientOption
	if credentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(credentialsJSON)))
	}
	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, err
	}
	return app.Auth(ctx)
}

type Resolver struct {
	verifier Verifier
}

func NewResolver(v Verifier) *Resolver {
	return &Resolver{verifier: v}
}

// FromRequest resolves a verified email: bearer token first, then session
// cookie. It returns "" and false when neither yields an identity.
func (r *Resolver) FromRequest(ctx context.Context, req *http.Request) (string, bool) {
	if r == nil || r.verifier == nil {
		return "", false
	}
	if email := r.fromBearer(ctx, req); email != "" {
		return email, true
	}
	if email := r.fromSessionCookie(ctx, req); email != "" {
		return email, true
	}
	return "", false
}

// ForRead resolves an email for list/read filtering. A verified identity
// always wins; the explicitly supplied email is accepted only when no
// credential verifies, and never establishes write ownership.
func (r *Resolver) ForRead(ctx context.Context, req *http.Request, explicit string) string {
	if email, ok := r.FromRequest(ctx, req); ok {
		return email
	}
	return strings.TrimSpace(explicit)
}

func (r *Resolver) fromBearer(ctx context.Context, req *http.Request) string {
	authz := req.Header.Get("Authorization")
	if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
		return ""
	}
	token, err := r.verifier.VerifyIDToken(ctx, strings.TrimPrefix(authz, "Bearer "))
	if err != nil {
		return ""
	}
	return EmailFromToken(token)
}

func (r *Resolver) fromSessionCookie(ctx context.Context, req *http.Request) string {
	cookie, err := req.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}
	token, err := r.verifier.VerifySessionCookie(ctx, cookie.Value)
	if err != nil {
		return ""
	}
	return EmailFromToken(token)
}

// EmailFromToken extracts the email claim, falling back to the federated
// identity list when the primary claim is absent.
func EmailFromToken(token *auth.Token) string {
	if token == nil {
		return ""
	}
	if email, ok := token.Claims["email"].(string); ok && email != "" {
		return email
	}
	ids, ok := token.Firebase.Identities["email"].([]interface{})
	if !ok {
		return ""
	}
	for _, id := range ids {
		if email, ok := id.(string); ok && email != "" {
			return email
		}
	}
	return ""
}
