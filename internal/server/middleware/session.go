// Package middleware provides HTTP middleware that scopes each request to a
// wizard session.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jonathan/resume-builder/internal/logging"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/jonathan/resume-builder/internal/wizard"
)

// CookieName is the cookie carrying the signed session token.
const CookieName = "resume_session"

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

const sessionKey ContextKey = "session"

// SessionResolver finds or creates the session named by a cookie token.
type SessionResolver interface {
	Resolve(token string) (*session.Session, string, error)
	TTL() time.Duration
}

// Session creates middleware that attaches the caller's session to the
// request context and places its wizard store in scope. The cookie is
// rewritten on every request so it expires after TTL of inactivity. A
// missing or invalid cookie starts a new session.
func Session(resolver SessionResolver, secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var token string
			if c, err := r.Cookie(CookieName); err == nil {
				token = c.Value
			}

			sess, signed, err := resolver.Resolve(token)
			if err != nil {
				logging.Error("failed to resolve session", "error", err)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}

			http.SetCookie(w, &http.Cookie{
				Name:     CookieName,
				Value:    signed,
				Path:     "/",
				MaxAge:   int(resolver.TTL().Seconds()),
				HttpOnly: true,
				Secure:   secure,
				SameSite: http.SameSiteLaxMode,
			})

			ctx := context.WithValue(r.Context(), sessionKey, sess)
			ctx = wizard.NewContext(ctx, sess.Store)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSession extracts the session from the request context.
func GetSession(r *http.Request) (*session.Session, error) {
	sess, ok := r.Context().Value(sessionKey).(*session.Session)
	if !ok || sess == nil {
		return nil, fmt.Errorf("session not found in request context")
	}
	return sess, nil
}
