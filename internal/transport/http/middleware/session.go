package middleware

import (
	"context"
	"net/http"

	"github.com/sanjay-dhavanam/CivicConnect/internal/domain"
)

// SessionCookie is the cookie carrying the opaque session token.
const SessionCookie = "civic_session"

type contextKey string

const principalKey contextKey = "principal"

// Principal is the per-request snapshot of the authenticated caller. It is
// resolved once from the session cookie and never re-read mid-request.
type Principal struct {
	UserID     string
	UserType   string
	LocationID *string
	Token      string
}

// Government reports whether the caller holds a government account.
func (p *Principal) Government() bool { return p.UserType == domain.UserTypeGovernment }

type sessionResolver interface {
	Current(ctx context.Context, token string) (*domain.User, *domain.Session, error)
}

// Resolve returns middleware that turns a valid session cookie into a
// Principal in the request context. Requests without a cookie, or with a
// stale one, proceed anonymously; handlers that need a caller use
// RequireAuth.
func Resolve(svc sessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(SessionCookie)
			if err != nil || c.Value == "" {
				next.ServeHTTP(w, r)
				return
			}
			u, sess, err := svc.Current(r.Context(), c.Value)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			p := &Principal{
				UserID:     u.UserID,
				UserType:   u.UserType,
				LocationID: sess.LocationID,
				Token:      sess.Token,
			}
			ctx := context.WithValue(r.Context(), principalKey, p)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PrincipalFromContext extracts the resolved caller, if any.
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey).(*Principal)
	return p, ok
}

// RequireAuth rejects requests that did not resolve to a Principal.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := PrincipalFromContext(r.Context()); !ok {
			writeJSONError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}
