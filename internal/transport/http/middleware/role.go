package middleware

import (
	"net/http"
)

// RequireGovernment allows access only to sessions backed by a government
// account.
func RequireGovernment(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := PrincipalFromContext(r.Context())
		if !ok {
			writeJSONError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		if !p.Government() {
			writeJSONError(w, http.StatusForbidden, "government account required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
