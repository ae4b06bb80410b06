package controller

import (
	"net/http"
	"strings"

	"github.com/gorilla/csrf"
)

const CSRFHeader = "X-CSRF-Token"

// CSRF protects cookie-authenticated requests. Requests carrying a Bearer
// token cannot be forged by a browser and pass through unchecked. Every
// protected response carries a fresh token in the X-CSRF-Token header.
func CSRF(authKey []byte, secure bool, trustedOrigins []string) func(http.Handler) http.Handler {
	protect := csrf.Protect(
		authKey,
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.RequestHeader(CSRFHeader),
		csrf.TrustedOrigins(trustedOrigins),
	)
	return func(next http.Handler) http.Handler {
		withToken := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(CSRFHeader, csrf.Token(r))
			next.ServeHTTP(w, r)
		})
		protected := protect(withToken)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
				next.ServeHTTP(w, r)
				return
			}
			if !secure {
				r = csrf.PlaintextHTTPRequest(r)
			}
			protected.ServeHTTP(w, r)
		})
	}
}
