package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/auth"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/response"
)

type claimsCtxKey struct{}

// Auth validates the Bearer token and stores the parsed claims in the
// request context. Handlers behind it can read the identity via
// UserFromCtx / RoleFromCtx.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" {
			response.Unauthorized(w)
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Unauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), claimsCtxKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFromCtx returns the JWT claims stored by Auth.
func ClaimsFromCtx(r *http.Request) (*auth.Claims, bool) {
	claims, ok := r.Context().Value(claimsCtxKey{}).(*auth.Claims)
	return claims, ok
}

// UserFromCtx returns the authenticated username.
func UserFromCtx(r *http.Request) (string, bool) {
	claims, ok := ClaimsFromCtx(r)
	if !ok {
		return "", false
	}
	return claims.Username, true
}

// RoleFromCtx returns the authenticated user's role.
func RoleFromCtx(r *http.Request) (string, bool) {
	claims, ok := ClaimsFromCtx(r)
	if !ok {
		return "", false
	}
	return claims.Role, true
}
