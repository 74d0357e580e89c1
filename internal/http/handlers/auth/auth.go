package auth

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"volunteercal/internal/core/domain/user"
	"volunteercal/internal/core/services/auth"
	"volunteercal/internal/http/handlers/response"
)

const (
	AUTH_TOKEN_PREFIX  = "Bearer "
	AUTH_TOKEN_MAX_LEN = 4096
)

func ParseToken(r *http.Request) (token user.AccessToken, ok bool) {
	header := r.Header.Get("authorization")
	if header == "" {
		return token, false
	}
	parts := strings.SplitN(header, AUTH_TOKEN_PREFIX, 2)
	if len(parts) != 2 || parts[0] != "" {
		return token, false
	}
	if parts[1] == "" || len(parts[1]) > AUTH_TOKEN_MAX_LEN {
		return token, false
	}
	return user.AccessToken(parts[1]), true
}

func WithAuthToken(ctx context.Context, token user.AccessToken) context.Context {
	return context.WithValue(ctx, auth.CONTEXT_AUTH_TOKEN_KEY, token)
}

func SetAuthTokenToContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := ParseToken(r)
		if ok {
			r = r.WithContext(WithAuthToken(r.Context(), token))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireServiceKey lets through only requests bearing the shared service key.
func RequireServiceKey(serviceKey string) func(http.Handler) http.Handler {
	expected := []byte(serviceKey)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := ParseToken(r)
			if !ok || len(expected) == 0 || subtle.ConstantTimeCompare([]byte(token), expected) != 1 {
				response.RenderUnauthorized(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
