package middleware

import (
	"net/http"

	"dhatucraft-be/internal/auth"
	"dhatucraft-be/internal/user"
	"dhatucraft-be/internal/utils"
)

// AuthMiddleware parses the session token when present and attaches the
// claims to the request context. Requests without a valid token pass through
// anonymously; route guards decide whether that is acceptable.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := auth.ExtractAccessToken(r)
		if tokenStr == "" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := user.ParseJWT(tokenStr)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := utils.SetUserContext(r.Context(), claims.UserID, claims.Email, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
