package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/vyapardesk/billing-api/internal/models"
	"github.com/vyapardesk/billing-api/internal/utils"
)

type contextKey string

const userContextKey = contextKey("user")

// Logger logs one line per request with method, path and duration.
func (app *Application) Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		app.infoLog.Printf("%s %s %s", r.Method, r.URL.RequestURI(), time.Since(start))
	})
}

// AuthUser requires a valid Bearer token and stores the claims in the
// request context.
func (app *Application) AuthUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			utils.WriteJSON(w, http.StatusUnauthorized, models.Response{
				Error:   true,
				Status:  "unauthorized",
				Message: "missing or malformed authorization header",
			})
			return
		}

		claims, err := utils.ParseJWT(strings.TrimPrefix(authHeader, "Bearer "), app.config.JWT)
		if err != nil {
			utils.WriteJSON(w, http.StatusUnauthorized, models.Response{
				Error:   true,
				Status:  "unauthorized",
				Message: "invalid or expired token",
			})
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserFromContext returns the signed-in user stored by AuthUser, if any.
func UserFromContext(ctx context.Context) (*models.JWT, bool) {
	claims, ok := ctx.Value(userContextKey).(*models.JWT)
	return claims, ok
}
