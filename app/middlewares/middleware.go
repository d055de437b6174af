package middlewares

import (
	"context"
	"net/http"

	"github.com/ibrohimdev/arzon-market/app/helpers"
	"github.com/ibrohimdev/arzon-market/app/repositories"
	"github.com/ibrohimdev/arzon-market/app/utils/sessions"
)

// SessionMiddleware resolves the session cookie to a user and stores both
// the id and the loaded user on the request context for handlers and the
// admin guard.
func SessionMiddleware(store sessions.SessionStore, userRepo repositories.UserRepositoryImpl) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := store.GetUserID(r)
			if userID != "" {
				ctx := context.WithValue(r.Context(), helpers.ContextKeyUserID, userID)
				if user, err := userRepo.FindByID(ctx, userID); err == nil && user != nil {
					ctx = context.WithValue(ctx, helpers.ContextKeyUser, user)
				}
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}
