package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/td051191/MinhPhat/application/user"
	"github.com/td051191/MinhPhat/constant"
	utilsContext "github.com/td051191/MinhPhat/utils/context"
	"github.com/td051191/MinhPhat/utils/errors"
)

// AuthMiddleware validates admin JWT sessions on protected routes. The
// storefront surface (catalog reads, checkout, public settings) stays open.
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !requiresAuth(r) {
				next.ServeHTTP(w, r)
				return
			}

			token := bearerToken(r)
			if token == "" {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			userID, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			next.ServeHTTP(w, r.WithContext(utilsContext.WithUserID(r.Context(), userID)))
		})
	}
}

// requiresAuth marks the admin surface: settings, orders, export, session
// verification, and every mutation on catalog or content data.
func requiresAuth(r *http.Request) bool {
	path := r.URL.Path
	switch path {
	case "/api/settings", "/api/export", "/api/orders", "/api/auth/verify":
		return true
	}
	if strings.HasPrefix(path, "/api/products") ||
		strings.HasPrefix(path, "/api/categories") ||
		strings.HasPrefix(path, "/api/content") {
		return r.Method != http.MethodGet
	}
	return false
}
