package middleware

import (
	"net/http"
	"strings"

	"github.com/dgrijalva/jwt-go"

	"github.com/bazaan/dashboarddev/internal/config"
	"github.com/bazaan/dashboarddev/internal/domain"
	"github.com/bazaan/dashboarddev/pkg/logger"
)

func WithAuth(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, ignore := range cfg.AuthDisabledURLs {
				if strings.HasSuffix(r.URL.Path, ignore) {
					next.ServeHTTP(w, r)
					return
				}
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				logger.Log.Warn("unauthorized request", logger.String("url", r.RequestURI))
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			claims := jwt.MapClaims{}
			_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				return []byte(cfg.PrivateKey), nil
			})
			if err != nil {
				logger.Log.Warn("unauthorized request", logger.String("url", r.RequestURI), logger.Error(err))
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			subject, _ := claims["sub"].(string)
			role, _ := claims["role"].(string)
			if subject == "" {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
			if role == "" {
				role = domain.RoleDeveloper
			}

			r.Header.Set("User-ID", subject)
			r.Header.Set("User-Role", role)

			next.ServeHTTP(w, r)
		})
	}
}
