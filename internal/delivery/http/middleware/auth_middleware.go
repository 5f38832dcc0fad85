package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"go-care-backend/config"
	"go-care-backend/internal/delivery/http/response"
	"go-care-backend/internal/domain"
	"go-care-backend/pkg/auth"
	"go-care-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates the Supabase JWT (HS256 via shared secret or RS256
// via JWKS) and loads the user's role from the local database. The JWT role
// claim is never trusted: Supabase issues "authenticated" and the claim can be
// stale after an admin promotion.
func AuthMiddleware(jwksProvider *auth.Provider, cfg *config.Config, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		var tokenString string

		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else {
			cookie, err := c.Cookie("auth_token")
			if err == nil && cookie != "" {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); ok {
				if cfg.SupabaseJWTSecret == "" {
					return nil, fmt.Errorf("HS256 token received but SUPABASE_JWT_SECRET is not configured")
				}
				return []byte(cfg.SupabaseJWTSecret), nil
			}

			if _, ok := token.Method.(*jwt.SigningMethodRSA); ok {
				return jwksProvider.KeyFunc(token)
			}

			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		})

		if err != nil || !token.Valid {
			logger.Log.Warn("Token validation failed", "error", err)
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Invalid claims", nil)
			c.Abort()
			return
		}

		sub, _ := claims["sub"].(string)
		email, _ := claims["email"].(string)

		var role string
		user, err := authUC.GetCurrentUser(c.Request.Context(), sub)
		if err == nil && user.Role != "" {
			role = user.Role
		} else {
			// No local record yet: first request after Supabase signup, before
			// /auth/session has synced the user. Take the signup role from the
			// token metadata and let the session endpoint persist it.
			if meta, ok := claims["user_metadata"].(map[string]interface{}); ok {
				role, _ = meta["role"].(string)
			}
			if role != domain.RoleCarer && role != domain.RoleFamily {
				role = domain.RoleFamily
			}
		}

		c.Set(string(domain.KeyUserID), sub)
		c.Set(string(domain.KeyUserEmail), email)
		c.Set(string(domain.KeyUserRole), role)

		c.Next()
	}
}
