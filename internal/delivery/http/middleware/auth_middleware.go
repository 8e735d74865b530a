package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"hospotalent-backend/config"
	"hospotalent-backend/internal/delivery/http/response"
	"hospotalent-backend/internal/domain"
	"hospotalent-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// RoleResolver loads the stored roles for a resolved principal.
type RoleResolver struct {
	Profiles domain.UserProfileRepository
	Roles    domain.SystemRoleRepository
	Cfg      *config.Config
}

// Identify resolves the caller's principal from a bearer token when one is
// present and attaches the identity to the request context. Anonymous
// callers pass through as guests; public job routes rely on that.
func Identify(resolver RoleResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.Next()
			return
		}

		principal, err := parsePrincipal(tokenString, resolver.Cfg.JWTSecret)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		if err := attachIdentity(c, resolver, principal); err != nil {
			response.Error(c, http.StatusInternalServerError, "Could not resolve caller roles", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAuth rejects callers without a resolvable principal.
func RequireAuth(resolver RoleResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		principal, err := parsePrincipal(tokenString, resolver.Cfg.JWTSecret)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		if err := attachIdentity(c, resolver, principal); err != nil {
			response.Error(c, http.StatusInternalServerError, "Could not resolve caller roles", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	cookie, err := c.Cookie("auth_token")
	if err == nil {
		return cookie
	}
	return ""
}

func parsePrincipal(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("token validation failed: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", errors.New("token has no subject")
	}
	return sub, nil
}

// attachIdentity stores principal and both role axes on the request
// context. Roles come from the store, never from token claims, so a stale
// token cannot carry an elevated role. A store failure fails the request:
// proceeding would silently demote the caller to a guest-like identity.
func attachIdentity(c *gin.Context, resolver RoleResolver, principal string) error {
	appRole := domain.AppRole("")
	profile, err := resolver.Profiles.GetByPrincipal(c.Request.Context(), principal)
	if err == nil {
		appRole = profile.AppRole
	} else if !errors.Is(err, domain.ErrNotFound) {
		logger.Log.Error("resolving app role", "principal", principal, "error", err)
		return err
	}

	systemRole := domain.SystemRoleUser
	if stored, err := resolver.Roles.GetByPrincipal(c.Request.Context(), principal); err == nil {
		systemRole = stored
	} else if !errors.Is(err, domain.ErrNotFound) {
		logger.Log.Error("resolving system role", "principal", principal, "error", err)
		return err
	}
	for _, admin := range resolver.Cfg.BootstrapAdmins {
		if admin == principal {
			systemRole = domain.SystemRoleAdmin
		}
	}

	ctx := c.Request.Context()
	ctx = context.WithValue(ctx, domain.KeyPrincipal, principal)
	ctx = context.WithValue(ctx, domain.KeyAppRole, appRole)
	ctx = context.WithValue(ctx, domain.KeySystemRole, systemRole)
	c.Request = c.Request.WithContext(ctx)
	return nil
}
