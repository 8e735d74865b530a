package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hospotalent-backend/config"
	"hospotalent-backend/internal/access"
	"hospotalent-backend/internal/domain"
	"hospotalent-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type stubProfileRepo struct {
	profiles map[string]*domain.UserProfile
	err      error
}

func (s *stubProfileRepo) Upsert(context.Context, *domain.UserProfile) error { return nil }

func (s *stubProfileRepo) GetByPrincipal(_ context.Context, principal string) (*domain.UserProfile, error) {
	if s.err != nil {
		return nil, s.err
	}
	p, ok := s.profiles[principal]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

type stubRoleRepo struct {
	roles map[string]domain.SystemRole
}

func (s *stubRoleRepo) Assign(context.Context, string, domain.SystemRole) error { return nil }

func (s *stubRoleRepo) GetByPrincipal(_ context.Context, principal string) (domain.SystemRole, error) {
	r, ok := s.roles[principal]
	if !ok {
		return "", domain.ErrNotFound
	}
	return r, nil
}

func signToken(t *testing.T, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func testResolver() RoleResolver {
	return RoleResolver{
		Profiles: &stubProfileRepo{profiles: map[string]*domain.UserProfile{
			"alice": {Principal: "alice", AppRole: domain.AppRoleCandidate},
		}},
		Roles: &stubRoleRepo{roles: map[string]domain.SystemRole{
			"mod": domain.SystemRoleAdmin,
		}},
		Cfg: &config.Config{JWTSecret: testSecret, BootstrapAdmins: []string{"boot"}},
	}
}

// runThrough runs a request through the middleware and reports the
// identity the handler observed.
func runThrough(mw gin.HandlerFunc, req *http.Request) (*httptest.ResponseRecorder, access.Identity) {
	gin.SetMode(gin.TestMode)
	var observed access.Identity
	r := gin.New()
	r.GET("/whoami", mw, func(c *gin.Context) {
		observed = access.FromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w, observed
}

func TestMain(m *testing.M) {
	logger.Init("error")
	m.Run()
}

func TestIdentify(t *testing.T) {
	resolver := testResolver()

	t.Run("anonymous callers pass as guests", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		w, id := runThrough(Identify(resolver), req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.False(t, id.Authenticated())
		assert.Equal(t, domain.SystemRoleGuest, id.SystemRole)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		w, _ := runThrough(Identify(resolver), req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("roles come from the store, not the token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "alice"))
		w, id := runThrough(Identify(resolver), req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "alice", id.Principal)
		assert.Equal(t, domain.AppRoleCandidate, id.AppRole)
		assert.Equal(t, domain.SystemRoleUser, id.SystemRole)
	})

	t.Run("stored system role is attached", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "mod"))
		_, id := runThrough(Identify(resolver), req)
		assert.Equal(t, domain.SystemRoleAdmin, id.SystemRole)
	})

	t.Run("bootstrap admins are promoted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "boot"))
		_, id := runThrough(Identify(resolver), req)
		assert.Equal(t, domain.SystemRoleAdmin, id.SystemRole)
	})

	t.Run("role store failure fails the request instead of demoting", func(t *testing.T) {
		broken := testResolver()
		broken.Profiles = &stubProfileRepo{err: errors.New("connection refused")}

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "alice"))
		w, _ := runThrough(Identify(broken), req)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("cookie token works", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: "auth_token", Value: signToken(t, "alice")})
		w, id := runThrough(Identify(resolver), req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "alice", id.Principal)
	})
}

func TestRequireAuth(t *testing.T) {
	resolver := testResolver()

	t.Run("missing token is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		w, _ := runThrough(RequireAuth(resolver), req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "alice"})
		signed, err := token.SignedString([]byte("wrong-secret"))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		w, _ := runThrough(RequireAuth(resolver), req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token without a subject is rejected", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})
		signed, err := token.SignedString([]byte(testSecret))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		w, _ := runThrough(RequireAuth(resolver), req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "alice"))
		w, id := runThrough(RequireAuth(resolver), req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, id.Authenticated())
	})
}
