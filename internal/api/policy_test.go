package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcadia-esports/cms-api/internal/core/domain"
)

// publicWrites are the only state-changing routes reachable without a token.
var publicWrites = map[RouteKey]bool{
	{http.MethodPost, "/api/auth/register"}: true,
	{http.MethodPost, "/api/auth/login"}:    true,
	{http.MethodPost, "/api/applications"}:  true,
	{http.MethodPost, "/api/contact"}:       true,
}

func TestPolicy_CoversEveryRegisteredRoute(t *testing.T) {
	s := newTestServer(t, 0)
	policy := Policy()

	registered := map[RouteKey]bool{}
	for _, r := range s.e.Routes() {
		key := RouteKey{r.Method, r.Path}
		registered[key] = true
		_, ok := policy[key]
		assert.True(t, ok, "route %s %s has no policy entry", r.Method, r.Path)
	}
	for key := range policy {
		assert.True(t, registered[key], "policy entry %s %s is not registered", key.Method, key.Path)
	}
}

func TestPolicy_MutatingRoutesAreGated(t *testing.T) {
	for key, access := range Policy() {
		if key.Method == http.MethodGet {
			continue
		}
		if publicWrites[key] {
			assert.True(t, access.Public(), "%s %s", key.Method, key.Path)
			continue
		}
		assert.False(t, access.Public(), "%s %s must require a role", key.Method, key.Path)
		assert.False(t, access.Roles.Contains(domain.RoleUser), "%s %s must not admit plain users", key.Method, key.Path)
	}
}

func TestPolicy_DeletesAreAdminOnly(t *testing.T) {
	for key, access := range Policy() {
		if key.Method != http.MethodDelete {
			continue
		}
		assert.Equal(t, "admin", access.Roles.String(), key.Path)
	}
}

func TestPolicy_GatedRoutesRejectAnonymousRequests(t *testing.T) {
	s := newTestServer(t, 0)

	for key, access := range Policy() {
		if access.Public() {
			continue
		}
		path := strings.NewReplacer(":id", "0b4e7f9c-3d55-4a32-9a4e-0f0c7a1d2b11").Replace(key.Path)
		req := httptest.NewRequest(key.Method, path, nil)
		rec := httptest.NewRecorder()
		s.e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", key.Method, key.Path)
	}
}

func TestPolicy_UserRoleIsForbiddenOnEditorRoutes(t *testing.T) {
	s := newTestServer(t, 0)
	token := s.tokenFor(t, domain.RoleUser)

	for key, access := range Policy() {
		if access.Public() || access.Roles.Contains(domain.RoleUser) {
			continue
		}
		path := strings.NewReplacer(":id", "0b4e7f9c-3d55-4a32-9a4e-0f0c7a1d2b11").Replace(key.Path)
		req := httptest.NewRequest(key.Method, path, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		s.e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusForbidden, rec.Code, "%s %s", key.Method, key.Path)
	}
}
