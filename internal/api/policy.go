package api

import (
	"net/http"

	"github.com/arcadia-esports/cms-api/internal/core/domain"
)

// Access is the gate a route sits behind. A nil Roles set means public: the
// route skips both token verification and the role check.
type Access struct {
	Roles domain.RoleSet
}

func (a Access) Public() bool { return a.Roles == nil }

var (
	public        = Access{}
	authenticated = Access{Roles: domain.Roles(domain.RoleAdmin, domain.RoleManager, domain.RoleUser)}
	editors       = Access{Roles: domain.Roles(domain.RoleAdmin, domain.RoleManager)}
	adminOnly     = Access{Roles: domain.Roles(domain.RoleAdmin)}
)

// RouteKey identifies a route by method and echo path pattern.
type RouteKey struct {
	Method string
	Path   string
}

// catalogCollections share one CRUD policy.
var catalogCollections = []string{"teams", "events", "staff", "leadership", "sponsors"}

// Policy returns the access rule of every route the API serves. The router
// refuses to register a route missing from this table.
func Policy() map[RouteKey]Access {
	p := map[RouteKey]Access{
		{http.MethodPost, "/api/auth/register"}: public,
		{http.MethodPost, "/api/auth/login"}:    public,
		{http.MethodGet, "/api/auth/verify"}:    authenticated,

		{http.MethodGet, "/api/teams/game-types"}: public,

		{http.MethodGet, "/api/applications"}:            editors,
		{http.MethodPost, "/api/applications"}:           public,
		{http.MethodPut, "/api/applications/:id/status"}: editors,
		{http.MethodDelete, "/api/applications/:id"}:     adminOnly,

		{http.MethodGet, "/api/contact"}:        editors,
		{http.MethodPost, "/api/contact"}:       public,
		{http.MethodDelete, "/api/contact/:id"}: adminOnly,

		{http.MethodGet, "/uploads/:name"}:    public,
		{http.MethodGet, "/api/health"}:       public,
		{http.MethodGet, "/api/health/ready"}: public,
		{http.MethodGet, "/metrics"}:          public,
		{http.MethodGet, "/swagger/*"}:        public,
	}
	for _, name := range catalogCollections {
		base := "/api/" + name
		p[RouteKey{http.MethodGet, base}] = public
		p[RouteKey{http.MethodGet, base + "/:id"}] = public
		p[RouteKey{http.MethodPost, base}] = editors
		p[RouteKey{http.MethodPut, base + "/:id"}] = editors
		p[RouteKey{http.MethodDelete, base + "/:id"}] = adminOnly
	}
	return p
}
