package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/arcadia-esports/cms-api/docs"
	"github.com/arcadia-esports/cms-api/internal/api/handler"
	"github.com/arcadia-esports/cms-api/internal/api/middleware"
	"github.com/arcadia-esports/cms-api/internal/core/domain"
	"github.com/arcadia-esports/cms-api/internal/core/ports"
)

// multipartOverhead is allowed on top of the CV limit for the other form
// fields and part headers.
const multipartOverhead = 64 << 10

// Deps carries everything the router wires into handlers.
type Deps struct {
	Auth     ports.AuthService
	Verifier ports.TokenVerifier

	Teams        ports.TeamService
	Events       ports.CatalogService[domain.Event]
	Staff        ports.CatalogService[domain.Member]
	Leadership   ports.CatalogService[domain.Member]
	Sponsors     ports.CatalogService[domain.Sponsor]
	Applications ports.ApplicationService
	Contact      ports.ContactService
	Storage      ports.ObjectStorage

	// AuthLimiter throttles register and login. Nil disables throttling.
	AuthLimiter middleware.Limiter
	// Checks are pinged by the readiness probe.
	Checks map[string]handler.Check

	FrontendURL    string
	MaxUploadBytes int64
	Log            zerolog.Logger
	// Registerer receives the HTTP metrics. Defaults to the global registry.
	Registerer prometheus.Registerer
}

// NewRouter builds the Echo instance with every route registered behind the
// gate declared for it in Policy.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{d.FrontendURL},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "cms",
		Registerer: d.Registerer,
	}))

	r := &registrar{e: e, policy: Policy(), gate: middleware.Authenticate(d.Verifier)}

	var throttle []echo.MiddlewareFunc
	if d.AuthLimiter != nil {
		throttle = []echo.MiddlewareFunc{middleware.RateLimit(d.AuthLimiter, "auth")}
	}

	// --- Auth ---
	auth := handler.NewAuthHandler(d.Auth)
	r.add(http.MethodPost, "/api/auth/register", auth.Register, throttle...)
	r.add(http.MethodPost, "/api/auth/login", auth.Login, throttle...)
	r.add(http.MethodGet, "/api/auth/verify", auth.Verify)

	// --- Content ---
	teams := handler.NewTeamHandler(d.Teams)
	r.add(http.MethodGet, "/api/teams/game-types", teams.GameTypes)
	registerCatalog(r, "teams", teams.CatalogHandler)
	registerCatalog(r, "events", handler.NewCatalogHandler[domain.Event, handler.EventRequest](d.Events, "events", "Event"))
	registerCatalog(r, "staff", handler.NewCatalogHandler[domain.Member, handler.MemberRequest](d.Staff, "staff", "Staff member"))
	registerCatalog(r, "leadership", handler.NewCatalogHandler[domain.Member, handler.MemberRequest](d.Leadership, "leadership", "Leadership member"))
	registerCatalog(r, "sponsors", handler.NewCatalogHandler[domain.Sponsor, handler.SponsorRequest](d.Sponsors, "sponsors", "Sponsor"))

	// --- Applications & contact ---
	maxUpload := d.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = 5 << 20
	}
	apps := handler.NewApplicationHandler(d.Applications)
	r.add(http.MethodGet, "/api/applications", apps.List)
	r.add(http.MethodPost, "/api/applications", apps.Submit,
		echomiddleware.BodyLimit(strconv.FormatInt(maxUpload+multipartOverhead, 10)+"B"))
	r.add(http.MethodPut, "/api/applications/:id/status", apps.UpdateStatus)
	r.add(http.MethodDelete, "/api/applications/:id", apps.Delete)

	contact := handler.NewContactHandler(d.Contact)
	r.add(http.MethodGet, "/api/contact", contact.List)
	r.add(http.MethodPost, "/api/contact", contact.Send)
	r.add(http.MethodDelete, "/api/contact/:id", contact.Delete)

	uploads := handler.NewUploadHandler(d.Storage)
	r.add(http.MethodGet, "/uploads/:name", uploads.Serve)

	// --- Operations ---
	r.add(http.MethodGet, "/api/health", handler.NewHealthHandler().Liveness)
	r.add(http.MethodGet, "/api/health/ready", handler.NewReadinessHandler(d.Checks, d.Log).Readiness)
	r.add(http.MethodGet, "/metrics", echoprometheus.NewHandler())
	r.add(http.MethodGet, "/swagger/*", echoSwagger.WrapHandler)

	return e
}

type catalogRoutes interface {
	List(echo.Context) error
	Get(echo.Context) error
	Create(echo.Context) error
	Update(echo.Context) error
	Delete(echo.Context) error
}

func registerCatalog(r *registrar, name string, h catalogRoutes) {
	base := "/api/" + name
	r.add(http.MethodGet, base, h.List)
	r.add(http.MethodGet, base+"/:id", h.Get)
	r.add(http.MethodPost, base, h.Create)
	r.add(http.MethodPut, base+"/:id", h.Update)
	r.add(http.MethodDelete, base+"/:id", h.Delete)
}

// registrar applies the policy table while routes are added.
type registrar struct {
	e      *echo.Echo
	policy map[RouteKey]Access
	gate   echo.MiddlewareFunc
}

func (r *registrar) add(method, path string, h echo.HandlerFunc, extra ...echo.MiddlewareFunc) {
	access, ok := r.policy[RouteKey{method, path}]
	if !ok {
		panic(fmt.Sprintf("api: route %s %s has no access policy", method, path))
	}

	var mws []echo.MiddlewareFunc
	if !access.Public() {
		mws = append(mws, r.gate, middleware.RequireRoles(access.Roles))
	}
	mws = append(mws, extra...)
	r.e.Add(method, path, h, mws...)
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= http.StatusInternalServerError {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}
