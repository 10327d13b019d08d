package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/lumenasoft/usersvc/internal/users/service"
	"github.com/lumenasoft/usersvc/internal/users/store"
	"github.com/lumenasoft/usersvc/pkg/httpx"
	"github.com/lumenasoft/usersvc/pkg/jwtx"
	"github.com/lumenasoft/usersvc/pkg/slogx"

	_ "github.com/lumenasoft/usersvc/api/users" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	// authDisabled exposes the user CRUD routes without bearer auth. It
	// replaces the legacy duplicate unauthenticated route set this service
	// inherited; one code path, toggled at startup.
	authDisabled bool

	store       store.Store
	UserService *service.UserService
	AuthService *service.AuthService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	authDisabled bool,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		authDisabled: authDisabled,
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerUsers()
	r.registerAuth()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())

	// Catch-all for unmatched routes; everything gets the JSON envelope.
	r.Mux.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		writeError(w, http.StatusNotFound, "endpoint not found")
	})
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			User Service API
//	@version		0.1.0
//	@description	CRUD service for user records with JWT-based authentication.
//	@description
//	@description	Every response uses the {success, data?, count?, message?, error?} envelope.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	// Reads get a lenient limit, writes a moderate one, keyed by user when
	// auth is on and by IP otherwise.
	read := func(next http.Handler) http.Handler {
		return r.secured(next, httpx.RateLimitByUser(httpx.LenientLimit))
	}
	write := func(next http.Handler) http.Handler {
		return r.secured(next, httpx.RateLimitByUser(httpx.ModerateLimit))
	}

	r.Mux.Handle("GET /v1/users", read(http.HandlerFunc(h.HandleList)))
	r.Mux.Handle("GET /v1/users/{id}", read(http.HandlerFunc(h.HandleGet)))
	r.Mux.Handle("POST /v1/users", write(http.HandlerFunc(h.HandleCreate)))
	r.Mux.Handle("PUT /v1/users/{id}", write(http.HandlerFunc(h.HandleUpdate)))
	r.Mux.Handle("DELETE /v1/users/{id}", write(http.HandlerFunc(h.HandleDelete)))
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	// Public endpoints: strict rate limit by IP (brute force prevention)
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// Token-bearing endpoints always authenticate, even when the CRUD
	// surface runs with auth disabled.
	secured := func(next http.Handler) http.Handler {
		return httpx.Chain(next,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("POST /v1/auth/refresh", secured(http.HandlerFunc(h.HandleRefresh)))
	r.Mux.Handle("GET /v1/auth/me", secured(http.HandlerFunc(h.HandleMe)))
	r.Mux.Handle("POST /v1/auth/logout", secured(http.HandlerFunc(h.HandleLogout)))
}

func (r *Router) registerSystem() {
	// Health check endpoints - monitoring systems may poll frequently
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

// secured wraps a CRUD handler with bearer auth unless the auth-disabled
// flag is set, then applies the given rate limit.
func (r *Router) secured(next http.Handler, limit httpx.Middleware) http.Handler {
	if r.authDisabled {
		return httpx.Chain(next, limit)
	}
	return httpx.Chain(next,
		httpx.AuthnMiddleware(r.verifier),
		limit,
	)
}
