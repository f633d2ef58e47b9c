// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripsmith/internal/http/handlers"
	"tripsmith/internal/http/middleware"
	"tripsmith/internal/infra"
	"tripsmith/internal/modules/account"
	"tripsmith/internal/modules/trip"
)

// RouterDeps carries everything the routes need. Accounts may be nil when
// the deployment handles identity entirely client-side.
type RouterDeps struct {
	Trips    *trip.Service
	Store    handlers.TripStore
	Guard    *trip.InflightGuard
	Accounts *account.Service
	Verifier infra.TokenVerifier
	Log      *zap.Logger
}

// NewRouter builds the gin engine: one route per user action.
func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(deps.Log))
	r.Use(middleware.Logging(deps.Log))

	tripHandler := handlers.NewTripHandler(deps.Trips, deps.Store, deps.Guard)

	// Generation works for anonymous callers too; a token, when present,
	// feeds the per-user in-flight lease.
	gen := r.Group("/api", middleware.AuthOptional(deps.Verifier))
	gen.POST("/itineraries", tripHandler.Generate)
	gen.POST("/events/search", tripHandler.FindEvents)

	// Saved trips always belong to a verified owner.
	owned := r.Group("/api", middleware.Auth(deps.Verifier))
	owned.POST("/trips", tripHandler.Save)
	owned.GET("/trips", tripHandler.List)

	if deps.Accounts != nil {
		accountHandler := handlers.NewAccountHandler(deps.Accounts)
		r.POST("/api/auth/register", accountHandler.Register)
		r.POST("/api/auth/login", accountHandler.Login)
		r.POST("/api/auth/logout", middleware.Auth(deps.Verifier), accountHandler.Logout)
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
