package api

import (
	"database/sql"
	"log"
	stdhttp "net/http"

	intconfig "redbus/internal/config"
	h "redbus/internal/http/handlers"
	"redbus/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// NewRouter mounts the read-only offering API over the session's storage handle.
func NewRouter(env intconfig.Env, db *sql.DB) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	a := h.API{DB: db, Driver: env.DB.Driver, QueryTimeout: env.QueryTimeout}

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", a.DBCheck)
		api.GET("/routes", h.Routes)

		offerings := api.Group("/offerings")
		offerings.GET("", a.SearchOfferings)
		offerings.GET("/report.pdf", a.OfferingsReport)

		lookups := api.Group("/lookups")
		lookups.GET("/states", a.States)
		lookups.GET("/routes", a.RoutesForState)
		lookups.GET("/buses", a.BusNamesForRoute)
		lookups.GET("/bus-types", a.BusTypes)
	}

	h.SetRouter(r)
	return r
}
