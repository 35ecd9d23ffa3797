package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	intdb "redbus/internal/db"
	"redbus/internal/repositories"

	"github.com/gin-gonic/gin"
)

var (
	routerMu sync.RWMutex
	router   *gin.Engine
)

// SetRouter stores the active gin engine for later inspection (e.g., /api/routes).
func SetRouter(r *gin.Engine) {
	routerMu.Lock()
	defer routerMu.Unlock()
	router = r
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "redbus api running"})
}

// DBCheck pings the store and reports whether the offering tables are usable.
func (a API) DBCheck(c *gin.Context) {
	if a.DB == nil {
		respondError(c, http.StatusServiceUnavailable, "storage_unavailable", "database not connected", nil)
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if err := a.DB.PingContext(ctx); err != nil {
		respondError(c, http.StatusServiceUnavailable, "storage_unavailable", "database ping failed", nil)
		return
	}

	out := gin.H{"message": "database connection OK", "driver": a.Driver}
	// information_schema probing is MySQL-only
	if a.Driver == "" || a.Driver == "mysql" {
		out["tables"] = gin.H{
			"redbus":                 intdb.HasTable(ctx, a.DB, "redbus"),
			"redbus_state_transport": intdb.HasTable(ctx, a.DB, "redbus_state_transport"),
			"seats_available":        intdb.HasColumn(ctx, a.DB, "redbus", "seats_available"),
		}
	}

	n, err := repositories.OfferingRepository{DB: a.DB}.Count(ctx)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	out["offerings_in_db"] = n
	c.JSON(http.StatusOK, out)
}

func Routes(c *gin.Context) {
	routerMu.RLock()
	r := router
	routerMu.RUnlock()
	if r == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "router not ready"})
		return
	}

	routes := r.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{
			"method":  rt.Method,
			"path":    rt.Path,
			"handler": rt.Handler,
		})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}
