package handlers

import (
	"net/http"
	"sync"

	intconfig "donation-backend/internal/config"
	intdb "donation-backend/internal/db"

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
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "donation backend running"})
}

func (h *Handlers) DBCheck(c *gin.Context) {
	ctx := c.Request.Context()
	db := h.DB
	var err error
	if db == nil {
		db = intconfig.DB
		err = intconfig.PingDB(ctx)
	} else {
		err = db.PingContext(ctx)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "database ping failed", "error": err.Error()})
		return
	}

	tables := gin.H{}
	for _, t := range intdb.Tables {
		tables[t] = intdb.HasTable(ctx, db, t)
	}
	c.JSON(http.StatusOK, gin.H{"message": "database connection OK", "tables": tables})
}

func Routes(c *gin.Context) {
	routerMu.RLock()
	r := router
	routerMu.RUnlock()
	if r == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "router not ready"})
		return
	}

	routes := r.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{
			"method": rt.Method,
			"path":   rt.Path,
		})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}
