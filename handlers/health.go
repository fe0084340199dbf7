package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

var startTime = time.Now()

// StorageStatus is the part of the storage handle the probes need.
type StorageStatus interface {
	Ping(ctx context.Context) error
	Connected() bool
}

// RegisterHealth mounts the liveness (/health) and readiness (/ready) probes.
// Liveness always answers 200 and reports storage connectivity; readiness
// answers 503 while storage is unreachable.
func RegisterHealth(r *gin.Engine, storage StorageStatus) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"status":  "ok",
			"uptime":  time.Since(startTime).String(),
			"storage": gin.H{"connected": storageConnected(c.Request.Context(), storage)},
		})
	})

	r.GET("/ready", func(c *gin.Context) {
		deps := map[string]bool{"storage": storageConnected(c.Request.Context(), storage)}
		if !deps["storage"] {
			c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "status": "not_ready", "deps": deps})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "status": "ready", "deps": deps})
	})
}

func storageConnected(ctx context.Context, storage StorageStatus) bool {
	if storage == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	_ = storage.Ping(ctx)
	return storage.Connected()
}
