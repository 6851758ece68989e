package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"wexel-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const healthProbeTimeout = 2 * time.Second

type dependencyHealth struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// HealthCheck handles GET /health. Dependencies are probed concurrently, each
// under its own deadline; any failure turns the response into a 503.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			mu       sync.Mutex
			deps     = make(map[string]dependencyHealth, len(checkers))
			degraded bool
		)

		var g errgroup.Group
		for _, checker := range checkers {
			g.Go(func() error {
				ctx, cancel := context.WithTimeout(c.Request.Context(), healthProbeTimeout)
				defer cancel()

				result := dependencyHealth{Status: "healthy"}
				if err := checker.Ping(ctx); err != nil {
					result = dependencyHealth{Status: "unhealthy", Error: err.Error()}
				}

				mu.Lock()
				defer mu.Unlock()
				deps[checker.Name()] = result
				degraded = degraded || result.Status != "healthy"
				return nil
			})
		}
		_ = g.Wait()

		status, code := "healthy", http.StatusOK
		if degraded {
			status, code = "degraded", http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
