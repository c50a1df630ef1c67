package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type pingStub struct {
	err error
}

func (p pingStub) Ping(ctx context.Context) error {
	return p.err
}

func TestHealthHandler(t *testing.T) {
	newHealthRouter := func(err error) *gin.Engine {
		h := NewHealthHandler(pingStub{err: err})
		router := gin.New()
		router.GET("/health", h.Health)
		router.GET("/ready", h.Ready)
		router.GET("/live", h.Live)
		return router
	}

	t.Run("healthy when feed reachable", func(t *testing.T) {
		w := get(newHealthRouter(nil), "/health")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"healthy"`)
	})

	t.Run("unhealthy when feed unreachable", func(t *testing.T) {
		w := get(newHealthRouter(errors.New("refused")), "/health")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("ready mirrors feed reachability", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, get(newHealthRouter(nil), "/ready").Code)
		assert.Equal(t, http.StatusServiceUnavailable, get(newHealthRouter(errors.New("refused")), "/ready").Code)
	})

	t.Run("live is always ok", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/live", nil)
		w := httptest.NewRecorder()
		newHealthRouter(errors.New("refused")).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
