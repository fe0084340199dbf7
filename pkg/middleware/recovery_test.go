package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestRecovery(t *testing.T) {
	for _, tc := range []struct {
		name       string
		showErrors bool
		want       string
	}{
		{"production", false, `{"success":false,"message":"Internal server error"}`},
		{"development", true, `{"success":false,"message":"Internal server error","error":"boom"}`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.Use(Recovery(tc.showErrors))
			r.GET("/panic", func(c *gin.Context) { panic("boom") })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
			require.Equal(t, http.StatusInternalServerError, w.Code)
			require.JSONEq(t, tc.want, w.Body.String())
		})
	}
}

func TestMetricsMiddlewarePassesThrough(t *testing.T) {
	r := gin.New()
	r.Use(Metrics())
	r.GET("/m/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/m/1", nil))
	require.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}
