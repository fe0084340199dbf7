package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/restaurants/restaurants-api/backend/go-services/pkg/logger"
)

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/rid", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(KeyRequestID)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rid", nil))
	require.Equal(t, http.StatusOK, w.Code)
	_, err := uuid.Parse(w.Body.String())
	require.NoError(t, err)
	require.Equal(t, w.Body.String(), w.Header().Get(KeyRequestID))

	req := httptest.NewRequest(http.MethodGet, "/rid", nil)
	req.Header.Set(KeyRequestID, "caller-supplied")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, "caller-supplied", w.Body.String())
	require.Equal(t, "caller-supplied", w.Header().Get(KeyRequestID))
}

func TestRequestIDReachesAccessLog(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	defer logger.SetOutput(os.Stdout)
	logger.Init("info")

	r := gin.New()
	r.Use(RequestID(), logger.Middleware())
	r.GET("/rid", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/rid", nil)
	req.Header.Set(KeyRequestID, "trace-42")
	r.ServeHTTP(httptest.NewRecorder(), req)
	require.Contains(t, buf.String(), "trace-42")
}
