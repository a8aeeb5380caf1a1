package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestLogger_GeneratesRequestID(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(RequestLogger(zerolog.New(&buf)))

	var fromHandler string
	r.GET("/leads", func(c *gin.Context) {
		zerolog.Ctx(c.Request.Context()).Info().Msg("inside")
		fromHandler = c.Writer.Header().Get(RequestIDHeader)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leads?email=a@b.c", nil))

	requestID := w.Header().Get(RequestIDHeader)
	require.NotEmpty(t, requestID)
	assert.Equal(t, requestID, fromHandler)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var inside, access map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &inside))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &access))

	assert.Equal(t, requestID, inside["request_id"])
	assert.Equal(t, requestID, access["request_id"])
	assert.Equal(t, "GET", access["method"])
	assert.Equal(t, "/leads", access["route"])
	assert.Equal(t, float64(200), access["status"])
	assert.Equal(t, "info", access["level"])
}

func TestRequestLogger_HonorsIncomingRequestID(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(RequestLogger(zerolog.New(&buf)))
	r.PUT("/leads/:id", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
	})

	req := httptest.NewRequest(http.MethodPut, "/leads/9", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))
	assert.Contains(t, buf.String(), `"request_id":"req-123"`)
	assert.Contains(t, buf.String(), `"route":"/leads/:id"`)
	assert.Contains(t, buf.String(), `"level":"warn"`)
}

func TestMetrics_CountsByRoute(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewMetrics(registry)

	r := gin.New()
	r.Use(m.Handler())
	r.PUT("/courses/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/courses/1", "/courses/2", "/nowhere"} {
		req := httptest.NewRequest(http.MethodPut, path, nil)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(m.RequestsTotal.WithLabelValues("PUT", "/courses/:id", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RequestsTotal.WithLabelValues("PUT", "unmatched", "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.RequestDuration))
}

func TestNewMetrics_RegistersOnRegistry(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewMetrics(registry)
	m.RequestsTotal.WithLabelValues("GET", "/leads", "200").Inc()

	families, err := registry.Gather()
	require.NoError(t, err)

	names := []string{}
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "course_leads_http_requests_total")
}
