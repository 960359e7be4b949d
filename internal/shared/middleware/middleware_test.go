package middleware

import (
	"errors"
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"

	"catalog-backend/internal/infrastructure/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errorView = template.Must(template.New("error").Parse(`{{.status}} {{.code}} {{.message}}`))

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(errorView)
	r.Use(handlers...)
	return r
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func teapot(error) (int, string, string) {
	return http.StatusTeapot, "short and stout", "TEAPOT"
}

func TestErrorHandler_RendersMappedError(t *testing.T) {
	r := newEngine(ErrorHandler(teapot))
	r.GET("/", func(c *gin.Context) {
		_ = c.Error(errors.New("boom"))
		c.Abort()
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "418 TEAPOT short and stout", w.Body.String())
}

func TestErrorHandler_LeavesWrittenResponses(t *testing.T) {
	r := newEngine(ErrorHandler(teapot))
	r.GET("/", func(c *gin.Context) {
		_ = c.Error(errors.New("logged only"))
		c.String(http.StatusOK, "fine")
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fine", w.Body.String())
}

func TestRequestID(t *testing.T) {
	r := newEngine(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = serve(r, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	r := newEngine(Recovery(), RequestID(), Logger(), Metrics())
	r.GET("/", func(c *gin.Context) {
		panic("kaboom")
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
}

func TestMetrics_RecordsRouteTemplate(t *testing.T) {
	telemetry.Initialize(true)
	handler := telemetry.Handler()
	require.NotNil(t, handler)

	r := newEngine(Metrics())
	r.GET("/catalog/publisher/:id", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	serve(r, httptest.NewRequest(http.MethodGet, "/catalog/publisher/abc", nil))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := w.Body.String()
	assert.Contains(t, body, `catalog_http_requests_total{method="GET",route="/catalog/publisher/:id",status="200"}`)
	assert.Contains(t, body, `catalog_http_request_duration_seconds_count{method="GET",route="/catalog/publisher/:id"}`)
}
