package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"minimalapi/config"
	"minimalapi/handlers"
	"minimalapi/services/calendar"
	"minimalapi/services/generator"
	"minimalapi/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupRouter(t *testing.T, cfg config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if cfg.StaticDir == "" {
		cfg.StaticDir = t.TempDir()
	}
	hb := handlers.NewHandlerBundle(
		&generator.DefaultGeneratorService{},
		&calendar.DefaultCalendarService{},
		utils.NewHealthMonitor(cfg.Env),
		cfg.RandomsMaxCount,
	)
	r, err := NewRouter(cfg, zap.NewNop(), hb)
	require.NoError(t, err)
	return r
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestEndpoints(t *testing.T) {
	r := setupRouter(t, config.Config{Env: "development", RandomsMaxCount: 1000})

	w := do(r, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Hello World!", w.Body.String())
	assert.NotEmpty(t, w.Header().Get(utils.RequestIDHeader))

	w = do(r, http.MethodGet, "/guid", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/randoms?count=3&range=10", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var nums []int
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &nums))
	assert.Len(t, nums, 3)

	w = do(r, http.MethodPost, "/workdays", `{"start":"2024-01-01","end":"2024-01-07"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"start":"2024-01-01T00:00:00Z",
		"end":"2024-01-07T00:00:00Z",
		"workDays":[
			"2024-01-01T00:00:00Z","2024-01-02T00:00:00Z","2024-01-03T00:00:00Z",
			"2024-01-04T00:00:00Z","2024-01-05T00:00:00Z"
		]
	}`, w.Body.String())

	w = do(r, http.MethodPost, "/workdays2", `{"start":"2024-01-07","end":"2024-01-01"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"code":1487,"message":"start date may not exceed end date"}`, w.Body.String())

	w = do(r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var health utils.HealthStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "ok", health.Status)
}

func TestCORS(t *testing.T) {
	r := setupRouter(t, config.Config{Env: "development"})

	req := httptest.NewRequest(http.MethodGet, "/guid", nil)
	req.Header.Set("Origin", "http://example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSwaggerInDevelopment(t *testing.T) {
	r := setupRouter(t, config.Config{Env: "development"})

	w := do(r, http.MethodGet, SwaggerDocPath, "")
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		Info struct {
			Title   string `json:"title"`
			Version string `json:"version"`
		} `json:"info"`
		Paths map[string]map[string]struct {
			OperationID string   `json:"operationId"`
			Tags        []string `json:"tags"`
		} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "Minimal API Demo", doc.Info.Title)
	assert.Equal(t, "v1", doc.Info.Version)
	assert.Equal(t, "NewGuid", doc.Paths["/guid"]["get"].OperationID)
	assert.Equal(t, "GetRandoms", doc.Paths["/randoms"]["get"].OperationID)
	assert.ElementsMatch(t, []string{"Math", "Generators"}, doc.Paths["/randoms"]["get"].Tags)
	assert.Equal(t, "GetWorkDays", doc.Paths["/workdays"]["post"].OperationID)
	assert.Contains(t, doc.Paths, "/workdays2")
	assert.NotContains(t, doc.Paths, "/")
	assert.NotContains(t, doc.Paths, "/health")

	w = do(r, http.MethodGet, "/swagger/index.html", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/swagger/", "")
	assert.Equal(t, http.StatusMovedPermanently, w.Code)
	assert.Equal(t, "/swagger/index.html", w.Header().Get("Location"))
}

func TestSwaggerHiddenOutsideDevelopment(t *testing.T) {
	r := setupRouter(t, config.Config{Env: "production"})

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, SwaggerDocPath, "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/swagger/index.html", "").Code)
}

func TestStaticFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>root</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "index.html"), []byte("<h1>sub</h1>"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "empty"), 0o755))

	r := setupRouter(t, config.Config{Env: "production", StaticDir: dir})

	w := do(r, http.MethodGet, "/app.js", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "console.log(1)", w.Body.String())

	w = do(r, http.MethodGet, "/index.html", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<h1>root</h1>", w.Body.String())

	w = do(r, http.MethodGet, "/sub/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<h1>sub</h1>", w.Body.String())

	w = do(r, http.MethodGet, "/sub", "")
	assert.Equal(t, http.StatusMovedPermanently, w.Code)
	assert.Equal(t, "/sub/", w.Header().Get("Location"))

	// Routes win over files.
	w = do(r, http.MethodGet, "/", "")
	assert.Equal(t, "Hello World!", w.Body.String())

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/empty/", "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/missing.txt", "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/../../etc/passwd", "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPost, "/app.js", "").Code)
}

func TestRateLimit(t *testing.T) {
	r := setupRouter(t, config.Config{Env: "production", MaxRequestsPerMin: 1})

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/guid", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, do(r, http.MethodGet, "/guid", "").Code)
}

func TestRateLimitIgnoresForwardedForFromUntrustedPeer(t *testing.T) {
	r := setupRouter(t, config.Config{Env: "production", MaxRequestsPerMin: 1})

	allowed := 0
	for i := 0; i < 50; i++ {
		req := httptest.NewRequest(http.MethodGet, "/guid", nil)
		req.RemoteAddr = "192.0.2.50:4000"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", i))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code == http.StatusOK {
			allowed++
		}
	}
	assert.Equal(t, 1, allowed)
}

func TestRateLimitHonorsTrustedProxy(t *testing.T) {
	r := setupRouter(t, config.Config{
		Env:               "production",
		MaxRequestsPerMin: 1,
		TrustedProxies:    []string{"192.0.2.0/24"},
	})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/guid", nil)
		req.RemoteAddr = "192.0.2.50:4000"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", i))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestNewRouterRejectsInvalidTrustedProxies(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hb := handlers.NewHandlerBundle(
		&generator.DefaultGeneratorService{},
		&calendar.DefaultCalendarService{},
		utils.NewHealthMonitor("production"),
		0,
	)
	_, err := NewRouter(config.Config{TrustedProxies: []string{"not-a-proxy"}}, zap.NewNop(), hb)
	assert.Error(t, err)
}

func TestRandomsUncappedByDefault(t *testing.T) {
	r := setupRouter(t, config.Config{Env: "production"})

	w := do(r, http.MethodGet, "/randoms?count=10001&range=10", "")
	require.Equal(t, http.StatusOK, w.Code)

	var nums []int
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &nums))
	assert.Len(t, nums, 10001)
}
