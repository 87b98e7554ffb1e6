package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"zodiac/config"
	"zodiac/handlers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func bundle() *handlers.HandlerBundle {
	return &handlers.HandlerBundle{
		ZodiacAnalysisHandler:  func(c *gin.Context) { c.String(http.StatusOK, "batch") },
		SectionAnalysisHandler: func(c *gin.Context) { c.String(http.StatusOK, "single") },
	}
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterRoutes_ModeSelectsHandler(t *testing.T) {
	for _, mode := range []string{config.ModeBatch, config.ModeSingle} {
		r := gin.New()
		RegisterRoutes(r, bundle(), config.Config{AnalysisMode: mode})

		w := serve(r, httptest.NewRequest(http.MethodPost, "/zodiac-analysis", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, mode, w.Body.String())
	}
}

func TestRegisterRoutes_Health(t *testing.T) {
	r := gin.New()
	RegisterRoutes(r, bundle(), config.Config{AnalysisMode: config.ModeBatch})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestCORS_AllowedOrigin(t *testing.T) {
	r := gin.New()
	RegisterRoutes(r, bundle(), config.Config{
		AnalysisMode:       config.ModeBatch,
		CORSAllowedOrigins: []string{"http://localhost:5173"},
	})

	req := httptest.NewRequest(http.MethodOptions, "/zodiac-analysis", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := serve(r, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_PreflightAllowsAnyRequestedHeader(t *testing.T) {
	r := gin.New()
	RegisterRoutes(r, bundle(), config.Config{
		AnalysisMode:       config.ModeBatch,
		CORSAllowedOrigins: []string{"http://localhost:5173"},
	})

	req := httptest.NewRequest(http.MethodOptions, "/zodiac-analysis", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "content-type,x-client-version")
	w := serve(r, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "content-type,x-client-version", w.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_ForeignOriginRejected(t *testing.T) {
	r := gin.New()
	RegisterRoutes(r, bundle(), config.Config{
		AnalysisMode:       config.ModeBatch,
		CORSAllowedOrigins: []string{"http://localhost:5173"},
	})

	req := httptest.NewRequest(http.MethodPost, "/zodiac-analysis", nil)
	req.Header.Set("Origin", "https://evil.example")
	w := serve(r, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
