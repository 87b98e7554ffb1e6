package routes

import (
	"net/http"

	"zodiac/config"
	"zodiac/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAnalysisRoutes mounts the analysis endpoint for the deployment's mode.
func RegisterAnalysisRoutes(r *gin.Engine, hb *handlers.HandlerBundle, mode string) {
	if mode == config.ModeSingle {
		r.POST("/zodiac-analysis", hb.SectionAnalysisHandler)
		return
	}
	r.POST("/zodiac-analysis", hb.ZodiacAnalysisHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// CORS allows the configured browser origins with credentials and any request
// header. With no origins configured, cross-origin requests get no CORS
// headers at all.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	if len(allowedOrigins) == 0 {
		return func(c *gin.Context) { c.Next() }
	}
	handler := cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-Id"},
		AllowCredentials: true,
	})
	return func(c *gin.Context) {
		if requested := c.GetHeader("Access-Control-Request-Headers"); requested != "" && c.Request.Method == http.MethodOptions {
			c.Writer = &allowHeadersWriter{ResponseWriter: c.Writer, requested: requested}
		}
		handler(c)
	}
}

// allowHeadersWriter echoes the preflight's requested headers in place of the
// "*" wildcard, which browsers take literally on credentialed requests.
type allowHeadersWriter struct {
	gin.ResponseWriter
	requested string
}

func (w *allowHeadersWriter) WriteHeader(code int) {
	w.echoRequested()
	w.ResponseWriter.WriteHeader(code)
}

func (w *allowHeadersWriter) WriteHeaderNow() {
	w.echoRequested()
	w.ResponseWriter.WriteHeaderNow()
}

func (w *allowHeadersWriter) echoRequested() {
	if w.Header().Get("Access-Control-Allow-Headers") == "*" {
		w.Header().Set("Access-Control-Allow-Headers", w.requested)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, cfg config.Config) {
	r.Use(CORS(cfg.CORSAllowedOrigins))

	RegisterHealthRoute(r)
	RegisterAnalysisRoutes(r, hb, cfg.AnalysisMode)
}
