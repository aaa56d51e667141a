package main

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Handler holds shared dependencies for all route handlers.
type Handler struct {
	cfg config
}

const requestIDHeader = "X-Request-ID"

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// logf tags a log line with the handler name and the request ID.
func logf(c *gin.Context, tag, format string, args ...any) {
	log.Printf("[%s] %s: %s", tag, c.GetString("request_id"), fmt.Sprintf(format, args...))
}

/* ─── Middleware ──────────────────────────────────────────────────────── */

// requestIDMiddleware reuses an inbound X-Request-ID or generates a new one,
// echoes it on the response, and stores it as request_id on the context.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

/* ─── Server setup ────────────────────────────────────────────────────── */

// parseTemplates parses the embedded page templates.
func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

// newRouter builds the gin engine with middleware, templates, and routes.
func (h *Handler) newRouter(engine *gin.Engine) (*gin.Engine, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	if err := engine.SetTrustedProxies(h.cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("set trusted proxies: %w", err)
	}
	engine.SetHTMLTemplate(tmpl)
	engine.Use(requestIDMiddleware())
	h.registerRoutes(engine)
	return engine, nil
}

// registerRoutes registers all routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	router.GET("/", h.getPage)
	router.GET("/healthz", h.healthz)

	api := router.Group("/api")
	api.GET("/calculator", h.getCalculator)
	api.POST("/calculator", h.postCalculator)
	api.GET("/tables", h.getTables)
}

// healthz reports liveness. GET /healthz.
func (h *Handler) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
