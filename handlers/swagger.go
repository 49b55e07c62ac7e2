package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>gosec-backend — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document covering the main endpoint groups.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "gosec-backend", "version": "v0.1.0" },
  "paths": {
    "/api/auth/login": {
      "post": {
        "summary": "Admin login (form-encoded credentials)",
        "requestBody": { "content": { "application/x-www-form-urlencoded": { "schema": {"type":"object","properties":{"username":{"type":"string"},"password":{"type":"string"}}}}}},
        "responses": { "200": { "description": "bearer token returned" }, "401": { "description": "invalid credentials" } }
      }
    },
    "/api/programs": {
      "get": { "summary": "List programs (seeds defaults on first read)", "responses": { "200": { "description": "programs" } } },
      "post": { "summary": "Create a program (admin)", "responses": { "201": { "description": "created" } } }
    },
    "/api/gallery": {
      "get": { "summary": "List gallery items", "responses": { "200": { "description": "gallery items" } } },
      "post": { "summary": "Create a gallery item (admin)", "responses": { "201": { "description": "created" } } }
    },
    "/api/events": {
      "get": { "summary": "List events", "responses": { "200": { "description": "events" } } },
      "post": { "summary": "Create an event (admin)", "responses": { "201": { "description": "created" } } }
    },
    "/api/leadership": {
      "get": { "summary": "List leadership members", "responses": { "200": { "description": "members" } } },
      "post": { "summary": "Create a member (admin)", "responses": { "201": { "description": "created" } } }
    },
    "/api/content/hero": {
      "get": { "summary": "Get hero content (auto-creates default)", "responses": { "200": { "description": "hero content" } } },
      "put": { "summary": "Update hero content (admin)", "responses": { "200": { "description": "updated" } } }
    },
    "/api/content/about": {
      "get": { "summary": "Get about content (auto-creates default)", "responses": { "200": { "description": "about content" } } },
      "put": { "summary": "Update about content (admin)", "responses": { "200": { "description": "updated" } } }
    },
    "/api/forms/join": {
      "post": { "summary": "Submit a join form (public)", "responses": { "201": { "description": "stored" } } },
      "get": { "summary": "List join submissions (admin)", "responses": { "200": { "description": "submissions" } } }
    },
    "/api/forms/donate": {
      "post": { "summary": "Submit a donation pledge (public)", "responses": { "201": { "description": "stored" } } },
      "get": { "summary": "List donation pledges (admin)", "responses": { "200": { "description": "submissions" } } }
    },
    "/api/forms/contact": {
      "post": { "summary": "Submit a contact form (public)", "responses": { "201": { "description": "stored" } } },
      "get": { "summary": "List contact submissions (admin)", "responses": { "200": { "description": "submissions" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
