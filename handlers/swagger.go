package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the blog service.
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
    <title>blogsvc — Swagger</title>
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

// Minimal OpenAPI document describing the blog-post endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "blogsvc", "version": "v0.1.0" },
  "paths": {
    "/blog-posts": {
      "get": { "summary": "List all blog posts", "responses": { "200": { "description": "JSON array of posts" } } },
      "post": {
        "summary": "Create a blog post",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"title":{"type":"string"},"content":{"type":"string"},"author":{"type":"string"},"publishdate":{"type":"string"}},"required":["title","content","author"]}}}},
        "responses": { "201": { "description": "created post with assigned id" }, "400": { "description": "missing required field" } }
      }
    },
    "/blog-posts/{id}": {
      "put": {
        "summary": "Replace a blog post",
        "parameters": [ { "name": "id", "in": "path", "required": true, "schema": {"type":"integer"} } ],
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"title":{"type":"string"},"content":{"type":"string"},"author":{"type":"string"},"publishdate":{"type":"string"}},"required":["title","content","author"]}}}},
        "responses": { "200": { "description": "updated post" }, "404": { "description": "unknown id" } }
      },
      "delete": {
        "summary": "Delete a blog post",
        "parameters": [ { "name": "id", "in": "path", "required": true, "schema": {"type":"integer"} } ],
        "responses": { "204": { "description": "deleted" }, "404": { "description": "unknown id" } }
      }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
