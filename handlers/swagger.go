package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the restaurants API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>restaurants-api Swagger</title>
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

const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "restaurants-api", "version": "v1.0.0" },
  "paths": {
    "/api/restaurants": {
      "get": {
        "summary": "List restaurants (ordered by id)",
        "parameters": [
          { "name": "page", "in": "query", "schema": { "type": "integer", "minimum": 1, "maximum": 10000, "default": 1 } },
          { "name": "perPage", "in": "query", "schema": { "type": "integer", "minimum": 1, "maximum": 100, "default": 10 } },
          { "name": "borough", "in": "query", "schema": { "type": "string", "maxLength": 50, "pattern": "^[A-Za-z\\s\\-']+$" } }
        ],
        "responses": { "200": { "description": "page of restaurants" }, "400": { "description": "invalid query parameters" } }
      },
      "post": {
        "summary": "Create a restaurant",
        "requestBody": { "required": true, "content": { "application/json": { "schema": { "$ref": "#/components/schemas/Restaurant" } } } },
        "responses": { "201": { "description": "created" }, "400": { "description": "invalid body or validation error" } }
      }
    },
    "/api/restaurants/{id}": {
      "parameters": [ { "name": "id", "in": "path", "required": true, "schema": { "type": "string", "pattern": "^[0-9a-fA-F]{24}$" } } ],
      "get": { "summary": "Get a restaurant", "responses": { "200": { "description": "restaurant" }, "400": { "description": "invalid id" }, "404": { "description": "not found" } } },
      "put": {
        "summary": "Replace a restaurant (full document)",
        "requestBody": { "required": true, "content": { "application/json": { "schema": { "$ref": "#/components/schemas/Restaurant" } } } },
        "responses": { "200": { "description": "updated" }, "400": { "description": "invalid id, body or validation error" }, "404": { "description": "not found" } }
      },
      "delete": { "summary": "Delete a restaurant", "responses": { "204": { "description": "deleted" }, "400": { "description": "invalid id" }, "404": { "description": "not found" } } }
    },
    "/api/restaurants/{id}/deactivate": {
      "parameters": [ { "name": "id", "in": "path", "required": true, "schema": { "type": "string" } } ],
      "patch": { "summary": "Soft-delete: set isActive=false", "responses": { "200": { "description": "deactivated" }, "400": { "description": "invalid id" }, "404": { "description": "not found" } } }
    },
    "/health": { "get": { "summary": "Liveness check with storage connectivity", "responses": { "200": { "description": "alive" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "storage unavailable" } } } }
  },
  "components": {
    "schemas": {
      "Restaurant": {
        "type": "object",
        "required": ["name", "address", "cuisine", "phone", "email"],
        "properties": {
          "name": { "type": "string", "maxLength": 100 },
          "address": {
            "type": "object",
            "required": ["street", "city", "state", "zipCode"],
            "properties": { "street": {"type":"string"}, "city": {"type":"string"}, "state": {"type":"string"}, "zipCode": {"type":"string"}, "borough": {"type":"string"} }
          },
          "borough": { "type": "string" },
          "cuisine": { "type": "string", "enum": ["Italian","Chinese","Mexican","Indian","American","French","Japanese","Thai","Mediterranean","Other"] },
          "phone": { "type": "string", "example": "(212) 555-1234" },
          "email": { "type": "string", "format": "email" },
          "website": { "type": "string", "pattern": "^https?://" },
          "rating": { "type": "number", "minimum": 1, "maximum": 5, "default": 1 },
          "priceRange": { "type": "string", "enum": ["$","$$","$$$","$$$$"], "default": "$$" },
          "hours": { "type": "object", "properties": { "monday": {"type":"string"}, "tuesday": {"type":"string"}, "wednesday": {"type":"string"}, "thursday": {"type":"string"}, "friday": {"type":"string"}, "saturday": {"type":"string"}, "sunday": {"type":"string"} } },
          "isActive": { "type": "boolean", "default": true }
        }
      }
    }
  }
}`
