// Package docs registers the Swagger spec served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {
                    "200": {"description": "API is healthy"}
                }
            }
        },
        "/api/v1/chat/stream": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["text/event-stream"],
                "tags": ["Chat"],
                "summary": "Stream a chat turn",
                "responses": {
                    "200": {"description": "SSE stream of events, terminated by [DONE]"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/api/v1/chat/agents": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "List specialists",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/v1/sensor/decode": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Sensor"],
                "summary": "Decode a collar frame",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/api/v1/sensor/analyze": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Sensor"],
                "summary": "Analyze a vitals window",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/api/v1/sensor/explain": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Sensor"],
                "summary": "Explain a vitals window in plain language",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Pet Agent Service API",
	Description:      "Multi-agent pet health assistant: LLM routing, specialists, language consistency, sensor anomaly detection.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
