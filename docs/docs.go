// Package docs describes the converter HTTP API for swag.
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
        "/convert-eur-to-usd": {
            "get": {
                "description": "Multiplies the amount by the fixed EUR/USD rate.",
                "produces": ["text/plain"],
                "tags": ["conversion"],
                "summary": "Convert EUR to USD",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Amount in EUR, non-negative",
                        "name": "eur",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "100 EUR = 116.00 USD",
                        "schema": {"type": "string"}
                    },
                    "400": {
                        "description": "Montant invalide sale con met un nombre positif",
                        "schema": {"type": "string"}
                    }
                }
            }
        },
        "/convert-usd-to-gbp": {
            "get": {
                "description": "Multiplies the amount by the fixed USD/GBP rate.",
                "produces": ["text/plain"],
                "tags": ["conversion"],
                "summary": "Convert USD to GBP",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Amount in USD, non-negative",
                        "name": "usd",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "100 USD = 73.00 GBP",
                        "schema": {"type": "string"}
                    },
                    "400": {
                        "description": "Montant invalide: doit être un nombre positif",
                        "schema": {"type": "string"}
                    }
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/health.Status"}
                    }
                }
            }
        }
    },
    "definitions": {
        "health.Status": {
            "type": "object",
            "properties": {
                "service": {"type": "string"},
                "status": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:1234",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "currency-converter API",
	Description:      "Fixed-rate EUR to USD and USD to GBP conversions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
