package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "schemes": {{ marshal .Schemes }},
    "paths": {
        "/coaches": {
            "get": {
                "tags": ["coaches"],
                "summary": "List coaches",
                "description": "Get every coach in stored order",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/entities.Coach"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            },
            "post": {
                "tags": ["coaches"],
                "summary": "Create a new coach",
                "description": "Append a coach; the ID is assigned by the server",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "description": "Coach data", "schema": {"$ref": "#/definitions/ports.CreateCoachRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/entities.Coach"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/coaches/{id}": {
            "get": {
                "tags": ["coaches"],
                "summary": "Get coach by ID",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "id", "type": "integer", "required": true, "description": "Coach ID"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/entities.Coach"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            },
            "put": {
                "tags": ["coaches"],
                "summary": "Update a coach",
                "description": "Overwrite the supplied fields; omitted fields keep their values",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "id", "type": "integer", "required": true, "description": "Coach ID"},
                    {"in": "body", "name": "request", "required": true, "description": "Fields to change", "schema": {"$ref": "#/definitions/ports.UpdateCoachRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/entities.Coach"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["coaches"],
                "summary": "Delete a coach",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "id", "type": "integer", "required": true, "description": "Coach ID"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.ResultResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/nba-results": {
            "get": {
                "tags": ["league"],
                "summary": "NBA game results",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.ResultResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/stadiums": {
            "get": {
                "tags": ["league"],
                "summary": "NBA stadiums",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "object"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/player-info": {
            "get": {
                "tags": ["league"],
                "summary": "Player listing",
                "description": "Player profiles with per-game averages",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/entities.PlayerSummary"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/players": {
            "post": {
                "tags": ["league"],
                "summary": "Create a new player",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "description": "Player data", "schema": {"$ref": "#/definitions/ports.CreatePlayerRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/entities.Player"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/optimize": {
            "get": {
                "tags": ["demo"],
                "summary": "Timed token-count demonstration",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ports.OptimizeResponse"}}
                }
            }
        },
        "/summarize": {
            "post": {
                "tags": ["demo"],
                "summary": "Summarize a transcription (placeholder)",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "description": "Transcription", "schema": {"$ref": "#/definitions/ports.SummarizeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/press-conferences": {
            "get": {
                "tags": ["demo"],
                "summary": "Press conferences (placeholder)",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "object"}}}
                }
            }
        },
        "/health": {
            "get": {
                "tags": ["health"],
                "summary": "Health check",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.HealthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "entities.Coach": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "age": {"type": "number"},
                "team": {"type": "string"},
                "history": {"type": "array", "items": {}}
            }
        },
        "entities.Player": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "position": {"type": "string"},
                "team": {"type": "string"},
                "height": {"type": "string"},
                "weight": {"type": "string"},
                "birthDate": {"type": "string"},
                "stats": {"type": "object", "additionalProperties": true}
            }
        },
        "entities.PlayerSummary": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "team": {"type": "string"},
                "weight": {"type": "string"},
                "height": {"type": "string"},
                "position": {"type": "string"},
                "stats": {"type": "object", "additionalProperties": true}
            }
        },
        "http.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "http.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "service": {"type": "string"}
            }
        },
        "http.ResultResponse": {
            "type": "object",
            "properties": {
                "result": {}
            }
        },
        "ports.CreateCoachRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string"},
                "age": {"type": "number"},
                "team": {"type": "string"},
                "history": {"type": "array", "items": {}}
            }
        },
        "ports.UpdateCoachRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "age": {"type": "number"},
                "team": {"type": "string"},
                "history": {"type": "array", "items": {}}
            }
        },
        "ports.CreatePlayerRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string"},
                "position": {"type": "string"},
                "team": {"type": "string"},
                "height": {"type": "string"},
                "weight": {"type": "string"},
                "birthDate": {"type": "string"},
                "stats": {"type": "object", "additionalProperties": true}
            }
        },
        "ports.SummarizeRequest": {
            "type": "object",
            "properties": {
                "transcription": {"type": "string"}
            }
        },
        "ports.OptimizeResponse": {
            "type": "object",
            "properties": {
                "prompt": {"type": "string"},
                "tokenCount": {"type": "integer"},
                "executionTime": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "Courtside NBA API",
	Description:      "Coaches, players and league data for the Courtside dashboard",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
