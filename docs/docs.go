// Package docs holds the OpenAPI description served under /swagger. It is
// maintained by hand in the layout swag init produces; keep it in sync with
// the handler annotations.
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
        "/search": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Returns every entry matching all given fields. Text and list fields match a case-insensitive substring; numeric and flag fields match exactly. Zero values and empty strings are ignored.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "catalog"
                ],
                "summary": "Search the catalog",
                "parameters": [
                    {"type": "integer", "description": "App ID", "name": "AppID", "in": "query"},
                    {"type": "string", "description": "Name substring", "name": "Name", "in": "query"},
                    {"type": "string", "description": "Release date substring", "name": "Release_date", "in": "query"},
                    {"type": "integer", "description": "Required age", "name": "Required_age", "in": "query"},
                    {"type": "number", "description": "Price", "name": "Price", "in": "query"},
                    {"type": "integer", "description": "DLC count", "name": "DLC_count", "in": "query"},
                    {"type": "string", "description": "Description substring", "name": "About_the_game", "in": "query"},
                    {"type": "string", "description": "Language substring", "name": "Supported_languages", "in": "query"},
                    {"type": "integer", "description": "Windows support (1)", "name": "Windows", "in": "query"},
                    {"type": "integer", "description": "Mac support (1)", "name": "Mac", "in": "query"},
                    {"type": "integer", "description": "Linux support (1)", "name": "Linux", "in": "query"},
                    {"type": "integer", "description": "Positive reviews", "name": "Positive", "in": "query"},
                    {"type": "integer", "description": "Negative reviews", "name": "Negative", "in": "query"},
                    {"type": "integer", "description": "Score rank", "name": "Score_rank", "in": "query"},
                    {"type": "string", "description": "Developer substring", "name": "Developers", "in": "query"},
                    {"type": "string", "description": "Publisher substring", "name": "Publishers", "in": "query"},
                    {"type": "string", "description": "Category substring", "name": "Categories", "in": "query"},
                    {"type": "string", "description": "Genre substring", "name": "Genres", "in": "query"},
                    {"type": "string", "description": "Tag substring", "name": "Tags", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/search.Result"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/token": {
            "post": {
                "description": "Exchanges client credentials for a bearer token accepted by /search.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Issue a bearer token",
                "parameters": [
                    {
                        "description": "Client credentials",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.TokenInput"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.TokenResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/uploadcsv/": {
            "post": {
                "description": "Uploads a CSV file (or a JSON array of records) and atomically replaces the stored catalog with it.",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "catalog"
                ],
                "summary": "Replace the catalog dataset",
                "parameters": [
                    {
                        "type": "file",
                        "description": "Dataset file",
                        "name": "csv_file",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.UploadResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.MissingColumnsResponse"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {
                "detail": {"type": "string", "example": "An error message"}
            }
        },
        "handler.MissingColumnsResponse": {
            "type": "object",
            "properties": {
                "detail": {"type": "string", "example": "missing columns in CSV: [Tags]"},
                "duplicate": {"type": "array", "items": {"type": "string"}},
                "missing": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handler.TokenInput": {
            "type": "object",
            "required": [
                "client_id",
                "client_secret"
            ],
            "properties": {
                "client_id": {"type": "string", "example": "catalog-client"},
                "client_secret": {"type": "string", "example": "change-me"}
            }
        },
        "handler.TokenResponse": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "expires_in": {"type": "integer", "example": 86400},
                "token_type": {"type": "string", "example": "bearer"}
            }
        },
        "handler.UploadResponse": {
            "type": "object",
            "properties": {
                "detail": {"type": "string", "example": "File uploaded successfully"},
                "rows": {"type": "integer", "example": 2}
            }
        },
        "models.CatalogEntry": {
            "type": "object",
            "properties": {
                "AppID": {"type": "integer", "example": 620},
                "Name": {"type": "string", "example": "Portal 2"},
                "Release_date": {"type": "string", "example": "Apr 18, 2011"},
                "Required_age": {"type": "integer"},
                "Price": {"type": "number", "example": 9.99},
                "DLC_count": {"type": "integer"},
                "About_the_game": {"type": "string"},
                "Supported_languages": {"type": "array", "items": {"type": "string"}},
                "Windows": {"type": "integer", "example": 1},
                "Mac": {"type": "integer", "example": 1},
                "Linux": {"type": "integer", "example": 1},
                "Positive": {"type": "integer"},
                "Negative": {"type": "integer"},
                "Score_rank": {"type": "integer"},
                "Developers": {"type": "string", "example": "Valve"},
                "Publishers": {"type": "string", "example": "Valve"},
                "Categories": {"type": "array", "items": {"type": "string"}},
                "Genres": {"type": "array", "items": {"type": "string"}},
                "Tags": {"type": "array", "items": {"type": "string"}}
            }
        },
        "search.Result": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "results": {"type": "array", "items": {"$ref": "#/definitions/models.CatalogEntry"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Game Catalog API",
	Description:      "Uploads game catalog datasets and serves multi-field search over them.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
