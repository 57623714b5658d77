// Package swagger registers the OpenAPI document served at /swagger.
package swagger

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
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "X-API-Key",
            "in": "header"
        }
    },
    "security": [
        {
            "ApiKeyAuth": []
        }
    ],
    "paths": {
        "/posts": {
            "get": {
                "tags": [
                    "posts"
                ],
                "produces": [
                    "application/json",
                    "application/x-ndjson"
                ],
                "summary": "List posts",
                "parameters": [
                    {
                        "type": "boolean",
                        "description": "Stream every envelope as NDJSON",
                        "name": "watch",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Stop watching after this many envelopes",
                        "name": "max",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "List envelope",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/reconcile.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/posts.Post"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Error envelope",
                        "schema": {
                            "$ref": "#/definitions/reconcile.Envelope"
                        }
                    },
                    "502": {
                        "description": "Error envelope",
                        "schema": {
                            "$ref": "#/definitions/reconcile.Envelope"
                        }
                    },
                    "504": {
                        "description": "Error envelope",
                        "schema": {
                            "$ref": "#/definitions/reconcile.Envelope"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "posts"
                ],
                "produces": [
                    "application/json",
                    "application/x-ndjson"
                ],
                "summary": "Create a post",
                "parameters": [
                    {
                        "description": "Post",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/posts.Post"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Created envelope",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/reconcile.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/posts.Post"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Error envelope",
                        "schema": {
                            "$ref": "#/definitions/reconcile.Envelope"
                        }
                    },
                    "502": {
                        "description": "Error envelope",
                        "schema": {
                            "$ref": "#/definitions/reconcile.Envelope"
                        }
                    },
                    "504": {
                        "description": "Error envelope",
                        "schema": {
                            "$ref": "#/definitions/reconcile.Envelope"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/posts/{id}": {
            "get": {
                "tags": [
                    "posts"
                ],
                "produces": [
                    "application/json",
                    "application/x-ndjson"
                ],
                "summary": "Get a post",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Identifier",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "boolean",
                        "description": "Stream every envelope as NDJSON",
                        "name": "watch",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Stop watching after this many envelopes",
                        "name": "max",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Envelope",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/reconcile.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/posts.Post"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Error envelope",
                        "schema": {
                            "$ref": "#/definitions/reconcile.Envelope"
                        }
                    },
                    "502": {
                        "description": "Error envelope",
                        "schema": {
                            "$ref": "#/definitions/reconcile.Envelope"
                        }
                    },
                    "504": {
                        "description": "Error envelope",
                        "schema": {
                            "$ref": "#/definitions/reconcile.Envelope"
                        }
                    }
                }
            },
            "put": {
                "tags": [
                    "posts"
                ],
                "produces": [
                    "application/json",
                    "application/x-ndjson"
                ],
                "summary": "Replace a post",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Identifier",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Post",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/posts.Post"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated envelope",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/reconcile.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/posts.Post"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Error envelope",
                        "schema": {
                            "$ref": "#/definitions/reconcile.Envelope"
                        }
                    },
                    "502": {
                        "description": "Error envelope",
                        "schema": {
                            "$ref": "#/definitions/reconcile.Envelope"
                        }
                    },
                    "504": {
                        "description": "Error envelope",
                        "schema": {
                            "$ref": "#/definitions/reconcile.Envelope"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ]
            },
            "delete": {
                "tags": [
                    "posts"
                ],
                "produces": [
                    "application/json",
                    "application/x-ndjson"
                ],
                "summary": "Delete a post",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Identifier",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Deleted envelope",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/reconcile.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/posts.Post"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Error envelope",
                        "schema": {
                            "$ref": "#/definitions/reconcile.Envelope"
                        }
                    },
                    "502": {
                        "description": "Error envelope",
                        "schema": {
                            "$ref": "#/definitions/reconcile.Envelope"
                        }
                    },
                    "504": {
                        "description": "Error envelope",
                        "schema": {
                            "$ref": "#/definitions/reconcile.Envelope"
                        }
                    }
                }
            }
        },
        "/users": {
            "get": {
                "tags": [
                    "users"
                ],
                "produces": [
                    "application/json",
                    "application/x-ndjson"
                ],
                "summary": "List users",
                "parameters": [
                    {
                        "type": "boolean",
                        "description": "Stream every envelope as NDJSON",
                        "name": "watch",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Stop watching after this many envelopes",
                        "name": "max",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "List envelope",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/reconcile.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/users.User"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Error envelope",
                        "schema": {
                            "$ref": "#/definitions/reconcile.Envelope"
                        }
                    },
                    "502": {
                        "description": "Error envelope",
                        "schema": {
                            "$ref": "#/definitions/reconcile.Envelope"
                        }
                    },
                    "504": {
                        "description": "Error envelope",
                        "schema": {
                            "$ref": "#/definitions/reconcile.Envelope"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "users"
                ],
                "produces": [
                    "application/json",
                    "application/x-ndjson"
                ],
                "summary": "Create a user",
                "parameters": [
                    {
                        "description": "User",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/users.User"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Created envelope",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/reconcile.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/users.User"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Error envelope",
                        "schema": {
                            "$ref": "#/definitions/reconcile.Envelope"
                        }
                    },
                    "502": {
                        "description": "Error envelope",
                        "schema": {
                            "$ref": "#/definitions/reconcile.Envelope"
                        }
                    },
                    "504": {
                        "description": "Error envelope",
                        "schema": {
                            "$ref": "#/definitions/reconcile.Envelope"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/users/{id}": {
            "get": {
                "tags": [
                    "users"
                ],
                "produces": [
                    "application/json",
                    "application/x-ndjson"
                ],
                "summary": "Get a user",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Identifier",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "boolean",
                        "description": "Stream every envelope as NDJSON",
                        "name": "watch",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Stop watching after this many envelopes",
                        "name": "max",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Envelope",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/reconcile.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/users.User"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Error envelope",
                        "schema": {
                            "$ref": "#/definitions/reconcile.Envelope"
                        }
                    },
                    "502": {
                        "description": "Error envelope",
                        "schema": {
                            "$ref": "#/definitions/reconcile.Envelope"
                        }
                    },
                    "504": {
                        "description": "Error envelope",
                        "schema": {
                            "$ref": "#/definitions/reconcile.Envelope"
                        }
                    }
                }
            },
            "put": {
                "tags": [
                    "users"
                ],
                "produces": [
                    "application/json",
                    "application/x-ndjson"
                ],
                "summary": "Replace a user",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Identifier",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "User",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/users.User"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated envelope",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/reconcile.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/users.User"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Error envelope",
                        "schema": {
                            "$ref": "#/definitions/reconcile.Envelope"
                        }
                    },
                    "502": {
                        "description": "Error envelope",
                        "schema": {
                            "$ref": "#/definitions/reconcile.Envelope"
                        }
                    },
                    "504": {
                        "description": "Error envelope",
                        "schema": {
                            "$ref": "#/definitions/reconcile.Envelope"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ]
            },
            "delete": {
                "tags": [
                    "users"
                ],
                "produces": [
                    "application/json",
                    "application/x-ndjson"
                ],
                "summary": "Delete a user",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Identifier",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Deleted envelope",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/reconcile.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/users.User"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Error envelope",
                        "schema": {
                            "$ref": "#/definitions/reconcile.Envelope"
                        }
                    },
                    "502": {
                        "description": "Error envelope",
                        "schema": {
                            "$ref": "#/definitions/reconcile.Envelope"
                        }
                    },
                    "504": {
                        "description": "Error envelope",
                        "schema": {
                            "$ref": "#/definitions/reconcile.Envelope"
                        }
                    }
                }
            }
        },
        "/albums": {
            "get": {
                "tags": [
                    "albums"
                ],
                "produces": [
                    "application/json",
                    "application/x-ndjson"
                ],
                "summary": "List albums",
                "parameters": [
                    {
                        "type": "boolean",
                        "description": "Stream every envelope as NDJSON",
                        "name": "watch",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Stop watching after this many envelopes",
                        "name": "max",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "List envelope",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/reconcile.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/albums.Album"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Error envelope",
                        "schema": {
                            "$ref": "#/definitions/reconcile.Envelope"
                        }
                    },
                    "502": {
                        "description": "Error envelope",
                        "schema": {
                            "$ref": "#/definitions/reconcile.Envelope"
                        }
                    },
                    "504": {
                        "description": "Error envelope",
                        "schema": {
                            "$ref": "#/definitions/reconcile.Envelope"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "albums"
                ],
                "produces": [
                    "application/json",
                    "application/x-ndjson"
                ],
                "summary": "Create a album",
                "parameters": [
                    {
                        "description": "Album",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/albums.Album"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Created envelope",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/reconcile.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/albums.Album"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Error envelope",
                        "schema": {
                            "$ref": "#/definitions/reconcile.Envelope"
                        }
                    },
                    "502": {
                        "description": "Error envelope",
                        "schema": {
                            "$ref": "#/definitions/reconcile.Envelope"
                        }
                    },
                    "504": {
                        "description": "Error envelope",
                        "schema": {
                            "$ref": "#/definitions/reconcile.Envelope"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/albums/{id}": {
            "get": {
                "tags": [
                    "albums"
                ],
                "produces": [
                    "application/json",
                    "application/x-ndjson"
                ],
                "summary": "Get a album",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Identifier",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "boolean",
                        "description": "Stream every envelope as NDJSON",
                        "name": "watch",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Stop watching after this many envelopes",
                        "name": "max",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Envelope",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/reconcile.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/albums.Album"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Error envelope",
                        "schema": {
                            "$ref": "#/definitions/reconcile.Envelope"
                        }
                    },
                    "502": {
                        "description": "Error envelope",
                        "schema": {
                            "$ref": "#/definitions/reconcile.Envelope"
                        }
                    },
                    "504": {
                        "description": "Error envelope",
                        "schema": {
                            "$ref": "#/definitions/reconcile.Envelope"
                        }
                    }
                }
            },
            "put": {
                "tags": [
                    "albums"
                ],
                "produces": [
                    "application/json",
                    "application/x-ndjson"
                ],
                "summary": "Replace a album",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Identifier",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Album",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/albums.Album"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated envelope",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/reconcile.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/albums.Album"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Error envelope",
                        "schema": {
                            "$ref": "#/definitions/reconcile.Envelope"
                        }
                    },
                    "502": {
                        "description": "Error envelope",
                        "schema": {
                            "$ref": "#/definitions/reconcile.Envelope"
                        }
                    },
                    "504": {
                        "description": "Error envelope",
                        "schema": {
                            "$ref": "#/definitions/reconcile.Envelope"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ]
            },
            "delete": {
                "tags": [
                    "albums"
                ],
                "produces": [
                    "application/json",
                    "application/x-ndjson"
                ],
                "summary": "Delete a album",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Identifier",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Deleted envelope",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/reconcile.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/albums.Album"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Error envelope",
                        "schema": {
                            "$ref": "#/definitions/reconcile.Envelope"
                        }
                    },
                    "502": {
                        "description": "Error envelope",
                        "schema": {
                            "$ref": "#/definitions/reconcile.Envelope"
                        }
                    },
                    "504": {
                        "description": "Error envelope",
                        "schema": {
                            "$ref": "#/definitions/reconcile.Envelope"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "posts.Post": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "userId": {
                    "type": "integer"
                },
                "title": {
                    "type": "string"
                },
                "body": {
                    "type": "string"
                }
            }
        },
        "albums.Album": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "userId": {
                    "type": "integer"
                },
                "title": {
                    "type": "string"
                }
            }
        },
        "users.Geo": {
            "type": "object",
            "properties": {
                "lat": {
                    "type": "string"
                },
                "lng": {
                    "type": "string"
                }
            }
        },
        "users.Address": {
            "type": "object",
            "properties": {
                "street": {
                    "type": "string"
                },
                "suite": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "zipcode": {
                    "type": "string"
                },
                "geo": {
                    "$ref": "#/definitions/users.Geo"
                }
            }
        },
        "users.Company": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "catchPhrase": {
                    "type": "string"
                },
                "bs": {
                    "type": "string"
                }
            }
        },
        "users.User": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "username": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "address": {
                    "$ref": "#/definitions/users.Address"
                },
                "phone": {
                    "type": "string"
                },
                "website": {
                    "type": "string"
                },
                "company": {
                    "$ref": "#/definitions/users.Company"
                }
            }
        },
        "reconcile.Envelope": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string",
                    "enum": [
                        "loading",
                        "success",
                        "error"
                    ]
                },
                "data": {},
                "message": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "JSONPlaceholder Cache API",
	Description:      "Offline-first cache of the posts, users and albums collections.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
