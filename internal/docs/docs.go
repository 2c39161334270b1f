// Package docs provides the Swagger specification served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/user/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a new user",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}
            }
        },
        "/auth/user/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Login as user",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/auth/user/logout": {
            "get": {
                "tags": ["auth"],
                "summary": "Logout user",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/auth/foodpartner/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a new food partner",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}
            }
        },
        "/auth/foodpartner/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Login as food partner",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/auth/foodpartner/logout": {
            "get": {
                "tags": ["auth"],
                "summary": "Logout food partner",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/food": {
            "get": {
                "tags": ["food"],
                "summary": "Browse the food reel feed",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["food"],
                "summary": "Upload a new food reel",
                "consumes": ["multipart/form-data"],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/food/like": {
            "post": {
                "tags": ["food"],
                "summary": "Toggle like on a food reel",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "404": {"description": "Not Found"}}
            }
        },
        "/food/save": {
            "post": {
                "tags": ["food"],
                "summary": "Toggle save on a food reel",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "404": {"description": "Not Found"}}
            }
        },
        "/food/saved": {
            "get": {
                "tags": ["food"],
                "summary": "List the user's saved reels",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/foodpartner/{id}": {
            "get": {
                "tags": ["foodpartner"],
                "summary": "Get a food partner profile",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "patch": {
                "tags": ["foodpartner"],
                "summary": "Update a food partner profile",
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Reel Bites API",
	Description:      "Food discovery platform where partners publish short video reels and users like and save them.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
