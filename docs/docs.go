// Package docs registers the OpenAPI document served under /swagger/.
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
        "/events": {
            "get": {
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "List events",
                "parameters": [
                    {"type": "integer", "description": "Category ID", "name": "category", "in": "query"},
                    {"type": "string", "description": "Title search", "name": "q", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "502": {"description": "error.code: remote_failed", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/drafts": {
            "post": {
                "produces": ["application/json"],
                "tags": ["drafts"],
                "summary": "Open an authoring session",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/drafts/{draftID}": {
            "get": {
                "tags": ["drafts"],
                "summary": "Get an authoring session",
                "parameters": [{"type": "string", "name": "draftID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "tags": ["drafts"],
                "summary": "Set draft fields",
                "parameters": [
                    {"type": "string", "name": "draftID", "in": "path", "required": true},
                    {"name": "fields", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.UpdateDraftRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "delete": {
                "tags": ["drafts"],
                "summary": "Close an authoring session",
                "parameters": [{"type": "string", "name": "draftID", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/drafts/{draftID}/categories": {
            "post": {
                "consumes": ["application/json"],
                "tags": ["drafts"],
                "summary": "Select a category",
                "parameters": [
                    {"type": "string", "name": "draftID", "in": "path", "required": true},
                    {"name": "category", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.AddCategoryRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}}
            }
        },
        "/drafts/{draftID}/categories/{name}": {
            "delete": {
                "tags": ["drafts"],
                "summary": "Deselect a category",
                "parameters": [
                    {"type": "string", "name": "draftID", "in": "path", "required": true},
                    {"type": "string", "name": "name", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}}
            }
        },
        "/drafts/{draftID}/submit": {
            "post": {
                "tags": ["drafts"],
                "summary": "Submit a draft",
                "parameters": [{"type": "string", "name": "draftID", "in": "path", "required": true}],
                "responses": {
                    "201": {"description": "data.navigate is \"listing\"", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "409": {"description": "error.code: conflict", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "502": {"description": "error.code: remote_failed", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/events/{eventID}/view": {
            "post": {
                "tags": ["views"],
                "summary": "Open an event page",
                "parameters": [{"type": "integer", "name": "eventID", "in": "path", "required": true}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/views/{viewID}": {
            "get": {
                "tags": ["views"],
                "summary": "Get an event page session",
                "parameters": [{"type": "string", "name": "viewID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}}
            },
            "delete": {
                "tags": ["views"],
                "summary": "Close an event page session",
                "parameters": [{"type": "string", "name": "viewID", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/views/{viewID}/edit": {
            "post": {"tags": ["views"], "summary": "Enter edit mode",
                "parameters": [{"type": "string", "name": "viewID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}}}
        },
        "/views/{viewID}/draft": {
            "patch": {"tags": ["views"], "summary": "Set edit draft fields",
                "parameters": [
                    {"type": "string", "name": "viewID", "in": "path", "required": true},
                    {"name": "fields", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.UpdateEditDraftRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}}}
        },
        "/views/{viewID}/draft/categories": {
            "post": {"tags": ["views"], "summary": "Select a category while editing",
                "parameters": [
                    {"type": "string", "name": "viewID", "in": "path", "required": true},
                    {"name": "category", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.AddCategoryRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}}}
        },
        "/views/{viewID}/draft/categories/{name}": {
            "delete": {"tags": ["views"], "summary": "Deselect a category while editing",
                "parameters": [
                    {"type": "string", "name": "viewID", "in": "path", "required": true},
                    {"type": "string", "name": "name", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}}}
        },
        "/views/{viewID}/save": {
            "post": {"tags": ["views"], "summary": "Save the edit",
                "parameters": [{"type": "string", "name": "viewID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "502": {"description": "error.code: remote_failed", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }}
        },
        "/views/{viewID}/cancel": {
            "post": {"tags": ["views"], "summary": "Leave edit mode without saving",
                "parameters": [{"type": "string", "name": "viewID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}}}
        },
        "/views/{viewID}/delete": {
            "post": {"tags": ["views"], "summary": "Ask for delete confirmation",
                "parameters": [{"type": "string", "name": "viewID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}}}
        },
        "/views/{viewID}/delete/cancel": {
            "post": {"tags": ["views"], "summary": "Dismiss the delete confirmation",
                "parameters": [{"type": "string", "name": "viewID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}}}
        },
        "/views/{viewID}/delete/confirm": {
            "post": {"tags": ["views"], "summary": "Delete the event",
                "parameters": [{"type": "string", "name": "viewID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "data.navigate is \"listing\"", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "502": {"description": "error.code: remote_failed", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }}
        },
        "/orphans": {
            "get": {"tags": ["orphans"], "summary": "List orphaned users",
                "parameters": [
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "page_size", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}}}
        }
    },
    "definitions": {
        "helpers.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "stage": {"type": "string"}
            }
        },
        "helpers.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"$ref": "#/definitions/helpers.APIError"},
                "notifications": {"type": "array", "items": {"$ref": "#/definitions/domain.Notification"}}
            }
        },
        "domain.Notification": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "status": {"type": "string", "enum": ["success", "error"]},
                "duration": {"type": "integer"}
            }
        },
        "controllers.AddCategoryRequest": {
            "type": "object",
            "properties": {"name": {"type": "string"}}
        },
        "controllers.UpdateDraftRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "image": {"type": "string"},
                "location": {"type": "string"},
                "startTime": {"type": "string"},
                "endTime": {"type": "string"},
                "name": {"type": "string"},
                "userImage": {"type": "string"}
            }
        },
        "controllers.UpdateEditDraftRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "image": {"type": "string"},
                "startTime": {"type": "string"},
                "endTime": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Event Desk API",
	Description:      "Drafting, submission and edit/delete of events over a remote CRUD service.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
