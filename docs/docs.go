// Package docs holds the OpenAPI description served at /swagger.
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
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Sign in",
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/auth.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/auth.LoginResponse"}},
                    "400": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            }
        },
        "/signup": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Sign up",
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/auth.SignupRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/auth.SignupResponse"}},
                    "400": {"description": "Provider rejected the signup", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            }
        },
        "/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Sign out",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/auth.MessageResponse"}},
                    "401": {"description": "Missing or invalid session", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            }
        },
        "/chat": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Interviews"],
                "summary": "Submit interview for feedback",
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/interview.ChatRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/interview.InterviewResponse"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/common.ErrorResponse"}},
                    "401": {"description": "Missing or invalid session", "schema": {"$ref": "#/definitions/common.ErrorResponse"}},
                    "500": {"description": "Transcript or storage failure", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            }
        },
        "/past-interviews": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Interviews"],
                "summary": "List past interviews",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/interview.InterviewResponse"}}},
                    "401": {"description": "Missing or invalid session", "schema": {"$ref": "#/definitions/common.ErrorResponse"}},
                    "500": {"description": "Store error", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            }
        },
        "/archives": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Interviews"],
                "summary": "List archived transcripts",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/interview.ArchiveListResponse"}},
                    "401": {"description": "Missing or invalid session", "schema": {"$ref": "#/definitions/common.ErrorResponse"}},
                    "502": {"description": "Object storage error", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "auth.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "auth.SignupRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 6, "maxLength": 72}
            }
        },
        "auth.LoginResponse": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "user_id": {"type": "string"},
                "refresh_token": {"type": "string"},
                "expires_in": {"type": "integer"},
                "token_type": {"type": "string"}
            }
        },
        "auth.UserResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "email": {"type": "string"},
                "confirmation_sent": {"type": "boolean"}
            }
        },
        "auth.SignupResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "user": {"$ref": "#/definitions/auth.UserResponse"}
            }
        },
        "auth.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "interview.ChatRequest": {
            "type": "object",
            "required": ["conversation_id"],
            "properties": {
                "conversation_id": {"type": "string"},
                "job_description": {"type": "string"},
                "interview_type": {"type": "string"},
                "company_name": {"type": "string"},
                "job_title": {"type": "string"}
            }
        },
        "interview.TurnResponse": {
            "type": "object",
            "properties": {
                "role": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "interview.InterviewResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "job_description": {"type": "string"},
                "type": {"type": "string"},
                "company_name": {"type": "string"},
                "job_title": {"type": "string"},
                "conversation_id": {"type": "string"},
                "chat_history": {"type": "string"},
                "transcript": {"type": "array", "items": {"$ref": "#/definitions/interview.TurnResponse"}},
                "feedback": {"type": "string"},
                "score": {"type": "integer"},
                "created_at": {"type": "string"}
            }
        },
        "interview.ArchiveListResponse": {
            "type": "object",
            "properties": {
                "keys": {"type": "array", "items": {"type": "string"}}
            }
        },
        "common.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "message": {"type": "string"},
                "detail": {"type": "string"},
                "info": {"type": "string"},
                "details": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the access token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Interview Coach API",
	Description:      "Feedback and scoring for AI-conducted mock interviews",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
