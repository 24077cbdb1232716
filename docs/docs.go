// Package docs holds the Swagger 2.0 spec served under /swagger, kept in step with the handler annotations
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
        },
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "description": "Reports whether the candidate record store is usable",
                "produces": ["application/json"],
                "tags": ["HEALTH"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.ResponseBody"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.ResponseBody"}}
                }
            }
        },
        "/v1/api/technologies": {
            "get": {
                "description": "Technologies a candidate can pick for the interview",
                "produces": ["application/json"],
                "tags": ["INTERVIEW"],
                "summary": "List technologies",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.ResponseBody"}}
                }
            }
        },
        "/v1/api/sessions": {
            "post": {
                "description": "Opens a new session at the personal details form",
                "produces": ["application/json"],
                "tags": ["INTERVIEW"],
                "summary": "Start interview session",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.ResponseBody"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.ResponseBody"}}
                }
            }
        },
        "/v1/api/sessions/{id}": {
            "get": {
                "description": "Current stage, question and transcript of a session",
                "produces": ["application/json"],
                "tags": ["INTERVIEW"],
                "summary": "Get interview session",
                "parameters": [
                    {"type": "string", "description": "session id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.ResponseBody"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ResponseBody"}}
                }
            },
            "delete": {
                "description": "Drops a session in any stage",
                "produces": ["application/json"],
                "tags": ["INTERVIEW"],
                "summary": "End interview session",
                "parameters": [
                    {"type": "string", "description": "session id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.ResponseBody"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.ResponseBody"}}
                }
            }
        },
        "/v1/api/sessions/{id}/details": {
            "post": {
                "description": "Validates and stores the candidate profile, then moves to the tech stack form",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["INTERVIEW"],
                "summary": "Submit personal details",
                "parameters": [
                    {"type": "string", "description": "session id", "name": "id", "in": "path", "required": true},
                    {"description": "SubmitDetails", "name": "SubmitDetails", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.DetailsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.ResponseBody"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ResponseBody"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ResponseBody"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/http.ResponseBody"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.ResponseBody"}}
                }
            }
        },
        "/v1/api/sessions/{id}/tech-stack": {
            "post": {
                "description": "Draws the interview questions and asks the first one",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["INTERVIEW"],
                "summary": "Submit tech stack",
                "parameters": [
                    {"type": "string", "description": "session id", "name": "id", "in": "path", "required": true},
                    {"description": "SubmitTechStack", "name": "SubmitTechStack", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.TechStackRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.ResponseBody"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ResponseBody"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ResponseBody"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/http.ResponseBody"}}
                }
            }
        },
        "/v1/api/sessions/{id}/answers": {
            "post": {
                "description": "Records an answer; exit, quit, end or stop finish the interview early",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["INTERVIEW"],
                "summary": "Answer the current question",
                "parameters": [
                    {"type": "string", "description": "session id", "name": "id", "in": "path", "required": true},
                    {"description": "SubmitAnswer", "name": "SubmitAnswer", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.AnswerRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.ResponseBody"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ResponseBody"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ResponseBody"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/http.ResponseBody"}}
                }
            }
        },
        "/v1/api/sessions/{id}/reset": {
            "post": {
                "description": "Clears a completed session and returns to the personal details form",
                "produces": ["application/json"],
                "tags": ["INTERVIEW"],
                "summary": "Start over",
                "parameters": [
                    {"type": "string", "description": "session id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.ResponseBody"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ResponseBody"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/http.ResponseBody"}}
                }
            }
        }
    },
    "definitions": {
        "http.AnswerRequest": {
            "type": "object",
            "properties": {
                "answer": {"type": "string", "maxLength": 4000}
            }
        },
        "http.DetailsRequest": {
            "type": "object",
            "properties": {
                "desired_position": {"type": "string", "maxLength": 200},
                "email": {"type": "string", "maxLength": 320},
                "experience": {"type": "integer", "maximum": 100, "minimum": 0},
                "full_name": {"type": "string", "maxLength": 200},
                "location": {"type": "string", "maxLength": 200},
                "phone": {"type": "string", "maxLength": 50}
            }
        },
        "http.ResponseBody": {
            "type": "object",
            "properties": {
                "data": {},
                "status": {"$ref": "#/definitions/http.Status"}
            }
        },
        "http.Status": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "message": {"type": "array", "items": {"type": "string"}}
            }
        },
        "http.TechStackRequest": {
            "type": "object",
            "properties": {
                "tech_stack": {
                    "type": "array",
                    "items": {
                        "type": "string",
                        "enum": ["Python", "JavaScript", "Django", "React", "Node.js", "SQL", "Java", "HTML", "CSS"]
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:9089",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "TalentScout Hiring Assistant API",
	Description:      "Collects candidate details and runs a short technical screening interview.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
