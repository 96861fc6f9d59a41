package handler

import (
	"encoding/json"
	"net/http"
)

// OpenAPIHandler serves the service's own API description. The document is
// assembled once and the marshaled bytes are reused for every request.
type OpenAPIHandler struct {
	body []byte
}

func NewOpenAPIHandler() *OpenAPIHandler {
	body, err := json.Marshal(openAPIDocument())
	if err != nil {
		// The document is a static literal; this cannot fail at runtime.
		panic(err)
	}
	return &OpenAPIHandler{body: body}
}

func (h *OpenAPIHandler) Serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(h.body)
}

func openAPIDocument() map[string]interface{} {
	noteRef := ref("Note")
	messageRef := ref("MessageResponse")
	errorRef := ref("ErrorResponse")

	notFoundResponse := jsonResponse("Note not found by id", messageRef)
	badRequestResponse := jsonResponse("Body not valid", errorRef)

	return map[string]interface{}{
		"openapi": "3.0.3",
		"info": map[string]interface{}{
			"title":       "notes-api",
			"description": "CRUD service for notes.",
			"version":     "1.0.0",
		},
		"tags": []map[string]interface{}{
			{"name": "notes", "description": "Note management endpoints."},
		},
		"paths": map[string]interface{}{
			"/notes": map[string]interface{}{
				"get": map[string]interface{}{
					"tags":        []string{"notes"},
					"operationId": "listNotes",
					"responses": map[string]interface{}{
						"200": jsonResponse("List notes", ref("ListNotesResponse")),
					},
				},
				"post": map[string]interface{}{
					"tags":        []string{"notes"},
					"operationId": "createNote",
					"requestBody": map[string]interface{}{
						"required": true,
						"content": map[string]interface{}{
							"application/json": map[string]interface{}{
								"schema": ref("CreateNoteRequest"),
							},
						},
					},
					"responses": map[string]interface{}{
						"201": jsonResponse("Note created successfully", ref("CreateNoteResponse")),
						"400": badRequestResponse,
					},
				},
			},
			"/notes/{id}": map[string]interface{}{
				"parameters": []map[string]interface{}{
					{
						"name":        "id",
						"in":          "path",
						"required":    true,
						"description": "Unique id",
						"schema":      map[string]interface{}{"type": "string"},
					},
				},
				"get": map[string]interface{}{
					"tags":        []string{"notes"},
					"operationId": "getNote",
					"responses": map[string]interface{}{
						"200": jsonResponse("Get note", ref("GetNoteResponse")),
						"404": notFoundResponse,
					},
				},
				"put": map[string]interface{}{
					"tags":        []string{"notes"},
					"operationId": "updateNote",
					"requestBody": map[string]interface{}{
						"required": true,
						"content": map[string]interface{}{
							"application/json": map[string]interface{}{
								"schema": ref("UpdateNoteRequest"),
							},
						},
					},
					"responses": map[string]interface{}{
						"200": jsonResponse("Note updated successfully", ref("UpdateNoteResponse")),
						"400": badRequestResponse,
						"404": notFoundResponse,
					},
				},
				"delete": map[string]interface{}{
					"tags":        []string{"notes"},
					"operationId": "deleteNote",
					"responses": map[string]interface{}{
						"204": map[string]interface{}{
							"description": "Note deleted successfully",
						},
						"404": notFoundResponse,
					},
				},
			},
		},
		"components": map[string]interface{}{
			"schemas": map[string]interface{}{
				"Note": map[string]interface{}{
					"type":     "object",
					"required": []string{"id", "title", "content", "createdAt"},
					"properties": map[string]interface{}{
						"id": map[string]interface{}{
							"type":        "string",
							"description": "Unique id",
							"example":     "14322988-32fe-447c-ac38-06fb6c699b4a",
						},
						"title": map[string]interface{}{
							"type":        "string",
							"description": "Title of the note",
							"example":     "Note 1",
						},
						"content": map[string]interface{}{
							"type":        "string",
							"description": "Content of the note",
							"example":     "This is note #1.",
						},
						"createdAt": map[string]interface{}{
							"type":        "string",
							"description": "Date of creation",
							"example":     "2021-01-01T00:00:00Z",
						},
					},
				},
				"CreateNoteRequest": noteBodySchema(),
				"UpdateNoteRequest": noteBodySchema(),
				"ListNotesResponse": map[string]interface{}{
					"type":     "object",
					"required": []string{"notes"},
					"properties": map[string]interface{}{
						"notes": map[string]interface{}{
							"type":  "array",
							"items": noteRef,
						},
					},
				},
				"GetNoteResponse":    noteEnvelopeSchema(noteRef),
				"CreateNoteResponse": noteEnvelopeSchema(noteRef),
				"UpdateNoteResponse": noteEnvelopeSchema(noteRef),
				"MessageResponse": map[string]interface{}{
					"type":     "object",
					"required": []string{"message"},
					"properties": map[string]interface{}{
						"message": map[string]interface{}{
							"type":    "string",
							"example": "note not found",
						},
					},
				},
				"ErrorResponse": map[string]interface{}{
					"type":     "object",
					"required": []string{"message", "error"},
					"properties": map[string]interface{}{
						"message": map[string]interface{}{
							"type":    "string",
							"example": "body not valid",
						},
						"error": map[string]interface{}{
							"type":    "string",
							"example": "title must not be empty",
						},
					},
				},
			},
		},
	}
}

func ref(name string) map[string]interface{} {
	return map[string]interface{}{"$ref": "#/components/schemas/" + name}
}

func jsonResponse(description string, schema map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"description": description,
		"content": map[string]interface{}{
			"application/json": map[string]interface{}{
				"schema": schema,
			},
		},
	}
}

func noteBodySchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"title", "content"},
		"properties": map[string]interface{}{
			"title": map[string]interface{}{
				"type":        "string",
				"description": "Title of the note",
				"example":     "Note 1",
			},
			"content": map[string]interface{}{
				"type":        "string",
				"description": "Content of the note",
				"example":     "This is note #1.",
			},
		},
	}
}

func noteEnvelopeSchema(noteRef map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"note"},
		"properties": map[string]interface{}{
			"note": noteRef,
		},
	}
}
