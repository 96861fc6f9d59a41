package handler

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter binds the note resource and the OpenAPI document. Middleware is
// attached by the caller.
func NewRouter(notes *NoteHandler) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/notes", notes.List).Methods("GET")
	r.HandleFunc("/notes", notes.Create).Methods("POST")
	r.HandleFunc("/notes/{id}", notes.Get).Methods("GET")
	r.HandleFunc("/notes/{id}", notes.Update).Methods("PUT")
	r.HandleFunc("/notes/{id}", notes.Delete).Methods("DELETE")

	r.HandleFunc("/api-docs/openapi.json", NewOpenAPIHandler().Serve).Methods("GET")

	r.NotFoundHandler = http.HandlerFunc(NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(NotFound)

	return r
}
