// Package response holds the JSON write helpers shared by all handlers.
package response

import (
	"encoding/json"
	"net/http"
)

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// Message writes {"message": ...}.
func Message(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, map[string]string{"message": message})
}

// Error writes {"message": ..., "error": ...}.
func Error(w http.ResponseWriter, statusCode int, message, detail string) {
	JSON(w, statusCode, map[string]string{"message": message, "error": detail})
}

// NoContent writes an empty 204 response.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
