package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"notes-api/internal/domain"
	"notes-api/internal/service"
	"notes-api/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type NoteHandler struct {
	service *service.NoteService
	log     *zap.Logger
}

func NewNoteHandler(service *service.NoteService, log *zap.Logger) *NoteHandler {
	return &NoteHandler{
		service: service,
		log:     log,
	}
}

func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	notes, err := h.service.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, domain.ListNotesResponse{Notes: notes})
}

func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	note, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, domain.GetNoteResponse{Note: note})
}

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "body not valid", err.Error())
		return
	}

	// The handler owns id and timestamp assignment so the service stays
	// deterministic.
	newNote := domain.NewNote{
		ID:        uuid.New().String(),
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	note, err := h.service.Create(r.Context(), newNote)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.JSON(w, http.StatusCreated, domain.CreateNoteResponse{Note: note})
}

func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req domain.UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "body not valid", err.Error())
		return
	}

	note, err := h.service.Update(r.Context(), id, domain.UpdateNote{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, domain.UpdateNoteResponse{Note: note})
}

func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if _, err := h.service.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	response.NoContent(w)
}

// writeError is the single place where domain errors become status codes.
// Storage faults and anything unclassified go to the log in full and reach
// the client only as "internal error".
func (h *NoteHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrNoteNotFound) {
		response.Message(w, http.StatusNotFound, "note not found")
		return
	}

	var invalid *domain.ValidationError
	if errors.As(err, &invalid) {
		response.Error(w, http.StatusBadRequest, "body not valid", invalid.Rule)
		return
	}

	h.log.Error("request failed",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	response.Message(w, http.StatusInternalServerError, "internal error")
}

// NotFound is the default handler for any unrouted path.
func NotFound(w http.ResponseWriter, r *http.Request) {
	response.Message(w, http.StatusNotFound, "not found")
}
