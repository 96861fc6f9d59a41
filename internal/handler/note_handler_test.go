package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"notes-api/internal/domain"
	"notes-api/internal/service"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeNoteRepo struct {
	notes map[string]domain.Note
	fail  error
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: make(map[string]domain.Note)}
}

func (f *fakeNoteRepo) List(ctx context.Context) ([]domain.Note, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	notes := make([]domain.Note, 0, len(f.notes))
	for _, n := range f.notes {
		notes = append(notes, n)
	}
	return notes, nil
}

func (f *fakeNoteRepo) Get(ctx context.Context, id string) (domain.Note, error) {
	if f.fail != nil {
		return domain.Note{}, f.fail
	}
	n, exists := f.notes[id]
	if !exists {
		return domain.Note{}, domain.ErrNoteNotFound
	}
	return n, nil
}

func (f *fakeNoteRepo) Create(ctx context.Context, note domain.NewNote) (domain.Note, error) {
	if f.fail != nil {
		return domain.Note{}, f.fail
	}
	n := domain.Note{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
	}
	f.notes[n.ID] = n
	return n, nil
}

func (f *fakeNoteRepo) Update(ctx context.Context, id string, note domain.UpdateNote) (domain.Note, error) {
	if f.fail != nil {
		return domain.Note{}, f.fail
	}
	n, exists := f.notes[id]
	if !exists {
		return domain.Note{}, domain.ErrNoteNotFound
	}
	n.Title = note.Title
	n.Content = note.Content
	f.notes[id] = n
	return n, nil
}

func (f *fakeNoteRepo) Delete(ctx context.Context, id string) (domain.Note, error) {
	if f.fail != nil {
		return domain.Note{}, f.fail
	}
	n, exists := f.notes[id]
	if !exists {
		return domain.Note{}, domain.ErrNoteNotFound
	}
	delete(f.notes, id)
	return n, nil
}

func newTestRouter() (*mux.Router, *fakeNoteRepo) {
	repo := newFakeNoteRepo()
	svc := service.NewNoteService(repo)
	h := NewNoteHandler(svc, zap.NewNop())
	return NewRouter(h), repo
}

func doJSON(t *testing.T, router *mux.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeNote(t *testing.T, rec *httptest.ResponseRecorder) domain.Note {
	t.Helper()

	var envelope struct {
		Note domain.Note `json:"note"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Note
}

func TestCreateThenGet(t *testing.T) {
	router, _ := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/notes", domain.CreateNoteRequest{
		Title:   "Note 1",
		Content: "This is note #1.",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decodeNote(t, rec)
	assert.Equal(t, "Note 1", created.Title)
	assert.Equal(t, "This is note #1.", created.Content)

	id, err := uuid.Parse(created.ID)
	require.NoError(t, err, "id must be a UUID")
	assert.Equal(t, uuid.Version(4), id.Version())

	createdAt, err := time.Parse(time.RFC3339, created.CreatedAt)
	require.NoError(t, err, "createdAt must be RFC 3339")
	assert.Equal(t, time.UTC, createdAt.Location())

	rec = doJSON(t, router, http.MethodGet, "/notes/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decodeNote(t, rec))
}

func TestListAfterTwoCreates(t *testing.T) {
	router, _ := newTestRouter()

	first := decodeNote(t, doJSON(t, router, http.MethodPost, "/notes", domain.CreateNoteRequest{Title: "Note 1", Content: "a"}))
	second := decodeNote(t, doJSON(t, router, http.MethodPost, "/notes", domain.CreateNoteRequest{Title: "Note 2", Content: "b"}))

	rec := doJSON(t, router, http.MethodGet, "/notes", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list domain.ListNotesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.ElementsMatch(t, []domain.Note{first, second}, list.Notes)
}

func TestListEmptyReturnsArray(t *testing.T) {
	router, _ := newTestRouter()

	rec := doJSON(t, router, http.MethodGet, "/notes", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"notes":[]}`, rec.Body.String())
}

func TestUpdateExisting(t *testing.T) {
	router, _ := newTestRouter()

	created := decodeNote(t, doJSON(t, router, http.MethodPost, "/notes", domain.CreateNoteRequest{Title: "Note 1", Content: "a"}))

	rec := doJSON(t, router, http.MethodPut, "/notes/"+created.ID, domain.UpdateNoteRequest{Title: "Updated", Content: "new content"})
	require.Equal(t, http.StatusOK, rec.Code)

	updated := decodeNote(t, rec)
	assert.Equal(t, "Updated", updated.Title)
	assert.Equal(t, "new content", updated.Content)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	rec = doJSON(t, router, http.MethodGet, "/notes/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, updated, decodeNote(t, rec))
}

func TestUpdateMissing(t *testing.T) {
	router, _ := newTestRouter()

	rec := doJSON(t, router, http.MethodPut, "/notes/does-not-exist", domain.UpdateNoteRequest{Title: "T", Content: "C"})
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"note not found"}`, rec.Body.String())
}

func TestGetMissing(t *testing.T) {
	router, _ := newTestRouter()

	rec := doJSON(t, router, http.MethodGet, "/notes/does-not-exist", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"note not found"}`, rec.Body.String())
}

func TestDeleteThenGet(t *testing.T) {
	router, _ := newTestRouter()

	created := decodeNote(t, doJSON(t, router, http.MethodPost, "/notes", domain.CreateNoteRequest{Title: "Note 1", Content: "a"}))

	rec := doJSON(t, router, http.MethodDelete, "/notes/"+created.ID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/notes/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteMissing(t *testing.T) {
	router, _ := newTestRouter()

	rec := doJSON(t, router, http.MethodDelete, "/notes/does-not-exist", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"note not found"}`, rec.Body.String())
}

func TestCreateValidationFailure(t *testing.T) {
	router, repo := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/notes", domain.CreateNoteRequest{Title: "", Content: "x"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body domain.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "body not valid", body.Message)
	assert.NotEmpty(t, body.Error)

	assert.Empty(t, repo.notes, "no note may be created on validation failure")
}

func TestCreateMalformedJSON(t *testing.T) {
	router, repo := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/notes", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body domain.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "body not valid", body.Message)
	assert.Empty(t, repo.notes)
}

func TestStorageFailure(t *testing.T) {
	router, repo := newTestRouter()
	repo.fail = &domain.StorageError{Op: "list notes", Err: fmt.Errorf("disk I/O error")}

	rec := doJSON(t, router, http.MethodGet, "/notes", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"internal error"}`, rec.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	router, _ := newTestRouter()

	rec := doJSON(t, router, http.MethodGet, "/unknown", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"not found"}`, rec.Body.String())
}

func TestUnknownMethod(t *testing.T) {
	router, _ := newTestRouter()

	rec := doJSON(t, router, http.MethodPatch, "/notes", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"not found"}`, rec.Body.String())
}
