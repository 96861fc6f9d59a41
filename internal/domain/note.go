package domain

// Note is the persisted entity. CreatedAt is kept as an RFC 3339 UTC string,
// matching both the column type and the wire format.
type Note struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

// NewNote is the input to create. ID and CreatedAt are assigned by the HTTP
// layer before the service sees the record; the service only validates and
// delegates.
type NewNote struct {
	ID        string `validate:"required"`
	Title     string `validate:"required"`
	Content   string
	CreatedAt string `validate:"required"`
}

// UpdateNote is the input to update. ID and CreatedAt are immutable.
type UpdateNote struct {
	Title   string `validate:"required"`
	Content string
}

type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type UpdateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type ListNotesResponse struct {
	Notes []Note `json:"notes"`
}

type GetNoteResponse struct {
	Note Note `json:"note"`
}

type CreateNoteResponse struct {
	Note Note `json:"note"`
}

type UpdateNoteResponse struct {
	Note Note `json:"note"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
