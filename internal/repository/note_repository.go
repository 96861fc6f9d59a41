package repository

import (
	"context"
	"database/sql"
	"errors"

	"notes-api/internal/domain"

	_ "github.com/mattn/go-sqlite3"
)

// NoteRepository is the storage capability the service is built over. The
// SQLite implementation below is the production one; tests substitute
// in-memory fakes.
type NoteRepository interface {
	List(ctx context.Context) ([]domain.Note, error)
	Get(ctx context.Context, id string) (domain.Note, error)
	Create(ctx context.Context, note domain.NewNote) (domain.Note, error)
	Update(ctx context.Context, id string, note domain.UpdateNote) (domain.Note, error)
	Delete(ctx context.Context, id string) (domain.Note, error)
}

// Open opens the SQLite database at path and verifies the connection.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS note (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	content TEXT NOT NULL,
	created_at TEXT NOT NULL
);`

// EnsureSchema creates the note table if it does not exist. Schema lifecycle
// is an operational concern; this exists for development and tests.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}

type SQLiteNoteRepository struct {
	db *sql.DB
}

func NewSQLiteNoteRepository(db *sql.DB) *SQLiteNoteRepository {
	return &SQLiteNoteRepository{db: db}
}

func (r *SQLiteNoteRepository) List(ctx context.Context) ([]domain.Note, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, title, content, created_at FROM note")
	if err != nil {
		return nil, &domain.StorageError{Op: "list notes", Err: err}
	}
	defer rows.Close()

	notes := make([]domain.Note, 0)
	for rows.Next() {
		var n domain.Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.CreatedAt); err != nil {
			return nil, &domain.StorageError{Op: "scan note", Err: err}
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.StorageError{Op: "list notes", Err: err}
	}

	return notes, nil
}

func (r *SQLiteNoteRepository) Get(ctx context.Context, id string) (domain.Note, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, title, content, created_at FROM note WHERE id = ?", id)
	return scanNote(row, "get note")
}

func (r *SQLiteNoteRepository) Create(ctx context.Context, note domain.NewNote) (domain.Note, error) {
	row := r.db.QueryRowContext(ctx,
		`INSERT INTO note (id, title, content, created_at) VALUES (?, ?, ?, ?)
		 RETURNING id, title, content, created_at`,
		note.ID, note.Title, note.Content, note.CreatedAt)
	return scanNote(row, "create note")
}

func (r *SQLiteNoteRepository) Update(ctx context.Context, id string, note domain.UpdateNote) (domain.Note, error) {
	row := r.db.QueryRowContext(ctx,
		`UPDATE note SET title = ?, content = ? WHERE id = ?
		 RETURNING id, title, content, created_at`,
		note.Title, note.Content, id)
	return scanNote(row, "update note")
}

func (r *SQLiteNoteRepository) Delete(ctx context.Context, id string) (domain.Note, error) {
	row := r.db.QueryRowContext(ctx,
		`DELETE FROM note WHERE id = ?
		 RETURNING id, title, content, created_at`,
		id)
	return scanNote(row, "delete note")
}

// scanNote reads one row and classifies the error: a RETURNING clause (or
// plain SELECT) that yields no row means the id does not exist, anything
// else is a storage fault. Driver error types stop here.
func scanNote(row *sql.Row, op string) (domain.Note, error) {
	var n domain.Note
	err := row.Scan(&n.ID, &n.Title, &n.Content, &n.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Note{}, domain.ErrNoteNotFound
	}
	if err != nil {
		return domain.Note{}, &domain.StorageError{Op: op, Err: err}
	}
	return n, nil
}
