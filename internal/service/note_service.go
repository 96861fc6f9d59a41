package service

import (
	"context"
	"errors"

	"notes-api/internal/domain"
	"notes-api/internal/repository"

	"github.com/go-playground/validator/v10"
)

// NoteService enforces domain validation above the repository. It never
// assigns identifiers or timestamps; create inputs arrive fully populated.
type NoteService struct {
	repo     repository.NoteRepository
	validate *validator.Validate
}

func NewNoteService(repo repository.NoteRepository) *NoteService {
	return &NoteService{
		repo:     repo,
		validate: validator.New(),
	}
}

func (s *NoteService) List(ctx context.Context) ([]domain.Note, error) {
	return s.repo.List(ctx)
}

func (s *NoteService) Get(ctx context.Context, id string) (domain.Note, error) {
	return s.repo.Get(ctx, id)
}

func (s *NoteService) Create(ctx context.Context, note domain.NewNote) (domain.Note, error) {
	if err := s.check(note); err != nil {
		return domain.Note{}, err
	}
	return s.repo.Create(ctx, note)
}

func (s *NoteService) Update(ctx context.Context, id string, note domain.UpdateNote) (domain.Note, error) {
	if err := s.check(note); err != nil {
		return domain.Note{}, err
	}
	return s.repo.Update(ctx, id, note)
}

func (s *NoteService) Delete(ctx context.Context, id string) (domain.Note, error) {
	return s.repo.Delete(ctx, id)
}

// check runs struct validation and translates validator output into the
// domain error taxonomy. Titles are not trimmed: any string of length >= 1
// passes.
func (s *NoteService) check(v interface{}) error {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}

	var invalid validator.ValidationErrors
	if errors.As(err, &invalid) && len(invalid) > 0 {
		return &domain.ValidationError{Rule: ruleFor(invalid[0])}
	}
	return &domain.ValidationError{Rule: err.Error()}
}

func ruleFor(fe validator.FieldError) string {
	switch fe.Field() {
	case "Title":
		return "title must not be empty"
	default:
		return fe.Field() + " failed on " + fe.Tag()
	}
}
