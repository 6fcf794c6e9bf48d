package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// NoteFormFields are the fields accepted by the add and edit forms, in display order.
var NoteFormFields = []string{"title", "text", "slug"}

type CreateNoteRequest struct {
	Title string `json:"title" form:"title" validate:"required,max=100"`
	Text  string `json:"text" form:"text" validate:"required"`
	Slug  string `json:"slug" form:"slug" validate:"omitempty,max=100,slug"`
}

type UpdateNoteRequest struct {
	Title string `json:"title" form:"title" validate:"required,max=100"`
	Text  string `json:"text" form:"text" validate:"required"`
	Slug  string `json:"slug" form:"slug" validate:"omitempty,max=100,slug"`
}

// Normalize strips surrounding whitespace so blank input fails "required".
func (r *CreateNoteRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Text = strings.TrimSpace(r.Text)
	r.Slug = strings.TrimSpace(r.Slug)
}

func (r *UpdateNoteRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Text = strings.TrimSpace(r.Text)
	r.Slug = strings.TrimSpace(r.Slug)
}

type NoteResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Text      string     `json:"text"`
	Slug      string     `json:"slug"`
	AuthorId  uuid.UUID  `json:"author_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type ListNotesResponse struct {
	ObjectList []*NoteResponse `json:"object_list"`
}

type NoteFormData struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	Slug  string `json:"slug"`
}

// NoteForm is what the add/edit pages render: the field list, the values to
// prefill and, after a failed submit, the field level errors.
type NoteForm struct {
	Fields  []string            `json:"fields"`
	Initial NoteFormData        `json:"initial"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

type NoteFormResponse struct {
	Form NoteForm      `json:"form"`
	Note *NoteResponse `json:"note,omitempty"`
}

type DeleteNoteConfirmResponse struct {
	Note *NoteResponse `json:"note"`
}
