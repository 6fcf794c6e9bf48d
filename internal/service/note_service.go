// FILE: internal/service/note_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"notetaking-be/internal/dto"
	"notetaking-be/internal/entity"
	"notetaking-be/internal/pkg/logger"
	"notetaking-be/internal/repository/contract"
	"notetaking-be/internal/repository/specification"
	"notetaking-be/internal/repository/unitofwork"
	"notetaking-be/pkg/events"
	"notetaking-be/pkg/slugify"

	"github.com/google/uuid"
)

const noteModule = "note"

type INoteService interface {
	List(ctx context.Context, userId uuid.UUID) ([]*dto.NoteResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Show(ctx context.Context, userId uuid.UUID, slug string) (*dto.NoteResponse, error)
	Update(ctx context.Context, userId uuid.UUID, slug string, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, slug string) error
	Count(ctx context.Context) (int64, error)
}

type noteService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   events.Publisher
	logger           logger.ILogger
}

// NewNoteService wires the note store. eventPublisher may be nil when no
// external bus is configured.
func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher events.Publisher,
	log logger.ILogger,
) INoteService {
	return &noteService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		logger:           log,
	}
}

func (c *noteService) List(ctx context.Context, userId uuid.UUID) ([]*dto.NoteResponse, error) {
	if userId == uuid.Nil {
		return nil, ErrAuthenticationRequired
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.NoteOwnedByUser{UserID: userId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.NoteResponse, 0, len(notes))
	for _, note := range notes {
		res = append(res, toNoteResponse(note))
	}
	return res, nil
}

func (c *noteService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	if userId == uuid.Nil {
		return nil, ErrAuthenticationRequired
	}

	title, text, reqSlug, err := cleanNoteInput(req.Title, req.Text, req.Slug)
	if err != nil {
		return nil, err
	}

	noteSlug, err := resolveSlug(reqSlug, title)
	if err != nil {
		return nil, err
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := ensureSlugAvailable(ctx, uow, noteSlug, uuid.Nil); err != nil {
		return nil, err
	}

	note := entity.Note{
		Id:        uuid.New(),
		Title:     title,
		Text:      text,
		Slug:      noteSlug,
		AuthorId:  userId,
		CreatedAt: time.Now(),
	}

	// The unique index on slug is the real guard; the check above only
	// gives the common case a friendly error before hitting it.
	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, translateSlugError(err, noteSlug)
	}

	if err := uow.Commit(); err != nil {
		return nil, translateSlugError(err, noteSlug)
	}

	c.publish(ctx, entity.NoteActionCreated, &note)

	return toNoteResponse(&note), nil
}

func (c *noteService) Show(ctx context.Context, userId uuid.UUID, slug string) (*dto.NoteResponse, error) {
	if userId == uuid.Nil {
		return nil, ErrAuthenticationRequired
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	note, err := findOwnedNote(ctx, uow, userId, slug)
	if err != nil {
		return nil, err
	}

	return toNoteResponse(note), nil
}

func (c *noteService) Update(ctx context.Context, userId uuid.UUID, slug string, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	if userId == uuid.Nil {
		return nil, ErrAuthenticationRequired
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	note, err := findOwnedNote(ctx, uow, userId, slug)
	if err != nil {
		return nil, err
	}

	title, text, reqSlug, err := cleanNoteInput(req.Title, req.Text, req.Slug)
	if err != nil {
		return nil, err
	}

	newSlug, err := resolveSlug(reqSlug, title)
	if err != nil {
		return nil, err
	}
	if newSlug != note.Slug {
		if err := ensureSlugAvailable(ctx, uow, newSlug, note.Id); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	note.Title = title
	note.Text = text
	note.Slug = newSlug
	note.UpdatedAt = &now

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, translateSlugError(err, newSlug)
	}

	if err := uow.Commit(); err != nil {
		return nil, translateSlugError(err, newSlug)
	}

	c.publish(ctx, entity.NoteActionUpdated, note)

	return toNoteResponse(note), nil
}

func (c *noteService) Delete(ctx context.Context, userId uuid.UUID, slug string) error {
	if userId == uuid.Nil {
		return ErrAuthenticationRequired
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	note, err := findOwnedNote(ctx, uow, userId, slug)
	if err != nil {
		return err
	}

	if err := uow.NoteRepository().Delete(ctx, note.Id); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	c.publish(ctx, entity.NoteActionDeleted, note)

	return nil
}

func (c *noteService) Count(ctx context.Context) (int64, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	return uow.NoteRepository().Count(ctx)
}

// publish fans the change out to the in-process topic and, when configured,
// the external bus. Failures are logged; the write has already committed.
func (c *noteService) publish(ctx context.Context, action entity.NoteAction, note *entity.Note) {
	occurredAt := time.Now()

	payload, err := json.Marshal(dto.NoteEventMessage{
		Action:     string(action),
		NoteId:     note.Id,
		UserId:     note.AuthorId,
		Slug:       note.Slug,
		OccurredAt: occurredAt,
	})
	if err != nil {
		c.logger.Error(noteModule, "failed to encode note event", map[string]interface{}{"error": err})
		return
	}

	if err := c.publisherService.Publish(ctx, payload); err != nil {
		c.logger.Warn(noteModule, "failed to publish note event", map[string]interface{}{
			"action": string(action),
			"slug":   note.Slug,
			"error":  err,
		})
	}

	if c.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: string(action),
			Data: map[string]interface{}{
				"note_id": note.Id,
				"user_id": note.AuthorId,
				"slug":    note.Slug,
				"title":   note.Title,
			},
			OccurredAt: occurredAt,
		}
		if err := c.eventPublisher.Publish(ctx, evt); err != nil {
			c.logger.Warn(noteModule, "failed to publish external note event", map[string]interface{}{
				"action": string(action),
				"error":  err,
			})
		}
	}

	c.logger.Info(noteModule, "note "+strings.ToLower(strings.TrimPrefix(string(action), "NOTE_")), map[string]interface{}{
		"note_id": note.Id,
		"user_id": note.AuthorId,
		"slug":    note.Slug,
	})
}

// resolveSlug returns the requested slug, or the slugified title when none
// was given.
// cleanNoteInput trims the form values; title and text must stay non-empty.
func cleanNoteInput(title, text, slug string) (string, string, string, error) {
	title = strings.TrimSpace(title)
	text = strings.TrimSpace(text)
	slug = strings.TrimSpace(slug)

	if title == "" {
		return "", "", "", &RequiredFieldError{Field: "title"}
	}
	if text == "" {
		return "", "", "", &RequiredFieldError{Field: "text"}
	}
	return title, text, slug, nil
}

func resolveSlug(requested, title string) (string, error) {
	s := strings.TrimSpace(requested)
	if s == "" {
		s = slugify.FromTitle(title)
	}
	if s == "" {
		return "", ErrSlugUnresolvable
	}
	return s, nil
}

// ensureSlugAvailable fails when any note other than exclude already uses slug.
func ensureSlugAvailable(ctx context.Context, uow unitofwork.UnitOfWork, slug string, exclude uuid.UUID) error {
	specs := []specification.Specification{specification.BySlug{Slug: slug}}
	if exclude != uuid.Nil {
		specs = append(specs, specification.ExcludeID{ID: exclude})
	}

	count, err := uow.NoteRepository().Count(ctx, specs...)
	if err != nil {
		return err
	}
	if count > 0 {
		return &DuplicateSlugError{Slug: slug}
	}
	return nil
}

// findOwnedNote applies the ownership gate: a note authored by someone else
// is reported exactly like a missing one.
func findOwnedNote(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, slug string) (*entity.Note, error) {
	note, err := uow.NoteRepository().FindOne(ctx, specification.BySlug{Slug: slug})
	if err != nil {
		return nil, err
	}
	if note == nil || !note.IsOwnedBy(userId) {
		return nil, ErrNoteNotFound
	}
	return note, nil
}

func translateSlugError(err error, slug string) error {
	if errors.Is(err, contract.ErrDuplicateKey) {
		return &DuplicateSlugError{Slug: slug}
	}
	return err
}

func toNoteResponse(note *entity.Note) *dto.NoteResponse {
	return &dto.NoteResponse{
		Id:        note.Id,
		Title:     note.Title,
		Text:      note.Text,
		Slug:      note.Slug,
		AuthorId:  note.AuthorId,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}
