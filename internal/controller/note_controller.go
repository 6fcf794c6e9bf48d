package controller

import (
	"errors"

	"notetaking-be/internal/dto"
	"notetaking-be/internal/pkg/serverutils"
	"notetaking-be/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const SuccessURL = "/done/"

type INoteController interface {
	RegisterRoutes(r fiber.Router, loginRequired fiber.Handler)
	List(ctx *fiber.Ctx) error
	AddForm(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Detail(ctx *fiber.Ctx) error
	EditForm(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	DeleteConfirm(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
}

func NewNoteController(noteService service.INoteService) INoteController {
	return &noteController{
		noteService: noteService,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router, loginRequired fiber.Handler) {
	r.Get("/notes/", loginRequired, c.List)
	r.Get("/add/", loginRequired, c.AddForm)
	r.Post("/add/", loginRequired, c.Create)
	r.Get("/note/:slug/", loginRequired, c.Detail)
	r.Get("/edit/:slug/", loginRequired, c.EditForm)
	r.Post("/edit/:slug/", loginRequired, c.Update)
	r.Get("/delete/:slug/", loginRequired, c.DeleteConfirm)
	r.Post("/delete/:slug/", loginRequired, c.Delete)
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	userId := serverutils.CurrentUserID(ctx)

	res, err := c.noteService.List(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list notes", dto.ListNotesResponse{ObjectList: res}))
}

func (c *noteController) AddForm(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Add note", dto.NoteFormResponse{
		Form: dto.NoteForm{Fields: dto.NoteFormFields},
	}))
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	userId := serverutils.CurrentUserID(ctx)

	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()

	initial := dto.NoteFormData{Title: req.Title, Text: req.Text, Slug: req.Slug}

	if err := serverutils.ValidateRequest(req); err != nil {
		return formError(ctx, initial, nil, err)
	}

	if _, err := c.noteService.Create(ctx.Context(), userId, &req); err != nil {
		return formError(ctx, initial, nil, err)
	}

	return ctx.Redirect(SuccessURL, fiber.StatusFound)
}

func (c *noteController) Detail(ctx *fiber.Ctx) error {
	userId := serverutils.CurrentUserID(ctx)

	res, err := c.noteService.Show(ctx.Context(), userId, ctx.Params("slug"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show note", res))
}

func (c *noteController) EditForm(ctx *fiber.Ctx) error {
	userId := serverutils.CurrentUserID(ctx)

	note, err := c.noteService.Show(ctx.Context(), userId, ctx.Params("slug"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Edit note", dto.NoteFormResponse{
		Form: dto.NoteForm{
			Fields:  dto.NoteFormFields,
			Initial: dto.NoteFormData{Title: note.Title, Text: note.Text, Slug: note.Slug},
		},
		Note: note,
	}))
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	userId := serverutils.CurrentUserID(ctx)
	slug := ctx.Params("slug")

	// Ownership first: a stranger gets 404 whatever the form says.
	note, err := c.noteService.Show(ctx.Context(), userId, slug)
	if err != nil {
		return err
	}

	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()

	initial := dto.NoteFormData{Title: req.Title, Text: req.Text, Slug: req.Slug}

	if err := serverutils.ValidateRequest(req); err != nil {
		return formError(ctx, initial, note, err)
	}

	if _, err := c.noteService.Update(ctx.Context(), userId, slug, &req); err != nil {
		return formError(ctx, initial, note, err)
	}

	return ctx.Redirect(SuccessURL, fiber.StatusFound)
}

func (c *noteController) DeleteConfirm(ctx *fiber.Ctx) error {
	userId := serverutils.CurrentUserID(ctx)

	note, err := c.noteService.Show(ctx.Context(), userId, ctx.Params("slug"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Confirm delete", dto.DeleteNoteConfirmResponse{Note: note}))
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	userId := serverutils.CurrentUserID(ctx)

	if err := c.noteService.Delete(ctx.Context(), userId, ctx.Params("slug")); err != nil {
		return err
	}

	return ctx.Redirect(SuccessURL, fiber.StatusFound)
}

// formError re-renders the note form with field errors for anything the user
// can fix. Other errors go to the app error handler.
func formError(ctx *fiber.Ctx, initial dto.NoteFormData, note *dto.NoteResponse, err error) error {
	var (
		duplicateErr  *service.DuplicateSlugError
		requiredErr   *service.RequiredFieldError
		validationErr validator.ValidationErrors
		fieldErrors   map[string][]string
	)

	switch {
	case errors.As(err, &duplicateErr):
		fieldErrors = map[string][]string{"slug": {duplicateErr.Error()}}
	case errors.Is(err, service.ErrSlugUnresolvable):
		fieldErrors = map[string][]string{"slug": {err.Error()}}
	case errors.As(err, &requiredErr):
		fieldErrors = map[string][]string{requiredErr.Field: {service.FieldRequiredMessage}}
	case errors.As(err, &validationErr):
		fieldErrors = serverutils.FieldErrors(validationErr)
	default:
		return err
	}

	form := dto.NoteFormResponse{
		Form: dto.NoteForm{
			Fields:  dto.NoteFormFields,
			Initial: initial,
			Errors:  fieldErrors,
		},
		Note: note,
	}
	return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ValidationErrorResponse("Invalid form", form, fieldErrors))
}
