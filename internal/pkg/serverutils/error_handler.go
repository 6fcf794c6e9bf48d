package serverutils

import (
	"errors"

	"notetaking-be/internal/pkg/logger"
	"notetaking-be/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandler maps errors escaping a handler to responses. Controllers
// handle form errors themselves; this is the boundary for everything else.
func ErrorHandler(loginURL string, log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		var (
			fiberErr      *fiber.Error
			duplicateErr  *service.DuplicateSlugError
			requiredErr   *service.RequiredFieldError
			validationErr validator.ValidationErrors
		)

		switch {
		case errors.Is(err, service.ErrAuthenticationRequired):
			return RedirectToLogin(ctx, loginURL)
		case errors.Is(err, service.ErrNoteNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(fiber.StatusNotFound, "Not found"))
		case errors.As(err, &duplicateErr):
			return ctx.Status(fiber.StatusBadRequest).JSON(
				ValidationErrorResponse[any]("Invalid form", nil, map[string][]string{"slug": {duplicateErr.Error()}}),
			)
		case errors.Is(err, service.ErrSlugUnresolvable):
			return ctx.Status(fiber.StatusBadRequest).JSON(
				ValidationErrorResponse[any]("Invalid form", nil, map[string][]string{"slug": {err.Error()}}),
			)
		case errors.As(err, &requiredErr):
			return ctx.Status(fiber.StatusBadRequest).JSON(
				ValidationErrorResponse[any]("Invalid form", nil, map[string][]string{requiredErr.Field: {service.FieldRequiredMessage}}),
			)
		case errors.As(err, &validationErr):
			return ctx.Status(fiber.StatusBadRequest).JSON(
				ValidationErrorResponse[any]("Invalid form", nil, FieldErrors(validationErr)),
			)
		case errors.As(err, &fiberErr):
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"method": ctx.Method(),
			"path":   ctx.Path(),
			"error":  err,
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, "Internal server error"))
	}
}
