// FILE: internal/controller/auth_controller.go
package controller

import (
	"errors"
	"time"

	"notetaking-be/internal/dto"
	"notetaking-be/internal/pkg/serverutils"
	"notetaking-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

var loginFields = []string{"username", "password"}

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	LoginForm(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Register(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
}

type authController struct {
	service       service.IAuthService
	secureCookies bool
}

func NewAuthController(service service.IAuthService, secureCookies bool) IAuthController {
	return &authController{service: service, secureCookies: secureCookies}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Get("/login/", c.LoginForm)
	h.Post("/login/", c.Login)
	h.Post("/signup/", c.Register)
	h.Post("/logout/", c.Logout)
}

func (c *authController) LoginForm(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Login", dto.LoginPageResponse{
		Fields: loginFields,
		Next:   serverutils.SafeNext(ctx.Query("next")),
	}))
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if req.Next == "" {
		req.Next = ctx.Query("next")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(
			serverutils.ValidationErrorResponse[any]("Invalid form", nil, serverutils.FieldErrors(err)),
		)
	}

	res, err := c.service.Login(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(fiber.StatusUnauthorized, err.Error()))
		}
		return err
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     serverutils.AccessTokenName,
		Value:    res.AccessToken,
		Path:     "/",
		Expires:  res.ExpiresAt,
		HTTPOnly: true,
		Secure:   c.secureCookies,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	if next := serverutils.SafeNext(req.Next); next != "" {
		return ctx.Redirect(next, fiber.StatusFound)
	}

	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(
			serverutils.ValidationErrorResponse[any]("Invalid form", nil, serverutils.FieldErrors(err)),
		)
	}

	res, err := c.service.Register(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			return ctx.Status(fiber.StatusBadRequest).JSON(
				serverutils.ValidationErrorResponse[any]("Invalid form", nil, map[string][]string{"username": {err.Error()}}),
			)
		}
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("User registered successfully", res))
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	if err := c.service.Logout(ctx.Context(), serverutils.AccessToken(ctx)); err != nil {
		return err
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     serverutils.AccessTokenName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   c.secureCookies,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return ctx.JSON(serverutils.SuccessResponse[any]("Logout successful", nil))
}
