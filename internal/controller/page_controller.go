package controller

import (
	"notetaking-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

type IPageController interface {
	RegisterRoutes(r fiber.Router)
	Home(ctx *fiber.Ctx) error
	Success(ctx *fiber.Ctx) error
}

type pageController struct {
	loginURL string
}

func NewPageController(loginURL string) IPageController {
	return &pageController{loginURL: loginURL}
}

func (c *pageController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Home)
	r.Get(SuccessURL, c.Success)
}

func (c *pageController) Home(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Notes", fiber.Map{
		"list":   "/notes/",
		"add":    "/add/",
		"login":  c.loginURL,
		"signup": "/auth/signup/",
	}))
}

func (c *pageController) Success(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse[any]("Operation completed successfully", nil))
}
