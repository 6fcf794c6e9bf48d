package controller

import (
	"notetaking-be/internal/pkg/serverutils"
	wshub "notetaking-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

type IFeedController interface {
	RegisterRoutes(r fiber.Router, loginRequired fiber.Handler)
}

type feedController struct {
	hub  *wshub.Hub
	auth serverutils.TokenAuthenticator
}

func NewFeedController(hub *wshub.Hub, auth serverutils.TokenAuthenticator) IFeedController {
	return &feedController{hub: hub, auth: auth}
}

func (c *feedController) RegisterRoutes(r fiber.Router, loginRequired fiber.Handler) {
	r.Get("/ws/notes/", c.queryToken, loginRequired, c.upgrade, websocket.New(c.stream))
}

// queryToken accepts ?token= because browsers cannot set headers on a
// websocket handshake.
func (c *feedController) queryToken(ctx *fiber.Ctx) error {
	if serverutils.CurrentUserID(ctx) != uuid.Nil {
		return ctx.Next()
	}
	if token := ctx.Query("token"); token != "" {
		if userId, err := c.auth.Authenticate(ctx.Context(), token); err == nil {
			ctx.Locals(serverutils.UserIDLocal, userId)
		}
	}
	return ctx.Next()
}

func (c *feedController) upgrade(ctx *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(ctx) {
		return fiber.ErrUpgradeRequired
	}
	return ctx.Next()
}

func (c *feedController) stream(conn *websocket.Conn) {
	userId, ok := conn.Locals(serverutils.UserIDLocal).(uuid.UUID)
	if !ok || userId == uuid.Nil {
		conn.Close()
		return
	}
	wshub.ServeWs(c.hub, conn, userId)
}
