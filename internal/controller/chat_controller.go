package controller

import (
	"github.com/gofiber/fiber/v2"

	"vape-support-be/internal/dto"
	"vape-support-be/internal/pkg/serverutils"
	"vape-support-be/internal/service"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	SendChat(ctx *fiber.Ctx) error
	Feedback(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Post("", c.SendChat)
	h.Post("feedback", c.Feedback)
	h.Get(":session_id/history", c.History)
}

func (c *chatController) SendChat(ctx *fiber.Ctx) error {
	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res := c.chatService.SendChat(ctx.Context(), &req)

	return ctx.JSON(serverutils.SuccessResponse("Chat processed", res))
}

func (c *chatController) Feedback(ctx *fiber.Ctx) error {
	var req dto.FeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.chatService.RecordFeedback(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Feedback recorded", nil))
}

func (c *chatController) History(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("session_id")
	limit := ctx.QueryInt("limit", 0)

	res := c.chatService.GetChatHistory(ctx.Context(), sessionID, limit)

	return ctx.JSON(serverutils.SuccessResponse("Chat history", res))
}
