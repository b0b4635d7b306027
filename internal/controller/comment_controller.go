package controller

import (
	"grantflow-be/internal/dto"
	"grantflow-be/internal/pkg/serverutils"
	"grantflow-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICommentController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
}

type commentController struct {
	service service.ICommentService
}

func NewCommentController(service service.ICommentService) ICommentController {
	return &commentController{service: service}
}

func (c *commentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/comment/v1")
	h.Get(":itemType/:itemId", c.GetAll)
	h.Post(":itemType/:itemId", serverutils.JwtMiddleware, c.Create)
}

func (c *commentController) GetAll(ctx *fiber.Ctx) error {
	itemId, err := uuidParam(ctx, "itemId")
	if err != nil {
		return err
	}

	res, err := c.service.GetAll(ctx.Context(), ctx.Params("itemType"), itemId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get comments", res))
}

func (c *commentController) Create(ctx *fiber.Ctx) error {
	itemId, err := uuidParam(ctx, "itemId")
	if err != nil {
		return err
	}

	var req dto.CreateCommentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), serverutils.CurrentUser(ctx), ctx.Params("itemType"), itemId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create comment", res))
}
