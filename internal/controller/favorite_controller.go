package controller

import (
	"grantflow-be/internal/pkg/serverutils"
	"grantflow-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFavoriteController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
	Toggle(ctx *fiber.Ctx) error
}

type favoriteController struct {
	service service.IFavoriteService
}

func NewFavoriteController(service service.IFavoriteService) IFavoriteController {
	return &favoriteController{service: service}
}

func (c *favoriteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/favorite/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Get(":itemType/:itemId", c.Status)
	h.Post(":itemType/:itemId/toggle", c.Toggle)
}

func (c *favoriteController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.Context(), serverutils.CurrentUser(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get favorites", res))
}

func (c *favoriteController) Status(ctx *fiber.Ctx) error {
	itemId, err := uuidParam(ctx, "itemId")
	if err != nil {
		return err
	}

	res, err := c.service.Status(ctx.Context(), serverutils.CurrentUser(ctx), ctx.Params("itemType"), itemId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get favorite status", res))
}

func (c *favoriteController) Toggle(ctx *fiber.Ctx) error {
	itemId, err := uuidParam(ctx, "itemId")
	if err != nil {
		return err
	}

	res, err := c.service.Toggle(ctx.Context(), serverutils.CurrentUser(ctx), ctx.Params("itemType"), itemId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success toggle favorite", res))
}
