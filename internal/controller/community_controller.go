package controller

import (
	"grantflow-be/internal/pkg/serverutils"
	"grantflow-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICommunityController interface {
	RegisterRoutes(r fiber.Router)
	Leaderboard(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
}

type communityController struct {
	service service.ICommunityService
}

func NewCommunityController(service service.ICommunityService) ICommunityController {
	return &communityController{service: service}
}

func (c *communityController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/community/v1")
	h.Get("leaderboard", c.Leaderboard)
	h.Get("stats", c.Stats)
}

func (c *communityController) Leaderboard(ctx *fiber.Ctx) error {
	res, err := c.service.Leaderboard(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get leaderboard", res))
}

func (c *communityController) Stats(ctx *fiber.Ctx) error {
	res, err := c.service.Stats(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get community stats", res))
}
