package controller

import (
	"grantflow-be/internal/dto"
	"grantflow-be/internal/pkg/serverutils"
	"grantflow-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITemplateController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Download(ctx *fiber.Ctx) error
}

type templateController struct {
	service service.ITemplateService
}

func NewTemplateController(service service.ITemplateService) ITemplateController {
	return &templateController{service: service}
}

func (c *templateController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/template/v1")
	h.Get("", c.GetAll)
	h.Get(":id", c.Show)
	h.Get(":id/download", serverutils.OptionalJwtMiddleware, c.Download)
}

func (c *templateController) GetAll(ctx *fiber.Ctx) error {
	var req dto.ListTemplatesRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	res, err := c.service.GetAll(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all templates", res))
}

func (c *templateController) Show(ctx *fiber.Ctx) error {
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show template", res))
}

// Download streams the template body as a file attachment.
func (c *templateController) Download(ctx *fiber.Ctx) error {
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}

	file, err := c.service.Download(ctx.Context(), serverutils.CurrentUser(ctx), id)
	if err != nil {
		return err
	}

	ctx.Attachment(file.FileName)
	return ctx.Send(file.Content)
}
