package controller

import (
	"grantflow-be/internal/pkg/serverutils"
	"grantflow-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IWorkflowController interface {
	RegisterRoutes(r fiber.Router)
	Catalog(ctx *fiber.Ctx) error
	Get(ctx *fiber.Ctx) error
	Toggle(ctx *fiber.Ctx) error
	Progress(ctx *fiber.Ctx) error
	Resources(ctx *fiber.Ctx) error
}

type workflowController struct {
	service service.IWorkflowService
}

func NewWorkflowController(service service.IWorkflowService) IWorkflowController {
	return &workflowController{service: service}
}

func (c *workflowController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/workflow/v1")
	h.Get("catalog", c.Catalog)
	h.Get("steps/:stepId/resources", c.Resources)
	h.Get("", serverutils.OptionalJwtMiddleware, c.Get)
	h.Get("progress", serverutils.OptionalJwtMiddleware, c.Progress)
	h.Post("steps/:stepId/toggle", serverutils.OptionalJwtMiddleware, c.Toggle)
}

func (c *workflowController) Catalog(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get workflow catalog", c.service.Catalog(ctx.Context())))
}

func (c *workflowController) Get(ctx *fiber.Ctx) error {
	res, err := c.service.Get(ctx.Context(), serverutils.CurrentUser(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get workflow", res))
}

func (c *workflowController) Toggle(ctx *fiber.Ctx) error {
	res, err := c.service.Toggle(ctx.Context(), serverutils.CurrentUser(ctx), ctx.Params("stepId"))
	if err != nil {
		return err
	}

	message := "Success toggle step"
	if !res.Known {
		message = "Unknown step, nothing changed"
	}
	return ctx.JSON(serverutils.SuccessResponse(message, res))
}

func (c *workflowController) Progress(ctx *fiber.Ctx) error {
	res, err := c.service.Progress(ctx.Context(), serverutils.CurrentUser(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get workflow progress", res))
}

func (c *workflowController) Resources(ctx *fiber.Ctx) error {
	res, err := c.service.Resources(ctx.Context(), ctx.Params("stepId"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get step resources", res))
}
