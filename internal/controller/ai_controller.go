package controller

import (
	"studentdrive-be/internal/dto"
	"studentdrive-be/internal/pkg/serverutils"
	"studentdrive-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAiController interface {
	RegisterRoutes(r fiber.Router)
	GenerateFlashcards(ctx *fiber.Ctx) error
	GenerateQuiz(ctx *fiber.Ctx) error
	GenerateSummary(ctx *fiber.Ctx) error
	GenerateMindMap(ctx *fiber.Ctx) error
}

type aiController struct {
	aiService service.IAiService
}

func NewAiController(aiService service.IAiService) IAiController {
	return &aiController{
		aiService: aiService,
	}
}

func (c *aiController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/ai/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("flashcards", c.GenerateFlashcards)
	h.Post("quiz", c.GenerateQuiz)
	h.Post("summarize", c.GenerateSummary)
	h.Post("mindmap", c.GenerateMindMap)
}

func (c *aiController) GenerateFlashcards(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.GenerateFlashcardsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.aiService.GenerateFlashcards(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate flashcards", res))
}

func (c *aiController) GenerateQuiz(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.GenerateQuizRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.aiService.GenerateQuiz(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate quiz", res))
}

func (c *aiController) GenerateSummary(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.GenerateSummaryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.aiService.GenerateSummary(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate summary", res))
}

func (c *aiController) GenerateMindMap(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.GenerateMindMapRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.aiService.GenerateMindMap(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate mind map", res))
}
