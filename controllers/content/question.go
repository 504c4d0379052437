package controllers

import (
	"lingadmin/middleware"
	"lingadmin/models"
	"lingadmin/resources"

	"github.com/gofiber/fiber/v2"
)

type QuestionController struct {
	questions *resources.QuestionService
}

func NewQuestionController(reg *resources.Registry) *QuestionController {
	return &QuestionController{questions: reg.Questions}
}

func (ctl *QuestionController) List(c *fiber.Ctx) error {
	result, err := ctl.questions.ListByLesson(middleware.RequestContext(c), c.Query("lessonId"))
	if err != nil {
		return middleware.APIErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Questions fetched successfully!", fiber.Map{
		"data":        result.Data,
		"pagination":  result.Pagination,
		"affordances": middleware.AffordancesFor(middleware.SessionUser(c), "question"),
	})
}

func (ctl *QuestionController) Detail(c *fiber.Ctx) error {
	question, err := ctl.questions.Get(middleware.RequestContext(c), c.Params("id"))
	if err != nil {
		return middleware.APIErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question fetched successfully!", question)
}

func (ctl *QuestionController) Create(c *fiber.Ctx) error {
	input, ok := c.Locals("validatedQuestion").(models.QuestionInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	question, err := ctl.questions.Create(middleware.RequestContext(c), input)
	if err != nil {
		return middleware.APIErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question created successfully!", question)
}

// Update replaces a question's payload. The discriminant is immutable: a
// request whose typeQuestion differs from the stored record is rejected
// before any write reaches the backend.
func (ctl *QuestionController) Update(c *fiber.Ctx) error {
	input, ok := c.Locals("validatedQuestionUpdate").(models.QuestionInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	ctx := middleware.RequestContext(c)
	existing, err := ctl.questions.Get(ctx, c.Params("id"))
	if err != nil {
		return middleware.APIErrorResponse(c, err)
	}
	if existing.TypeQuestion != input.TypeQuestion {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"typeQuestion": "Question type cannot be changed!",
		})
	}

	question, err := ctl.questions.Update(ctx, c.Params("id"), input)
	if err != nil {
		return middleware.APIErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question updated successfully!", question)
}

func (ctl *QuestionController) Delete(c *fiber.Ctx) error {
	if err := ctl.questions.Delete(middleware.RequestContext(c), c.Params("id")); err != nil {
		return middleware.APIErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question deleted successfully!", nil)
}
