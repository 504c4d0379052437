package controllers

import (
	"lingadmin/middleware"
	"lingadmin/models"
	"lingadmin/resources"

	"github.com/gofiber/fiber/v2"
)

type LessonController struct {
	lessons *resources.LessonService
}

func NewLessonController(reg *resources.Registry) *LessonController {
	return &LessonController{lessons: reg.Lessons}
}

func (ctl *LessonController) List(c *fiber.Ctx) error {
	result, err := ctl.lessons.ListByUnit(middleware.RequestContext(c), c.Query("unitId"))
	if err != nil {
		return middleware.APIErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully!", fiber.Map{
		"data":        result.Data,
		"pagination":  result.Pagination,
		"affordances": middleware.AffordancesFor(middleware.SessionUser(c), "lesson"),
	})
}

func (ctl *LessonController) Detail(c *fiber.Ctx) error {
	lesson, err := ctl.lessons.Get(middleware.RequestContext(c), c.Params("id"))
	if err != nil {
		return middleware.APIErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson fetched successfully!", lesson)
}

func (ctl *LessonController) Create(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLesson").(*models.CreateLessonInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	lesson, err := ctl.lessons.Create(middleware.RequestContext(c), *reqData)
	if err != nil {
		return middleware.APIErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", lesson)
}

func (ctl *LessonController) Update(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLessonUpdate").(*models.UpdateLessonInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	lesson, err := ctl.lessons.Update(middleware.RequestContext(c), c.Params("id"), *reqData)
	if err != nil {
		return middleware.APIErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully!", lesson)
}
