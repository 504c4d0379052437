package controllers

import (
	"lingadmin/middleware"
	"lingadmin/models"
	"lingadmin/resources"

	"github.com/gofiber/fiber/v2"
)

type TheoryController struct {
	theories *resources.TheoryService
}

func NewTheoryController(reg *resources.Registry) *TheoryController {
	return &TheoryController{theories: reg.Theories}
}

func (ctl *TheoryController) List(c *fiber.Ctx) error {
	result, err := ctl.theories.ListByUnit(middleware.RequestContext(c), c.Query("unitId"))
	if err != nil {
		return middleware.APIErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Theories fetched successfully!", fiber.Map{
		"data":        result.Data,
		"pagination":  result.Pagination,
		"affordances": middleware.AffordancesFor(middleware.SessionUser(c), "theory"),
	})
}

func (ctl *TheoryController) Detail(c *fiber.Ctx) error {
	theory, err := ctl.theories.Get(middleware.RequestContext(c), c.Params("id"))
	if err != nil {
		return middleware.APIErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Theory fetched successfully!", theory)
}

func (ctl *TheoryController) Create(c *fiber.Ctx) error {
	input, ok := c.Locals("validatedTheory").(models.TheoryInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	theory, err := ctl.theories.Create(middleware.RequestContext(c), input)
	if err != nil {
		return middleware.APIErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Theory created successfully!", theory)
}

// Update rejects a changed typeTheory the same way questions do.
func (ctl *TheoryController) Update(c *fiber.Ctx) error {
	input, ok := c.Locals("validatedTheoryUpdate").(models.TheoryInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	ctx := middleware.RequestContext(c)
	existing, err := ctl.theories.Get(ctx, c.Params("id"))
	if err != nil {
		return middleware.APIErrorResponse(c, err)
	}
	if existing.TypeTheory != input.TypeTheory {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"typeTheory": "Theory type cannot be changed!",
		})
	}

	theory, err := ctl.theories.Update(ctx, c.Params("id"), input)
	if err != nil {
		return middleware.APIErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Theory updated successfully!", theory)
}

func (ctl *TheoryController) Delete(c *fiber.Ctx) error {
	if err := ctl.theories.Delete(middleware.RequestContext(c), c.Params("id")); err != nil {
		return middleware.APIErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Theory deleted successfully!", nil)
}
