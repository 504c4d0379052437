package controllers

import (
	"lingadmin/middleware"
	"lingadmin/models"
	"lingadmin/resources"

	"github.com/gofiber/fiber/v2"
)

type UnitController struct {
	units *resources.UnitService
}

func NewUnitController(reg *resources.Registry) *UnitController {
	return &UnitController{units: reg.Units}
}

// List returns the units under the course given by the courseId query
// parameter. An empty courseId yields the unfiltered admin list.
func (ctl *UnitController) List(c *fiber.Ctx) error {
	result, err := ctl.units.ListByCourse(middleware.RequestContext(c), c.Query("courseId"))
	if err != nil {
		return middleware.APIErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Units fetched successfully!", fiber.Map{
		"data":        result.Data,
		"pagination":  result.Pagination,
		"affordances": middleware.AffordancesFor(middleware.SessionUser(c), "unit"),
	})
}

// ByCourse returns the units embedded under one course detail view.
func (ctl *UnitController) ByCourse(c *fiber.Ctx) error {
	result, err := ctl.units.ByCourse(middleware.RequestContext(c), c.Params("id"))
	if err != nil {
		return middleware.APIErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Units fetched successfully!", fiber.Map{
		"data":       result.Data,
		"pagination": result.Pagination,
	})
}

func (ctl *UnitController) Detail(c *fiber.Ctx) error {
	unit, err := ctl.units.Get(middleware.RequestContext(c), c.Params("id"))
	if err != nil {
		return middleware.APIErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Unit fetched successfully!", unit)
}

func (ctl *UnitController) Create(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUnit").(*models.CreateUnitInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	unit, err := ctl.units.Create(middleware.RequestContext(c), *reqData)
	if err != nil {
		return middleware.APIErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Unit created successfully!", unit)
}

func (ctl *UnitController) Update(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUnitUpdate").(*models.UpdateUnitInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	unit, err := ctl.units.Update(middleware.RequestContext(c), c.Params("id"), *reqData)
	if err != nil {
		return middleware.APIErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Unit updated successfully!", unit)
}
