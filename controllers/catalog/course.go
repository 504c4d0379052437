package controllers

import (
	"lingadmin/middleware"
	"lingadmin/models"
	"lingadmin/resources"

	"github.com/gofiber/fiber/v2"
)

type CourseController struct {
	courses *resources.CourseService
}

func NewCourseController(reg *resources.Registry) *CourseController {
	return &CourseController{courses: reg.Courses}
}

// List returns the paginated admin course list with affordance flags for the
// session user.
func (ctl *CourseController) List(c *fiber.Ctx) error {
	q, ok := c.Locals("validatedList").(models.ListQuery)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	result, err := ctl.courses.List(middleware.RequestContext(c), q)
	if err != nil {
		return middleware.APIErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"data":        result.Data,
		"pagination":  result.Pagination,
		"affordances": middleware.AffordancesFor(middleware.SessionUser(c), "course"),
	})
}

func (ctl *CourseController) Detail(c *fiber.Ctx) error {
	course, err := ctl.courses.Get(middleware.RequestContext(c), c.Params("id"))
	if err != nil {
		return middleware.APIErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

func (ctl *CourseController) Create(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*models.CreateCourseInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := ctl.courses.Create(middleware.RequestContext(c), *reqData)
	if err != nil {
		return middleware.APIErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

func (ctl *CourseController) Update(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourseUpdate").(*models.UpdateCourseInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := ctl.courses.Update(middleware.RequestContext(c), c.Params("id"), *reqData)
	if err != nil {
		return middleware.APIErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}
