package catalogValidator

import (
	"strings"

	"lingadmin/middleware"
	"lingadmin/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ListQuery validates the common pagination parameters for admin list views.
func ListQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := models.ListQuery{
			Page:     c.QueryInt("page", 1),
			PageSize: c.QueryInt("pageSize", 10),
			Search:   strings.TrimSpace(c.Query("search")),
			Sort:     strings.TrimSpace(c.Query("sort")),
		}

		errors := make(map[string]string)
		if q.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if q.PageSize < 1 || q.PageSize > 100 {
			errors["pageSize"] = "Page size must be between 1 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedList", q)
		return c.Next()
	}
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.CreateCourseInput)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}
		if err := validate.Var(reqData.Thumbnail, "omitempty,url"); err != nil {
			errors["thumbnail"] = "Thumbnail must be a valid URL!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.UpdateCourseInput)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if err := validate.Var(reqData.Thumbnail, "omitempty,url"); err != nil {
			errors["thumbnail"] = "Thumbnail must be a valid URL!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

func CreateUnit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.CreateUnitInput)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if strings.TrimSpace(reqData.CourseID) == "" {
			errors["courseId"] = "Course is required!"
		}
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if err := validate.Var(reqData.Thumbnail, "omitempty,url"); err != nil {
			errors["thumbnail"] = "Thumbnail must be a valid URL!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUnit", reqData)
		return c.Next()
	}
}

// UpdateUnit accepts no courseId: the parent course is immutable after
// creation, so a unit can never be re-homed from the edit form.
func UpdateUnit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.UpdateUnitInput)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if err := validate.Var(reqData.Thumbnail, "omitempty,url"); err != nil {
			errors["thumbnail"] = "Thumbnail must be a valid URL!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUnitUpdate", reqData)
		return c.Next()
	}
}

func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.CreateLessonInput)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if strings.TrimSpace(reqData.UnitID) == "" {
			errors["unitId"] = "Unit is required!"
		}
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.ExperiencePoint != nil && *reqData.ExperiencePoint < 0 {
			errors["experiencePoint"] = "Experience points cannot be negative!"
		}
		if err := validate.Var(reqData.Thumbnail, "omitempty,url"); err != nil {
			errors["thumbnail"] = "Thumbnail must be a valid URL!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

// UpdateLesson accepts no unitId; same immutability rule as units.
func UpdateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.UpdateLessonInput)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if reqData.ExperiencePoint != nil && *reqData.ExperiencePoint < 0 {
			errors["experiencePoint"] = "Experience points cannot be negative!"
		}
		if err := validate.Var(reqData.Thumbnail, "omitempty,url"); err != nil {
			errors["thumbnail"] = "Thumbnail must be a valid URL!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLessonUpdate", reqData)
		return c.Next()
	}
}
