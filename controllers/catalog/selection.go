package controllers

import (
	"lingadmin/cascade"
	"lingadmin/middleware"

	"github.com/gofiber/fiber/v2"
)

type SelectionController struct {
	resolver *cascade.Resolver
}

func NewSelectionController(resolver *cascade.Resolver) *SelectionController {
	return &SelectionController{resolver: resolver}
}

// Resolve returns the option lists and resolved selection for the
// course → unit → lesson selectors. A selection that no longer belongs under
// its parent comes back reset, with everything below it cleared.
func (ctl *SelectionController) Resolve(c *fiber.Ctx) error {
	req := cascade.Selection{
		CourseID: c.Query("courseId"),
		UnitID:   c.Query("unitId"),
		LessonID: c.Query("lessonId"),
	}

	res, err := ctl.resolver.Resolve(middleware.RequestContext(c), req)
	if err != nil {
		return middleware.APIErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Selection resolved successfully!", res)
}
