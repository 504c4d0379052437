package catalogRoutes

import (
	"lingadmin/cascade"
	controllers "lingadmin/controllers/catalog"
	"lingadmin/middleware"
	"lingadmin/models"
	"lingadmin/resources"
	validators "lingadmin/validators/catalog"

	"github.com/gofiber/fiber/v2"
)

// SetupCatalogRoutes wires the course/unit/lesson screens plus the cascade
// selection endpoint and the dashboard.
func SetupCatalogRoutes(app *fiber.App, reg *resources.Registry, resolver *cascade.Resolver) {
	courseCtl := controllers.NewCourseController(reg)
	unitCtl := controllers.NewUnitController(reg)
	lessonCtl := controllers.NewLessonController(reg)
	selectionCtl := controllers.NewSelectionController(resolver)
	dashboardCtl := controllers.NewDashboardController(reg)

	perm := func(p string) fiber.Handler {
		return middleware.CheckPermissionMiddleware(reg.Auth, p)
	}

	courses := app.Group("/admin/courses", middleware.SessionMiddleware)
	courses.Get("/", perm("course.view"), validators.ListQuery(), courseCtl.List)
	courses.Post("/", perm("course.create"), validators.CreateCourse(), courseCtl.Create)
	courses.Get("/:id", perm("course.view"), courseCtl.Detail)
	courses.Patch("/:id", perm("course.edit"), validators.UpdateCourse(), courseCtl.Update)

	units := app.Group("/admin/units", middleware.SessionMiddleware)
	units.Get("/", perm("unit.view"), unitCtl.List)
	units.Post("/", perm("unit.create"), validators.CreateUnit(), unitCtl.Create)
	units.Get("/course/:id", perm("unit.view"), unitCtl.ByCourse)
	units.Get("/:id", perm("unit.view"), unitCtl.Detail)
	units.Patch("/:id", perm("unit.edit"), validators.UpdateUnit(), unitCtl.Update)

	lessons := app.Group("/admin/lessons", middleware.SessionMiddleware)
	lessons.Get("/", perm("lesson.view"), lessonCtl.List)
	lessons.Post("/", perm("lesson.create"), validators.CreateLesson(), lessonCtl.Create)
	lessons.Get("/:id", perm("lesson.view"), lessonCtl.Detail)
	lessons.Patch("/:id", perm("lesson.edit"), validators.UpdateLesson(), lessonCtl.Update)

	app.Get("/admin/selection", middleware.SessionMiddleware, perm("course.view"), selectionCtl.Resolve)
	app.Get("/admin/dashboard", middleware.SessionMiddleware, perm(models.PermissionProfile), dashboardCtl.Summary)
}
