package contentRoutes

import (
	controllers "lingadmin/controllers/content"
	"lingadmin/middleware"
	"lingadmin/resources"
	validators "lingadmin/validators/content"

	"github.com/gofiber/fiber/v2"
)

// SetupContentRoutes wires the question and theory screens.
func SetupContentRoutes(app *fiber.App, reg *resources.Registry) {
	questionCtl := controllers.NewQuestionController(reg)
	theoryCtl := controllers.NewTheoryController(reg)

	perm := func(p string) fiber.Handler {
		return middleware.CheckPermissionMiddleware(reg.Auth, p)
	}

	questions := app.Group("/admin/questions", middleware.SessionMiddleware)
	questions.Get("/", perm("question.view"), questionCtl.List)
	questions.Post("/", perm("question.create"), validators.CreateQuestion(), questionCtl.Create)
	questions.Get("/:id", perm("question.view"), questionCtl.Detail)
	questions.Put("/:id", perm("question.edit"), validators.UpdateQuestion(), questionCtl.Update)
	questions.Delete("/:id", perm("question.delete"), questionCtl.Delete)

	theories := app.Group("/admin/theories", middleware.SessionMiddleware)
	theories.Get("/", perm("theory.view"), theoryCtl.List)
	theories.Post("/", perm("theory.create"), validators.CreateTheory(), theoryCtl.Create)
	theories.Get("/:id", perm("theory.view"), theoryCtl.Detail)
	theories.Patch("/:id", perm("theory.edit"), validators.UpdateTheory(), theoryCtl.Update)
	theories.Delete("/:id", perm("theory.delete"), theoryCtl.Delete)
}
