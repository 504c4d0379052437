package accountRoutes

import (
	controllers "lingadmin/controllers/account"
	"lingadmin/middleware"
	"lingadmin/resources"
	accountValidators "lingadmin/validators/account"
	catalogValidators "lingadmin/validators/catalog"

	"github.com/gofiber/fiber/v2"
)

// SetupAccountRoutes wires account and role management.
func SetupAccountRoutes(app *fiber.App, reg *resources.Registry) {
	accountCtl := controllers.NewAccountController(reg)
	roleCtl := controllers.NewRoleController(reg)

	perm := func(p string) fiber.Handler {
		return middleware.CheckPermissionMiddleware(reg.Auth, p)
	}

	accounts := app.Group("/admin/accounts", middleware.SessionMiddleware)
	accounts.Get("/", perm("account.view"), catalogValidators.ListQuery(), accountCtl.List)
	accounts.Post("/", perm("account.create"), accountValidators.CreateAccount(), accountCtl.Create)
	accounts.Get("/:id", perm("account.view"), accountCtl.Detail)
	accounts.Patch("/:id", perm("account.update"), accountValidators.UpdateAccount(), accountCtl.Update)
	accounts.Delete("/:id", perm("account.delete"), accountCtl.Delete)

	roles := app.Group("/admin/roles", middleware.SessionMiddleware)
	roles.Get("/", perm("role.view"), roleCtl.List)
	roles.Get("/options", perm("role.view"), roleCtl.Options)
	roles.Post("/", perm("role.create"), accountValidators.CreateRole(), roleCtl.Create)
	roles.Put("/setup", perm("role.setup"), accountValidators.SetupRoles(), roleCtl.Setup)
	roles.Patch("/:id", perm("role-name.update"), accountValidators.RenameRole(), roleCtl.Rename)
	roles.Delete("/:id", perm("role.delete"), roleCtl.Delete)
}
