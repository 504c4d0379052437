package authRoutes

import (
	controllers "lingadmin/controllers/auth"
	"lingadmin/middleware"
	"lingadmin/models"
	"lingadmin/resources"
	validators "lingadmin/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes wires session endpoints and the media upload proxy.
func SetupAuthRoutes(app *fiber.App, reg *resources.Registry) {
	authCtl := controllers.NewAuthController(reg)
	uploadCtl := controllers.NewUploadController(reg)

	auth := app.Group("/admin/auth")
	auth.Post("/login", validators.Login(), authCtl.Login)
	auth.Post("/logout", middleware.SessionMiddleware, authCtl.Logout)
	auth.Get("/profile", middleware.SessionMiddleware, authCtl.Profile)
	auth.Get("/me", middleware.SessionMiddleware, authCtl.Me)

	app.Post("/admin/upload",
		middleware.SessionMiddleware,
		middleware.CheckPermissionMiddleware(reg.Auth, models.PermissionProfile),
		uploadCtl.Upload,
	)
}
