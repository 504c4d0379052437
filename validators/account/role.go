package accountValidator

import (
	"strings"

	"lingadmin/middleware"
	"lingadmin/models"

	"github.com/gofiber/fiber/v2"
)

func CreateRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.CreateRoleInput)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRole", reqData)
		return c.Next()
	}
}

func RenameRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.RenameRoleInput)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRoleRename", reqData)
		return c.Next()
	}
}

// SetupRoles validates the bulk permission write: every item needs a role id
// and permission tokens must be non-empty strings.
func SetupRoles() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var reqData []models.RoleSetupItem
		if err := c.BodyParser(&reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if len(reqData) == 0 {
			errors["items"] = "At least one role is required!"
		}
		for _, item := range reqData {
			if strings.TrimSpace(item.ID) == "" {
				errors["id"] = "Every item needs a role id!"
			}
			for _, perm := range item.Permissions {
				if strings.TrimSpace(perm) == "" {
					errors["permissions"] = "Permission tokens cannot be empty!"
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRoleSetup", reqData)
		return c.Next()
	}
}
