package middleware

import (
	"lingadmin/models"
	"lingadmin/resources"

	"github.com/gofiber/fiber/v2"
)

// CheckPermissionMiddleware returns a middleware that allows the request only
// when the session user's permission set contains the exact required string.
// While the profile is unavailable (fetch pending or failed) access is denied,
// never granted by default.
func CheckPermissionMiddleware(auth *resources.AuthService, requiredPermission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(string)
		if !ok || userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  false,
				"message": "Unauthorized: User ID not found",
				"data":    nil,
			})
		}

		user, err := auth.Profile(RequestContext(c), userID)
		if err != nil || user == nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"status":  false,
				"message": "You do not have permission to access this resource!",
				"data":    nil,
			})
		}

		// The base profile permission gates the whole admin area.
		if !user.HasPermission(models.PermissionProfile) || !user.HasPermission(requiredPermission) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"status":  false,
				"message": "You do not have permission to access this resource!",
				"data":    nil,
			})
		}

		c.Locals("sessionUser", user)
		return c.Next()
	}
}

// SessionUser returns the profile resolved by CheckPermissionMiddleware, or
// nil when it is not on the request.
func SessionUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("sessionUser").(*models.User)
	return user
}

// Affordances computes the create/edit/delete visibility flags for one
// resource family. Missing profile means every flag is false.
type Affordances struct {
	CanCreate bool `json:"canCreate"`
	CanEdit   bool `json:"canEdit"`
	CanDelete bool `json:"canDelete"`
}

func AffordancesFor(user *models.User, entity string) Affordances {
	if user == nil {
		return Affordances{}
	}
	return Affordances{
		CanCreate: user.HasPermission(entity + ".create"),
		CanEdit:   user.HasPermission(entity + ".edit"),
		CanDelete: user.HasPermission(entity + ".delete"),
	}
}
