package accountValidator

import (
	"strings"

	"lingadmin/middleware"
	"lingadmin/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func CreateAccount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.CreateAccountInput)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if err := validate.Var(reqData.Email, "required,email"); err != nil {
			errors["email"] = "A valid email is required!"
		}
		if len(reqData.Password) < 8 {
			errors["password"] = "Password must be at least 8 characters long!"
		}
		if strings.TrimSpace(reqData.FullName) == "" {
			errors["fullName"] = "Full name is required!"
		}
		if strings.TrimSpace(reqData.RoleID) == "" {
			errors["roleId"] = "Role is required!"
		}
		if err := validate.Var(reqData.AvatarImage, "omitempty,url"); err != nil {
			errors["avatarImage"] = "Avatar image must be a valid URL!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAccount", reqData)
		return c.Next()
	}
}

// UpdateAccount: every field optional, password only checked when supplied.
func UpdateAccount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.UpdateAccountInput)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if err := validate.Var(reqData.Email, "omitempty,email"); err != nil {
			errors["email"] = "Email must be valid!"
		}
		if reqData.Password != "" && len(reqData.Password) < 8 {
			errors["password"] = "Password must be at least 8 characters long!"
		}
		if err := validate.Var(reqData.AvatarImage, "omitempty,url"); err != nil {
			errors["avatarImage"] = "Avatar image must be a valid URL!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAccountUpdate", reqData)
		return c.Next()
	}
}
