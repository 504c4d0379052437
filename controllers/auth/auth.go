package controllers

import (
	"lingadmin/middleware"
	"lingadmin/models"
	"lingadmin/resources"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	auth *resources.AuthService
}

func NewAuthController(reg *resources.Registry) *AuthController {
	return &AuthController{auth: reg.Auth}
}

// Login proxies the credentials to the platform, then wraps the returned
// access token into a console session token.
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*models.LoginInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	result, err := ctl.auth.Login(c.UserContext(), *reqData)
	if err != nil {
		return middleware.APIErrorResponse(c, err)
	}

	token, err := middleware.GenerateSessionToken(result.User.ID, result.User.Email, result.User.Name, result.AccessToken)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"token": token,
		"user":  result.User,
	})
}

func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	if err := ctl.auth.Logout(middleware.RequestContext(c)); err != nil {
		return middleware.APIErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out successfully!", nil)
}

// Profile returns the session user with their permission set, served from the
// per-user cache.
func (ctl *AuthController) Profile(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)
	user, err := ctl.auth.Profile(middleware.RequestContext(c), userID)
	if err != nil {
		return middleware.APIErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", user)
}

// Me passes the raw /auth/me record through, uncached.
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	var me map[string]interface{}
	if err := ctl.auth.Me(middleware.RequestContext(c), &me); err != nil {
		return middleware.APIErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session fetched successfully!", me)
}
