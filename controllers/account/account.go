package controllers

import (
	"lingadmin/middleware"
	"lingadmin/models"
	"lingadmin/resources"

	"github.com/gofiber/fiber/v2"
)

type AccountController struct {
	accounts *resources.AccountService
}

func NewAccountController(reg *resources.Registry) *AccountController {
	return &AccountController{accounts: reg.Accounts}
}

// accountAffordances: the account family uses "account.update" rather than
// ".edit", so the generic helper does not apply.
func accountAffordances(user *models.User) middleware.Affordances {
	if user == nil {
		return middleware.Affordances{}
	}
	return middleware.Affordances{
		CanCreate: user.HasPermission("account.create"),
		CanEdit:   user.HasPermission("account.update"),
		CanDelete: user.HasPermission("account.delete"),
	}
}

func (ctl *AccountController) List(c *fiber.Ctx) error {
	q, ok := c.Locals("validatedList").(models.ListQuery)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	result, err := ctl.accounts.List(middleware.RequestContext(c), q)
	if err != nil {
		return middleware.APIErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Accounts fetched successfully!", fiber.Map{
		"data":        result.Data,
		"pagination":  result.Pagination,
		"affordances": accountAffordances(middleware.SessionUser(c)),
	})
}

func (ctl *AccountController) Detail(c *fiber.Ctx) error {
	account, err := ctl.accounts.Get(middleware.RequestContext(c), c.Params("id"))
	if err != nil {
		return middleware.APIErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Account fetched successfully!", account)
}

func (ctl *AccountController) Create(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAccount").(*models.CreateAccountInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	account, err := ctl.accounts.Create(middleware.RequestContext(c), *reqData)
	if err != nil {
		return middleware.APIErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Account created successfully!", account)
}

func (ctl *AccountController) Update(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAccountUpdate").(*models.UpdateAccountInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	account, err := ctl.accounts.Update(middleware.RequestContext(c), c.Params("id"), *reqData)
	if err != nil {
		return middleware.APIErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Account updated successfully!", account)
}

func (ctl *AccountController) Delete(c *fiber.Ctx) error {
	if err := ctl.accounts.Delete(middleware.RequestContext(c), c.Params("id")); err != nil {
		return middleware.APIErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Account deleted successfully!", nil)
}
