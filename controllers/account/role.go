package controllers

import (
	"lingadmin/middleware"
	"lingadmin/models"
	"lingadmin/resources"

	"github.com/gofiber/fiber/v2"
)

type RoleController struct {
	roles *resources.RoleService
}

func NewRoleController(reg *resources.Registry) *RoleController {
	return &RoleController{roles: reg.Roles}
}

func (ctl *RoleController) List(c *fiber.Ctx) error {
	roles, err := ctl.roles.List(middleware.RequestContext(c))
	if err != nil {
		return middleware.APIErrorResponse(c, err)
	}

	user := middleware.SessionUser(c)
	affordances := middleware.Affordances{}
	if user != nil {
		affordances = middleware.Affordances{
			CanCreate: user.HasPermission("role.create"),
			CanEdit:   user.HasPermission("role-name.update"),
			CanDelete: user.HasPermission("role.delete"),
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Roles fetched successfully!", fiber.Map{
		"data":        roles,
		"affordances": affordances,
	})
}

func (ctl *RoleController) Options(c *fiber.Ctx) error {
	options, err := ctl.roles.Options(middleware.RequestContext(c))
	if err != nil {
		return middleware.APIErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Role options fetched successfully!", options)
}

func (ctl *RoleController) Create(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRole").(*models.CreateRoleInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	role, err := ctl.roles.Create(middleware.RequestContext(c), *reqData)
	if err != nil {
		return middleware.APIErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Role created successfully!", role)
}

// Rename refuses to touch the protected Admin role.
func (ctl *RoleController) Rename(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRoleRename").(*models.RenameRoleInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	ctx := middleware.RequestContext(c)
	if protected, err := ctl.isProtected(c, c.Params("id")); err != nil {
		return middleware.APIErrorResponse(c, err)
	} else if protected {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "The Admin role cannot be modified!", nil)
	}

	role, err := ctl.roles.Rename(ctx, c.Params("id"), *reqData)
	if err != nil {
		return middleware.APIErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Role renamed successfully!", role)
}

// Delete refuses to touch the protected Admin role.
func (ctl *RoleController) Delete(c *fiber.Ctx) error {
	if protected, err := ctl.isProtected(c, c.Params("id")); err != nil {
		return middleware.APIErrorResponse(c, err)
	} else if protected {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "The Admin role cannot be deleted!", nil)
	}

	if err := ctl.roles.Delete(middleware.RequestContext(c), c.Params("id")); err != nil {
		return middleware.APIErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Role deleted successfully!", nil)
}

func (ctl *RoleController) Setup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRoleSetup").([]models.RoleSetupItem)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := ctl.roles.Setup(middleware.RequestContext(c), reqData); err != nil {
		return middleware.APIErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Role permissions updated successfully!", nil)
}

func (ctl *RoleController) isProtected(c *fiber.Ctx, id string) (bool, error) {
	roles, err := ctl.roles.List(middleware.RequestContext(c))
	if err != nil {
		return false, err
	}
	for _, role := range roles {
		if role.ID == id {
			return role.Name == models.ProtectedRoleName, nil
		}
	}
	return false, nil
}
