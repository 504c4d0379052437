package controllers

import (
	"time"

	"lingadmin/middleware"
	"lingadmin/models"
	"lingadmin/resources"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

type DashboardController struct {
	reg *resources.Registry
}

func NewDashboardController(reg *resources.Registry) *DashboardController {
	return &DashboardController{reg: reg}
}

// Summary aggregates per-entity totals through the cached hooks plus a simple
// account-activity breakdown. Unfiltered admin lists report global totals in
// their pagination envelope.
func (ctl *DashboardController) Summary(c *fiber.Ctx) error {
	ctx := middleware.RequestContext(c)

	courses, err := ctl.reg.Courses.List(ctx, models.ListQuery{Page: 1, PageSize: 1})
	if err != nil {
		return middleware.APIErrorResponse(c, err)
	}
	units, err := ctl.reg.Units.ListByCourse(ctx, "")
	if err != nil {
		return middleware.APIErrorResponse(c, err)
	}
	lessons, err := ctl.reg.Lessons.ListByUnit(ctx, "")
	if err != nil {
		return middleware.APIErrorResponse(c, err)
	}
	questions, err := ctl.reg.Questions.ListByLesson(ctx, "")
	if err != nil {
		return middleware.APIErrorResponse(c, err)
	}
	theories, err := ctl.reg.Theories.ListByUnit(ctx, "")
	if err != nil {
		return middleware.APIErrorResponse(c, err)
	}
	accounts, err := ctl.reg.Accounts.List(ctx, models.ListQuery{Page: 1, PageSize: 100})
	if err != nil {
		return middleware.APIErrorResponse(c, err)
	}

	// the activity breakdown needs every account, not just the first page;
	// repeat visits are served from the cache
	allAccounts := accounts.Data
	for page := 2; page <= accounts.Pagination.TotalPages; page++ {
		next, err := ctl.reg.Accounts.List(ctx, models.ListQuery{Page: page, PageSize: 100})
		if err != nil {
			return middleware.APIErrorResponse(c, err)
		}
		allAccounts = append(allAccounts, next.Data...)
	}

	activeToday, activeThisWeek := 0, 0
	dayStart := now.BeginningOfDay()
	weekStart := now.BeginningOfWeek()
	for _, account := range allAccounts {
		if account.LastActiveAt == "" {
			continue
		}
		lastActive, err := time.Parse(time.RFC3339, account.LastActiveAt)
		if err != nil {
			continue
		}
		if !lastActive.Before(dayStart) {
			activeToday++
		}
		if !lastActive.Before(weekStart) {
			activeThisWeek++
		}
	}

	totalContent := courses.Pagination.TotalRecords +
		units.Pagination.TotalRecords +
		lessons.Pagination.TotalRecords +
		questions.Pagination.TotalRecords +
		theories.Pagination.TotalRecords

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"courses":        courses.Pagination.TotalRecords,
		"units":          units.Pagination.TotalRecords,
		"lessons":        lessons.Pagination.TotalRecords,
		"questions":      questions.Pagination.TotalRecords,
		"theories":       theories.Pagination.TotalRecords,
		"totalContent":   totalContent,
		"accounts":       accounts.Pagination.TotalRecords,
		"activeToday":    activeToday,
		"activeThisWeek": activeThisWeek,
	})
}
