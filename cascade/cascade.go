// Package cascade resolves the course → unit → lesson selection chain used by
// the filtered content screens. Option lists are plain cached reads keyed by
// the parent id, so revisiting a parent inside the stale window costs no
// network call.
package cascade

import (
	"context"

	"lingadmin/models"
	"lingadmin/resources"
)

// Selection is a requested or resolved position in the chain.
type Selection struct {
	CourseID string `json:"courseId"`
	UnitID   string `json:"unitId"`
	LessonID string `json:"lessonId"`
}

// Resolution is what a content screen needs to render its selectors: the
// option list per level, the resolved selection, and which levels are
// disabled because no valid choice exists above them.
type Resolution struct {
	Courses []models.Course `json:"courses"`
	Units   []models.Unit   `json:"units"`
	Lessons []models.Lesson `json:"lessons"`

	Selection Selection `json:"selection"`

	UnitDisabled   bool `json:"unitDisabled"`
	LessonDisabled bool `json:"lessonDisabled"`
}

type Resolver struct {
	courses *resources.CourseService
	units   *resources.UnitService
	lessons *resources.LessonService
}

func NewResolver(reg *resources.Registry) *Resolver {
	return &Resolver{courses: reg.Courses, units: reg.Units, lessons: reg.Lessons}
}

// Resolve validates the requested selection top-down. A selection that does
// not belong under its resolved parent is cleared together with everything
// below it, and an unset level falls back to the first available option. A
// level whose option list cannot have a valid entry is disabled so an
// orphaned reference can never be submitted.
func (r *Resolver) Resolve(ctx context.Context, req Selection) (Resolution, error) {
	courses, err := r.courses.List(ctx, models.ListQuery{Page: 1, PageSize: 100})
	if err != nil {
		return Resolution{}, err
	}

	res := Resolution{Courses: courses.Data}

	courseID := req.CourseID
	if courseID != "" && !hasCourse(courses.Data, courseID) {
		// stale or foreign course id: reset this level and all descendants
		courseID = ""
		req.UnitID, req.LessonID = "", ""
	}
	if courseID == "" && len(courses.Data) > 0 {
		courseID = courses.Data[0].ID
	}
	if courseID == "" {
		res.UnitDisabled = true
		res.LessonDisabled = true
		return res, nil
	}
	if courseID != req.CourseID {
		// parent changed: descendant selections no longer apply
		req.UnitID, req.LessonID = "", ""
	}
	res.Selection.CourseID = courseID

	units, err := r.units.ListByCourse(ctx, courseID)
	if err != nil {
		return Resolution{}, err
	}
	res.Units = units.Data
	if len(units.Data) == 0 {
		res.UnitDisabled = true
	}

	unitID := req.UnitID
	if unitID != "" && !hasUnit(units.Data, unitID) {
		unitID = ""
		req.LessonID = ""
	}
	if unitID == "" && len(units.Data) > 0 {
		unitID = units.Data[0].ID
	}
	if unitID == "" {
		res.LessonDisabled = true
		return res, nil
	}
	if unitID != req.UnitID {
		req.LessonID = ""
	}
	res.Selection.UnitID = unitID

	lessons, err := r.lessons.ListByUnit(ctx, unitID)
	if err != nil {
		return Resolution{}, err
	}
	res.Lessons = lessons.Data
	if len(lessons.Data) == 0 {
		res.LessonDisabled = true
	}

	lessonID := req.LessonID
	if lessonID != "" && !hasLesson(lessons.Data, lessonID) {
		lessonID = ""
	}
	if lessonID == "" && len(lessons.Data) > 0 {
		lessonID = lessons.Data[0].ID
	}
	res.Selection.LessonID = lessonID

	return res, nil
}

func hasCourse(list []models.Course, id string) bool {
	for _, c := range list {
		if c.ID == id {
			return true
		}
	}
	return false
}

func hasUnit(list []models.Unit, id string) bool {
	for _, u := range list {
		if u.ID == id {
			return true
		}
	}
	return false
}

func hasLesson(list []models.Lesson, id string) bool {
	for _, l := range list {
		if l.ID == id {
			return true
		}
	}
	return false
}
