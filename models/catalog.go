package models

// Course is the top of the content tree. Deletion is not exposed anywhere in
// the console.
type Course struct {
	ID           string `json:"_id"`
	Description  string `json:"description,omitempty"`
	DisplayOrder int    `json:"displayOrder"`
	Thumbnail    string `json:"thumbnail,omitempty"`
	Units        []Unit `json:"units,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
}

// Unit belongs to a Course; courseId is immutable after creation.
type Unit struct {
	ID           string   `json:"_id"`
	CourseID     string   `json:"courseId"`
	Title        string   `json:"title,omitempty"`
	Description  string   `json:"description,omitempty"`
	DisplayOrder int      `json:"displayOrder"`
	Thumbnail    string   `json:"thumbnail,omitempty"`
	Lessons      []Lesson `json:"lessons,omitempty"`
}

// Lesson belongs to a Unit; unitId is immutable after creation.
type Lesson struct {
	ID              string `json:"_id"`
	UnitID          string `json:"unitId"`
	Title           string `json:"title,omitempty"`
	ExperiencePoint int    `json:"experiencePoint,omitempty"`
	Objectives      string `json:"objectives,omitempty"`
	DisplayOrder    int    `json:"displayOrder"`
	Thumbnail       string `json:"thumbnail,omitempty"`
}

type CreateCourseInput struct {
	Description string `json:"description,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
}

type UpdateCourseInput struct {
	Description string `json:"description,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
}

type CreateUnitInput struct {
	CourseID    string `json:"courseId"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
}

// UpdateUnitInput deliberately has no courseId: the parent reference is never
// patched.
type UpdateUnitInput struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
}

type CreateLessonInput struct {
	UnitID          string `json:"unitId"`
	Title           string `json:"title,omitempty"`
	ExperiencePoint *int   `json:"experiencePoint,omitempty"`
	Objectives      string `json:"objectives,omitempty"`
	Thumbnail       string `json:"thumbnail,omitempty"`
}

// UpdateLessonInput deliberately has no unitId.
type UpdateLessonInput struct {
	Title           string `json:"title,omitempty"`
	ExperiencePoint *int   `json:"experiencePoint,omitempty"`
	Objectives      string `json:"objectives,omitempty"`
	Thumbnail       string `json:"thumbnail,omitempty"`
}
