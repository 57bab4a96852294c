package controllers

import (
	"errors"
	"math"

	"coursehub/backend/store"
	"coursehub/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// CoursesController serves the read-only catalog. Course authoring is
// outside this service; enrollment only needs to resolve references.
type CoursesController struct {
	Courses store.CourseStore
}

func NewCoursesController(courses store.CourseStore) *CoursesController {
	return &CoursesController{Courses: courses}
}

func (cc *CoursesController) ListCourses(c *fiber.Ctx) error {
	page := c.Locals("page").(int)
	limit := c.Locals("limit").(int)

	courses, total, err := cc.Courses.List(page, limit)
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch courses")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"courses": courses,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"pages": int(math.Ceil(float64(total) / float64(limit))),
		},
	})
}

func (cc *CoursesController) GetCourse(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.BadRequest(c, "Invalid course ID")
	}

	course, err := cc.Courses.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Failed to fetch course")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"course":  course,
	})
}
