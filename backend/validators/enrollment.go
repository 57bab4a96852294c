package validators

import (
	"coursehub/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type EnrollInput struct {
	CourseID uint `json:"courseId"`
}

// Enroll validates the enrollment body.
func Enroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := new(EnrollInput)
		if err := c.BodyParser(input); err != nil {
			return utils.BadRequest(c, "Cannot parse JSON")
		}
		if input.CourseID == 0 {
			return utils.BadRequest(c, "Please provide courseId")
		}

		c.Locals("enrollInput", input)
		return c.Next()
	}
}

type ProgressInput struct {
	LessonID  string `json:"lessonId"`
	Completed *bool  `json:"completed"`
}

// UpdateProgress validates the lesson-completion body. Completed is a
// pointer so an explicit false is distinguishable from a missing field.
func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := new(ProgressInput)
		if err := c.BodyParser(input); err != nil {
			return utils.BadRequest(c, "Cannot parse JSON")
		}
		if input.LessonID == "" || input.Completed == nil {
			return utils.BadRequest(c, "Please provide lessonId and completed status")
		}

		c.Locals("progressInput", input)
		return c.Next()
	}
}

// Pagination validates page/limit query parameters, applying defaults.
func Pagination() fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := c.QueryInt("page", 1)
		limit := c.QueryInt("limit", 10)

		if page < 1 || limit < 1 || limit > 100 {
			return utils.BadRequest(c, "Invalid pagination parameters")
		}

		c.Locals("page", page)
		c.Locals("limit", limit)
		return c.Next()
	}
}
