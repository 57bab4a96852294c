package controllers

import (
	"errors"
	"math"
	"strconv"
	"time"

	"coursehub/backend/models"
	"coursehub/backend/store"
	"coursehub/backend/utils"
	"coursehub/backend/validators"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

type EnrollmentController struct {
	Enrollments store.EnrollmentStore
	Courses     store.CourseStore
	Users       store.UserStore
}

func NewEnrollmentController(enrollments store.EnrollmentStore, courses store.CourseStore, users store.UserStore) *EnrollmentController {
	return &EnrollmentController{Enrollments: enrollments, Courses: courses, Users: users}
}

func enrollmentID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, errors.New("invalid enrollment id")
	}
	return uint(id), nil
}

func paginationMeta(total int64, page, limit int) fiber.Map {
	return fiber.Map{
		"total": total,
		"page":  page,
		"pages": int(math.Ceil(float64(total) / float64(limit))),
	}
}

// Enroll registers the caller in a course, snapshotting the course's current
// lessons into the completion map.
func (ec *EnrollmentController) Enroll(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	input := c.Locals("enrollInput").(*validators.EnrollInput)

	course, err := ec.Courses.FindByID(input.CourseID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Failed to enroll in course")
	}

	progress := make(map[string]bool, len(course.Lessons))
	for _, lesson := range course.Lessons {
		progress[strconv.FormatUint(uint64(lesson.ID), 10)] = false
	}

	enrollment := &models.Enrollment{
		UserID:     userID,
		CourseID:   course.ID,
		Progress:   datatypes.NewJSONType(progress),
		EnrolledAt: time.Now(),
	}

	if err := ec.Enrollments.Create(enrollment); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return utils.Conflict(c, "Already enrolled in this course")
		}
		return utils.InternalServerError(c, "Failed to enroll in course")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":    true,
		"enrollment": enrollment,
	})
}

// MyEnrollments lists the caller's enrollments, newest first.
func (ec *EnrollmentController) MyEnrollments(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	page := c.Locals("page").(int)
	limit := c.Locals("limit").(int)

	enrollments, total, err := ec.Enrollments.ListByUser(userID, page, limit)
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch enrollments")
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"enrollments": enrollments,
		"pagination":  paginationMeta(total, page, limit),
	})
}

// GetEnrollment returns one enrollment, visible to its owner and to admins.
func (ec *EnrollmentController) GetEnrollment(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	id, err := enrollmentID(c)
	if err != nil {
		return utils.BadRequest(c, "Invalid enrollment ID")
	}

	enrollment, err := ec.Enrollments.FindByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.NotFound(c, "Enrollment not found")
		}
		return utils.InternalServerError(c, "Failed to fetch enrollment")
	}

	if enrollment.UserID != userID {
		user, err := ec.Users.FindByID(userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return utils.Forbidden(c, "Not authorized")
			}
			return utils.InternalServerError(c, "Failed to fetch enrollment")
		}
		if user.Role != models.RoleAdmin {
			return utils.Forbidden(c, "Not authorized")
		}
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"enrollment": enrollment,
	})
}

// UpdateProgress toggles one lesson's completion and returns the enrollment
// with its recomputed percentage.
func (ec *EnrollmentController) UpdateProgress(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	input := c.Locals("progressInput").(*validators.ProgressInput)

	id, err := enrollmentID(c)
	if err != nil {
		return utils.BadRequest(c, "Invalid enrollment ID")
	}

	enrollment, err := ec.Enrollments.SetLessonCompletion(id, userID, input.LessonID, *input.Completed)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return utils.NotFound(c, "Enrollment not found")
		case errors.Is(err, store.ErrNotOwner):
			return utils.Forbidden(c, "Not authorized")
		default:
			return utils.InternalServerError(c, "Failed to update progress")
		}
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"enrollment": enrollment,
	})
}

// Unenroll deletes the caller's enrollment.
func (ec *EnrollmentController) Unenroll(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	id, err := enrollmentID(c)
	if err != nil {
		return utils.BadRequest(c, "Invalid enrollment ID")
	}

	if err := ec.Enrollments.Delete(id, userID); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return utils.NotFound(c, "Enrollment not found")
		case errors.Is(err, store.ErrNotOwner):
			return utils.Forbidden(c, "Not authorized")
		default:
			return utils.InternalServerError(c, "Failed to unenroll")
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Unenrolled successfully",
	})
}

// CourseEnrollments lists all enrollments for one course. Admin only.
func (ec *EnrollmentController) CourseEnrollments(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("courseId")
	if err != nil || courseID <= 0 {
		return utils.BadRequest(c, "Invalid course ID")
	}
	page := c.Locals("page").(int)
	limit := c.Locals("limit").(int)

	enrollments, total, err := ec.Enrollments.ListByCourse(uint(courseID), page, limit)
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch enrollments")
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"enrollments": enrollments,
		"pagination":  paginationMeta(total, page, limit),
	})
}

// Stats returns aggregate enrollment statistics. Admin only.
func (ec *EnrollmentController) Stats(c *fiber.Ctx) error {
	stats, err := ec.Enrollments.Stats()
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch statistics")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"stats":   stats,
	})
}
