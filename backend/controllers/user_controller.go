package controllers

import (
	"errors"
	"math"

	"coursehub/backend/store"
	"coursehub/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// UserController serves admin user management.
type UserController struct {
	Users store.UserStore
}

func NewUserController(users store.UserStore) *UserController {
	return &UserController{Users: users}
}

func (uc *UserController) ListUsers(c *fiber.Ctx) error {
	page := c.Locals("page").(int)
	limit := c.Locals("limit").(int)

	users, total, err := uc.Users.List(page, limit)
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch users")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"users":   users,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"pages": int(math.Ceil(float64(total) / float64(limit))),
		},
	})
}

func (uc *UserController) GetUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.BadRequest(c, "Invalid user ID")
	}

	user, err := uc.Users.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.NotFound(c, "User not found")
		}
		return utils.InternalServerError(c, "Failed to fetch user")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}

// DeleteUser removes an account. Enrollments are left behind on purpose;
// cleanup is a separate administrative concern.
func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.BadRequest(c, "Invalid user ID")
	}

	if err := uc.Users.Delete(uint(id)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.NotFound(c, "User not found")
		}
		return utils.InternalServerError(c, "Failed to delete user")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "User deleted successfully",
	})
}
