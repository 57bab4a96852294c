package controllers

import (
	"errors"
	"time"

	"coursehub/backend/config"
	"coursehub/backend/middleware"
	"coursehub/backend/models"
	"coursehub/backend/store"
	"coursehub/backend/utils"
	"coursehub/backend/validators"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	Users store.UserStore
	Cfg   *config.Config
}

func NewAuthController(users store.UserStore, cfg *config.Config) *AuthController {
	return &AuthController{Users: users, Cfg: cfg}
}

func userSummary(user *models.User) fiber.Map {
	return fiber.Map{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	}
}

func (ac *AuthController) setAuthCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   ac.Cfg.JWTExpiryHours * 3600,
		HTTPOnly: true,
		Secure:   ac.Cfg.SecureCookies,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// Signup creates a new account and signs the caller in.
func (ac *AuthController) Signup(c *fiber.Ctx) error {
	input := c.Locals("signupInput").(*validators.SignupInput)

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return utils.InternalServerError(c, "Signup failed. Please try again later.")
	}

	user := &models.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         models.RoleUser,
	}

	if err := ac.Users.Create(user); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return utils.Conflict(c, "User with that email already exists")
		}
		return utils.InternalServerError(c, "Signup failed. Please try again later.")
	}

	token, err := utils.GenerateToken(user.ID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	ac.setAuthCookie(c, token)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user":    userSummary(user),
	})
}

// Login authenticates by email and password. Unknown email and wrong
// password produce the same reply.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	input := c.Locals("loginInput").(*validators.LoginInput)

	user, err := ac.Users.FindByEmail(input.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.Unauthorized(c, "Invalid credentials")
		}
		return utils.InternalServerError(c, "Login failed. Please try again later.")
	}

	if !utils.CheckPassword(user.PasswordHash, input.Password) {
		return utils.Unauthorized(c, "Invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	ac.setAuthCookie(c, token)

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user":    userSummary(user),
	})
}

// Logout clears the session cookie. The token itself stays valid until it
// expires; there is no server-side revocation.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   ac.Cfg.SecureCookies,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logged out successfully",
	})
}

// Me returns the current user. Returns 404 if the account was deleted after
// the token was issued.
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	user, err := ac.Users.FindByID(userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.NotFound(c, "User not found")
		}
		return utils.InternalServerError(c, "Failed to fetch user. Please try again later.")
	}

	summary := userSummary(user)
	summary["createdAt"] = user.CreatedAt

	return c.JSON(fiber.Map{
		"success": true,
		"user":    summary,
	})
}
