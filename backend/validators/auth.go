package validators

import (
	"regexp"
	"strings"

	"coursehub/backend/utils"

	"github.com/gofiber/fiber/v2"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SanitizeInput trims whitespace and strips angle brackets.
func SanitizeInput(input string) string {
	return strings.NewReplacer("<", "", ">", "").Replace(strings.TrimSpace(input))
}

type SignupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup validates the signup body and hands the sanitized input to the
// controller via locals.
func Signup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := new(SignupInput)
		if err := c.BodyParser(input); err != nil {
			return utils.BadRequest(c, "Cannot parse JSON")
		}

		input.Name = SanitizeInput(input.Name)
		input.Email = strings.ToLower(SanitizeInput(input.Email))
		input.Password = SanitizeInput(input.Password)

		errors := make(map[string]string)
		if len(input.Name) < 2 || len(input.Name) > 100 {
			errors["name"] = "Name must be between 2 and 100 characters"
		}
		if !emailRegex.MatchString(input.Email) {
			errors["email"] = "Please provide a valid email address"
		}
		if len(input.Password) < 6 || len(input.Password) > 128 {
			errors["password"] = "Password must be between 6 and 128 characters"
		}
		if len(errors) > 0 {
			return utils.ValidationError(c, errors)
		}

		c.Locals("signupInput", input)
		return c.Next()
	}
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login validates the login body.
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := new(LoginInput)
		if err := c.BodyParser(input); err != nil {
			return utils.BadRequest(c, "Cannot parse JSON")
		}

		input.Email = strings.ToLower(SanitizeInput(input.Email))
		input.Password = SanitizeInput(input.Password)

		errors := make(map[string]string)
		if !emailRegex.MatchString(input.Email) {
			errors["email"] = "Please provide a valid email address"
		}
		if len(input.Password) < 6 {
			errors["password"] = "Please provide a valid password"
		}
		if len(errors) > 0 {
			return utils.ValidationError(c, errors)
		}

		c.Locals("loginInput", input)
		return c.Next()
	}
}
