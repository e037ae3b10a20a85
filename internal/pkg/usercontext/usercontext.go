package usercontext

import "github.com/gofiber/fiber/v2"

// UserContext represents the verified user for a request. The UserID is
// the identity provider's subject (a UUID string), not a local row id.
type UserContext struct {
	UserID     string  `json:"user_id"`
	Email      *string `json:"email"`
	IsLoggedIn bool    `json:"is_logged_in"`
}

// Locals key under which the middleware stores the context.
const Key = "USER_CONTEXT"

// GetUserContext retrieves the user context from fiber context.
// Returns a default anonymous context if none is set.
func GetUserContext(c *fiber.Ctx) UserContext {
	if ctx := c.Locals(Key); ctx != nil {
		if uc, ok := ctx.(UserContext); ok {
			return uc
		}
	}
	return UserContext{IsLoggedIn: false}
}

// IsLoggedIn checks if the current user is logged in
func IsLoggedIn(c *fiber.Ctx) bool {
	return GetUserContext(c).IsLoggedIn
}

// GetUserID returns the current user's ID, or empty string if not logged in
func GetUserID(c *fiber.Ctx) string {
	return GetUserContext(c).UserID
}
