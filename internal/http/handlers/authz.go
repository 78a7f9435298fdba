package handlers

import (
	applog "shopadmin/internal/log"
	"shopadmin/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RequireStaff gates the admin screens. Anonymous requests bounce to the
// login page; authenticated users without an ADMIN or STAFF role bounce
// home. Both carry a flash message, and neither reaches the handler.
func RequireStaff(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			setFlash(c, "Please login to access this page.")
			return c.Redirect("/login")
		}
		u, err := auth.CurrentUser(sid)
		if err != nil || u == nil {
			setFlash(c, "Please login to access this page.")
			return c.Redirect("/login")
		}
		if !u.CanManageCatalog() {
			applog.Security(c, "access.denied.staff", map[string]any{"user_id": u.ID, "role": u.Role})
			setFlash(c, "You do not have permission to access this page.")
			return c.Redirect("/")
		}
		c.Locals("user", u)
		return c.Next()
	}
}

// RequireUser enforces that a user is logged in; otherwise redirect to login.
func RequireUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			setFlash(c, "Please login to access this page.")
			return c.Redirect("/login")
		}
		u, err := auth.CurrentUser(sid)
		if err != nil || u == nil {
			setFlash(c, "Please login to access this page.")
			return c.Redirect("/login")
		}
		c.Locals("user", u)
		return c.Next()
	}
}
