package handlers

import (
	"shopadmin/internal/services"

	"github.com/gofiber/fiber/v2"
)

type HomeHandler struct {
	Cats *services.CategoryService
}

// Home is the landing page and the redirect target for users without a
// staff role. It lists the catalog's categories read-only.
func (h *HomeHandler) Home(c *fiber.Ctx) error {
	cats, err := h.Cats.List()
	if err != nil {
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load categories"})
	}
	return render(c, "home", fiber.Map{"Categories": cats})
}
