package handlers

import (
	applog "shopadmin/internal/log"
	"shopadmin/internal/services"

	"github.com/gofiber/fiber/v2"
)

type CategoryAdminHandler struct {
	Cats *services.CategoryService
}

// Page serves GET and POST /admin/categories. POSTs carry an "action"
// discriminator (create/update/delete); anything else renders the
// current listing untouched. Exactly one of Success/Err is ever set.
func (h *CategoryAdminHandler) Page(c *fiber.Ctx) error {
	action := c.FormValue("action")
	if action == "" {
		action = c.Query("action")
	}

	cmd, errMsg := services.ParseCategoryCommand(c.Method(), action, func(k string) string {
		return c.FormValue(k)
	})

	var success string
	if errMsg == "" && cmd.Kind != services.CmdNoOp {
		success, errMsg = h.Cats.Apply(cmd)
		if success != "" {
			applog.Audit(c, "admin.categories."+action, map[string]any{
				"category_id": cmd.ID, "name": cmd.Name,
			})
		} else {
			applog.Info(c, "admin.categories."+action+".rejected", map[string]any{
				"category_id": cmd.ID, "reason": errMsg,
			})
		}
	}

	cats, err := h.Cats.List()
	if err != nil {
		applog.Error(c, "admin.categories.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load categories"})
	}

	return render(c, "admin_categories", fiber.Map{
		"Success":    success,
		"Err":        errMsg,
		"Categories": cats,
	})
}
