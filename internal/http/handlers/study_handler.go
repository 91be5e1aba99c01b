package handlers

import (
	applog "royalstudy/internal/log"
	"royalstudy/internal/repos"

	"github.com/gofiber/fiber/v2"
)

type StudyHandler struct {
	Materials *repos.StudyMaterialRepo
	Lookups   *repos.LookupRepo
}

// Products lists non-book study supplies (past-paper packs, stationery).
func (h *StudyHandler) Products(c *fiber.Ctx) error {
	products, err := h.Lookups.Products()
	if err != nil {
		applog.Error(c, "products.load.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load products. Please retry."})
	}
	types, err := h.Lookups.ProductTypes()
	if err != nil {
		applog.Error(c, "products.types.fail", err, nil)
		types = nil
	}
	names := make(map[string]string, len(types))
	for _, t := range types {
		names[t.ID] = t.Name
	}
	return render(c, "products", fiber.Map{"Products": products, "TypeNames": names})
}

func (h *StudyHandler) StudyTips(c *fiber.Ctx) error {
	tips, err := h.Materials.ByKind("tip")
	if err != nil {
		applog.Error(c, "studytips.load.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load study tips. Please retry."})
	}
	return render(c, "study_tips", fiber.Map{"Tips": tips})
}

func (h *StudyHandler) SuccessGuide(c *fiber.Ctx) error {
	sections, err := h.Materials.ByKind("guide")
	if err != nil {
		applog.Error(c, "successguide.load.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load the guide. Please retry."})
	}
	return render(c, "success_guide", fiber.Map{"Sections": sections})
}
