// file: internals/features/escuela/horarios/route/horario_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"horarios_backend/internals/features/escuela/horarios/controller"
)

// HorariosAdminRoutes registra el CRUD completo (solo ADMIN).
func HorariosAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewHorarioController(db, v)

	g := admin.Group("/horarios")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}

// HorariosUserRoutes expone la consulta para cualquier usuario autenticado.
func HorariosUserRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewHorarioController(db, v)

	g := api.Group("/horarios")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
}
