// file: internals/features/escuela/grupos/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"horarios_backend/internals/features/escuela/grupos/controller"
)

// GruposAdminRoutes registra el CRUD de grupos para ADMIN.
func GruposAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewGrupoController(db, v)

	g := admin.Group("/grupos")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
	g.Put("/:id/jefe", ctl.AsignarJefe)
}

// GruposUserRoutes: lectura para cualquier usuario autenticado.
func GruposUserRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewGrupoController(db, v)

	g := r.Group("/grupos")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
}
