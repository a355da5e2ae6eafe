// file: internals/features/escuela/alumnos/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"horarios_backend/internals/constants"
	"horarios_backend/internals/features/escuela/alumnos/controller"
	"horarios_backend/internals/middlewares/auth"
)

// AlumnosAdminRoutes registra el CRUD de alumnos para ADMIN.
func AlumnosAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewAlumnoController(db, v)

	g := admin.Group("/alumnos")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}

// AlumnosLecturaRoutes expone la lista de alumnos en sólo lectura para
// admin y checador: el checador necesita el roster del grupo para pasar
// lista sin entrar a las rutas de administración.
func AlumnosLecturaRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewAlumnoController(db, v)

	g := api.Group("/alumnos", auth.OnlyRoles(
		constants.RolErrorAdminChecador("la lista de alumnos"),
		constants.AdminYChecador...,
	))
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
}
