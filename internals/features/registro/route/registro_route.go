// file: internals/features/registro/route/registro_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"horarios_backend/internals/constants"
	alumnosvc "horarios_backend/internals/features/escuela/alumnos/service"
	horariosvc "horarios_backend/internals/features/escuela/horarios/service"
	"horarios_backend/internals/features/registro/controller"
	"horarios_backend/internals/features/registro/service"
	"horarios_backend/internals/middlewares/auth"
)

// RegistroRoutes monta los endpoints de asistencias y actividades.
// En las escrituras el chequeo fino (jefe de grupo, etc.) lo hace el
// resolver por request; las lecturas son de personal (admin, checador,
// maestro): un alumno registra su sesión pero no navega el histórico.
func RegistroRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	permisos := service.NewPermisos(
		horariosvc.NewDirectorio(db),
		alumnosvc.NewJefaturas(db),
	)
	registros := service.NewRegistros(db)

	asistencias := controller.NewAsistenciaController(db, v, permisos, registros)
	actividades := controller.NewActividadController(db, v, permisos, registros)

	soloPersonal := auth.OnlyRoles(
		constants.RolErrorPersonal("el histórico de registros"),
		constants.Personal...,
	)

	g := api.Group("/registro")
	g.Post("/asistencias", asistencias.Upsert)
	g.Get("/asistencias", soloPersonal, asistencias.List)
	g.Post("/actividades", actividades.Upsert)
	g.Get("/actividades", soloPersonal, actividades.List)
}
