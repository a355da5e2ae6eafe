// file: internals/route/routes.go
package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"horarios_backend/internals/constants"
	"horarios_backend/internals/middlewares/auth"

	alumnoroute "horarios_backend/internals/features/escuela/alumnos/route"
	gruporoute "horarios_backend/internals/features/escuela/grupos/route"
	horarioroute "horarios_backend/internals/features/escuela/horarios/route"
	maestroroute "horarios_backend/internals/features/escuela/maestros/route"
	materiaroute "horarios_backend/internals/features/escuela/materias/route"
	salonroute "horarios_backend/internals/features/escuela/salones/route"
	registroroute "horarios_backend/internals/features/registro/route"
	authroute "horarios_backend/internals/features/usuarios/auth/route"
)

// SetupRoutes arma todo el árbol de rutas:
//
//	/api/auth/*  → público (login, register, refresh)
//	/api/*       → requiere JWT válido
//	/api/a/*     → además requiere rol admin
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	v := validator.New()

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// rutas públicas de autenticación (con sus propios limiters)
	authroute.AuthRoutes(app, db, v)

	api := app.Group("/api", auth.AuthMiddleware(db))

	// consultas para cualquier usuario autenticado
	gruporoute.GruposUserRoutes(api, db, v)
	horarioroute.HorariosUserRoutes(api, db, v)

	// roster de alumnos para admin y checador (pase de lista)
	alumnoroute.AlumnosLecturaRoutes(api, db, v)

	// registro de sesiones: el resolver decide por request quién escribe
	registroroute.RegistroRoutes(api, db, v)

	// administración de catálogos
	admin := api.Group("/a", auth.OnlyRoles(
		constants.RolErrorAdmin("administración de catálogos"),
		constants.SoloAdmin...,
	))
	gruporoute.GruposAdminRoutes(admin, db, v)
	alumnoroute.AlumnosAdminRoutes(admin, db, v)
	maestroroute.MaestrosAdminRoutes(admin, db, v)
	materiaroute.MateriasAdminRoutes(admin, db, v)
	salonroute.SalonesAdminRoutes(admin, db, v)
	horarioroute.HorariosAdminRoutes(admin, db, v)
}
