// file: internals/features/usuarios/auth/route/auth_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"horarios_backend/internals/features/usuarios/auth/controller"
	"horarios_backend/internals/middlewares"
	authmw "horarios_backend/internals/middlewares/auth"
)

// AuthRoutes monta las rutas públicas de auth y el /me autenticado.
func AuthRoutes(app *fiber.App, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewAuthController(db, v)

	g := app.Group("/api/auth")
	g.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	g.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	g.Post("/refresh-token", ctl.RefreshToken)

	g.Get("/me", authmw.AuthMiddleware(db), ctl.Me)
}
