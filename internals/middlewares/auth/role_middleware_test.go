// internals/middlewares/auth/role_middleware_test.go
package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"horarios_backend/internals/constants"
)

// appConGrupo arma una mini-app con un handler que simula lo que deja
// AuthMiddleware en Locals y el chequeo de rol bajo prueba.
func appConGrupo(mensaje string, grupo []constants.Rol) *fiber.App {
	app := fiber.New()
	app.Get("/recurso",
		func(c *fiber.Ctx) error {
			if rol := c.Get("X-Rol"); rol != "" {
				c.Locals("userRole", rol)
			}
			return c.Next()
		},
		OnlyRoles(mensaje, grupo...),
		func(c *fiber.Ctx) error {
			return c.SendString("ok")
		},
	)
	return app
}

func statusConRol(t *testing.T, app *fiber.App, rol string) int {
	t.Helper()
	req := httptest.NewRequest("GET", "/recurso", nil)
	if rol != "" {
		req.Header.Set("X-Rol", rol)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestOnlyRoles_GrupoPersonal(t *testing.T) {
	app := appConGrupo(constants.RolErrorPersonal("el recurso"), constants.Personal)

	casos := []struct {
		rol    string
		status int
	}{
		{"admin", fiber.StatusOK},
		{"checador", fiber.StatusOK},
		{"maestro", fiber.StatusOK},
		{"alumno", fiber.StatusForbidden},
	}
	for _, tc := range casos {
		if got := statusConRol(t, app, tc.rol); got != tc.status {
			t.Errorf("rol %s: status = %d, se esperaba %d", tc.rol, got, tc.status)
		}
	}
}

func TestOnlyRoles_GrupoAdminYChecador(t *testing.T) {
	app := appConGrupo(constants.RolErrorAdminChecador("el recurso"), constants.AdminYChecador)

	casos := []struct {
		rol    string
		status int
	}{
		{"admin", fiber.StatusOK},
		{"checador", fiber.StatusOK},
		{"maestro", fiber.StatusForbidden},
		{"alumno", fiber.StatusForbidden},
	}
	for _, tc := range casos {
		if got := statusConRol(t, app, tc.rol); got != tc.status {
			t.Errorf("rol %s: status = %d, se esperaba %d", tc.rol, got, tc.status)
		}
	}
}

func TestOnlyRoles_SinRolNoAutoriza(t *testing.T) {
	app := appConGrupo("", constants.SoloAdmin)

	if got := statusConRol(t, app, ""); got != fiber.StatusUnauthorized {
		t.Errorf("sin rol: status = %d, se esperaba 401", got)
	}
	if got := statusConRol(t, app, "superuser"); got != fiber.StatusUnauthorized {
		t.Errorf("rol desconocido: status = %d, se esperaba 401", got)
	}
}
