// file: internals/features/usuarios/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helpers "horarios_backend/internals/helpers"

	"horarios_backend/internals/features/usuarios/auth/dto"
	m "horarios_backend/internals/features/usuarios/auth/model"
	"horarios_backend/internals/features/usuarios/auth/service"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB, v *validator.Validate) *AuthController {
	return &AuthController{DB: db, Validate: v}
}

// POST /api/auth/register
// Las cuentas públicas nacen con rol alumno; los demás roles los asigna
// un admin directamente en la tabla usuarios.
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.UsuarioEmail = strings.ToLower(strings.TrimSpace(req.UsuarioEmail))
	if err := ac.Validate.Struct(&req); err != nil {
		return helpers.JsonValidationError(c, helpers.ErroresDeCampos(err))
	}

	hash, err := service.HashPassword(req.UsuarioPassword)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo procesar la contraseña")
	}

	usuario := m.UsuarioModel{
		UsuarioNombre:   strings.TrimSpace(req.UsuarioNombre),
		UsuarioEmail:    req.UsuarioEmail,
		UsuarioPassword: hash,
		UsuarioRol:      service.RolPorDefecto(),
		UsuarioActivo:   true,
	}
	if err := ac.DB.WithContext(c.UserContext()).Create(&usuario).Error; err != nil {
		if helpers.IsUniqueViolation(err) {
			return helpers.JsonError(c, fiber.StatusConflict, "El email ya está registrado")
		}
		log.Printf("[Auth.Register] DB error: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo crear el usuario")
	}

	return helpers.JsonCreated(c, "Usuario registrado", dto.NewUsuarioResponse(&usuario))
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.UsuarioEmail = strings.ToLower(strings.TrimSpace(req.UsuarioEmail))
	if err := ac.Validate.Struct(&req); err != nil {
		return helpers.JsonValidationError(c, helpers.ErroresDeCampos(err))
	}

	var usuario m.UsuarioModel
	if err := ac.DB.WithContext(c.UserContext()).
		Where("usuario_email = ?", req.UsuarioEmail).
		First(&usuario).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// mismo mensaje que password incorrecto, no filtrar existencia
			return helpers.JsonError(c, fiber.StatusUnauthorized, "Credenciales inválidas")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error al consultar el usuario")
	}
	if !usuario.UsuarioActivo {
		return helpers.JsonError(c, fiber.StatusForbidden, "Cuenta desactivada")
	}
	if !service.CheckPassword(usuario.UsuarioPassword, req.UsuarioPassword) {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Credenciales inválidas")
	}

	now := time.Now().UTC()
	access, err := service.GenerarAccessToken(&usuario, now)
	if err != nil {
		log.Printf("[Auth.Login] access token: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo emitir el token")
	}
	refresh, err := service.GenerarRefreshToken(&usuario, now)
	if err != nil {
		log.Printf("[Auth.Login] refresh token: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo emitir el token")
	}

	return helpers.JsonOK(c, "Login exitoso", dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		Usuario:      dto.NewUsuarioResponse(&usuario),
	})
}

// POST /api/auth/refresh-token
func (ac *AuthController) RefreshToken(c *fiber.Ctx) error {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&body); err != nil || strings.TrimSpace(body.RefreshToken) == "" {
		// fallback a cookie
		body.RefreshToken = strings.TrimSpace(c.Cookies("refresh_token"))
	}
	if body.RefreshToken == "" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token faltante")
	}

	userID, err := service.ValidarRefreshToken(body.RefreshToken)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token inválido")
	}

	var usuario m.UsuarioModel
	if err := ac.DB.WithContext(c.UserContext()).
		Where("usuario_id = ?", userID).
		First(&usuario).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Usuario no encontrado")
	}
	if !usuario.UsuarioActivo {
		return helpers.JsonError(c, fiber.StatusForbidden, "Cuenta desactivada")
	}

	now := time.Now().UTC()
	access, err := service.GenerarAccessToken(&usuario, now)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo emitir el token")
	}
	refresh, err := service.GenerarRefreshToken(&usuario, now)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo emitir el token")
	}

	return helpers.JsonOK(c, "Token renovado", dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		Usuario:      dto.NewUsuarioResponse(&usuario),
	})
}

// GET /api/auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	idStr, _ := c.Locals("user_id").(string)
	userID, err := uuid.Parse(idStr)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Sesión inválida")
	}

	var usuario m.UsuarioModel
	if err := ac.DB.WithContext(c.UserContext()).
		Where("usuario_id = ?", userID).
		First(&usuario).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Usuario no encontrado")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error al consultar el usuario")
	}

	return helpers.JsonOK(c, "", dto.NewUsuarioResponse(&usuario))
}
