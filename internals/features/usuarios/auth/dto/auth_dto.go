// file: internals/features/usuarios/auth/dto/auth_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"horarios_backend/internals/constants"
	m "horarios_backend/internals/features/usuarios/auth/model"
)

/* =======================================================
   Request DTOs
   ======================================================= */

type RegisterRequest struct {
	UsuarioNombre   string `json:"usuario_nombre" validate:"required,min=3,max=120"`
	UsuarioEmail    string `json:"usuario_email" validate:"required,email"`
	UsuarioPassword string `json:"usuario_password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	UsuarioEmail    string `json:"usuario_email" validate:"required,email"`
	UsuarioPassword string `json:"usuario_password" validate:"required"`
}

/* =======================================================
   Response DTOs
   ======================================================= */

type UsuarioResponse struct {
	UsuarioID     uuid.UUID     `json:"usuario_id"`
	UsuarioNombre string        `json:"usuario_nombre"`
	UsuarioEmail  string        `json:"usuario_email"`
	UsuarioRol    constants.Rol `json:"usuario_rol"`
	UsuarioActivo bool          `json:"usuario_activo"`
	CreatedAt     time.Time     `json:"usuario_created_at"`
}

func NewUsuarioResponse(src *m.UsuarioModel) UsuarioResponse {
	return UsuarioResponse{
		UsuarioID:     src.UsuarioID,
		UsuarioNombre: src.UsuarioNombre,
		UsuarioEmail:  src.UsuarioEmail,
		UsuarioRol:    src.UsuarioRol,
		UsuarioActivo: src.UsuarioActivo,
		CreatedAt:     src.UsuarioCreatedAt,
	}
}

type LoginResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	Usuario      UsuarioResponse `json:"usuario"`
}
