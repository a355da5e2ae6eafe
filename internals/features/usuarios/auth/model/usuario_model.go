// file: internals/features/usuarios/auth/model/usuario_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"horarios_backend/internals/constants"
)

/* =======================================================
   UsuarioModel — mapea a la tabla usuarios
   ======================================================= */

type UsuarioModel struct {
	// PK
	UsuarioID uuid.UUID `json:"usuario_id" gorm:"type:uuid;primaryKey;column:usuario_id;default:gen_random_uuid()"`

	UsuarioNombre string `json:"usuario_nombre" gorm:"type:text;not null;column:usuario_nombre"`
	UsuarioEmail  string `json:"usuario_email" gorm:"type:text;not null;uniqueIndex;column:usuario_email"`

	// hash bcrypt, nunca sale en JSON
	UsuarioPassword string `json:"-" gorm:"type:text;not null;column:usuario_password"`

	UsuarioRol    constants.Rol `json:"usuario_rol" gorm:"type:text;not null;default:'alumno';column:usuario_rol"`
	UsuarioActivo bool          `json:"usuario_activo" gorm:"type:boolean;not null;default:true;column:usuario_activo"`

	UsuarioCreatedAt time.Time      `json:"usuario_created_at" gorm:"column:usuario_created_at;not null;autoCreateTime"`
	UsuarioUpdatedAt time.Time      `json:"usuario_updated_at" gorm:"column:usuario_updated_at;not null;autoUpdateTime"`
	UsuarioDeletedAt gorm.DeletedAt `json:"usuario_deleted_at" gorm:"column:usuario_deleted_at;index"`
}

func (UsuarioModel) TableName() string {
	return "usuarios"
}
