// file: internals/features/escuela/maestros/model/maestro_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MaestroModel struct {
	MaestroID uuid.UUID `json:"maestro_id" gorm:"type:uuid;primaryKey;column:maestro_id;default:gen_random_uuid()"`

	// cuenta opcional (un maestro puede existir en catálogo sin login)
	MaestroUsuarioID *uuid.UUID `json:"maestro_usuario_id,omitempty" gorm:"type:uuid;uniqueIndex;column:maestro_usuario_id"`

	MaestroNombre string `json:"maestro_nombre" gorm:"type:text;not null;column:maestro_nombre"`
	MaestroEmail  string `json:"maestro_email" gorm:"type:text;not null;uniqueIndex;column:maestro_email"`

	MaestroCreatedAt time.Time      `json:"maestro_created_at" gorm:"column:maestro_created_at;not null;autoCreateTime"`
	MaestroUpdatedAt time.Time      `json:"maestro_updated_at" gorm:"column:maestro_updated_at;not null;autoUpdateTime"`
	MaestroDeletedAt gorm.DeletedAt `json:"maestro_deleted_at" gorm:"column:maestro_deleted_at;index"`
}

func (MaestroModel) TableName() string {
	return "maestros"
}
