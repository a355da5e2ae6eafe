// file: internals/features/escuela/grupos/model/grupo_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   GrupoModel — mapea a la tabla grupos
   ======================================================= */

type GrupoModel struct {
	// PK
	GrupoID uuid.UUID `json:"grupo_id" gorm:"type:uuid;primaryKey;column:grupo_id;default:gen_random_uuid()"`

	GrupoNombre  string `json:"grupo_nombre" gorm:"type:text;not null;uniqueIndex;column:grupo_nombre"`
	GrupoCarrera string `json:"grupo_carrera" gorm:"type:text;not null;column:grupo_carrera"`
	GrupoTurno   string `json:"grupo_turno" gorm:"type:text;not null;default:'matutino';column:grupo_turno"`

	// Jefe de grupo: a lo sumo uno, referencia a alumnos.
	// El flag alumno_es_jefe_grupo y esta referencia se mantienen juntos
	// (ver AsignarJefe); la regla de permisos exige que coincidan.
	GrupoJefeGrupoID *uuid.UUID `json:"grupo_jefe_grupo_id,omitempty" gorm:"type:uuid;column:grupo_jefe_grupo_id"`

	GrupoCreatedAt time.Time      `json:"grupo_created_at" gorm:"column:grupo_created_at;not null;autoCreateTime"`
	GrupoUpdatedAt time.Time      `json:"grupo_updated_at" gorm:"column:grupo_updated_at;not null;autoUpdateTime"`
	GrupoDeletedAt gorm.DeletedAt `json:"grupo_deleted_at" gorm:"column:grupo_deleted_at;index"`
}

func (GrupoModel) TableName() string {
	return "grupos"
}
