// file: internals/features/escuela/alumnos/model/alumno_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   AlumnoModel — mapea a la tabla alumnos
   ======================================================= */

type AlumnoModel struct {
	// PK
	AlumnoID uuid.UUID `json:"alumno_id" gorm:"type:uuid;primaryKey;column:alumno_id;default:gen_random_uuid()"`

	// 1:1 con la cuenta de usuario
	AlumnoUsuarioID uuid.UUID `json:"alumno_usuario_id" gorm:"type:uuid;not null;uniqueIndex;column:alumno_usuario_id"`

	// pertenece a exactamente un grupo
	AlumnoGrupoID uuid.UUID `json:"alumno_grupo_id" gorm:"type:uuid;not null;index;column:alumno_grupo_id"`

	AlumnoMatricula string `json:"alumno_matricula" gorm:"type:text;not null;uniqueIndex;column:alumno_matricula"`
	AlumnoNombre    string `json:"alumno_nombre" gorm:"type:text;not null;column:alumno_nombre"`

	// elegible para registrar asistencia/actividades de su grupo
	AlumnoEsJefeGrupo bool `json:"alumno_es_jefe_grupo" gorm:"type:boolean;not null;default:false;column:alumno_es_jefe_grupo"`

	AlumnoCreatedAt time.Time      `json:"alumno_created_at" gorm:"column:alumno_created_at;not null;autoCreateTime"`
	AlumnoUpdatedAt time.Time      `json:"alumno_updated_at" gorm:"column:alumno_updated_at;not null;autoUpdateTime"`
	AlumnoDeletedAt gorm.DeletedAt `json:"alumno_deleted_at" gorm:"column:alumno_deleted_at;index"`
}

func (AlumnoModel) TableName() string {
	return "alumnos"
}
