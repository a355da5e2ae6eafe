// file: internals/features/escuela/materias/model/materia_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MateriaModel struct {
	MateriaID uuid.UUID `json:"materia_id" gorm:"type:uuid;primaryKey;column:materia_id;default:gen_random_uuid()"`

	MateriaClave    string `json:"materia_clave" gorm:"type:varchar(20);not null;uniqueIndex;column:materia_clave"`
	MateriaNombre   string `json:"materia_nombre" gorm:"type:text;not null;column:materia_nombre"`
	MateriaSemestre int    `json:"materia_semestre" gorm:"not null;default:1;column:materia_semestre"`

	MateriaCreatedAt time.Time      `json:"materia_created_at" gorm:"column:materia_created_at;not null;autoCreateTime"`
	MateriaUpdatedAt time.Time      `json:"materia_updated_at" gorm:"column:materia_updated_at;not null;autoUpdateTime"`
	MateriaDeletedAt gorm.DeletedAt `json:"materia_deleted_at" gorm:"column:materia_deleted_at;index"`
}

func (MateriaModel) TableName() string {
	return "materias"
}
