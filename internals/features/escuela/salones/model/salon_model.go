// file: internals/features/escuela/salones/model/salon_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SalonModel struct {
	SalonID uuid.UUID `json:"salon_id" gorm:"type:uuid;primaryKey;column:salon_id;default:gen_random_uuid()"`

	SalonCodigo    string `json:"salon_codigo" gorm:"type:varchar(20);not null;uniqueIndex;column:salon_codigo"`
	SalonEdificio  string `json:"salon_edificio" gorm:"type:varchar(50);column:salon_edificio"`
	SalonCapacidad int    `json:"salon_capacidad" gorm:"not null;default:0;column:salon_capacidad"`

	// equipamiento libre, p.ej. ["proyector","aire_acondicionado"]
	SalonCaracteristicas datatypes.JSON `json:"salon_caracteristicas" gorm:"type:jsonb;column:salon_caracteristicas"`

	SalonCreatedAt time.Time      `json:"salon_created_at" gorm:"column:salon_created_at;not null;autoCreateTime"`
	SalonUpdatedAt time.Time      `json:"salon_updated_at" gorm:"column:salon_updated_at;not null;autoUpdateTime"`
	SalonDeletedAt gorm.DeletedAt `json:"salon_deleted_at" gorm:"column:salon_deleted_at;index"`
}

func (SalonModel) TableName() string {
	return "salones"
}
