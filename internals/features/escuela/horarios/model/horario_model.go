// file: internals/features/escuela/horarios/model/horario_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HorarioModel representa un bloque de clase recurrente:
// un grupo toma una materia con un maestro, en un salón,
// cierto día de la semana y rango de horas.
type HorarioModel struct {
	HorarioID uuid.UUID `json:"horario_id" gorm:"type:uuid;primaryKey;column:horario_id;default:gen_random_uuid()"`

	HorarioGrupoID   uuid.UUID `json:"horario_grupo_id" gorm:"type:uuid;not null;index;column:horario_grupo_id"`
	HorarioMateriaID uuid.UUID `json:"horario_materia_id" gorm:"type:uuid;not null;index;column:horario_materia_id"`
	HorarioMaestroID uuid.UUID `json:"horario_maestro_id" gorm:"type:uuid;not null;index;column:horario_maestro_id"`
	HorarioSalonID   uuid.UUID `json:"horario_salon_id" gorm:"type:uuid;not null;index;column:horario_salon_id"`

	// 1 = lunes ... 7 = domingo (ISO 8601)
	HorarioDiaSemana  int       `json:"horario_dia_semana" gorm:"not null;column:horario_dia_semana"`
	HorarioHoraInicio time.Time `json:"horario_hora_inicio" gorm:"type:time;not null;column:horario_hora_inicio"`
	HorarioHoraFin    time.Time `json:"horario_hora_fin" gorm:"type:time;not null;column:horario_hora_fin"`

	HorarioCreatedAt time.Time      `json:"horario_created_at" gorm:"column:horario_created_at;not null;autoCreateTime"`
	HorarioUpdatedAt time.Time      `json:"horario_updated_at" gorm:"column:horario_updated_at;not null;autoUpdateTime"`
	HorarioDeletedAt gorm.DeletedAt `json:"horario_deleted_at" gorm:"column:horario_deleted_at;index"`
}

func (HorarioModel) TableName() string {
	return "horarios"
}
