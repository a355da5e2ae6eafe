// file: internals/features/registro/model/asistencia_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// AsistenciaModel guarda el pase de lista de una sesión concreta:
// un horario en una fecha. La pareja (horario, fecha) es única y los
// reenvíos sobreescriben la fila existente, por eso no hay soft delete.
type AsistenciaModel struct {
	AsistenciaID uuid.UUID `json:"asistencia_id" gorm:"type:uuid;primaryKey;column:asistencia_id;default:gen_random_uuid()"`

	AsistenciaHorarioID uuid.UUID `json:"asistencia_horario_id" gorm:"type:uuid;not null;column:asistencia_horario_id;uniqueIndex:ux_asistencias_horario_fecha,priority:1"`
	AsistenciaFecha     time.Time `json:"asistencia_fecha" gorm:"type:date;not null;column:asistencia_fecha;uniqueIndex:ux_asistencias_horario_fecha,priority:2"`

	AsistenciaPresente      bool    `json:"asistencia_presente" gorm:"not null;column:asistencia_presente"`
	AsistenciaObservaciones *string `json:"asistencia_observaciones,omitempty" gorm:"type:text;column:asistencia_observaciones"`

	// usuario (admin/checador) o alumno jefe de grupo, según quién registró
	AsistenciaRegistradoPor uuid.UUID `json:"asistencia_registrado_por" gorm:"type:uuid;not null;column:asistencia_registrado_por"`

	AsistenciaCreatedAt time.Time `json:"asistencia_created_at" gorm:"column:asistencia_created_at;not null;autoCreateTime"`
	AsistenciaUpdatedAt time.Time `json:"asistencia_updated_at" gorm:"column:asistencia_updated_at;not null;autoUpdateTime"`
}

func (AsistenciaModel) TableName() string {
	return "asistencias"
}
