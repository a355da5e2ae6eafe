// file: internals/features/registro/model/actividad_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ActividadModel guarda lo trabajado en una sesión (tema, actividades,
// tarea). Misma clave natural que asistencias: (horario, fecha).
type ActividadModel struct {
	ActividadID uuid.UUID `json:"actividad_id" gorm:"type:uuid;primaryKey;column:actividad_id;default:gen_random_uuid()"`

	ActividadHorarioID uuid.UUID `json:"actividad_horario_id" gorm:"type:uuid;not null;column:actividad_horario_id;uniqueIndex:ux_actividades_horario_fecha,priority:1"`
	ActividadFecha     time.Time `json:"actividad_fecha" gorm:"type:date;not null;column:actividad_fecha;uniqueIndex:ux_actividades_horario_fecha,priority:2"`

	ActividadTema        string  `json:"actividad_tema" gorm:"type:text;not null;column:actividad_tema"`
	ActividadActividades string  `json:"actividad_actividades" gorm:"type:text;not null;column:actividad_actividades"`
	ActividadTarea       *string `json:"actividad_tarea,omitempty" gorm:"type:text;column:actividad_tarea"`

	ActividadRegistradoPor uuid.UUID `json:"actividad_registrado_por" gorm:"type:uuid;not null;column:actividad_registrado_por"`

	ActividadCreatedAt time.Time `json:"actividad_created_at" gorm:"column:actividad_created_at;not null;autoCreateTime"`
	ActividadUpdatedAt time.Time `json:"actividad_updated_at" gorm:"column:actividad_updated_at;not null;autoUpdateTime"`
}

func (ActividadModel) TableName() string {
	return "actividades"
}
