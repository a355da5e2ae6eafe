// file: internals/features/registro/service/upsert_service.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"horarios_backend/internals/features/registro/model"
)

// Registros persiste asistencias y actividades por clave natural
// (horario, fecha). El upsert es un solo INSERT ... ON CONFLICT DO
// UPDATE apoyado en el índice único compuesto, así dos escrituras
// concurrentes de la misma sesión nunca producen filas duplicadas.
type Registros struct {
	DB *gorm.DB
}

func NewRegistros(db *gorm.DB) *Registros {
	return &Registros{DB: db}
}

func (r *Registros) UpsertAsistencia(ctx context.Context, horarioID uuid.UUID, fecha time.Time, presente bool, observaciones *string, registradoPor uuid.UUID) (*model.AsistenciaModel, error) {
	row := model.AsistenciaModel{
		AsistenciaHorarioID:     horarioID,
		AsistenciaFecha:         fecha,
		AsistenciaPresente:      presente,
		AsistenciaObservaciones: observaciones,
		AsistenciaRegistradoPor: registradoPor,
	}

	err := r.DB.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{
					{Name: "asistencia_horario_id"},
					{Name: "asistencia_fecha"},
				},
				DoUpdates: clause.AssignmentColumns([]string{
					"asistencia_presente",
					"asistencia_observaciones",
					"asistencia_registrado_por",
					"asistencia_updated_at",
				}),
			},
			clause.Returning{},
		).
		Create(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *Registros) UpsertActividad(ctx context.Context, horarioID uuid.UUID, fecha time.Time, tema, actividades string, tarea *string, registradoPor uuid.UUID) (*model.ActividadModel, error) {
	row := model.ActividadModel{
		ActividadHorarioID:     horarioID,
		ActividadFecha:         fecha,
		ActividadTema:          tema,
		ActividadActividades:   actividades,
		ActividadTarea:         tarea,
		ActividadRegistradoPor: registradoPor,
	}

	err := r.DB.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{
					{Name: "actividad_horario_id"},
					{Name: "actividad_fecha"},
				},
				DoUpdates: clause.AssignmentColumns([]string{
					"actividad_tema",
					"actividad_actividades",
					"actividad_tarea",
					"actividad_registrado_por",
					"actividad_updated_at",
				}),
			},
			clause.Returning{},
		).
		Create(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}
