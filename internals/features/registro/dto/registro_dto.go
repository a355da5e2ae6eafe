// file: internals/features/registro/dto/registro_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	helpers "horarios_backend/internals/helpers"

	m "horarios_backend/internals/features/registro/model"
)

// ===============================
// Asistencias
// ===============================

type UpsertAsistenciaRequest struct {
	HorarioID     string  `json:"horario_id" validate:"required,uuid4"`
	Fecha         string  `json:"fecha" validate:"required"` // "YYYY-MM-DD"
	Presente      bool    `json:"presente"`
	Observaciones *string `json:"observaciones,omitempty" validate:"omitempty,max=500"`
}

func (r *UpsertAsistenciaRequest) Normalize() {
	r.Fecha = strings.TrimSpace(r.Fecha)
	if r.Observaciones != nil {
		obs := strings.TrimSpace(*r.Observaciones)
		if obs == "" {
			r.Observaciones = nil
		} else {
			r.Observaciones = &obs
		}
	}
}

func (r *UpsertAsistenciaRequest) ParseClave() (uuid.UUID, time.Time, error) {
	horarioID, err := uuid.Parse(r.HorarioID)
	if err != nil {
		return uuid.Nil, time.Time{}, err
	}
	fecha, err := helpers.ParseFecha(r.Fecha)
	if err != nil {
		return uuid.Nil, time.Time{}, err
	}
	return horarioID, fecha, nil
}

type AsistenciaResponse struct {
	AsistenciaID  uuid.UUID `json:"asistencia_id"`
	HorarioID     uuid.UUID `json:"horario_id"`
	Fecha         string    `json:"fecha"`
	Presente      bool      `json:"presente"`
	Observaciones *string   `json:"observaciones,omitempty"`
	RegistradoPor uuid.UUID `json:"registrado_por"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewAsistenciaResponse(src *m.AsistenciaModel) AsistenciaResponse {
	return AsistenciaResponse{
		AsistenciaID:  src.AsistenciaID,
		HorarioID:     src.AsistenciaHorarioID,
		Fecha:         src.AsistenciaFecha.Format(helpers.LayoutFecha),
		Presente:      src.AsistenciaPresente,
		Observaciones: src.AsistenciaObservaciones,
		RegistradoPor: src.AsistenciaRegistradoPor,
		CreatedAt:     src.AsistenciaCreatedAt,
		UpdatedAt:     src.AsistenciaUpdatedAt,
	}
}

// ===============================
// Actividades
// ===============================

type UpsertActividadRequest struct {
	HorarioID   string  `json:"horario_id" validate:"required,uuid4"`
	Fecha       string  `json:"fecha" validate:"required"` // "YYYY-MM-DD"
	Tema        string  `json:"tema" validate:"required,min=3,max=200"`
	Actividades string  `json:"actividades" validate:"required,min=3,max=2000"`
	Tarea       *string `json:"tarea,omitempty" validate:"omitempty,max=1000"`
}

func (r *UpsertActividadRequest) Normalize() {
	r.Fecha = strings.TrimSpace(r.Fecha)
	r.Tema = strings.TrimSpace(r.Tema)
	r.Actividades = strings.TrimSpace(r.Actividades)
	if r.Tarea != nil {
		tarea := strings.TrimSpace(*r.Tarea)
		if tarea == "" {
			r.Tarea = nil
		} else {
			r.Tarea = &tarea
		}
	}
}

func (r *UpsertActividadRequest) ParseClave() (uuid.UUID, time.Time, error) {
	horarioID, err := uuid.Parse(r.HorarioID)
	if err != nil {
		return uuid.Nil, time.Time{}, err
	}
	fecha, err := helpers.ParseFecha(r.Fecha)
	if err != nil {
		return uuid.Nil, time.Time{}, err
	}
	return horarioID, fecha, nil
}

type ActividadResponse struct {
	ActividadID   uuid.UUID `json:"actividad_id"`
	HorarioID     uuid.UUID `json:"horario_id"`
	Fecha         string    `json:"fecha"`
	Tema          string    `json:"tema"`
	Actividades   string    `json:"actividades"`
	Tarea         *string   `json:"tarea,omitempty"`
	RegistradoPor uuid.UUID `json:"registrado_por"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewActividadResponse(src *m.ActividadModel) ActividadResponse {
	return ActividadResponse{
		ActividadID:   src.ActividadID,
		HorarioID:     src.ActividadHorarioID,
		Fecha:         src.ActividadFecha.Format(helpers.LayoutFecha),
		Tema:          src.ActividadTema,
		Actividades:   src.ActividadActividades,
		Tarea:         src.ActividadTarea,
		RegistradoPor: src.ActividadRegistradoPor,
		CreatedAt:     src.ActividadCreatedAt,
		UpdatedAt:     src.ActividadUpdatedAt,
	}
}
