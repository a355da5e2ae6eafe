// file: internals/features/escuela/horarios/dto/horario_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	m "horarios_backend/internals/features/escuela/horarios/model"
)

const layoutHora = "15:04"

var errRangoHoras = errors.New("la hora de fin debe ser posterior a la de inicio")

func parseHora(s string) (time.Time, error) {
	return time.Parse(layoutHora, strings.TrimSpace(s))
}

type CreateHorarioRequest struct {
	HorarioGrupoID   string `json:"horario_grupo_id" validate:"required,uuid4"`
	HorarioMateriaID string `json:"horario_materia_id" validate:"required,uuid4"`
	HorarioMaestroID string `json:"horario_maestro_id" validate:"required,uuid4"`
	HorarioSalonID   string `json:"horario_salon_id" validate:"required,uuid4"`

	HorarioDiaSemana  int    `json:"horario_dia_semana" validate:"required,min=1,max=7"`
	HorarioHoraInicio string `json:"horario_hora_inicio" validate:"required"` // "HH:MM"
	HorarioHoraFin    string `json:"horario_hora_fin" validate:"required"`    // "HH:MM"
}

func (r *CreateHorarioRequest) ApplyToModel(dst *m.HorarioModel) error {
	grupoID, err := uuid.Parse(r.HorarioGrupoID)
	if err != nil {
		return err
	}
	materiaID, err := uuid.Parse(r.HorarioMateriaID)
	if err != nil {
		return err
	}
	maestroID, err := uuid.Parse(r.HorarioMaestroID)
	if err != nil {
		return err
	}
	salonID, err := uuid.Parse(r.HorarioSalonID)
	if err != nil {
		return err
	}

	inicio, err := parseHora(r.HorarioHoraInicio)
	if err != nil {
		return err
	}
	fin, err := parseHora(r.HorarioHoraFin)
	if err != nil {
		return err
	}
	if !fin.After(inicio) {
		return errRangoHoras
	}

	dst.HorarioGrupoID = grupoID
	dst.HorarioMateriaID = materiaID
	dst.HorarioMaestroID = maestroID
	dst.HorarioSalonID = salonID
	dst.HorarioDiaSemana = r.HorarioDiaSemana
	dst.HorarioHoraInicio = inicio
	dst.HorarioHoraFin = fin
	return nil
}

type PatchHorarioRequest struct {
	HorarioMaestroID *string `json:"horario_maestro_id,omitempty" validate:"omitempty,uuid4"`
	HorarioSalonID   *string `json:"horario_salon_id,omitempty" validate:"omitempty,uuid4"`

	HorarioDiaSemana  *int    `json:"horario_dia_semana,omitempty" validate:"omitempty,min=1,max=7"`
	HorarioHoraInicio *string `json:"horario_hora_inicio,omitempty"`
	HorarioHoraFin    *string `json:"horario_hora_fin,omitempty"`
}

func (p *PatchHorarioRequest) BuildUpdateMap() (map[string]interface{}, error) {
	updates := map[string]interface{}{}
	if p.HorarioMaestroID != nil {
		id, err := uuid.Parse(*p.HorarioMaestroID)
		if err != nil {
			return nil, err
		}
		updates["horario_maestro_id"] = id
	}
	if p.HorarioSalonID != nil {
		id, err := uuid.Parse(*p.HorarioSalonID)
		if err != nil {
			return nil, err
		}
		updates["horario_salon_id"] = id
	}
	if p.HorarioDiaSemana != nil {
		updates["horario_dia_semana"] = *p.HorarioDiaSemana
	}
	if p.HorarioHoraInicio != nil {
		t, err := parseHora(*p.HorarioHoraInicio)
		if err != nil {
			return nil, err
		}
		updates["horario_hora_inicio"] = t
	}
	if p.HorarioHoraFin != nil {
		t, err := parseHora(*p.HorarioHoraFin)
		if err != nil {
			return nil, err
		}
		updates["horario_hora_fin"] = t
	}
	return updates, nil
}

type HorarioResponse struct {
	HorarioID        uuid.UUID `json:"horario_id"`
	HorarioGrupoID   uuid.UUID `json:"horario_grupo_id"`
	HorarioMateriaID uuid.UUID `json:"horario_materia_id"`
	HorarioMaestroID uuid.UUID `json:"horario_maestro_id"`
	HorarioSalonID   uuid.UUID `json:"horario_salon_id"`

	HorarioDiaSemana  int    `json:"horario_dia_semana"`
	HorarioHoraInicio string `json:"horario_hora_inicio"`
	HorarioHoraFin    string `json:"horario_hora_fin"`

	HorarioCreatedAt time.Time `json:"horario_created_at"`
	HorarioUpdatedAt time.Time `json:"horario_updated_at"`
}

func NewHorarioResponse(src *m.HorarioModel) HorarioResponse {
	return HorarioResponse{
		HorarioID:         src.HorarioID,
		HorarioGrupoID:    src.HorarioGrupoID,
		HorarioMateriaID:  src.HorarioMateriaID,
		HorarioMaestroID:  src.HorarioMaestroID,
		HorarioSalonID:    src.HorarioSalonID,
		HorarioDiaSemana:  src.HorarioDiaSemana,
		HorarioHoraInicio: src.HorarioHoraInicio.Format(layoutHora),
		HorarioHoraFin:    src.HorarioHoraFin.Format(layoutHora),
		HorarioCreatedAt:  src.HorarioCreatedAt,
		HorarioUpdatedAt:  src.HorarioUpdatedAt,
	}
}
