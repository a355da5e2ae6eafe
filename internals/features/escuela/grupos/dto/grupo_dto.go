// file: internals/features/escuela/grupos/dto/grupo_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "horarios_backend/internals/features/escuela/grupos/model"
)

/* =======================================================
   Request DTOs
   ======================================================= */

type CreateGrupoRequest struct {
	GrupoNombre  string `json:"grupo_nombre" validate:"required,min=2,max=40"`
	GrupoCarrera string `json:"grupo_carrera" validate:"required,min=2,max=120"`
	GrupoTurno   string `json:"grupo_turno" validate:"omitempty,oneof=matutino vespertino"`
}

func (r *CreateGrupoRequest) Normalize() {
	r.GrupoNombre = strings.TrimSpace(r.GrupoNombre)
	r.GrupoCarrera = strings.TrimSpace(r.GrupoCarrera)
	r.GrupoTurno = strings.TrimSpace(strings.ToLower(r.GrupoTurno))
}

func (r *CreateGrupoRequest) ApplyToModel(dst *m.GrupoModel) {
	dst.GrupoNombre = r.GrupoNombre
	dst.GrupoCarrera = r.GrupoCarrera
	if r.GrupoTurno != "" {
		dst.GrupoTurno = r.GrupoTurno
	} else {
		dst.GrupoTurno = "matutino"
	}
}

type PatchGrupoRequest struct {
	GrupoNombre  *string `json:"grupo_nombre,omitempty" validate:"omitempty,min=2,max=40"`
	GrupoCarrera *string `json:"grupo_carrera,omitempty" validate:"omitempty,min=2,max=120"`
	GrupoTurno   *string `json:"grupo_turno,omitempty" validate:"omitempty,oneof=matutino vespertino"`
}

// BuildUpdateMap arma el mapa de updates sólo con los campos enviados.
func (p *PatchGrupoRequest) BuildUpdateMap() map[string]interface{} {
	updates := map[string]interface{}{}
	if p.GrupoNombre != nil {
		updates["grupo_nombre"] = strings.TrimSpace(*p.GrupoNombre)
	}
	if p.GrupoCarrera != nil {
		updates["grupo_carrera"] = strings.TrimSpace(*p.GrupoCarrera)
	}
	if p.GrupoTurno != nil {
		updates["grupo_turno"] = strings.ToLower(strings.TrimSpace(*p.GrupoTurno))
	}
	return updates
}

type AsignarJefeRequest struct {
	AlumnoID string `json:"alumno_id" validate:"required,uuid4"`
}

/* =======================================================
   Response DTO
   ======================================================= */

type GrupoResponse struct {
	GrupoID          uuid.UUID  `json:"grupo_id"`
	GrupoNombre      string     `json:"grupo_nombre"`
	GrupoCarrera     string     `json:"grupo_carrera"`
	GrupoTurno       string     `json:"grupo_turno"`
	GrupoJefeGrupoID *uuid.UUID `json:"grupo_jefe_grupo_id,omitempty"`
	GrupoCreatedAt   time.Time  `json:"grupo_created_at"`
	GrupoUpdatedAt   time.Time  `json:"grupo_updated_at"`
}

func NewGrupoResponse(src *m.GrupoModel) GrupoResponse {
	return GrupoResponse{
		GrupoID:          src.GrupoID,
		GrupoNombre:      src.GrupoNombre,
		GrupoCarrera:     src.GrupoCarrera,
		GrupoTurno:       src.GrupoTurno,
		GrupoJefeGrupoID: src.GrupoJefeGrupoID,
		GrupoCreatedAt:   src.GrupoCreatedAt,
		GrupoUpdatedAt:   src.GrupoUpdatedAt,
	}
}
