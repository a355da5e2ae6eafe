// file: internals/features/escuela/alumnos/dto/alumno_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "horarios_backend/internals/features/escuela/alumnos/model"
)

/* =======================================================
   Request DTOs
   ======================================================= */

type CreateAlumnoRequest struct {
	AlumnoUsuarioID string `json:"alumno_usuario_id" validate:"required,uuid4"`
	AlumnoGrupoID   string `json:"alumno_grupo_id" validate:"required,uuid4"`
	AlumnoMatricula string `json:"alumno_matricula" validate:"required,min=4,max=20"`
	AlumnoNombre    string `json:"alumno_nombre" validate:"required,min=3,max=120"`
}

func (r *CreateAlumnoRequest) Normalize() {
	r.AlumnoMatricula = strings.ToUpper(strings.TrimSpace(r.AlumnoMatricula))
	r.AlumnoNombre = strings.TrimSpace(r.AlumnoNombre)
}

func (r *CreateAlumnoRequest) ApplyToModel(dst *m.AlumnoModel) error {
	usuarioID, err := uuid.Parse(r.AlumnoUsuarioID)
	if err != nil {
		return err
	}
	grupoID, err := uuid.Parse(r.AlumnoGrupoID)
	if err != nil {
		return err
	}
	dst.AlumnoUsuarioID = usuarioID
	dst.AlumnoGrupoID = grupoID
	dst.AlumnoMatricula = r.AlumnoMatricula
	dst.AlumnoNombre = r.AlumnoNombre
	// el flag de jefe NO se acepta por payload: sólo lo mueve AsignarJefe
	dst.AlumnoEsJefeGrupo = false
	return nil
}

type PatchAlumnoRequest struct {
	AlumnoGrupoID   *string `json:"alumno_grupo_id,omitempty" validate:"omitempty,uuid4"`
	AlumnoMatricula *string `json:"alumno_matricula,omitempty" validate:"omitempty,min=4,max=20"`
	AlumnoNombre    *string `json:"alumno_nombre,omitempty" validate:"omitempty,min=3,max=120"`
}

func (p *PatchAlumnoRequest) BuildUpdateMap() (map[string]interface{}, error) {
	updates := map[string]interface{}{}
	if p.AlumnoGrupoID != nil {
		id, err := uuid.Parse(strings.TrimSpace(*p.AlumnoGrupoID))
		if err != nil {
			return nil, err
		}
		updates["alumno_grupo_id"] = id
		// al cambiar de grupo deja de ser jefe del anterior
		updates["alumno_es_jefe_grupo"] = false
	}
	if p.AlumnoMatricula != nil {
		updates["alumno_matricula"] = strings.ToUpper(strings.TrimSpace(*p.AlumnoMatricula))
	}
	if p.AlumnoNombre != nil {
		updates["alumno_nombre"] = strings.TrimSpace(*p.AlumnoNombre)
	}
	return updates, nil
}

/* =======================================================
   Response DTO
   ======================================================= */

type AlumnoResponse struct {
	AlumnoID          uuid.UUID `json:"alumno_id"`
	AlumnoUsuarioID   uuid.UUID `json:"alumno_usuario_id"`
	AlumnoGrupoID     uuid.UUID `json:"alumno_grupo_id"`
	AlumnoMatricula   string    `json:"alumno_matricula"`
	AlumnoNombre      string    `json:"alumno_nombre"`
	AlumnoEsJefeGrupo bool      `json:"alumno_es_jefe_grupo"`
	AlumnoCreatedAt   time.Time `json:"alumno_created_at"`
	AlumnoUpdatedAt   time.Time `json:"alumno_updated_at"`
}

func NewAlumnoResponse(src *m.AlumnoModel) AlumnoResponse {
	return AlumnoResponse{
		AlumnoID:          src.AlumnoID,
		AlumnoUsuarioID:   src.AlumnoUsuarioID,
		AlumnoGrupoID:     src.AlumnoGrupoID,
		AlumnoMatricula:   src.AlumnoMatricula,
		AlumnoNombre:      src.AlumnoNombre,
		AlumnoEsJefeGrupo: src.AlumnoEsJefeGrupo,
		AlumnoCreatedAt:   src.AlumnoCreatedAt,
		AlumnoUpdatedAt:   src.AlumnoUpdatedAt,
	}
}
