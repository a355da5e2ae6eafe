// file: internals/features/escuela/materias/dto/materia_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "horarios_backend/internals/features/escuela/materias/model"
)

type CreateMateriaRequest struct {
	MateriaClave    string `json:"materia_clave" validate:"required,min=2,max=20"`
	MateriaNombre   string `json:"materia_nombre" validate:"required,min=3,max=120"`
	MateriaSemestre int    `json:"materia_semestre" validate:"required,min=1,max=14"`
}

func (r *CreateMateriaRequest) ApplyToModel(dst *m.MateriaModel) {
	dst.MateriaClave = strings.ToUpper(strings.TrimSpace(r.MateriaClave))
	dst.MateriaNombre = strings.TrimSpace(r.MateriaNombre)
	dst.MateriaSemestre = r.MateriaSemestre
}

type PatchMateriaRequest struct {
	MateriaNombre   *string `json:"materia_nombre,omitempty" validate:"omitempty,min=3,max=120"`
	MateriaSemestre *int    `json:"materia_semestre,omitempty" validate:"omitempty,min=1,max=14"`
}

func (p *PatchMateriaRequest) BuildUpdateMap() map[string]interface{} {
	updates := map[string]interface{}{}
	if p.MateriaNombre != nil {
		updates["materia_nombre"] = strings.TrimSpace(*p.MateriaNombre)
	}
	if p.MateriaSemestre != nil {
		updates["materia_semestre"] = *p.MateriaSemestre
	}
	return updates
}

type MateriaResponse struct {
	MateriaID        uuid.UUID `json:"materia_id"`
	MateriaClave     string    `json:"materia_clave"`
	MateriaNombre    string    `json:"materia_nombre"`
	MateriaSemestre  int       `json:"materia_semestre"`
	MateriaCreatedAt time.Time `json:"materia_created_at"`
	MateriaUpdatedAt time.Time `json:"materia_updated_at"`
}

func NewMateriaResponse(src *m.MateriaModel) MateriaResponse {
	return MateriaResponse{
		MateriaID:        src.MateriaID,
		MateriaClave:     src.MateriaClave,
		MateriaNombre:    src.MateriaNombre,
		MateriaSemestre:  src.MateriaSemestre,
		MateriaCreatedAt: src.MateriaCreatedAt,
		MateriaUpdatedAt: src.MateriaUpdatedAt,
	}
}
