// file: internals/features/escuela/maestros/dto/maestro_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "horarios_backend/internals/features/escuela/maestros/model"
)

type CreateMaestroRequest struct {
	MaestroUsuarioID *string `json:"maestro_usuario_id,omitempty" validate:"omitempty,uuid4"`
	MaestroNombre    string  `json:"maestro_nombre" validate:"required,min=3,max=120"`
	MaestroEmail     string  `json:"maestro_email" validate:"required,email"`
}

func (r *CreateMaestroRequest) ApplyToModel(dst *m.MaestroModel) error {
	if r.MaestroUsuarioID != nil && strings.TrimSpace(*r.MaestroUsuarioID) != "" {
		id, err := uuid.Parse(strings.TrimSpace(*r.MaestroUsuarioID))
		if err != nil {
			return err
		}
		dst.MaestroUsuarioID = &id
	}
	dst.MaestroNombre = strings.TrimSpace(r.MaestroNombre)
	dst.MaestroEmail = strings.ToLower(strings.TrimSpace(r.MaestroEmail))
	return nil
}

type PatchMaestroRequest struct {
	MaestroNombre *string `json:"maestro_nombre,omitempty" validate:"omitempty,min=3,max=120"`
	MaestroEmail  *string `json:"maestro_email,omitempty" validate:"omitempty,email"`
}

func (p *PatchMaestroRequest) BuildUpdateMap() map[string]interface{} {
	updates := map[string]interface{}{}
	if p.MaestroNombre != nil {
		updates["maestro_nombre"] = strings.TrimSpace(*p.MaestroNombre)
	}
	if p.MaestroEmail != nil {
		updates["maestro_email"] = strings.ToLower(strings.TrimSpace(*p.MaestroEmail))
	}
	return updates
}

type MaestroResponse struct {
	MaestroID        uuid.UUID  `json:"maestro_id"`
	MaestroUsuarioID *uuid.UUID `json:"maestro_usuario_id,omitempty"`
	MaestroNombre    string     `json:"maestro_nombre"`
	MaestroEmail     string     `json:"maestro_email"`
	MaestroCreatedAt time.Time  `json:"maestro_created_at"`
	MaestroUpdatedAt time.Time  `json:"maestro_updated_at"`
}

func NewMaestroResponse(src *m.MaestroModel) MaestroResponse {
	return MaestroResponse{
		MaestroID:        src.MaestroID,
		MaestroUsuarioID: src.MaestroUsuarioID,
		MaestroNombre:    src.MaestroNombre,
		MaestroEmail:     src.MaestroEmail,
		MaestroCreatedAt: src.MaestroCreatedAt,
		MaestroUpdatedAt: src.MaestroUpdatedAt,
	}
}
