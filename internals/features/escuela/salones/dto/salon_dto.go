// file: internals/features/escuela/salones/dto/salon_dto.go
package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "horarios_backend/internals/features/escuela/salones/model"
)

type CreateSalonRequest struct {
	SalonCodigo          string   `json:"salon_codigo" validate:"required,min=1,max=20"`
	SalonEdificio        string   `json:"salon_edificio" validate:"omitempty,max=50"`
	SalonCapacidad       int      `json:"salon_capacidad" validate:"omitempty,min=0,max=500"`
	SalonCaracteristicas []string `json:"salon_caracteristicas,omitempty" validate:"omitempty,dive,min=1,max=50"`
}

func (r *CreateSalonRequest) ApplyToModel(dst *m.SalonModel) error {
	dst.SalonCodigo = strings.ToUpper(strings.TrimSpace(r.SalonCodigo))
	dst.SalonEdificio = strings.TrimSpace(r.SalonEdificio)
	dst.SalonCapacidad = r.SalonCapacidad
	if r.SalonCaracteristicas != nil {
		raw, err := json.Marshal(r.SalonCaracteristicas)
		if err != nil {
			return err
		}
		dst.SalonCaracteristicas = datatypes.JSON(raw)
	}
	return nil
}

type PatchSalonRequest struct {
	SalonEdificio        *string   `json:"salon_edificio,omitempty" validate:"omitempty,max=50"`
	SalonCapacidad       *int      `json:"salon_capacidad,omitempty" validate:"omitempty,min=0,max=500"`
	SalonCaracteristicas *[]string `json:"salon_caracteristicas,omitempty" validate:"omitempty,dive,min=1,max=50"`
}

func (p *PatchSalonRequest) BuildUpdateMap() (map[string]interface{}, error) {
	updates := map[string]interface{}{}
	if p.SalonEdificio != nil {
		updates["salon_edificio"] = strings.TrimSpace(*p.SalonEdificio)
	}
	if p.SalonCapacidad != nil {
		updates["salon_capacidad"] = *p.SalonCapacidad
	}
	if p.SalonCaracteristicas != nil {
		raw, err := json.Marshal(*p.SalonCaracteristicas)
		if err != nil {
			return nil, err
		}
		updates["salon_caracteristicas"] = datatypes.JSON(raw)
	}
	return updates, nil
}

type SalonResponse struct {
	SalonID              uuid.UUID `json:"salon_id"`
	SalonCodigo          string    `json:"salon_codigo"`
	SalonEdificio        string    `json:"salon_edificio"`
	SalonCapacidad       int       `json:"salon_capacidad"`
	SalonCaracteristicas []string  `json:"salon_caracteristicas"`
	SalonCreatedAt       time.Time `json:"salon_created_at"`
	SalonUpdatedAt       time.Time `json:"salon_updated_at"`
}

func NewSalonResponse(src *m.SalonModel) SalonResponse {
	caracteristicas := []string{}
	if len(src.SalonCaracteristicas) > 0 {
		_ = json.Unmarshal(src.SalonCaracteristicas, &caracteristicas)
	}
	return SalonResponse{
		SalonID:              src.SalonID,
		SalonCodigo:          src.SalonCodigo,
		SalonEdificio:        src.SalonEdificio,
		SalonCapacidad:       src.SalonCapacidad,
		SalonCaracteristicas: caracteristicas,
		SalonCreatedAt:       src.SalonCreatedAt,
		SalonUpdatedAt:       src.SalonUpdatedAt,
	}
}
