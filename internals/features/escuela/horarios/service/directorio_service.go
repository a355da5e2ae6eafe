// file: internals/features/escuela/horarios/service/directorio_service.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrHorarioNoEncontrado = errors.New("horario no encontrado")

// InfoHorario es la vista mínima de un horario que necesitan
// otros módulos (autorización de registros, listados).
type InfoHorario struct {
	HorarioID uuid.UUID
	GrupoID   uuid.UUID
	MateriaID uuid.UUID
	MaestroID uuid.UUID
}

// Directorio resuelve horarios por ID sin exponer el modelo completo.
type Directorio struct {
	DB *gorm.DB
}

func NewDirectorio(db *gorm.DB) *Directorio {
	return &Directorio{DB: db}
}

func (d *Directorio) InfoHorario(ctx context.Context, horarioID uuid.UUID) (*InfoHorario, error) {
	var row struct {
		HorarioID        uuid.UUID `gorm:"column:horario_id"`
		HorarioGrupoID   uuid.UUID `gorm:"column:horario_grupo_id"`
		HorarioMateriaID uuid.UUID `gorm:"column:horario_materia_id"`
		HorarioMaestroID uuid.UUID `gorm:"column:horario_maestro_id"`
	}

	err := d.DB.WithContext(ctx).
		Table("horarios").
		Select("horario_id, horario_grupo_id, horario_materia_id, horario_maestro_id").
		Where("horario_id = ? AND horario_deleted_at IS NULL", horarioID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHorarioNoEncontrado
		}
		return nil, err
	}

	return &InfoHorario{
		HorarioID: row.HorarioID,
		GrupoID:   row.HorarioGrupoID,
		MateriaID: row.HorarioMateriaID,
		MaestroID: row.HorarioMaestroID,
	}, nil
}
