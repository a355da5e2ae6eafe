// file: internals/features/escuela/alumnos/service/jefaturas_service.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   Jefaturas — lookup read-only de jefes de grupo
   =======================================================
   Interfaz compartida que consume el resolver de permisos del
   registro de sesiones. Sólo lecturas, sin efectos secundarios.
*/

var (
	ErrAlumnoNoEncontrado = errors.New("alumno no encontrado")
	ErrSinJefatura        = errors.New("ningún grupo lo nombra jefe")
)

// FichaAlumno es la vista mínima que necesita la autorización.
type FichaAlumno struct {
	AlumnoID    uuid.UUID
	GrupoID     uuid.UUID
	EsJefeGrupo bool
}

type Jefaturas struct {
	DB *gorm.DB
}

func NewJefaturas(db *gorm.DB) *Jefaturas {
	return &Jefaturas{DB: db}
}

// AlumnoPorUsuario resuelve la ficha del alumno ligado a una cuenta de usuario.
func (s *Jefaturas) AlumnoPorUsuario(ctx context.Context, usuarioID uuid.UUID) (*FichaAlumno, error) {
	var row struct {
		AlumnoID          uuid.UUID
		AlumnoGrupoID     uuid.UUID
		AlumnoEsJefeGrupo bool
	}
	err := s.DB.WithContext(ctx).
		Table("alumnos").
		Select("alumno_id, alumno_grupo_id, alumno_es_jefe_grupo").
		Where("alumno_usuario_id = ? AND alumno_deleted_at IS NULL", usuarioID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAlumnoNoEncontrado
		}
		return nil, err
	}
	return &FichaAlumno{
		AlumnoID:    row.AlumnoID,
		GrupoID:     row.AlumnoGrupoID,
		EsJefeGrupo: row.AlumnoEsJefeGrupo,
	}, nil
}

// GrupoLideradoPor regresa el grupo cuya referencia jefe_grupo_id apunta
// al alumno. El flag del alumno NO basta: la referencia del grupo es la
// fuente de verdad de a quién representa.
func (s *Jefaturas) GrupoLideradoPor(ctx context.Context, alumnoID uuid.UUID) (uuid.UUID, error) {
	var row struct {
		GrupoID uuid.UUID
	}
	err := s.DB.WithContext(ctx).
		Table("grupos").
		Select("grupo_id").
		Where("grupo_jefe_grupo_id = ? AND grupo_deleted_at IS NULL", alumnoID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, ErrSinJefatura
		}
		return uuid.Nil, err
	}
	return row.GrupoID, nil
}
