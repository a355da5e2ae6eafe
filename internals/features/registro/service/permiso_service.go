// file: internals/features/registro/service/permiso_service.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"horarios_backend/internals/constants"
	alumnosvc "horarios_backend/internals/features/escuela/alumnos/service"
	horariosvc "horarios_backend/internals/features/escuela/horarios/service"
	"horarios_backend/internals/middlewares/auth"
)

var (
	ErrNoEsJefeDeGrupo = errors.New("el alumno no es jefe de grupo")
	ErrJefeDeOtroGrupo = errors.New("el alumno no es jefe del grupo de este horario")
	ErrRolNoAutorizado = errors.New("rol no autorizado para registrar")
)

// DirectorioHorarios es lo mínimo que el resolver necesita saber de un
// horario. La implementación real vive en el feature de horarios.
type DirectorioHorarios interface {
	InfoHorario(ctx context.Context, horarioID uuid.UUID) (*horariosvc.InfoHorario, error)
}

// LookupJefaturas resuelve la cadena usuario → alumno → grupo liderado.
type LookupJefaturas interface {
	AlumnoPorUsuario(ctx context.Context, usuarioID uuid.UUID) (*alumnosvc.FichaAlumno, error)
	GrupoLideradoPor(ctx context.Context, alumnoID uuid.UUID) (uuid.UUID, error)
}

// Permitido es el resultado de una autorización exitosa. RegistradoPorID
// es el id que queda en el registro: el usuario para admin/checador, el
// alumno (no su usuario) cuando registra el jefe de grupo.
type Permitido struct {
	RegistradoPorID uuid.UUID
}

// Permisos decide quién puede escribir asistencias/actividades de un
// horario. Solo lee, nunca escribe.
type Permisos struct {
	Directorio DirectorioHorarios
	Jefaturas  LookupJefaturas
}

func NewPermisos(directorio DirectorioHorarios, jefaturas LookupJefaturas) *Permisos {
	return &Permisos{Directorio: directorio, Jefaturas: jefaturas}
}

// AutorizarEscritura evalúa en orden:
//  1. el horario debe existir (NotFound gana a cualquier regla de rol)
//  2. admin y checador registran cualquier horario
//  3. un alumno solo si es jefe de grupo Y el horario pertenece a su grupo
//  4. todo lo demás (maestro incluido) queda denegado
func (p *Permisos) AutorizarEscritura(ctx context.Context, actor auth.Actor, horarioID uuid.UUID) (*Permitido, error) {
	info, err := p.Directorio.InfoHorario(ctx, horarioID)
	if err != nil {
		return nil, err
	}

	switch actor.Rol {
	case constants.RolAdmin, constants.RolChecador:
		return &Permitido{RegistradoPorID: actor.UsuarioID}, nil

	case constants.RolAlumno:
		ficha, err := p.Jefaturas.AlumnoPorUsuario(ctx, actor.UsuarioID)
		if err != nil {
			if errors.Is(err, alumnosvc.ErrAlumnoNoEncontrado) {
				return nil, ErrNoEsJefeDeGrupo
			}
			return nil, err
		}
		if !ficha.EsJefeGrupo {
			return nil, ErrNoEsJefeDeGrupo
		}

		grupoID, err := p.Jefaturas.GrupoLideradoPor(ctx, ficha.AlumnoID)
		if err != nil {
			if errors.Is(err, alumnosvc.ErrSinJefatura) {
				return nil, ErrJefeDeOtroGrupo
			}
			return nil, err
		}
		if grupoID != info.GrupoID {
			return nil, ErrJefeDeOtroGrupo
		}
		return &Permitido{RegistradoPorID: ficha.AlumnoID}, nil

	default:
		return nil, ErrRolNoAutorizado
	}
}
