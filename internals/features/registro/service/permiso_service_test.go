// file: internals/features/registro/service/permiso_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"horarios_backend/internals/constants"
	alumnosvc "horarios_backend/internals/features/escuela/alumnos/service"
	horariosvc "horarios_backend/internals/features/escuela/horarios/service"
	"horarios_backend/internals/middlewares/auth"
)

// ==========================
// Fakes sobre las interfaces
// ==========================

type fakeDirectorio struct {
	horarios map[uuid.UUID]*horariosvc.InfoHorario
}

func (f *fakeDirectorio) InfoHorario(_ context.Context, horarioID uuid.UUID) (*horariosvc.InfoHorario, error) {
	info, ok := f.horarios[horarioID]
	if !ok {
		return nil, horariosvc.ErrHorarioNoEncontrado
	}
	return info, nil
}

type fakeJefaturas struct {
	fichasPorUsuario map[uuid.UUID]*alumnosvc.FichaAlumno
	grupoPorJefe     map[uuid.UUID]uuid.UUID
}

func (f *fakeJefaturas) AlumnoPorUsuario(_ context.Context, usuarioID uuid.UUID) (*alumnosvc.FichaAlumno, error) {
	ficha, ok := f.fichasPorUsuario[usuarioID]
	if !ok {
		return nil, alumnosvc.ErrAlumnoNoEncontrado
	}
	return ficha, nil
}

func (f *fakeJefaturas) GrupoLideradoPor(_ context.Context, alumnoID uuid.UUID) (uuid.UUID, error) {
	grupoID, ok := f.grupoPorJefe[alumnoID]
	if !ok {
		return uuid.Nil, alumnosvc.ErrSinJefatura
	}
	return grupoID, nil
}

// ==========================
// Escenario base
// ==========================

type escenario struct {
	permisos *Permisos

	horarioID      uuid.UUID
	otroHorarioID  uuid.UUID
	grupoID        uuid.UUID
	otroGrupoID    uuid.UUID
	usuarioJefe    uuid.UUID
	alumnoJefe     uuid.UUID
	usuarioComun   uuid.UUID
	alumnoComun    uuid.UUID
	usuarioSinFila uuid.UUID
}

// nuevoEscenario arma dos grupos con un horario cada uno, un jefe del
// primer grupo y un alumno común del mismo grupo.
func nuevoEscenario() *escenario {
	e := &escenario{
		horarioID:      uuid.New(),
		otroHorarioID:  uuid.New(),
		grupoID:        uuid.New(),
		otroGrupoID:    uuid.New(),
		usuarioJefe:    uuid.New(),
		alumnoJefe:     uuid.New(),
		usuarioComun:   uuid.New(),
		alumnoComun:    uuid.New(),
		usuarioSinFila: uuid.New(),
	}

	directorio := &fakeDirectorio{horarios: map[uuid.UUID]*horariosvc.InfoHorario{
		e.horarioID:     {HorarioID: e.horarioID, GrupoID: e.grupoID},
		e.otroHorarioID: {HorarioID: e.otroHorarioID, GrupoID: e.otroGrupoID},
	}}
	jefaturas := &fakeJefaturas{
		fichasPorUsuario: map[uuid.UUID]*alumnosvc.FichaAlumno{
			e.usuarioJefe:  {AlumnoID: e.alumnoJefe, GrupoID: e.grupoID, EsJefeGrupo: true},
			e.usuarioComun: {AlumnoID: e.alumnoComun, GrupoID: e.grupoID, EsJefeGrupo: false},
		},
		grupoPorJefe: map[uuid.UUID]uuid.UUID{
			e.alumnoJefe: e.grupoID,
		},
	}

	e.permisos = NewPermisos(directorio, jefaturas)
	return e
}

func actor(usuarioID uuid.UUID, rol constants.Rol) auth.Actor {
	return auth.Actor{UsuarioID: usuarioID, Rol: rol}
}

// ==========================
// Tests
// ==========================

func TestAutorizarEscritura_HorarioInexistenteGanaATodo(t *testing.T) {
	e := nuevoEscenario()
	inexistente := uuid.New()

	// incluso admin recibe NotFound si el horario no existe
	roles := []constants.Rol{constants.RolAdmin, constants.RolChecador, constants.RolAlumno, constants.RolMaestro}
	for _, rol := range roles {
		_, err := e.permisos.AutorizarEscritura(context.Background(), actor(uuid.New(), rol), inexistente)
		if !errors.Is(err, horariosvc.ErrHorarioNoEncontrado) {
			t.Errorf("rol %s: se esperaba ErrHorarioNoEncontrado, se obtuvo %v", rol, err)
		}
	}
}

func TestAutorizarEscritura_AdminYChecadorSiempre(t *testing.T) {
	e := nuevoEscenario()

	for _, rol := range []constants.Rol{constants.RolAdmin, constants.RolChecador} {
		usuarioID := uuid.New()
		permitido, err := e.permisos.AutorizarEscritura(context.Background(), actor(usuarioID, rol), e.horarioID)
		if err != nil {
			t.Fatalf("rol %s: error inesperado %v", rol, err)
		}
		if permitido.RegistradoPorID != usuarioID {
			t.Errorf("rol %s: RegistradoPorID = %s, se esperaba el usuario %s", rol, permitido.RegistradoPorID, usuarioID)
		}
	}
}

func TestAutorizarEscritura_MaestroDenegado(t *testing.T) {
	e := nuevoEscenario()

	_, err := e.permisos.AutorizarEscritura(context.Background(), actor(uuid.New(), constants.RolMaestro), e.horarioID)
	if !errors.Is(err, ErrRolNoAutorizado) {
		t.Fatalf("se esperaba ErrRolNoAutorizado, se obtuvo %v", err)
	}
}

func TestAutorizarEscritura_RolDesconocidoDenegado(t *testing.T) {
	e := nuevoEscenario()

	_, err := e.permisos.AutorizarEscritura(context.Background(), actor(uuid.New(), constants.Rol("superuser")), e.horarioID)
	if !errors.Is(err, ErrRolNoAutorizado) {
		t.Fatalf("se esperaba ErrRolNoAutorizado, se obtuvo %v", err)
	}
}

func TestAutorizarEscritura_AlumnoSinFichaDenegado(t *testing.T) {
	e := nuevoEscenario()

	_, err := e.permisos.AutorizarEscritura(context.Background(), actor(e.usuarioSinFila, constants.RolAlumno), e.horarioID)
	if !errors.Is(err, ErrNoEsJefeDeGrupo) {
		t.Fatalf("se esperaba ErrNoEsJefeDeGrupo, se obtuvo %v", err)
	}
}

func TestAutorizarEscritura_AlumnoComunDenegado(t *testing.T) {
	e := nuevoEscenario()

	_, err := e.permisos.AutorizarEscritura(context.Background(), actor(e.usuarioComun, constants.RolAlumno), e.horarioID)
	if !errors.Is(err, ErrNoEsJefeDeGrupo) {
		t.Fatalf("se esperaba ErrNoEsJefeDeGrupo, se obtuvo %v", err)
	}
}

func TestAutorizarEscritura_JefeDeSuGrupoPermitido(t *testing.T) {
	e := nuevoEscenario()

	permitido, err := e.permisos.AutorizarEscritura(context.Background(), actor(e.usuarioJefe, constants.RolAlumno), e.horarioID)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	// queda el id del alumno, no el de su cuenta de usuario
	if permitido.RegistradoPorID != e.alumnoJefe {
		t.Errorf("RegistradoPorID = %s, se esperaba el alumno %s", permitido.RegistradoPorID, e.alumnoJefe)
	}
}

func TestAutorizarEscritura_JefeDeOtroGrupoDenegado(t *testing.T) {
	e := nuevoEscenario()

	_, err := e.permisos.AutorizarEscritura(context.Background(), actor(e.usuarioJefe, constants.RolAlumno), e.otroHorarioID)
	if !errors.Is(err, ErrJefeDeOtroGrupo) {
		t.Fatalf("se esperaba ErrJefeDeOtroGrupo, se obtuvo %v", err)
	}
}

func TestAutorizarEscritura_FlagSinReferenciaDenegado(t *testing.T) {
	// el flag del alumno dice jefe, pero ningún grupo lo referencia:
	// la referencia del grupo es la fuente de verdad
	e := nuevoEscenario()
	usuarioHuerfano := uuid.New()
	alumnoHuerfano := uuid.New()

	jefaturas := &fakeJefaturas{
		fichasPorUsuario: map[uuid.UUID]*alumnosvc.FichaAlumno{
			usuarioHuerfano: {AlumnoID: alumnoHuerfano, GrupoID: e.grupoID, EsJefeGrupo: true},
		},
		grupoPorJefe: map[uuid.UUID]uuid.UUID{},
	}
	directorio := &fakeDirectorio{horarios: map[uuid.UUID]*horariosvc.InfoHorario{
		e.horarioID: {HorarioID: e.horarioID, GrupoID: e.grupoID},
	}}
	permisos := NewPermisos(directorio, jefaturas)

	_, err := permisos.AutorizarEscritura(context.Background(), actor(usuarioHuerfano, constants.RolAlumno), e.horarioID)
	if !errors.Is(err, ErrJefeDeOtroGrupo) {
		t.Fatalf("se esperaba ErrJefeDeOtroGrupo, se obtuvo %v", err)
	}
}

func TestAutorizarEscritura_SinEfectosSecundarios(t *testing.T) {
	// autorizar dos veces con los mismos datos produce el mismo resultado
	e := nuevoEscenario()

	a := actor(e.usuarioJefe, constants.RolAlumno)
	primero, err := e.permisos.AutorizarEscritura(context.Background(), a, e.horarioID)
	if err != nil {
		t.Fatalf("primera llamada: %v", err)
	}
	segundo, err := e.permisos.AutorizarEscritura(context.Background(), a, e.horarioID)
	if err != nil {
		t.Fatalf("segunda llamada: %v", err)
	}
	if primero.RegistradoPorID != segundo.RegistradoPorID {
		t.Errorf("resultados distintos: %s vs %s", primero.RegistradoPorID, segundo.RegistradoPorID)
	}
}
