// file: internals/features/registro/service/registro_flujo_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"horarios_backend/internals/constants"
)

/* =======================================================
   Flujo completo: autorizar → upsert por (horario, fecha)
   =======================================================
   El store real es Postgres con índice único compuesto +
   ON CONFLICT DO UPDATE; aquí se reproduce su contrato con
   un mapa en memoria para verificar la semántica de clave
   natural junto con el resolver.
*/

type claveSesion struct {
	horarioID uuid.UUID
	fecha     string
}

type filaAsistencia struct {
	presente      bool
	observaciones *string
	registradoPor uuid.UUID
}

type memoriaAsistencias struct {
	filas map[claveSesion]filaAsistencia
}

func nuevaMemoriaAsistencias() *memoriaAsistencias {
	return &memoriaAsistencias{filas: map[claveSesion]filaAsistencia{}}
}

// Upsert sobreescribe la fila si la clave ya existe, igual que el
// INSERT ... ON CONFLICT DO UPDATE del store real.
func (m *memoriaAsistencias) Upsert(horarioID uuid.UUID, fecha string, presente bool, observaciones *string, registradoPor uuid.UUID) {
	m.filas[claveSesion{horarioID: horarioID, fecha: fecha}] = filaAsistencia{
		presente:      presente,
		observaciones: observaciones,
		registradoPor: registradoPor,
	}
}

func TestFlujo_JefeReenviaYNoDuplica(t *testing.T) {
	e := nuevoEscenario()
	store := nuevaMemoriaAsistencias()
	ctx := context.Background()

	a := actor(e.usuarioJefe, constants.RolAlumno)

	// primer envío: presente
	permitido, err := e.permisos.AutorizarEscritura(ctx, a, e.horarioID)
	if err != nil {
		t.Fatalf("primer envío no autorizado: %v", err)
	}
	store.Upsert(e.horarioID, "2024-03-11", true, nil, permitido.RegistradoPorID)

	// reenvío de la misma sesión: corrige a ausente
	permitido, err = e.permisos.AutorizarEscritura(ctx, a, e.horarioID)
	if err != nil {
		t.Fatalf("reenvío no autorizado: %v", err)
	}
	obs := "el maestro no llegó"
	store.Upsert(e.horarioID, "2024-03-11", false, &obs, permitido.RegistradoPorID)

	if len(store.filas) != 1 {
		t.Fatalf("filas = %d, la clave (horario, fecha) debe producir una sola", len(store.filas))
	}
	fila := store.filas[claveSesion{horarioID: e.horarioID, fecha: "2024-03-11"}]
	if fila.presente {
		t.Error("el reenvío debía dejar presente = false")
	}
	if fila.observaciones == nil || *fila.observaciones != obs {
		t.Error("el reenvío debía sobreescribir las observaciones")
	}
	if fila.registradoPor != e.alumnoJefe {
		t.Errorf("registradoPor = %s, se esperaba el alumno jefe %s", fila.registradoPor, e.alumnoJefe)
	}
}

func TestFlujo_FechasDistintasSonFilasDistintas(t *testing.T) {
	e := nuevoEscenario()
	store := nuevaMemoriaAsistencias()
	ctx := context.Background()

	permitido, err := e.permisos.AutorizarEscritura(ctx, actor(e.usuarioJefe, constants.RolAlumno), e.horarioID)
	if err != nil {
		t.Fatalf("no autorizado: %v", err)
	}
	store.Upsert(e.horarioID, "2024-03-11", true, nil, permitido.RegistradoPorID)
	store.Upsert(e.horarioID, "2024-03-12", true, nil, permitido.RegistradoPorID)

	if len(store.filas) != 2 {
		t.Fatalf("filas = %d, fechas distintas no deben colapsar", len(store.filas))
	}
}

func TestFlujo_ChecadorSobreescribeLoDelJefe(t *testing.T) {
	e := nuevoEscenario()
	store := nuevaMemoriaAsistencias()
	ctx := context.Background()

	// el jefe registra primero
	permitido, err := e.permisos.AutorizarEscritura(ctx, actor(e.usuarioJefe, constants.RolAlumno), e.horarioID)
	if err != nil {
		t.Fatalf("jefe no autorizado: %v", err)
	}
	store.Upsert(e.horarioID, "2024-03-11", true, nil, permitido.RegistradoPorID)

	// el checador pasa después y corrige
	usuarioChecador := uuid.New()
	permitido, err = e.permisos.AutorizarEscritura(ctx, actor(usuarioChecador, constants.RolChecador), e.horarioID)
	if err != nil {
		t.Fatalf("checador no autorizado: %v", err)
	}
	store.Upsert(e.horarioID, "2024-03-11", false, nil, permitido.RegistradoPorID)

	if len(store.filas) != 1 {
		t.Fatalf("filas = %d, se esperaba una", len(store.filas))
	}
	fila := store.filas[claveSesion{horarioID: e.horarioID, fecha: "2024-03-11"}]
	if fila.registradoPor != usuarioChecador {
		t.Errorf("registradoPor = %s, el último en escribir fue el checador %s", fila.registradoPor, usuarioChecador)
	}

	// el jefe de otro grupo nunca llega al store
	permisosAjenos := nuevoEscenario()
	if _, err := permisosAjenos.permisos.AutorizarEscritura(ctx, actor(permisosAjenos.usuarioJefe, constants.RolAlumno), permisosAjenos.otroHorarioID); err == nil {
		t.Fatal("el jefe de otro grupo no debía quedar autorizado")
	}
}
