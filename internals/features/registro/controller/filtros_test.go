// file: internals/features/registro/controller/filtros_test.go
package controller

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	"horarios_backend/internals/features/registro/model"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	if err != nil {
		t.Fatalf("no se pudo abrir la sesión dry-run: %v", err)
	}
	return db
}

func sqlDeAsistencias(t *testing.T, grupoID, maestroID *uuid.UUID) string {
	t.Helper()
	var rows []model.AsistenciaModel
	tx := filtrosPorHorario(
		dryRunDB(t).Model(&model.AsistenciaModel{}),
		"asistencias.asistencia_horario_id",
		grupoID, maestroID,
	).Find(&rows)
	if tx.Error != nil {
		t.Fatalf("error armando la query: %v", tx.Error)
	}
	return tx.Statement.SQL.String()
}

func TestFiltrosPorHorario_AmbosFiltrosUnSoloJoin(t *testing.T) {
	grupoID := uuid.New()
	maestroID := uuid.New()

	sql := sqlDeAsistencias(t, &grupoID, &maestroID)
	if got := strings.Count(sql, "JOIN horarios"); got != 1 {
		t.Fatalf("JOIN horarios aparece %d veces, debe aparecer una sola:\n%s", got, sql)
	}
	if !strings.Contains(sql, "horarios.horario_grupo_id") {
		t.Errorf("falta la condición de grupo:\n%s", sql)
	}
	if !strings.Contains(sql, "horarios.horario_maestro_id") {
		t.Errorf("falta la condición de maestro:\n%s", sql)
	}
}

func TestFiltrosPorHorario_UnFiltroUnJoin(t *testing.T) {
	id := uuid.New()

	casos := []struct {
		nombre    string
		grupoID   *uuid.UUID
		maestroID *uuid.UUID
		condicion string
	}{
		{"sólo grupo", &id, nil, "horarios.horario_grupo_id"},
		{"sólo maestro", nil, &id, "horarios.horario_maestro_id"},
	}
	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			sql := sqlDeAsistencias(t, tc.grupoID, tc.maestroID)
			if got := strings.Count(sql, "JOIN horarios"); got != 1 {
				t.Fatalf("JOIN horarios aparece %d veces:\n%s", got, sql)
			}
			if !strings.Contains(sql, tc.condicion) {
				t.Errorf("falta %s:\n%s", tc.condicion, sql)
			}
		})
	}
}

func TestFiltrosPorHorario_SinFiltrosSinJoin(t *testing.T) {
	sql := sqlDeAsistencias(t, nil, nil)
	if strings.Contains(sql, "JOIN horarios") {
		t.Fatalf("sin filtros no debe haber join:\n%s", sql)
	}
}

func TestFiltrosPorHorario_ActividadesMismaColumna(t *testing.T) {
	grupoID := uuid.New()
	maestroID := uuid.New()

	var rows []model.ActividadModel
	tx := filtrosPorHorario(
		dryRunDB(t).Model(&model.ActividadModel{}),
		"actividades.actividad_horario_id",
		&grupoID, &maestroID,
	).Find(&rows)
	if tx.Error != nil {
		t.Fatalf("error armando la query: %v", tx.Error)
	}
	sql := tx.Statement.SQL.String()
	if got := strings.Count(sql, "JOIN horarios"); got != 1 {
		t.Fatalf("JOIN horarios aparece %d veces:\n%s", got, sql)
	}
	if !strings.Contains(sql, "actividades.actividad_horario_id") {
		t.Errorf("el join debe colgar de la columna de actividades:\n%s", sql)
	}
}
