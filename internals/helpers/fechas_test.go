// file: internals/helpers/fechas_test.go
package helper

import (
	"testing"
	"time"
)

func fecha(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := ParseFecha(s)
	if err != nil {
		t.Fatalf("ParseFecha(%q): %v", s, err)
	}
	return parsed
}

func TestRangoDeFechas_CuatroCasos(t *testing.T) {
	casos := []struct {
		nombre    string
		inicio    string
		fin       string
		quiereGTE bool
		quiereLTE bool
	}{
		{"sin límites", "", "", false, false},
		{"ambos", "2024-01-01", "2024-01-31", true, true},
		{"sólo inicio", "2024-01-01", "", true, false},
		{"sólo fin", "", "2024-01-31", false, true},
	}

	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			r, err := RangoDeFechas(tc.inicio, tc.fin)
			if err != nil {
				t.Fatalf("error inesperado: %v", err)
			}
			if got := r.GTE != nil; got != tc.quiereGTE {
				t.Errorf("GTE presente = %v, se esperaba %v", got, tc.quiereGTE)
			}
			if got := r.LTE != nil; got != tc.quiereLTE {
				t.Errorf("LTE presente = %v, se esperaba %v", got, tc.quiereLTE)
			}
		})
	}
}

func TestRangoDeFechas_RangoInvertido(t *testing.T) {
	if _, err := RangoDeFechas("2024-02-01", "2024-01-01"); err == nil {
		t.Fatal("se esperaba error con fin < inicio")
	}
}

func TestRangoDeFechas_FechaInvalida(t *testing.T) {
	if _, err := RangoDeFechas("01/01/2024", ""); err == nil {
		t.Fatal("se esperaba error con formato distinto a YYYY-MM-DD")
	}
	if _, err := RangoDeFechas("", "ayer"); err == nil {
		t.Fatal("se esperaba error con fecha no parseable")
	}
}

func TestRangoFechas_ContieneEsInclusivo(t *testing.T) {
	r, err := RangoDeFechas("2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}

	casos := []struct {
		dia      string
		contiene bool
	}{
		{"2023-12-31", false},
		{"2024-01-01", true}, // límite inferior inclusivo
		{"2024-01-15", true},
		{"2024-01-31", true}, // límite superior inclusivo
		{"2024-02-01", false},
	}
	for _, tc := range casos {
		if got := r.Contiene(fecha(t, tc.dia)); got != tc.contiene {
			t.Errorf("Contiene(%s) = %v, se esperaba %v", tc.dia, got, tc.contiene)
		}
	}
}

func TestRangoFechas_SinLimitesContieneTodo(t *testing.T) {
	var r RangoFechas
	for _, dia := range []string{"1900-01-01", "2024-06-15", "2999-12-31"} {
		if !r.Contiene(fecha(t, dia)) {
			t.Errorf("rango vacío debería contener %s", dia)
		}
	}
}
