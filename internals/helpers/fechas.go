// file: internals/helpers/fechas.go
package helper

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

const LayoutFecha = "2006-01-02" // DATE

// ParseFecha parsea "YYYY-MM-DD" (sólo fecha, sin hora).
func ParseFecha(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("fecha vacía")
	}
	t, err := time.Parse(LayoutFecha, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("formato de fecha inválido (se espera YYYY-MM-DD): %w", err)
	}
	return t, nil
}

/* =======================================================
   RangoFechas — predicado {gte?, lte?} para los listados
   =======================================================
   Cuatro casos sobre ?start_date= y ?end_date=:
   - ninguno  → sin restricción
   - ambos    → rango inclusivo [start, end]
   - sólo gte → fecha >= start
   - sólo lte → fecha <= end
*/

type RangoFechas struct {
	GTE *time.Time
	LTE *time.Time
}

// RangoDeFechas construye el predicado a partir de strings opcionales ("" = sin límite).
func RangoDeFechas(inicio, fin string) (RangoFechas, error) {
	var r RangoFechas
	if strings.TrimSpace(inicio) != "" {
		t, err := ParseFecha(inicio)
		if err != nil {
			return RangoFechas{}, fmt.Errorf("start_date: %w", err)
		}
		r.GTE = &t
	}
	if strings.TrimSpace(fin) != "" {
		t, err := ParseFecha(fin)
		if err != nil {
			return RangoFechas{}, fmt.Errorf("end_date: %w", err)
		}
		r.LTE = &t
	}
	if r.GTE != nil && r.LTE != nil && r.LTE.Before(*r.GTE) {
		return RangoFechas{}, errors.New("end_date debe ser >= start_date")
	}
	return r, nil
}

// Contiene evalúa el predicado sobre una fecha (inclusive en ambos extremos).
func (r RangoFechas) Contiene(t time.Time) bool {
	if r.GTE != nil && t.Before(*r.GTE) {
		return false
	}
	if r.LTE != nil && t.After(*r.LTE) {
		return false
	}
	return true
}

// Aplicar agrega las condiciones a una query GORM sobre la columna dada.
func (r RangoFechas) Aplicar(db *gorm.DB, columna string) *gorm.DB {
	if r.GTE != nil {
		db = db.Where(columna+" >= ?", *r.GTE)
	}
	if r.LTE != nil {
		db = db.Where(columna+" <= ?", *r.LTE)
	}
	return db
}
