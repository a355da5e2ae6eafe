// file: internals/helpers/json_response_test.go
package helper

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestErroresDeCampos_MapeaPorCampo(t *testing.T) {
	type payload struct {
		Nombre string `validate:"required,min=3"`
		Email  string `validate:"required,email"`
	}

	err := validator.New().Struct(payload{Email: "no-es-email"})
	if err == nil {
		t.Fatal("se esperaba error de validación")
	}

	campos := ErroresDeCampos(err)
	if _, ok := campos["nombre"]; !ok {
		t.Errorf("falta el campo nombre en %v", campos)
	}
	if _, ok := campos["email"]; !ok {
		t.Errorf("falta el campo email en %v", campos)
	}
}

func TestErroresDeCampos_ErrorGenerico(t *testing.T) {
	campos := ErroresDeCampos(errors.New("body roto"))
	if got := campos["_body"]; len(got) != 1 || got[0] != "body roto" {
		t.Errorf("_body = %v, se esperaba el mensaje original", got)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if !IsUniqueViolation(errors.New(`ERROR: duplicate key value violates unique constraint "ux_asistencias_horario_fecha" (SQLSTATE 23505)`)) {
		t.Error("debía detectar la violación de unique")
	}
	if IsUniqueViolation(errors.New("connection refused")) {
		t.Error("no debía detectar un error de conexión")
	}
	if IsUniqueViolation(nil) {
		t.Error("nil no es violación")
	}
}
