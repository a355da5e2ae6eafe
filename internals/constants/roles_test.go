package constants

import "testing"

func TestParseRol(t *testing.T) {
	for _, rol := range TodosLosRoles {
		got, err := ParseRol(string(rol))
		if err != nil {
			t.Errorf("ParseRol(%q): error inesperado %v", rol, err)
		}
		if got != rol {
			t.Errorf("ParseRol(%q) = %q", rol, got)
		}
	}
}

func TestParseRol_RechazaDesconocidos(t *testing.T) {
	for _, s := range []string{"", "Admin", "ADMIN", "root", "jefe", "alumno "} {
		if _, err := ParseRol(s); err == nil {
			t.Errorf("ParseRol(%q) debía fallar", s)
		}
	}
}

func TestRolValido(t *testing.T) {
	if !RolChecador.Valido() {
		t.Error("checador debía ser válido")
	}
	if Rol("superuser").Valido() {
		t.Error("superuser no debía ser válido")
	}
}
