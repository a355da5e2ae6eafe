package constants

import "fmt"

// Rol es un tipo cerrado: todo rol entra al sistema por ParseRol y los
// switches sobre Rol tratan cualquier otro valor como no autorizado.
type Rol string

const (
	RolAdmin    Rol = "admin"
	RolChecador Rol = "checador" // registra asistencia de cualquier horario
	RolMaestro  Rol = "maestro"
	RolAlumno   Rol = "alumno"
)

var TodosLosRoles = []Rol{
	RolAdmin,
	RolChecador,
	RolMaestro,
	RolAlumno,
}

// ParseRol rechaza cualquier rol desconocido.
func ParseRol(s string) (Rol, error) {
	switch Rol(s) {
	case RolAdmin, RolChecador, RolMaestro, RolAlumno:
		return Rol(s), nil
	default:
		return "", fmt.Errorf("rol desconocido: %q", s)
	}
}

func (r Rol) Valido() bool {
	_, err := ParseRol(string(r))
	return err == nil
}

// Mensajes de error por rol
const (
	ErrSoloAdmin         = "❌ Sólo admin puede acceder a %s."
	ErrSoloAdminChecador = "❌ Sólo admin o checador pueden acceder a %s."
	ErrSoloPersonal      = "❌ Sólo personal (admin, checador o maestro) puede acceder a %s."
)

func RolErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrSoloAdmin, feature)
}

func RolErrorAdminChecador(feature string) string {
	return fmt.Sprintf(ErrSoloAdminChecador, feature)
}

func RolErrorPersonal(feature string) string {
	return fmt.Sprintf(ErrSoloPersonal, feature)
}

// ==========================
// Grupos de roles para rutas
// ==========================
var (
	SoloAdmin = []Rol{
		RolAdmin,
	}

	AdminYChecador = []Rol{
		RolAdmin,
		RolChecador,
	}

	Personal = []Rol{
		RolAdmin,
		RolChecador,
		RolMaestro,
	}
)
