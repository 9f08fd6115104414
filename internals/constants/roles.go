package constants

import "fmt"

// Roles del sistema. Conjunto cerrado: cualquier otro valor se rechaza al
// registrar o autenticar.
const (
	RoleAdmin       = "admin"
	RoleTutor       = "tutor"
	RoleMaestro     = "maestro"
	RoleResponsable = "responsable"
)

var AllRoles = []string{
	RoleAdmin,
	RoleTutor,
	RoleMaestro,
	RoleResponsable,
}

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Plantillas de error por rol
const (
	ErrOnlyAdminsCanAccess   = "Solo un administrador puede acceder a %s."
	ErrOnlyMaestrosCanAccess = "Solo un maestro puede acceder a %s."
	ErrOnlyTutoresCanAccess  = "Solo un tutor puede acceder a %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorMaestro(feature string) string {
	return fmt.Sprintf(ErrOnlyMaestrosCanAccess, feature)
}

func RoleErrorTutor(feature string) string {
	return fmt.Sprintf(ErrOnlyTutoresCanAccess, feature)
}
