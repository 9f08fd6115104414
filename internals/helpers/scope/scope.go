package scope

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	escuelaModel "cesi_backend/internals/features/escuelas/model"
)

// EscuelasDeAdmin resuelve el conjunto de escuelas administrables del
// usuario autenticado: correo → administrador → escuelas. Todos los listados
// de administración filtran por este conjunto; una consulta fuera de alcance
// produce un resultado vacío, nunca filas de otra escuela.
func EscuelasDeAdmin(db *gorm.DB, adminEmail string) ([]uuid.UUID, error) {
	var admin escuelaModel.AdministradorModel
	err := db.Where("administrador_usuario = ?", adminEmail).First(&admin).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	var ids []uuid.UUID
	err = db.Model(&escuelaModel.EscuelaModel{}).
		Where("cesi_administrador_id = ?", admin.AdministradorID).
		Pluck("escuela_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Contiene reporta si id pertenece al conjunto de escuelas resuelto.
func Contiene(ids []uuid.UUID, id uuid.UUID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
