package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrForbidden         = errors.New("acceso denegado")
	ErrInsufficientStock = errors.New("cantidad insuficiente en inventario")
)

// ConsistencyError indica que la escritura de registros hijos falló después de
// escribir el registro padre. Cause es el error original; Compensation es el
// error del rollback/borrado compensatorio si este también falló (nil si la
// compensación fue exitosa). El caller nunca ve un ordeño a medio construir.
type ConsistencyError struct {
	Cause        error
	Compensation error
}

func (e *ConsistencyError) Error() string {
	if e.Compensation != nil {
		return fmt.Sprintf("inconsistencia: %v (compensación también falló: %v)", e.Cause, e.Compensation)
	}
	return fmt.Sprintf("inconsistencia: %v (padre revertido)", e.Cause)
}

// Unwrap expone la causa original para errors.Is/errors.As.
func (e *ConsistencyError) Unwrap() error { return e.Cause }
