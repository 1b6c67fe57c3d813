package repository

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/lecheria-api/internal/domain/entity"
)

// InventoryItemRepository define el puerto de persistencia de items de
// inventario. La cantidad cacheada solo se actualiza vía UpdateQuantity,
// dentro de la misma transacción que creó el movimiento.
type InventoryItemRepository interface {
	Create(item *entity.InventoryItem) error
	GetByID(companyID, id string) (*entity.InventoryItem, error)
	GetByBatchID(companyID, batchID string) (*entity.InventoryItem, error)
	// GetForUpdate bloquea la fila del item (SELECT FOR UPDATE) para
	// serializar la aplicación de movimientos por item.
	GetForUpdate(companyID, id string) (*entity.InventoryItem, error)
	List(companyID string) ([]*entity.InventoryItem, error)
	UpdateQuantity(companyID, id string, quantity decimal.Decimal) error
	Delete(companyID, id string) error
}

// InventoryMovementRepository define el puerto del log de movimientos.
// Append-only: sin update ni delete.
type InventoryMovementRepository interface {
	Create(movement *entity.InventoryMovement) error
	// List devuelve movimientos más recientes primero; itemID vacío lista
	// todos los del tenant.
	List(companyID, itemID string) ([]*entity.InventoryMovement, error)
}
