package inventory

import (
	"context"

	"github.com/tu-usuario/lecheria-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. La aplicación de un movimiento bloquea la
// fila del item (SELECT FOR UPDATE), escribe el movimiento y actualiza el
// caché de cantidad como una sola unidad: historia y cantidad nunca divergen.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.InventoryItemRepository,
		movRepo repository.InventoryMovementRepository,
	) error) error
}
