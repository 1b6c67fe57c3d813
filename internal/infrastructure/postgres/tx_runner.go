package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/lecheria-api/internal/application/inventory"
	"github.com/tu-usuario/lecheria-api/internal/application/milking"
	"github.com/tu-usuario/lecheria-api/internal/domain"
	"github.com/tu-usuario/lecheria-api/internal/domain/repository"
)

// Ensure TxRunner implements milking.TxRunner and inventory.TxRunner.
var _ milking.TxRunner = (*MilkingTxRunner)(nil)
var _ inventory.TxRunner = (*InventoryTxRunner)(nil)

// MilkingTxRunner ejecuta las escrituras del ledger de producción dentro de
// una transacción PostgreSQL: ordeño + registros individuales como unidad.
type MilkingTxRunner struct {
	pool *pgxpool.Pool
}

// NewMilkingTxRunner construye el runner con el pool.
func NewMilkingTxRunner(pool *pgxpool.Pool) *MilkingTxRunner {
	return &MilkingTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Si fn reporta una ConsistencyError y el rollback también
// falla, el error de compensación viaja junto a la causa original.
func (r *MilkingTxRunner) Run(ctx context.Context, fn func(
	milkRepo repository.MilkingRepository,
	indRepo repository.IndividualMilkingRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(NewMilkingRepository(tx), NewIndividualMilkingRepository(tx)); err != nil {
		return rollbackWith(ctx, tx, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// InventoryTxRunner ejecuta la aplicación de movimientos de inventario dentro
// de una transacción PostgreSQL, con la fila del item bloqueada.
type InventoryTxRunner struct {
	pool *pgxpool.Pool
}

// NewInventoryTxRunner construye el runner con el pool.
func NewInventoryTxRunner(pool *pgxpool.Pool) *InventoryTxRunner {
	return &InventoryTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback.
func (r *InventoryTxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.InventoryItemRepository,
	movRepo repository.InventoryMovementRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(NewInventoryItemRepository(tx), NewInventoryMovementRepository(tx)); err != nil {
		return rollbackWith(ctx, tx, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// rollbackWith revierte la transacción tras un fallo de fn. Si el rollback
// también falla, ambos errores se reportan juntos: dentro de la
// ConsistencyError cuando aplica, con errors.Join en el resto.
func rollbackWith(ctx context.Context, tx interface {
	Rollback(ctx context.Context) error
}, fnErr error) error {
	rbErr := tx.Rollback(ctx)
	if rbErr == nil {
		return fnErr
	}
	var consistency *domain.ConsistencyError
	if errors.As(fnErr, &consistency) {
		consistency.Compensation = rbErr
		return consistency
	}
	return errors.Join(fnErr, rbErr)
}
