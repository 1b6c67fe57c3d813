package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/lecheria-api/internal/application/dto"
	"github.com/tu-usuario/lecheria-api/internal/domain"
	"github.com/tu-usuario/lecheria-api/internal/domain/entity"
	"github.com/tu-usuario/lecheria-api/internal/domain/repository"
)

// lowStockThreshold umbral fijo de stock bajo en unidades (constante de
// política, no configurable por tenant).
const lowStockThreshold = 1000

// UseCase es el ledger de inventario: alta de lotes, aplicación de
// movimientos sobre el caché de cantidad y estadísticas por estado y
// categoría.
type UseCase struct {
	txRunner TxRunner
	itemRepo repository.InventoryItemRepository
	movRepo  repository.InventoryMovementRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	itemRepo repository.InventoryItemRepository,
	movRepo repository.InventoryMovementRepository,
) *UseCase {
	return &UseCase{txRunner: txRunner, itemRepo: itemRepo, movRepo: movRepo}
}

// CreateItem da de alta un lote. El batch_id es único por empresa: otro
// tenant puede reutilizar el mismo valor. La cantidad inicial se trata como
// una entrada implícita, sin movimiento separado.
func (uc *UseCase) CreateItem(ctx context.Context, companyID, employeeID string, in dto.CreateInventoryItemRequest) (*entity.InventoryItem, error) {
	if in.BatchID == "" || in.Quantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if !validCategory(in.Category) || !validStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.itemRepo.GetByBatchID(companyID, in.BatchID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	item := &entity.InventoryItem{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		BatchID:   in.BatchID,
		Quantity:  in.Quantity,
		Category:  in.Category,
		Status:    in.Status,
		MilkingID: in.MilkingID,
		Notes:     in.Notes,
		CreatedBy: employeeID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// RegisterMovement aplica un movimiento a un lote dentro de una transacción:
// bloquea la fila del item, valida stock suficiente en OUT, persiste el
// movimiento (append-only) y actualiza el caché de cantidad. IN suma, OUT
// resta, ADJUSTMENT fija el valor absoluto.
func (uc *UseCase) RegisterMovement(ctx context.Context, companyID, employeeID string, in dto.RegisterMovementRequest) (*entity.InventoryMovement, error) {
	switch in.Type {
	case entity.MovementTypeIN, entity.MovementTypeOUT:
		if !in.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	case entity.MovementTypeADJUSTMENT:
		if in.Quantity.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	default:
		return nil, domain.ErrInvalidInput
	}
	if in.InventoryItemID == "" {
		return nil, domain.ErrInvalidInput
	}

	movement := &entity.InventoryMovement{
		ID:              uuid.New().String(),
		CompanyID:       companyID,
		InventoryItemID: in.InventoryItemID,
		Type:            in.Type,
		Quantity:        in.Quantity,
		Reason:          in.Reason,
		Notes:           in.Notes,
		CreatedBy:       employeeID,
		CreatedAt:       time.Now(),
	}

	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.InventoryItemRepository,
		movRepo repository.InventoryMovementRepository,
	) error {
		item, err := itemRepo.GetForUpdate(companyID, in.InventoryItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		var newQuantity decimal.Decimal
		switch in.Type {
		case entity.MovementTypeIN:
			newQuantity = item.Quantity.Add(in.Quantity)
		case entity.MovementTypeOUT:
			if item.Quantity.LessThan(in.Quantity) {
				return domain.ErrInsufficientStock
			}
			newQuantity = item.Quantity.Sub(in.Quantity)
		case entity.MovementTypeADJUSTMENT:
			newQuantity = in.Quantity
		}

		if err := movRepo.Create(movement); err != nil {
			return fmt.Errorf("crear movimiento: %w", err)
		}
		if err := itemRepo.UpdateQuantity(companyID, item.ID, newQuantity); err != nil {
			return &domain.ConsistencyError{Cause: err}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return movement, nil
}

// List devuelve los items del tenant, más recientes primero.
func (uc *UseCase) List(ctx context.Context, companyID string) ([]*entity.InventoryItem, error) {
	return uc.itemRepo.List(companyID)
}

// Get devuelve un item del tenant.
func (uc *UseCase) Get(ctx context.Context, companyID, id string) (*entity.InventoryItem, error) {
	item, err := uc.itemRepo.GetByID(companyID, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

// Movements devuelve el log de movimientos del tenant; itemID vacío lista
// todos.
func (uc *UseCase) Movements(ctx context.Context, companyID, itemID string) ([]*entity.InventoryMovement, error) {
	return uc.movRepo.List(companyID, itemID)
}

// Stats calcula los totales del inventario: cantidad total, por estado de
// cadena de frío, por categoría y la lista de lotes bajo el umbral de stock
// bajo. Acumula en precisión completa y redondea solo al final.
func (uc *UseCase) Stats(ctx context.Context, companyID string) (*dto.InventoryStatsResponse, error) {
	items, err := uc.itemRepo.List(companyID)
	if err != nil {
		return nil, err
	}

	total, cold, hot := decimal.Zero, decimal.Zero, decimal.Zero
	byCategory := map[string]decimal.Decimal{}
	lowStock := []dto.LowStockItemDTO{}
	threshold := decimal.NewFromInt(lowStockThreshold)

	for _, item := range items {
		total = total.Add(item.Quantity)
		switch item.Status {
		case entity.StatusCold:
			cold = cold.Add(item.Quantity)
		case entity.StatusHot:
			hot = hot.Add(item.Quantity)
		}
		category := item.Category
		if category == "" {
			category = entity.CategoryFreshMilk
		}
		byCategory[category] = byCategory[category].Add(item.Quantity)

		if item.Quantity.LessThan(threshold) {
			lowStock = append(lowStock, dto.LowStockItemDTO{
				ID:       item.ID,
				BatchID:  item.BatchID,
				Quantity: item.Quantity,
				Category: item.Category,
			})
		}
	}

	return &dto.InventoryStatsResponse{
		TotalQuantity: total.Round(0).IntPart(),
		ColdQuantity:  cold.Round(0).IntPart(),
		HotQuantity:   hot.Round(0).IntPart(),
		FreshMilk:     byCategory[entity.CategoryFreshMilk].Round(0).IntPart(),
		Processing:    byCategory[entity.CategoryProcessing].Round(0).IntPart(),
		Stored:        byCategory[entity.CategoryStored].Round(0).IntPart(),
		LowStockItems: lowStock,
	}, nil
}

func validCategory(c string) bool {
	return c == entity.CategoryFreshMilk || c == entity.CategoryProcessing || c == entity.CategoryStored
}

func validStatus(s string) bool {
	return s == entity.StatusCold || s == entity.StatusHot
}
