package dto

import "github.com/shopspring/decimal"

// CreateInventoryItemRequest alta de un lote de leche en inventario.
type CreateInventoryItemRequest struct {
	BatchID   string          `json:"batch_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Category  string          `json:"category"`
	Status    string          `json:"status"`
	MilkingID string          `json:"milking_id,omitempty"`
	Notes     string          `json:"notes,omitempty"`
}

// RegisterMovementRequest movimiento de inventario sobre un lote.
type RegisterMovementRequest struct {
	InventoryItemID string          `json:"inventory_item_id"`
	Type            string          `json:"type"` // IN | OUT | ADJUSTMENT
	Quantity        decimal.Decimal `json:"quantity"`
	Reason          string          `json:"reason"`
	Notes           string          `json:"notes,omitempty"`
}

// InventoryItemResponse representación de un item en respuestas.
type InventoryItemResponse struct {
	ID        string          `json:"id"`
	BatchID   string          `json:"batch_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Category  string          `json:"category"`
	Status    string          `json:"status"`
	MilkingID string          `json:"milking_id,omitempty"`
	Notes     string          `json:"notes,omitempty"`
	CreatedBy string          `json:"created_by,omitempty"`
}

// MovementResponse representación de un movimiento en respuestas.
type MovementResponse struct {
	ID              string          `json:"id"`
	InventoryItemID string          `json:"inventory_item_id"`
	Type            string          `json:"type"`
	Quantity        decimal.Decimal `json:"quantity"`
	Reason          string          `json:"reason"`
	Notes           string          `json:"notes,omitempty"`
	CreatedBy       string          `json:"created_by,omitempty"`
	CreatedAt       string          `json:"created_at"`
}

// LowStockItemDTO item por debajo del umbral de stock bajo.
type LowStockItemDTO struct {
	ID       string          `json:"id"`
	BatchID  string          `json:"batch_id"`
	Quantity decimal.Decimal `json:"quantity"`
	Category string          `json:"category"`
}

// InventoryStatsResponse totales del inventario: por estado de cadena de
// frío, por categoría y lista de stock bajo. Cantidades en unidades enteras.
type InventoryStatsResponse struct {
	TotalQuantity int64             `json:"total_quantity"`
	ColdQuantity  int64             `json:"cold_quantity"`
	HotQuantity   int64             `json:"hot_quantity"`
	FreshMilk     int64             `json:"fresh_milk"`
	Processing    int64             `json:"processing"`
	Stored        int64             `json:"stored"`
	LowStockItems []LowStockItemDTO `json:"low_stock_items"`
}
