package dto

import "github.com/tu-usuario/lecheria-api/internal/domain/entity"

// MilkingResponseFrom construye la representación de respuesta de un ordeño.
func MilkingResponseFrom(m *entity.Milking) MilkingResponse {
	return MilkingResponse{
		ID:          m.ID,
		CaptureMode: m.CaptureMode,
		Shift:       m.Shift,
		CowCount:    m.CowCount,
		TotalLiters: m.TotalLiters,
		Date:        m.Date,
		Time:        m.Time,
		EmployeeID:  m.EmployeeID,
		Notes:       m.Notes,
	}
}

// QualityTestResponseFrom construye la representación de una prueba de calidad.
func QualityTestResponseFrom(t *entity.QualityTest) QualityTestResponse {
	return QualityTestResponse{
		ID:                t.ID,
		TestID:            t.TestID,
		MilkingID:         t.MilkingID,
		FatPercentage:     t.FatPercentage,
		ProteinPercentage: t.ProteinPercentage,
		Lactose:           t.Lactose,
		Acidity:           t.Acidity,
		UFC:               t.UFC,
		Observations:      t.Observations,
		TestDate:          t.TestDate,
	}
}

// InventoryItemResponseFrom construye la representación de un item.
func InventoryItemResponseFrom(i *entity.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ID:        i.ID,
		BatchID:   i.BatchID,
		Quantity:  i.Quantity,
		Category:  i.Category,
		Status:    i.Status,
		MilkingID: i.MilkingID,
		Notes:     i.Notes,
		CreatedBy: i.CreatedBy,
	}
}

// MovementResponseFrom construye la representación de un movimiento.
func MovementResponseFrom(m *entity.InventoryMovement) MovementResponse {
	return MovementResponse{
		ID:              m.ID,
		InventoryItemID: m.InventoryItemID,
		Type:            m.Type,
		Quantity:        m.Quantity,
		Reason:          m.Reason,
		Notes:           m.Notes,
		CreatedBy:       m.CreatedBy,
		CreatedAt:       m.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
