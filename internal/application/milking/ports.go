package milking

import (
	"context"

	"github.com/tu-usuario/lecheria-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el ordeño y sus registros
// individuales se escriben como una unidad: si los hijos fallan, el padre se
// revierte y el caller nunca ve un evento a medio construir.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		milkRepo repository.MilkingRepository,
		indRepo repository.IndividualMilkingRepository,
	) error) error
}
