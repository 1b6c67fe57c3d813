// Package milking contiene servicios de dominio del ledger de producción.
package milking

import "github.com/shopspring/decimal"

// AllocatePerCow reparte un total medido entre n vacas en partes iguales,
// redondeado a 2 decimales. El reparto es deliberadamente lossy: el ordeño
// conserva el total original, no la suma redondeada (450/12 = 37.50 exacto,
// pero 100/3 = 33.33 y la suma queda en 99.99).
func AllocatePerCow(totalLiters decimal.Decimal, cowCount int) decimal.Decimal {
	if cowCount <= 0 {
		return decimal.Zero
	}
	return totalLiters.Div(decimal.NewFromInt(int64(cowCount))).Round(2)
}

// Reconciled verifica el invariante de suma de un ordeño con hijos:
// |total - suma(hijos)| <= 0.01 * cowCount (redondeo acumulado del reparto
// por promedio). Para ITEMIZED la suma es exacta y la tolerancia sobra.
func Reconciled(totalLiters, recordsSum decimal.Decimal, cowCount int) bool {
	tolerance := decimal.NewFromFloat(0.01).Mul(decimal.NewFromInt(int64(cowCount)))
	return totalLiters.Sub(recordsSum).Abs().LessThanOrEqual(tolerance)
}
