// Package pdf implementa la generación del reporte diario de producción.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Reporte de Producción + Fecha                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: Litros totales | AM | PM | Vacas activas             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Hora | Turno | Modo | Vacas | Litros | Empleado     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/lecheria-api/internal/application/analytics"
	"github.com/tu-usuario/lecheria-api/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 13, Green: 94, Blue: 56}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// DailyReportGenerator implementa analytics.ReportGenerator usando Maroto v2.
type DailyReportGenerator struct{}

// NewDailyReportGenerator construye el generador.
func NewDailyReportGenerator() *DailyReportGenerator { return &DailyReportGenerator{} }

// GenerateDailyReport genera el PDF del reporte y devuelve sus bytes.
func (g *DailyReportGenerator) GenerateDailyReport(_ context.Context, data *analytics.DailyReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Producción", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpiRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(data.Milkings) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título del reporte y fecha.
func headerRow(data *analytics.DailyReportData) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("REPORTE DIARIO DE PRODUCCIÓN", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Fecha: "+data.Date, props.Text{
				Size: 10, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

// kpiRow: litros totales, desglose por turno y vacas activas.
func kpiRow(data *analytics.DailyReportData) core.Row {
	kpi := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 8, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 6}),
		)
	}
	return row.New(14).Add(
		kpi("Litros totales", data.TotalLiters.StringFixed(2)+" L"),
		kpi("Turno AM", fmt.Sprintf("%s L (%d ordeños)", data.AM.Liters.StringFixed(2), data.AM.Count)),
		kpi("Turno PM", fmt.Sprintf("%s L (%d ordeños)", data.PM.Liters.StringFixed(2), data.PM.Count)),
		kpi("Vacas activas", fmt.Sprintf("%d", data.ActiveCows)),
	)
}

// tableHeaderRow: cabecera de la tabla de ordeños.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Hora", 2, align.Left),
		h("Turno", 1, align.Center),
		h("Modo", 3, align.Left),
		h("Vacas", 2, align.Center),
		h("Litros", 2, align.Right),
		h("Empleado", 2, align.Left),
	)
}

// tableRows: una fila por ordeño del día.
func tableRows(milkings []dto.MilkingResponse) []core.Row {
	result := make([]core.Row, 0, len(milkings))
	for _, m := range milkings {
		employee := m.EmployeeID
		if employee == "" {
			employee = "—"
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(m.Time, props.Text{Size: 8, Top: 1})),
			col.New(1).Add(text.New(m.Shift, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(m.CaptureMode, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", m.CowCount), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(m.TotalLiters.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(employee, props.Text{Size: 8, Top: 1})),
		))
	}
	return result
}
