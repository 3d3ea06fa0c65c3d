// Package pdf implementa la exportación del inventario valorado a PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Razón Social + NIT  │  Título + Fecha de corte     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Artículo | Disponible | Costo prom. | Valor   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL: valor FIFO en libros de todo el inventario          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/erp-inventory/internal/application/dto"
	"github.com/jhoicas/erp-inventory/internal/application/report"
	"github.com/jhoicas/erp-inventory/internal/domain/entity"
)

var _ report.ValuationPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa report.ValuationPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateValuationPDF genera el PDF del inventario valorado y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateValuationPDF(
	_ context.Context,
	company *entity.Company,
	rows []dto.OnHandRow,
	totalValue decimal.Decimal,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Inventario Valorado FIFO", true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(rows) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(totalValue))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: razón social + NIT (izq) y título + fecha de corte (der).
func headerRow(company *entity.Company) core.Row {
	fecha := time.Now().Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("NIT: "+nonEmpty(company.TaxID, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("INVENTARIO VALORADO FIFO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha de corte: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de existencias.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Artículo", 5, align.Left),
		h("Disponible", 2, align.Right),
		h("Valor FIFO", 3, align.Right),
	)
}

// tableDetailRows: una fila por artículo con existencias.
func tableDetailRows(rows []dto.OnHandRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				r.Item.SKU,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(5).Add(text.New(
				r.Item.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				r.OnHand.String()+" "+r.Item.Unit,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"$"+formatMoney(r.Valuation.StringFixed(0)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: valor total del inventario alineado a la derecha.
func totalRow(total decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("VALOR TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New("$"+formatMoney(total.StringFixed(0)), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
