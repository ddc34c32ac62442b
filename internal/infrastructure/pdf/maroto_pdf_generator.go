// Package pdf genera la confirmación impresa de una reserva.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Hotel + "Confirmación"  │  Código + Fecha emisión   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  HUÉSPED: Nombre + documento + contacto                     │
//	│  ESTADÍA: Entrada / Salida / Noches / Ocupación             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Habitación | Tipo | Tarifa | Noches | Subtotal       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Impuesto (tasa) / TOTAL                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR con el código de reserva + condiciones           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jhoicas/Hotel-api/internal/application/reservation"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ reservation.ConfirmationPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa reservation.ConfirmationPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	hotelName string
	printer   *message.Printer
	now       func() time.Time
}

// NewMarotoPDFGenerator construye el generador. Los montos se formatean según lang (ej. "es").
func NewMarotoPDFGenerator(hotelName, lang string) *MarotoPDFGenerator {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.Spanish
	}
	return &MarotoPDFGenerator{
		hotelName: hotelName,
		printer:   message.NewPrinter(tag),
		now:       time.Now,
	}
}

// GenerateConfirmationPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateConfirmationPDF(_ context.Context, data reservation.ConfirmationData) ([]byte, error) {
	res := data.Reservation
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Confirmación de reserva "+res.Code, true).
		WithAuthor(g.hotelName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(guestRow(data))
	m.AddRows(stayRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(g.tableDetailRow(data))

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(data))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(data))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: hotel (izq) y código de reserva + fecha de emisión (der).
func (g *MarotoPDFGenerator) headerRow(data reservation.ConfirmationData) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.hotelName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Confirmación de reserva", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RESERVA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(data.Reservation.Code, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Emitida: "+g.now().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// guestRow: datos del huésped titular.
func guestRow(data reservation.ConfirmationData) core.Row {
	guest := data.Guest
	return row.New(14).Add(
		col.New(12).Add(
			text.New("HUÉSPED", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(guest.FullName(), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Documento: %s %s   |   Email: %s   |   Tel: %s",
				nonEmpty(guest.DocumentType, ""),
				nonEmpty(guest.DocumentNumber, "-"),
				nonEmpty(guest.Email, "-"),
				nonEmpty(guest.Phone, "-"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// stayRow: fechas y ocupación.
func stayRow(data reservation.ConfirmationData) core.Row {
	res := data.Reservation
	return row.New(12).Add(
		col.New(12).Add(
			text.New("ESTADÍA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Entrada: %s   |   Salida: %s   |   Noches: %d   |   Adultos: %d   |   Niños: %d",
				res.CheckIn.Format("02/01/2006"),
				res.CheckOut.Format("02/01/2006"),
				res.Nights, res.Adults, res.Children,
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de cargos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Habitación", 2, align.Center),
		h("Tipo", 4, align.Left),
		h("Tarifa/noche", 2, align.Right),
		h("Noches", 1, align.Center),
		h("Subtotal", 3, align.Right),
	)
}

// tableDetailRow: una sola línea, la habitación reservada.
func (g *MarotoPDFGenerator) tableDetailRow(data reservation.ConfirmationData) core.Row {
	return row.New(7).Add(
		col.New(2).Add(text.New(data.Room.Number, props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(4).Add(text.New(data.RoomType.Name, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
		col.New(2).Add(text.New(g.money(data.RoomType.BasePrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		col.New(1).Add(text.New(fmt.Sprint(data.Reservation.Nights), props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(3).Add(text.New(g.money(data.Reservation.Subtotal), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
	)
}

// totalsRow: bloque de totales alineado a la derecha.
func (g *MarotoPDFGenerator) totalsRow(data reservation.ConfirmationData) core.Row {
	res := data.Reservation
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grand := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1,
		})
	}
	rate := data.TaxRate.Mul(decimal.NewFromInt(100)).StringFixed(0)
	return row.New(26).Add(
		col.New(3),
		col.New(3).Add(
			label("Subtotal:"),
			label("Impuesto ("+rate+"%):"),
			label("TOTAL:"),
		),
		col.New(3).Add(
			value(g.money(res.Subtotal)),
			value(g.money(res.Tax)),
			grand(g.money(res.Total)),
		),
		col.New(3),
	)
}

// footerRow: QR con el código de reserva + condiciones.
func footerRow(data reservation.ConfirmationData) core.Row {
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(data.Reservation.Code, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("Presente este código en recepción al llegar.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New("Check-in desde las 15:00, check-out hasta las 12:00.", props.Text{
				Size: 8, Top: 10, Left: 3, Color: colorGray,
			}),
			text.New("Estado: "+data.Reservation.Status, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 20, Left: 3, Color: colorPrimary,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// money formatea con separadores del idioma configurado y 2 decimales. Ej (es): "$1.234,50".
func (g *MarotoPDFGenerator) money(d decimal.Decimal) string {
	return "$" + g.printer.Sprint(number.Decimal(d.InexactFloat64(), number.Scale(2)))
}
