package export

import (
	"fmt"
	"io"
	"time"

	appexport "github.com/jhoicas/Hotel-api/internal/application/export"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

var _ appexport.Formatter = XLSX{}

const sheetName = "Datos"

// XLSX hoja única con cabecera en negrita y congelada.
type XLSX struct{}

func (XLSX) Format() appexport.Format { return appexport.FormatXLSX }
func (XLSX) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}
func (XLSX) Extension() string { return "xlsx" }

// Write genera el libro y lo vuelca en w.
func (XLSX) Write(w io.Writer, records []appexport.Record) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("xlsx: crear hoja: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("xlsx: borrar hoja por defecto: %w", err)
	}

	header := appexport.Header(records)
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("xlsx: estilo de cabecera: %w", err)
	}
	for c, name := range header {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, name); err != nil {
			return fmt.Errorf("xlsx: cabecera %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("xlsx: estilo %s: %w", cell, err)
		}
	}

	for r, rec := range records {
		for c, name := range header {
			v := cellValue(rec.Get(name))
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("xlsx: celda %s: %w", cell, err)
			}
		}
	}

	if len(header) > 0 {
		if err := f.SetPanes(sheetName, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		}); err != nil {
			return fmt.Errorf("xlsx: congelar cabecera: %w", err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("xlsx: escribir: %w", err)
	}
	return nil
}

// cellValue números como número, fechas como texto ISO y el resto como texto.
func cellValue(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case int, int64, float64, bool:
		return x
	case decimal.Decimal:
		return x.InexactFloat64()
	case time.Time, *time.Time:
		if s := appexport.Text(x); s != "" {
			return s
		}
		return nil
	default:
		return appexport.Text(x)
	}
}
