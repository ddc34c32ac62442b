// Package export formatos de archivo para app/export.
package export

import (
	"encoding/csv"
	"io"

	appexport "github.com/jhoicas/Hotel-api/internal/application/export"
)

var _ appexport.Formatter = CSV{}

// CSV separado por comas; cabecera con los nombres del primer registro. Los campos con coma,
// comillas o saltos de línea van entre comillas dobles y las comillas internas se duplican.
type CSV struct{}

func (CSV) Format() appexport.Format { return appexport.FormatCSV }
func (CSV) ContentType() string      { return "text/csv; charset=utf-8" }
func (CSV) Extension() string        { return "csv" }

// Write escribe cabecera y filas. Sin registros no escribe nada.
func (CSV) Write(w io.Writer, records []appexport.Record) error {
	header := appexport.Header(records)
	if header == nil {
		return nil
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	line := make([]string, len(header))
	for _, rec := range records {
		for i, name := range header {
			line[i] = appexport.Text(rec.Get(name))
		}
		if err := cw.Write(line); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
