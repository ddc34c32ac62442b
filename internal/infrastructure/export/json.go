package export

import (
	"encoding/json"
	"io"

	appexport "github.com/jhoicas/Hotel-api/internal/application/export"
)

var _ appexport.Formatter = JSON{}

// JSON arreglo de objetos con sangría de 2 espacios; cada objeto respeta el orden de sus campos.
type JSON struct{}

func (JSON) Format() appexport.Format { return appexport.FormatJSON }
func (JSON) ContentType() string      { return "application/json" }
func (JSON) Extension() string        { return "json" }

// Write serializa los registros. Sin registros escribe "[]".
func (JSON) Write(w io.Writer, records []appexport.Record) error {
	if records == nil {
		records = []appexport.Record{}
	}
	out, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
