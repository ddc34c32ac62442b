// Package export convierte conjuntos de registros a archivos descargables (CSV, JSON, XLSX).
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// Field columna de un registro.
type Field struct {
	Name  string
	Value any
}

// Record registro con campos ordenados. El orden del primer registro define las columnas.
type Record []Field

// Get valor del campo name (nil si no existe).
func (r Record) Get(name string) any {
	for _, f := range r {
		if f.Name == name {
			return f.Value
		}
	}
	return nil
}

// MarshalJSON objeto JSON respetando el orden de los campos.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("campo %s: %w", f.Name, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Header nombres de columna tomados del primer registro.
func Header(records []Record) []string {
	if len(records) == 0 {
		return nil
	}
	out := make([]string, len(records[0]))
	for i, f := range records[0] {
		out[i] = f.Name
	}
	return out
}

// Text representación de texto de un valor para formatos tabulares.
func Text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case time.Time:
		if x.IsZero() {
			return ""
		}
		return x.Format(time.RFC3339)
	case *time.Time:
		if x == nil {
			return ""
		}
		return Text(*x)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// Format formato de salida.
type Format string

// Formatos soportados.
const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

// Formatter serializa registros a un formato.
type Formatter interface {
	Format() Format
	ContentType() string
	Extension() string
	Write(w io.Writer, records []Record) error
}
