package export_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	appexport "github.com/jhoicas/Hotel-api/internal/application/export"
	infraexport "github.com/jhoicas/Hotel-api/internal/infrastructure/export"
)

func sample() []appexport.Record {
	cleaned := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	return []appexport.Record{
		{{Name: "number", Value: "101"}, {Name: "floor", Value: 1}, {Name: "notes", Value: `vista al mar, "premium"`}, {Name: "last_cleaned_at", Value: &cleaned}},
		{{Name: "number", Value: "102"}, {Name: "floor", Value: 1}, {Name: "notes", Value: "línea 1\nlínea 2"}, {Name: "last_cleaned_at", Value: (*time.Time)(nil)}},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CSV
// ──────────────────────────────────────────────────────────────────────────────

func TestCSV_EscapaComasComillasYSaltos(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, infraexport.CSV{}.Write(&buf, sample()))

	want := "number,floor,notes,last_cleaned_at\n" +
		"101,1,\"vista al mar, \"\"premium\"\"\",2024-03-01T09:30:00Z\n" +
		"102,1,\"línea 1\nlínea 2\",\n"
	assert.Equal(t, want, buf.String())
}

func TestCSV_SinRegistrosNoEscribeNada(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, infraexport.CSV{}.Write(&buf, nil))
	assert.Empty(t, buf.Bytes())
}

func TestCSV_ColumnasDelPrimerRegistro(t *testing.T) {
	records := []appexport.Record{
		{{Name: "a", Value: 1}, {Name: "b", Value: 2}},
		{{Name: "b", Value: 4}, {Name: "c", Value: 5}},
	}
	var buf bytes.Buffer
	require.NoError(t, infraexport.CSV{}.Write(&buf, records))
	assert.Equal(t, "a,b\n1,2\n,4\n", buf.String(), "campos ausentes quedan vacíos y los extra se ignoran")
}

// ──────────────────────────────────────────────────────────────────────────────
// JSON
// ──────────────────────────────────────────────────────────────────────────────

func TestJSON_RespetaOrdenDeCampos(t *testing.T) {
	records := []appexport.Record{
		{{Name: "zeta", Value: 1}, {Name: "alfa", Value: decimal.RequireFromString("870.00")}, {Name: "medio", Value: nil}},
	}
	var buf bytes.Buffer
	require.NoError(t, infraexport.JSON{}.Write(&buf, records))

	want := "[\n  {\n    \"zeta\": 1,\n    \"alfa\": \"870\",\n    \"medio\": null\n  }\n]"
	assert.Equal(t, want, buf.String())
}

func TestJSON_SinRegistrosEsArregloVacio(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, infraexport.JSON{}.Write(&buf, nil))
	assert.Equal(t, "[]", buf.String())
}

// ──────────────────────────────────────────────────────────────────────────────
// XLSX
// ──────────────────────────────────────────────────────────────────────────────

func TestXLSX_CabeceraYFilas(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, infraexport.XLSX{}.Write(&buf, sample()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Datos"}, f.GetSheetList())
	rows, err := f.GetRows("Datos")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"number", "floor", "notes", "last_cleaned_at"}, rows[0])
	assert.Equal(t, "101", rows[1][0])
	assert.Equal(t, "1", rows[1][1])
	assert.Equal(t, `vista al mar, "premium"`, rows[1][2])
	assert.Equal(t, "2024-03-01T09:30:00Z", rows[1][3])
}

func TestFormatters_Metadatos(t *testing.T) {
	for _, f := range []appexport.Formatter{infraexport.CSV{}, infraexport.JSON{}, infraexport.XLSX{}} {
		assert.Equal(t, string(f.Format()), f.Extension())
		assert.NotEmpty(t, f.ContentType())
	}
}
