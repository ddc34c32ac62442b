package export_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Hotel-api/internal/application/export"
	"github.com/jhoicas/Hotel-api/internal/domain"
	"github.com/jhoicas/Hotel-api/internal/domain/entity"
	"github.com/jhoicas/Hotel-api/internal/domain/repository"
	"github.com/jhoicas/Hotel-api/pkg/logger"
)

// lines formato de prueba: una línea "campo=valor|..." por registro.
type lines struct{}

func (lines) Format() export.Format { return export.FormatCSV }
func (lines) ContentType() string   { return "text/plain" }
func (lines) Extension() string     { return "csv" }
func (lines) Write(w io.Writer, records []export.Record) error {
	for _, r := range records {
		parts := make([]string, 0, len(r))
		for _, f := range r {
			parts = append(parts, f.Name+"="+export.Text(f.Value))
		}
		if _, err := io.WriteString(w, strings.Join(parts, "|")+"\n"); err != nil {
			return err
		}
	}
	return nil
}

type rooms struct{ repository.RoomRepository }

func (rooms) List(context.Context, repository.RoomFilter) ([]*entity.Room, error) {
	return []*entity.Room{
		{Number: "101", Floor: 1, Status: "available", RoomType: &entity.RoomType{Name: "Doble"}},
		{Number: "102", Floor: 1, Status: "cleaning"},
	}, nil
}

type guests struct{ repository.GuestRepository }

func (guests) List(_ context.Context, search string, limit, offset int) ([]*entity.Guest, error) {
	return nil, nil
}

type reservations struct{ repository.ReservationRepository }

func (reservations) List(_ context.Context, f repository.ReservationFilter) ([]*entity.Reservation, error) {
	return []*entity.Reservation{{
		Code:     "RSV-0A1B2C3D",
		CheckIn:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC),
		Guest:    &entity.Guest{FirstName: "Ana", LastName: "Pérez"},
		Room:     &entity.Room{Number: "101"},
		Status:   "confirmed",
	}}, nil
}

func newUC() *export.UseCase {
	return export.NewUseCase(rooms{}, guests{}, reservations{}, lines{})
}

func TestExport_Habitaciones(t *testing.T) {
	f, err := newUC().Export(context.Background(), export.DatasetRooms, "", "inventario")
	require.NoError(t, err)

	assert.Equal(t, "inventario.csv", f.Name)
	assert.Equal(t, "text/plain", f.ContentType)
	assert.Equal(t,
		"number=101|floor=1|room_type=Doble|status=available|last_cleaned_at=|notes=\n"+
			"number=102|floor=1|room_type=|status=cleaning|last_cleaned_at=|notes=\n",
		string(f.Data))
}

func TestExport_NombrePorDefectoYSaneado(t *testing.T) {
	f, err := newUC().Export(context.Background(), export.DatasetReservations, export.FormatCSV, "")
	require.NoError(t, err)
	assert.Regexp(t, `^reservations_\d{8}\.csv$`, f.Name)
	assert.Contains(t, string(f.Data), "guest=Ana Pérez|room=101|check_in=2024-03-01")

	f, err = newUC().Export(context.Background(), export.DatasetRooms, export.FormatCSV, "../../etc/passwd")
	require.NoError(t, err)
	assert.NotContains(t, f.Name, "/")

	f, err = newUC().Export(context.Background(), export.DatasetRooms, export.FormatCSV, "reporte.csv")
	require.NoError(t, err)
	assert.Equal(t, "reporte.csv", f.Name, "no duplica la extensión")
}

func TestExport_FormatoOConjuntoInvalido(t *testing.T) {
	_, err := newUC().Export(context.Background(), export.DatasetRooms, export.FormatXLSX, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "formato no registrado")

	_, err = newUC().Export(context.Background(), export.Dataset("payments"), export.FormatCSV, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExport_ConjuntoVacio(t *testing.T) {
	f, err := newUC().Export(context.Background(), export.DatasetGuests, export.FormatCSV, "huespedes")
	require.NoError(t, err)
	assert.Empty(t, f.Data)
}

func TestRecord_MarshalJSONOrdenado(t *testing.T) {
	b, err := export.Record{{Name: "b", Value: 1}, {Name: "a", Value: "x"}}.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"b":1,"a":"x"}`, string(b))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tope de filas
// ──────────────────────────────────────────────────────────────────────────────

type manyGuests struct {
	repository.GuestRepository
	total     int
	lastLimit *int
}

func (g manyGuests) List(_ context.Context, _ string, limit, _ int) ([]*entity.Guest, error) {
	*g.lastLimit = limit
	n := g.total
	if limit < n {
		n = limit
	}
	out := make([]*entity.Guest, n)
	for i := range out {
		out[i] = &entity.Guest{FirstName: "Huésped"}
	}
	return out, nil
}

func TestExport_TopeDeFilasSeInformaYRegistra(t *testing.T) {
	var limit int
	var logs bytes.Buffer
	uc := export.NewUseCase(rooms{}, manyGuests{total: 5, lastLimit: &limit}, reservations{}, lines{}).
		WithMaxRows(2).
		WithLogger(logger.FromWriter(&logs))

	f, err := uc.Export(context.Background(), export.DatasetGuests, "", "")
	require.NoError(t, err)

	assert.Equal(t, 3, limit, "pide una fila de más para detectar el corte")
	assert.True(t, f.Truncated)
	assert.Equal(t, 2, f.Rows)
	assert.Equal(t, 2, strings.Count(string(f.Data), "\n"))
	assert.Contains(t, logs.String(), "exportación truncada")
}

func TestExport_SinCorteEnElLimiteExacto(t *testing.T) {
	var limit int
	var logs bytes.Buffer
	uc := export.NewUseCase(rooms{}, manyGuests{total: 2, lastLimit: &limit}, reservations{}, lines{}).
		WithMaxRows(2).
		WithLogger(logger.FromWriter(&logs))

	f, err := uc.Export(context.Background(), export.DatasetGuests, "", "")
	require.NoError(t, err)

	assert.False(t, f.Truncated)
	assert.Equal(t, 2, f.Rows)
	assert.Empty(t, logs.String())
}
