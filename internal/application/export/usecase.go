package export

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jhoicas/Hotel-api/internal/domain"
	"github.com/jhoicas/Hotel-api/internal/domain/repository"
	"github.com/jhoicas/Hotel-api/pkg/logger"
)

// Dataset conjunto exportable.
type Dataset string

// Conjuntos disponibles.
const (
	DatasetRooms        Dataset = "rooms"
	DatasetGuests       Dataset = "guests"
	DatasetReservations Dataset = "reservations"
)

// DefaultMaxRows tope de filas para huéspedes y reservas.
const DefaultMaxRows = 10000

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// File archivo generado listo para descargar.
type File struct {
	Name        string
	ContentType string
	Data        []byte
	Rows        int
	// Truncated el conjunto tenía más filas que el tope y se cortó.
	Truncated bool
}

// UseCase arma los registros de cada conjunto y los serializa con el formato pedido.
type UseCase struct {
	rooms        repository.RoomRepository
	guests       repository.GuestRepository
	reservations repository.ReservationRepository
	formatters   map[Format]Formatter
	maxRows      int
	log          *logger.Logger
	now          func() time.Time
}

// NewUseCase construye el caso de uso con los formatos disponibles.
func NewUseCase(
	rooms repository.RoomRepository,
	guests repository.GuestRepository,
	reservations repository.ReservationRepository,
	formatters ...Formatter,
) *UseCase {
	m := make(map[Format]Formatter, len(formatters))
	for _, f := range formatters {
		m[f.Format()] = f
	}
	return &UseCase{
		rooms:        rooms,
		guests:       guests,
		reservations: reservations,
		formatters:   m,
		maxRows:      DefaultMaxRows,
		log:          logger.Nop(),
		now:          time.Now,
	}
}

// WithMaxRows cambia el tope de filas (n > 0).
func (uc *UseCase) WithMaxRows(n int) *UseCase {
	if n > 0 {
		uc.maxRows = n
	}
	return uc
}

// WithLogger registra los cortes por tope.
func (uc *UseCase) WithLogger(log *logger.Logger) *UseCase {
	uc.log = log
	return uc
}

// Export genera el archivo <stem>.<ext>. Sin stem se usa <dataset>_<fecha>.
func (uc *UseCase) Export(ctx context.Context, dataset Dataset, format Format, stem string) (*File, error) {
	if format == "" {
		format = FormatCSV
	}
	f, ok := uc.formatters[format]
	if !ok {
		return nil, fmt.Errorf("%w: formato %q", domain.ErrInvalidInput, format)
	}
	records, truncated, err := uc.records(ctx, dataset)
	if err != nil {
		return nil, err
	}
	if truncated {
		uc.log.Warn().
			Str("dataset", string(dataset)).
			Int("max_rows", uc.maxRows).
			Msg("exportación truncada")
	}
	var buf bytes.Buffer
	if err := f.Write(&buf, records); err != nil {
		return nil, fmt.Errorf("export %s: %w", format, err)
	}
	stem = unsafeName.ReplaceAllString(strings.TrimSpace(stem), "_")
	stem = strings.TrimSuffix(stem, "."+f.Extension())
	if stem == "" || strings.Trim(stem, "._") == "" {
		stem = fmt.Sprintf("%s_%s", dataset, uc.now().Format("20060102"))
	}
	return &File{
		Name:        stem + "." + f.Extension(),
		ContentType: f.ContentType(),
		Data:        buf.Bytes(),
		Rows:        len(records),
		Truncated:   truncated,
	}, nil
}

// Records registros del conjunto pedido, cortados en el tope de filas.
func (uc *UseCase) Records(ctx context.Context, dataset Dataset) ([]Record, error) {
	records, _, err := uc.records(ctx, dataset)
	return records, err
}

func (uc *UseCase) records(ctx context.Context, dataset Dataset) ([]Record, bool, error) {
	var (
		records []Record
		err     error
	)
	switch dataset {
	case DatasetRooms:
		records, err = uc.roomRecords(ctx)
	case DatasetGuests:
		records, err = uc.guestRecords(ctx)
	case DatasetReservations:
		records, err = uc.reservationRecords(ctx)
	default:
		return nil, false, fmt.Errorf("%w: conjunto %q", domain.ErrInvalidInput, dataset)
	}
	if err != nil {
		return nil, false, err
	}
	if len(records) > uc.maxRows {
		return records[:uc.maxRows], true, nil
	}
	return records, false, nil
}

func (uc *UseCase) roomRecords(ctx context.Context) ([]Record, error) {
	rooms, err := uc.rooms.List(ctx, repository.RoomFilter{})
	if err != nil {
		return nil, err
	}
	out := make([]Record, 0, len(rooms))
	for _, r := range rooms {
		typeName := ""
		if r.RoomType != nil {
			typeName = r.RoomType.Name
		}
		out = append(out, Record{
			{"number", r.Number},
			{"floor", r.Floor},
			{"room_type", typeName},
			{"status", r.Status},
			{"last_cleaned_at", r.LastCleanedAt},
			{"notes", r.Notes},
		})
	}
	return out, nil
}

func (uc *UseCase) guestRecords(ctx context.Context) ([]Record, error) {
	guests, err := uc.guests.List(ctx, "", uc.maxRows+1, 0)
	if err != nil {
		return nil, err
	}
	out := make([]Record, 0, len(guests))
	for _, g := range guests {
		out = append(out, Record{
			{"first_name", g.FirstName},
			{"last_name", g.LastName},
			{"email", g.Email},
			{"phone", g.Phone},
			{"document_type", g.DocumentType},
			{"document_number", g.DocumentNumber},
			{"nationality", g.Nationality},
			{"created_at", g.CreatedAt},
		})
	}
	return out, nil
}

func (uc *UseCase) reservationRecords(ctx context.Context) ([]Record, error) {
	list, err := uc.reservations.List(ctx, repository.ReservationFilter{Limit: uc.maxRows + 1})
	if err != nil {
		return nil, err
	}
	out := make([]Record, 0, len(list))
	for _, r := range list {
		guest, room := "", ""
		if r.Guest != nil {
			guest = r.Guest.FullName()
		}
		if r.Room != nil {
			room = r.Room.Number
		}
		out = append(out, Record{
			{"code", r.Code},
			{"guest", guest},
			{"room", room},
			{"check_in", r.CheckIn.Format("2006-01-02")},
			{"check_out", r.CheckOut.Format("2006-01-02")},
			{"nights", r.Nights},
			{"adults", r.Adults},
			{"children", r.Children},
			{"status", r.Status},
			{"subtotal", r.Subtotal},
			{"tax", r.Tax},
			{"total", r.Total},
		})
	}
	return out, nil
}
