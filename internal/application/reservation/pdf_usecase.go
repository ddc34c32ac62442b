package reservation

import (
	"context"
	"fmt"

	"github.com/jhoicas/Hotel-api/internal/domain"
	"github.com/jhoicas/Hotel-api/internal/domain/entity"
	"github.com/jhoicas/Hotel-api/internal/domain/pricing"
	"github.com/jhoicas/Hotel-api/internal/domain/repository"
)

// PDFUseCase genera la confirmación impresa de una reserva.
type PDFUseCase struct {
	resRepo   repository.ReservationRepository
	roomRepo  repository.RoomRepository
	typeRepo  repository.RoomTypeRepository
	guestRepo repository.GuestRepository
	calc      *pricing.Calculator
	generator ConfirmationPDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	resRepo repository.ReservationRepository,
	roomRepo repository.RoomRepository,
	typeRepo repository.RoomTypeRepository,
	guestRepo repository.GuestRepository,
	calc *pricing.Calculator,
	generator ConfirmationPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		resRepo:   resRepo,
		roomRepo:  roomRepo,
		typeRepo:  typeRepo,
		guestRepo: guestRepo,
		calc:      calc,
		generator: generator,
	}
}

// DownloadConfirmationPDF arma los datos de la reserva y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la reserva no existe.
//   - domain.ErrConflict         si la reserva está cancelada.
func (uc *PDFUseCase) DownloadConfirmationPDF(ctx context.Context, reservationID string) (pdfBytes []byte, filename string, err error) {
	// ── 1. Reserva ────────────────────────────────────────────────────────────
	if err := domain.ValidateID("id", reservationID); err != nil {
		return nil, "", err
	}
	res, err := uc.resRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener reserva: %w", err)
	}
	if res == nil {
		return nil, "", domain.ErrNotFound
	}
	if res.Status == entity.ReservationStatusCancelled {
		return nil, "", fmt.Errorf("%w: la reserva está cancelada", domain.ErrConflict)
	}

	// ── 2. Huésped ────────────────────────────────────────────────────────────
	guest := res.Guest
	if guest == nil {
		if guest, err = uc.guestRepo.GetByID(ctx, res.GuestID); err != nil || guest == nil {
			return nil, "", fmt.Errorf("pdf: obtener huésped: %w", orNotFound(err))
		}
	}

	// ── 3. Habitación y tipo ──────────────────────────────────────────────────
	room := res.Room
	if room == nil {
		if room, err = uc.roomRepo.GetByID(ctx, res.RoomID); err != nil || room == nil {
			return nil, "", fmt.Errorf("pdf: obtener habitación: %w", orNotFound(err))
		}
	}
	roomType := room.RoomType
	if roomType == nil {
		if roomType, err = uc.typeRepo.GetByID(ctx, room.RoomTypeID); err != nil || roomType == nil {
			return nil, "", fmt.Errorf("pdf: obtener tipo de habitación: %w", orNotFound(err))
		}
	}

	// ── 4. Generar PDF ────────────────────────────────────────────────────────
	pdfBytes, err = uc.generator.GenerateConfirmationPDF(ctx, ConfirmationData{
		Reservation: res,
		Guest:       guest,
		Room:        room,
		RoomType:    roomType,
		TaxRate:     uc.calc.TaxRate(),
	})
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("reserva_%s.pdf", res.Code), nil
}

func orNotFound(err error) error {
	if err != nil {
		return err
	}
	return domain.ErrNotFound
}
