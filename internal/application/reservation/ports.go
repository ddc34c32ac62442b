package reservation

import (
	"context"

	"github.com/jhoicas/Hotel-api/internal/domain/entity"
	"github.com/jhoicas/Hotel-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// La verificación de disponibilidad y la escritura de la reserva van juntas en la misma tx.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		resRepo repository.ReservationRepository,
		roomRepo repository.RoomRepository,
	) error) error
}

// ConfirmationData datos necesarios para la confirmación impresa de una reserva.
type ConfirmationData struct {
	Reservation *entity.Reservation
	Guest       *entity.Guest
	Room        *entity.Room
	RoomType    *entity.RoomType
	TaxRate     decimal.Decimal
}

// ConfirmationPDFGenerator genera el PDF de confirmación (implementado con maroto en infraestructura).
type ConfirmationPDFGenerator interface {
	GenerateConfirmationPDF(ctx context.Context, data ConfirmationData) ([]byte, error)
}
