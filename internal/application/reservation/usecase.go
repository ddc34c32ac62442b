package reservation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Hotel-api/internal/application/cache"
	"github.com/jhoicas/Hotel-api/internal/application/dto"
	"github.com/jhoicas/Hotel-api/internal/domain"
	"github.com/jhoicas/Hotel-api/internal/domain/entity"
	"github.com/jhoicas/Hotel-api/internal/domain/pricing"
	"github.com/jhoicas/Hotel-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// UseCase reservas: cotización, disponibilidad y ciclo de vida
// (pendiente/confirmada → alojada → cerrada, o cancelada).
type UseCase struct {
	resRepo   repository.ReservationRepository
	roomRepo  repository.RoomRepository
	typeRepo  repository.RoomTypeRepository
	guestRepo repository.GuestRepository
	tx        TxRunner
	calc      *pricing.Calculator
	cache     *cache.Cache
}

// NewUseCase construye el caso de uso inyectando sus dependencias.
func NewUseCase(
	resRepo repository.ReservationRepository,
	roomRepo repository.RoomRepository,
	typeRepo repository.RoomTypeRepository,
	guestRepo repository.GuestRepository,
	tx TxRunner,
	calc *pricing.Calculator,
	c *cache.Cache,
) *UseCase {
	return &UseCase{
		resRepo:   resRepo,
		roomRepo:  roomRepo,
		typeRepo:  typeRepo,
		guestRepo: guestRepo,
		tx:        tx,
		calc:      calc,
		cache:     c,
	}
}

// Quote cotiza una estadía. La tarifa sale del tipo de habitación o de la habitación.
// Fechas o tarifa ausentes devuelven la cotización en cero.
func (uc *UseCase) Quote(ctx context.Context, in dto.QuoteRequest) (*dto.QuoteResponse, error) {
	checkIn, err := ParseOptionalDate("check_in", in.CheckIn)
	if err != nil {
		return nil, err
	}
	checkOut, err := ParseOptionalDate("check_out", in.CheckOut)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateOptionalID("room_type_id", in.RoomTypeID); err != nil {
		return nil, err
	}
	if err := domain.ValidateOptionalID("room_id", in.RoomID); err != nil {
		return nil, err
	}
	price, err := uc.resolveBasePrice(ctx, in.RoomTypeID, in.RoomID)
	if err != nil {
		return nil, err
	}
	q := uc.calc.Calculate(checkIn, checkOut, price)
	out := &dto.QuoteResponse{
		Nights:    q.Nights,
		BasePrice: decimal.Zero,
		TaxRate:   uc.calc.TaxRate(),
		Subtotal:  q.Subtotal,
		Tax:       q.Tax,
		Total:     q.Total,
	}
	if price != nil {
		out.BasePrice = *price
	}
	return out, nil
}

func (uc *UseCase) resolveBasePrice(ctx context.Context, roomTypeID, roomID string) (*decimal.Decimal, error) {
	switch {
	case roomTypeID != "":
		rt, err := uc.typeRepo.GetByID(ctx, roomTypeID)
		if err != nil {
			return nil, err
		}
		if rt == nil {
			return nil, domain.ErrNotFound
		}
		return &rt.BasePrice, nil
	case roomID != "":
		rt, err := uc.roomType(ctx, uc.roomRepo, roomID)
		if err != nil {
			return nil, err
		}
		return &rt.BasePrice, nil
	}
	return nil, nil
}

// FindAvailable habitaciones libres para el rango pedido.
func (uc *UseCase) FindAvailable(ctx context.Context, in dto.AvailabilityRequest) (*dto.AvailabilityResponse, error) {
	checkIn, checkOut, err := ParseRange(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, err
	}
	minOcc := in.MinOccupancy
	if minOcc <= 0 {
		minOcc = 1
	}
	if err := domain.ValidateOptionalID("room_type_id", in.RoomTypeID); err != nil {
		return nil, err
	}
	var typeID *string
	if in.RoomTypeID != "" {
		typeID = &in.RoomTypeID
	}
	rooms, err := uc.resRepo.FindAvailableRooms(ctx, checkIn, checkOut, minOcc, typeID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AvailableRoomResponse, 0, len(rooms))
	for _, r := range rooms {
		items = append(items, dto.AvailableRoomResponse{
			RoomID:       r.RoomID,
			RoomNumber:   r.RoomNumber,
			Floor:        r.Floor,
			RoomTypeID:   r.RoomTypeID,
			RoomTypeName: r.RoomTypeName,
			BasePrice:    r.BasePrice,
			MaxOccupancy: r.MaxOccupancy,
		})
	}
	return &dto.AvailabilityResponse{
		CheckIn:  checkIn.Format(DateLayout),
		CheckOut: checkOut.Format(DateLayout),
		Items:    items,
	}, nil
}

// CheckRoom disponibilidad de una habitación; excludeID re-valida una reserva contra sí misma.
func (uc *UseCase) CheckRoom(ctx context.Context, roomID, checkInS, checkOutS, excludeID string) (*dto.RoomAvailabilityResponse, error) {
	if err := domain.ValidateID("room_id", roomID); err != nil {
		return nil, err
	}
	if err := domain.ValidateOptionalID("exclude", excludeID); err != nil {
		return nil, err
	}
	checkIn, checkOut, err := ParseRange(checkInS, checkOutS)
	if err != nil {
		return nil, err
	}
	var exclude *string
	if excludeID != "" {
		exclude = &excludeID
	}
	ok, err := uc.resRepo.CheckRoomAvailability(ctx, roomID, checkIn, checkOut, exclude)
	if err != nil {
		return nil, err
	}
	return &dto.RoomAvailabilityResponse{
		RoomID:    roomID,
		CheckIn:   checkIn.Format(DateLayout),
		CheckOut:  checkOut.Format(DateLayout),
		Available: ok,
	}, nil
}

// Create valida la entrada, verifica huésped y habitación, y dentro de una transacción
// comprueba disponibilidad, cotiza e inserta. Las validaciones de forma ocurren antes de
// cualquier acceso a la base.
func (uc *UseCase) Create(ctx context.Context, userID string, in dto.CreateReservationRequest) (*dto.ReservationResponse, error) {
	if err := domain.ValidateID("guest_id", in.GuestID); err != nil {
		return nil, err
	}
	if err := domain.ValidateID("room_id", in.RoomID); err != nil {
		return nil, err
	}
	checkIn, checkOut, err := ParseRange(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, err
	}
	if err := validateOccupancy(in.Adults, in.Children); err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = entity.ReservationStatusConfirmed
	}
	if status != entity.ReservationStatusPending && status != entity.ReservationStatusConfirmed {
		return nil, fmt.Errorf("%w: estado inicial %q", domain.ErrInvalidInput, status)
	}

	guest, err := uc.guestRepo.GetByID(ctx, in.GuestID)
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, fmt.Errorf("%w: huésped inexistente", domain.ErrInvalidInput)
	}

	now := time.Now()
	res := &entity.Reservation{
		ID:        uuid.New().String(),
		Code:      newCode(),
		GuestID:   in.GuestID,
		RoomID:    in.RoomID,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Adults:    in.Adults,
		Children:  in.Children,
		Status:    status,
		Notes:     in.Notes,
		CreatedBy: userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err = uc.tx.Run(ctx, func(resRepo repository.ReservationRepository, roomRepo repository.RoomRepository) error {
		if err := uc.bookable(ctx, resRepo, roomRepo, res, nil); err != nil {
			return err
		}
		return resRepo.Create(ctx, res)
	})
	if err != nil {
		return nil, err
	}
	res.Guest = guest
	uc.cache.Invalidate(ctx, cache.Event{Entity: cache.EntityReservation, Mutation: cache.MutationCreate, ID: res.ID})
	return ToReservationResponse(res), nil
}

// Update cambia fechas, habitación u ocupación de una reserva pendiente o confirmada.
// Re-verifica disponibilidad excluyendo la propia reserva y recotiza.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateReservationRequest) (*dto.ReservationResponse, error) {
	if err := domain.ValidateID("id", id); err != nil {
		return nil, err
	}
	res, err := uc.resRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, nil
	}
	if !isModifiable(res.Status) {
		return nil, fmt.Errorf("%w: la reserva está %s", domain.ErrConflict, res.Status)
	}
	checkInS, checkOutS := res.CheckIn.Format(DateLayout), res.CheckOut.Format(DateLayout)
	if in.CheckIn != nil {
		checkInS = *in.CheckIn
	}
	if in.CheckOut != nil {
		checkOutS = *in.CheckOut
	}
	checkIn, checkOut, err := ParseRange(checkInS, checkOutS)
	if err != nil {
		return nil, err
	}
	res.CheckIn, res.CheckOut = checkIn, checkOut
	if in.RoomID != nil {
		if err := domain.ValidateID("room_id", *in.RoomID); err != nil {
			return nil, err
		}
		res.RoomID = *in.RoomID
		res.Room = nil
	}
	if in.Adults != nil {
		res.Adults = *in.Adults
	}
	if in.Children != nil {
		res.Children = *in.Children
	}
	if err := validateOccupancy(res.Adults, res.Children); err != nil {
		return nil, err
	}
	if in.Notes != nil {
		res.Notes = *in.Notes
	}
	res.UpdatedAt = time.Now()
	err = uc.tx.Run(ctx, func(resRepo repository.ReservationRepository, roomRepo repository.RoomRepository) error {
		if err := uc.bookable(ctx, resRepo, roomRepo, res, &res.ID); err != nil {
			return err
		}
		return resRepo.Update(ctx, res)
	})
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, cache.Event{Entity: cache.EntityReservation, Mutation: cache.MutationUpdate, ID: res.ID})
	return ToReservationResponse(res), nil
}

// Cancel cancela una reserva pendiente o confirmada.
func (uc *UseCase) Cancel(ctx context.Context, id string) (*dto.ReservationResponse, error) {
	return uc.transition(ctx, id, entity.ReservationStatusCancelled, isModifiable, "")
}

// CheckIn registra la llegada: la reserva pasa a checked_in y la habitación a occupied.
func (uc *UseCase) CheckIn(ctx context.Context, id string) (*dto.ReservationResponse, error) {
	return uc.transition(ctx, id, entity.ReservationStatusCheckedIn, isModifiable, entity.RoomStatusOccupied)
}

// CheckOut registra la salida: la reserva pasa a checked_out y la habitación a cleaning.
func (uc *UseCase) CheckOut(ctx context.Context, id string) (*dto.ReservationResponse, error) {
	return uc.transition(ctx, id, entity.ReservationStatusCheckedOut, func(s string) bool {
		return s == entity.ReservationStatusCheckedIn
	}, entity.RoomStatusCleaning)
}

func (uc *UseCase) transition(ctx context.Context, id, to string, allowed func(string) bool, roomStatus string) (*dto.ReservationResponse, error) {
	if err := domain.ValidateID("id", id); err != nil {
		return nil, err
	}
	res, err := uc.resRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, nil
	}
	if !allowed(res.Status) {
		return nil, fmt.Errorf("%w: no se puede pasar de %s a %s", domain.ErrConflict, res.Status, to)
	}
	now := time.Now()
	err = uc.tx.Run(ctx, func(resRepo repository.ReservationRepository, roomRepo repository.RoomRepository) error {
		if err := resRepo.UpdateStatus(ctx, res.ID, to, now); err != nil {
			return err
		}
		if roomStatus == "" {
			return nil
		}
		room, err := roomRepo.GetByID(ctx, res.RoomID)
		if err != nil {
			return err
		}
		if room == nil {
			return domain.ErrNotFound
		}
		room.ApplyStatus(roomStatus, now)
		return roomRepo.UpdateStatus(ctx, room)
	})
	if err != nil {
		return nil, err
	}
	res.Status = to
	res.UpdatedAt = now
	uc.cache.Invalidate(ctx, cache.Event{Entity: cache.EntityReservation, Mutation: cache.MutationStatus, ID: res.ID})
	if roomStatus != "" {
		uc.cache.Invalidate(ctx, cache.Event{Entity: cache.EntityRoom, Mutation: cache.MutationStatus, ID: res.RoomID})
	}
	return ToReservationResponse(res), nil
}

// GetByID obtiene una reserva con huésped y habitación; nil si no existe.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.ReservationResponse, error) {
	if err := domain.ValidateID("id", id); err != nil {
		return nil, err
	}
	out, _, err := cache.Remember(ctx, uc.cache, cache.ReservationDetailKey(id), func(ctx context.Context) (*dto.ReservationResponse, bool, error) {
		res, err := uc.resRepo.GetByID(ctx, id)
		if err != nil || res == nil {
			return nil, false, err
		}
		return ToReservationResponse(res), true, nil
	})
	return out, err
}

// List lista reservas con filtros de estado, huésped, habitación y fechas.
func (uc *UseCase) List(ctx context.Context, in dto.ReservationListRequest) (*dto.ReservationListResponse, error) {
	if in.Status != "" && !entity.IsValidReservationStatus(in.Status) {
		return nil, fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, in.Status)
	}
	from, err := ParseOptionalDate("from", in.From)
	if err != nil {
		return nil, err
	}
	to, err := ParseOptionalDate("to", in.To)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateOptionalID("guest_id", in.GuestID); err != nil {
		return nil, err
	}
	if err := domain.ValidateOptionalID("room_id", in.RoomID); err != nil {
		return nil, err
	}
	page := dto.PageRequest{Limit: in.Limit, Offset: in.Offset}
	page.DefaultPage()
	list, err := uc.resRepo.List(ctx, repository.ReservationFilter{
		Status:  in.Status,
		GuestID: in.GuestID,
		RoomID:  in.RoomID,
		From:    from,
		To:      to,
		Limit:   page.Limit,
		Offset:  page.Offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReservationResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *ToReservationResponse(r))
	}
	return &dto.ReservationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// bookable verifica habitación, capacidad y disponibilidad, y fija los montos de la reserva.
func (uc *UseCase) bookable(ctx context.Context, resRepo repository.ReservationRepository, roomRepo repository.RoomRepository, res *entity.Reservation, exclude *string) error {
	room, err := roomRepo.GetByID(ctx, res.RoomID)
	if err != nil {
		return err
	}
	if room == nil {
		return fmt.Errorf("%w: habitación inexistente", domain.ErrInvalidInput)
	}
	if room.Status == entity.RoomStatusMaintenance || room.Status == entity.RoomStatusOutOfOrder {
		return domain.ErrRoomUnavailable
	}
	rt := room.RoomType
	if rt == nil {
		if rt, err = uc.typeRepo.GetByID(ctx, room.RoomTypeID); err != nil {
			return err
		}
		if rt == nil {
			return fmt.Errorf("%w: habitación sin tipo", domain.ErrSchemaMismatch)
		}
	}
	if !rt.Fits(res.Adults, res.Children) {
		return fmt.Errorf("%w: la ocupación supera la capacidad (%d)", domain.ErrInvalidInput, rt.MaxOccupancy)
	}
	ok, err := resRepo.CheckRoomAvailability(ctx, res.RoomID, res.CheckIn, res.CheckOut, exclude)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrRoomUnavailable
	}
	q := uc.calc.Calculate(&res.CheckIn, &res.CheckOut, &rt.BasePrice)
	res.Nights, res.Subtotal, res.Tax, res.Total = q.Nights, q.Subtotal, q.Tax, q.Total
	res.Room = room
	return nil
}

func (uc *UseCase) roomType(ctx context.Context, roomRepo repository.RoomRepository, roomID string) (*entity.RoomType, error) {
	room, err := roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, domain.ErrNotFound
	}
	if room.RoomType != nil {
		return room.RoomType, nil
	}
	rt, err := uc.typeRepo.GetByID(ctx, room.RoomTypeID)
	if err != nil {
		return nil, err
	}
	if rt == nil {
		return nil, domain.ErrNotFound
	}
	return rt, nil
}

func validateOccupancy(adults, children int) error {
	if adults < 1 {
		return fmt.Errorf("%w: adults debe ser >= 1", domain.ErrInvalidInput)
	}
	if children < 0 {
		return fmt.Errorf("%w: children no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}

func isModifiable(status string) bool {
	return status == entity.ReservationStatusPending || status == entity.ReservationStatusConfirmed
}

func newCode() string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "RSV-" + strings.ToUpper(id[:8])
}

// ToReservationResponse mapea la reserva; nombre de huésped y número de habitación si vinieron cargados.
func ToReservationResponse(r *entity.Reservation) *dto.ReservationResponse {
	if r == nil {
		return nil
	}
	out := &dto.ReservationResponse{
		ID:        r.ID,
		Code:      r.Code,
		GuestID:   r.GuestID,
		RoomID:    r.RoomID,
		CheckIn:   r.CheckIn.Format(DateLayout),
		CheckOut:  r.CheckOut.Format(DateLayout),
		Adults:    r.Adults,
		Children:  r.Children,
		Status:    r.Status,
		Nights:    r.Nights,
		Subtotal:  r.Subtotal,
		Tax:       r.Tax,
		Total:     r.Total,
		Notes:     r.Notes,
		CreatedBy: r.CreatedBy,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.Guest != nil {
		out.GuestName = r.Guest.FullName()
	}
	if r.Room != nil {
		out.RoomNum = r.Room.Number
	}
	return out
}
