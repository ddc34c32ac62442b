package usecase

import (
	"github.com/jhoicas/Hotel-api/internal/application/dto"
	"github.com/jhoicas/Hotel-api/internal/domain/entity"
)

// ToRoomTypeResponse mapea un tipo de habitación.
func ToRoomTypeResponse(t *entity.RoomType) *dto.RoomTypeResponse {
	if t == nil {
		return nil
	}
	amenities := t.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return &dto.RoomTypeResponse{
		ID:           t.ID,
		Name:         t.Name,
		Description:  t.Description,
		BasePrice:    t.BasePrice,
		MaxOccupancy: t.MaxOccupancy,
		MaxAdults:    t.MaxAdults,
		Amenities:    amenities,
		IsActive:     t.IsActive,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

// ToRoomResponse mapea una habitación (con su tipo si vino cargado).
func ToRoomResponse(r *entity.Room) *dto.RoomResponse {
	if r == nil {
		return nil
	}
	return &dto.RoomResponse{
		ID:            r.ID,
		Number:        r.Number,
		Floor:         r.Floor,
		RoomTypeID:    r.RoomTypeID,
		Status:        r.Status,
		Notes:         r.Notes,
		LastCleanedAt: r.LastCleanedAt,
		RoomType:      ToRoomTypeResponse(r.RoomType),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// ToGuestResponse mapea un huésped.
func ToGuestResponse(g *entity.Guest) *dto.GuestResponse {
	if g == nil {
		return nil
	}
	return &dto.GuestResponse{
		ID:             g.ID,
		FirstName:      g.FirstName,
		LastName:       g.LastName,
		FullName:       g.FullName(),
		Email:          g.Email,
		Phone:          g.Phone,
		DocumentType:   g.DocumentType,
		DocumentNumber: g.DocumentNumber,
		Nationality:    g.Nationality,
		Address:        g.Address,
		DateOfBirth:    g.DateOfBirth,
		Notes:          g.Notes,
		CreatedAt:      g.CreatedAt,
		UpdatedAt:      g.UpdatedAt,
	}
}
