package usecase

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
	"github.com/jhoicas/Hotel-api/internal/domain/repository"
)

// GuestUseCase fichas de huéspedes.
type GuestUseCase struct {
	repo  repository.GuestRepository
	cache *cache.Cache
}

// NewGuestUseCase construye el caso de uso.
func NewGuestUseCase(repo repository.GuestRepository, c *cache.Cache) *GuestUseCase {
	return &GuestUseCase{repo: repo, cache: c}
}

// Create registra un huésped. Solo el nombre es obligatorio.
func (uc *GuestUseCase) Create(ctx context.Context, in dto.CreateGuestRequest) (*dto.GuestResponse, error) {
	first := strings.TrimSpace(in.FirstName)
	if first == "" {
		return nil, fmt.Errorf("%w: first_name requerido", domain.ErrInvalidInput)
	}
	now := time.Now()
	g := &entity.Guest{
		ID:             uuid.New().String(),
		FirstName:      first,
		LastName:       strings.TrimSpace(in.LastName),
		Email:          strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:          in.Phone,
		DocumentType:   in.DocumentType,
		DocumentNumber: in.DocumentNumber,
		Nationality:    in.Nationality,
		Address:        in.Address,
		DateOfBirth:    in.DateOfBirth,
		Notes:          in.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, g); err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, cache.Event{Entity: cache.EntityGuest, Mutation: cache.MutationCreate, ID: g.ID})
	return ToGuestResponse(g), nil
}

// GetByID obtiene un huésped; nil si no existe.
func (uc *GuestUseCase) GetByID(ctx context.Context, id string) (*dto.GuestResponse, error) {
	if err := domain.ValidateID("id", id); err != nil {
		return nil, err
	}
	out, _, err := cache.Remember(ctx, uc.cache, cache.GuestDetailKey(id), func(ctx context.Context) (*dto.GuestResponse, bool, error) {
		g, err := uc.repo.GetByID(ctx, id)
		if err != nil || g == nil {
			return nil, false, err
		}
		return ToGuestResponse(g), true, nil
	})
	return out, err
}

// List busca por nombre, email o documento. La búsqueda libre no se cachea.
func (uc *GuestUseCase) List(ctx context.Context, search string, page dto.PageRequest) (*dto.GuestListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, strings.TrimSpace(search), page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.GuestResponse, 0, len(list))
	for _, g := range list {
		items = append(items, *ToGuestResponse(g))
	}
	return &dto.GuestListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update actualización parcial.
func (uc *GuestUseCase) Update(ctx context.Context, id string, in dto.UpdateGuestRequest) (*dto.GuestResponse, error) {
	if err := domain.ValidateID("id", id); err != nil {
		return nil, err
	}
	g, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, nil
	}
	if in.FirstName != nil {
		first := strings.TrimSpace(*in.FirstName)
		if first == "" {
			return nil, fmt.Errorf("%w: first_name requerido", domain.ErrInvalidInput)
		}
		g.FirstName = first
	}
	if in.LastName != nil {
		g.LastName = strings.TrimSpace(*in.LastName)
	}
	if in.Email != nil {
		g.Email = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	if in.Phone != nil {
		g.Phone = *in.Phone
	}
	if in.DocumentType != nil {
		g.DocumentType = *in.DocumentType
	}
	if in.DocumentNumber != nil {
		g.DocumentNumber = *in.DocumentNumber
	}
	if in.Nationality != nil {
		g.Nationality = *in.Nationality
	}
	if in.Address != nil {
		g.Address = *in.Address
	}
	if in.DateOfBirth != nil {
		g.DateOfBirth = in.DateOfBirth
	}
	if in.Notes != nil {
		g.Notes = *in.Notes
	}
	g.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, g); err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, cache.Event{Entity: cache.EntityGuest, Mutation: cache.MutationUpdate, ID: g.ID})
	return ToGuestResponse(g), nil
}

// Delete elimina el huésped. Con reservas asociadas la base responde ErrConflict.
func (uc *GuestUseCase) Delete(ctx context.Context, id string) error {
	if err := domain.ValidateID("id", id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.cache.Invalidate(ctx, cache.Event{Entity: cache.EntityGuest, Mutation: cache.MutationDelete, ID: id})
	return nil
}
