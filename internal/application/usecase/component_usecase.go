package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/labstock-api/internal/application/dto"
	"github.com/jhoicas/labstock-api/internal/domain"
	"github.com/jhoicas/labstock-api/internal/domain/entity"
	"github.com/jhoicas/labstock-api/internal/domain/repository"
)

// ComponentUseCase casos de uso CRUD del catálogo. La cantidad y las fechas
// de movimiento no se tocan por este camino: pertenecen al motor de stock.
type ComponentUseCase struct {
	repo repository.ComponentRepository
}

// NewComponentUseCase construye el caso de uso.
func NewComponentUseCase(repo repository.ComponentRepository) *ComponentUseCase {
	return &ComponentUseCase{repo: repo}
}

// Create crea un componente del catálogo. La cantidad inicial siembra la
// caché y queda registrada como saldo de apertura del invariante de balance.
func (uc *ComponentUseCase) Create(createdBy string, in dto.CreateComponentRequest) (*dto.ComponentResponse, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.PartNumber) == "" || strings.TrimSpace(in.LocationBin) == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.IsValidCategory(in.Category) {
		return nil, domain.ErrInvalidInput
	}
	if in.InitialQuantity < 0 || in.LowStockThreshold < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	component := &entity.Component{
		ID:                uuid.New().String(),
		Name:              in.Name,
		PartNumber:        in.PartNumber,
		Manufacturer:      in.Manufacturer,
		Description:       in.Description,
		Category:          in.Category,
		InitialQuantity:   in.InitialQuantity,
		CurrentQuantity:   in.InitialQuantity,
		LocationBin:       in.LocationBin,
		UnitPrice:         in.UnitPrice,
		LowStockThreshold: in.LowStockThreshold,
		DatasheetLink:     in.DatasheetLink,
		CreatedBy:         createdBy,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(component); err != nil {
		return nil, err
	}
	return toComponentResponse(component), nil
}

// GetByID obtiene un componente por ID. Devuelve (nil, nil) si no existe.
func (uc *ComponentUseCase) GetByID(id string) (*dto.ComponentResponse, error) {
	component, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if component == nil {
		return nil, nil
	}
	return toComponentResponse(component), nil
}

// Update actualiza campos descriptivos, el precio unitario y el umbral de
// stock bajo. No permite modificar la cantidad ni las fechas de movimiento.
func (uc *ComponentUseCase) Update(id string, in dto.UpdateComponentRequest) (*dto.ComponentResponse, error) {
	component, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if component == nil {
		return nil, nil
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		component.Name = *in.Name
	}
	if in.PartNumber != nil {
		component.PartNumber = *in.PartNumber
	}
	if in.Manufacturer != nil {
		component.Manufacturer = *in.Manufacturer
	}
	if in.Description != nil {
		component.Description = *in.Description
	}
	if in.Category != nil {
		if !entity.IsValidCategory(*in.Category) {
			return nil, domain.ErrInvalidInput
		}
		component.Category = *in.Category
	}
	if in.LocationBin != nil {
		component.LocationBin = *in.LocationBin
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		component.UnitPrice = *in.UnitPrice
	}
	if in.LowStockThreshold != nil {
		if *in.LowStockThreshold < 0 {
			return nil, domain.ErrInvalidInput
		}
		component.LowStockThreshold = *in.LowStockThreshold
	}
	if in.DatasheetLink != nil {
		component.DatasheetLink = *in.DatasheetLink
	}
	component.UpdatedAt = time.Now()
	if err := uc.repo.Update(component); err != nil {
		return nil, err
	}
	return toComponentResponse(component), nil
}

// List lista componentes con filtro de texto libre y de categoría, paginado.
func (uc *ComponentUseCase) List(filter repository.ComponentFilter, limit, offset int) (*dto.ComponentListResponse, error) {
	if filter.Category != "" && !entity.IsValidCategory(filter.Category) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ComponentResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toComponentResponse(c))
	}
	return &dto.ComponentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toComponentResponse(c *entity.Component) *dto.ComponentResponse {
	if c == nil {
		return nil
	}
	return &dto.ComponentResponse{
		ID:                c.ID,
		Name:              c.Name,
		PartNumber:        c.PartNumber,
		Manufacturer:      c.Manufacturer,
		Description:       c.Description,
		Category:          c.Category,
		CurrentQuantity:   c.CurrentQuantity,
		LocationBin:       c.LocationBin,
		UnitPrice:         c.UnitPrice,
		LowStockThreshold: c.LowStockThreshold,
		DatasheetLink:     c.DatasheetLink,
		LastInwardDate:    c.LastInwardDate,
		LastOutwardDate:   c.LastOutwardDate,
		CreatedBy:         c.CreatedBy,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}
