package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-ventas-api/internal/application/dto"
	"github.com/jhoicas/crm-ventas-api/internal/application/input"
	"github.com/jhoicas/crm-ventas-api/internal/domain"
	"github.com/jhoicas/crm-ventas-api/internal/domain/entity"
	"github.com/jhoicas/crm-ventas-api/internal/domain/repository"
)

// ProductUseCase casos de uso para el catálogo de productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List devuelve todos los productos.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProductResponse(p))
	}
	return items, nil
}

// Create valida e inserta un producto. Stock con decimales se trunca.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Category) == "" {
		return nil, domain.NewValidationError("Nombre y Categoría son campos obligatorios")
	}
	price, ok := input.Decimal(in.Price)
	if !ok {
		return nil, domain.NewValidationError("Precio debe ser un número válido")
	}
	stock, ok := input.Integer(in.Stock)
	if !ok {
		return nil, domain.NewValidationError("Stock debe ser un número válido")
	}
	product := newProduct(in, price, stock)
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// Update reemplaza todos los campos del producto. domain.ErrNotFound si el id no existe.
func (uc *ProductUseCase) Update(ctx context.Context, rawID string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	id, ok := input.ID(rawID)
	if !ok {
		return nil, domain.NewValidationError("ID de producto no válido")
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Category) == "" {
		return nil, domain.NewValidationError("Nombre y Categoría son campos obligatorios")
	}
	price, okPrice := input.Decimal(in.Price)
	stock, okStock := input.Integer(in.Stock)
	if !okPrice || !okStock {
		return nil, domain.NewValidationError("Precio y Stock deben ser números válidos")
	}
	product := newProduct(in, price, stock)
	product.ID = id
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// Delete elimina el producto si existe y no tiene ventas.
func (uc *ProductUseCase) Delete(ctx context.Context, rawID string) (int64, error) {
	id, ok := input.ID(rawID)
	if !ok {
		return 0, domain.NewValidationError("ID de producto no válido")
	}
	exists, err := uc.repo.Exists(ctx, id)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, domain.ErrNotFound
	}
	hasSales, err := uc.repo.HasSales(ctx, id)
	if err != nil {
		return 0, err
	}
	if hasSales {
		return 0, domain.ErrHasDependents
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return 0, domain.DeleteFailed(err)
	}
	return id, nil
}

func newProduct(in dto.ProductRequest, price decimal.Decimal, stock int64) *entity.Product {
	return &entity.Product{
		Name:        strings.TrimSpace(in.Name),
		Price:       price,
		Description: input.OptionalText(in.Description),
		Stock:       stock,
		Category:    strings.TrimSpace(in.Category),
	}
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		Stock:       p.Stock,
		Category:    p.Category,
	}
}
