package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/crm-ventas-api/internal/application/dto"
	"github.com/jhoicas/crm-ventas-api/internal/application/input"
	"github.com/jhoicas/crm-ventas-api/internal/domain"
	"github.com/jhoicas/crm-ventas-api/internal/domain/entity"
	"github.com/jhoicas/crm-ventas-api/internal/domain/repository"
)

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// List devuelve todas las empresas ordenadas por id.
func (uc *CompanyUseCase) List(ctx context.Context) ([]dto.CompanyResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, toCompanyResponse(c))
	}
	return items, nil
}

// Create valida Nombre y Direccion e inserta la empresa.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	name := strings.TrimSpace(in.Name)
	address := strings.TrimSpace(in.Address)
	if name == "" || address == "" {
		return nil, domain.NewValidationError("Nombre y Dirección son campos obligatorios")
	}
	company := &entity.Company{
		Name:    name,
		Number:  input.Text(in.Number),
		Address: address,
	}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	resp := toCompanyResponse(company)
	return &resp, nil
}

// Delete elimina la empresa si existe y ningún cliente la referencia.
func (uc *CompanyUseCase) Delete(ctx context.Context, rawID string) (int64, error) {
	id, ok := input.ID(rawID)
	if !ok {
		return 0, domain.NewValidationError("ID de empresa no válido")
	}
	exists, err := uc.repo.Exists(ctx, id)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, domain.ErrNotFound
	}
	hasClients, err := uc.repo.HasClients(ctx, id)
	if err != nil {
		return 0, err
	}
	if hasClients {
		return 0, domain.ErrHasDependents
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return 0, domain.DeleteFailed(err)
	}
	return id, nil
}

func toCompanyResponse(c *entity.Company) dto.CompanyResponse {
	return dto.CompanyResponse{
		ID:      c.ID,
		Name:    c.Name,
		Number:  c.Number,
		Address: c.Address,
	}
}
