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

// ClientUseCase casos de uso para clientes.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// List devuelve todos los clientes.
func (uc *ClientUseCase) List(ctx context.Context) ([]dto.ClientResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		items = append(items, toClientResponse(c))
	}
	return items, nil
}

// Create valida los campos obligatorios y el formato del email antes de insertar.
// Una Empresa_ID inexistente llega desde el repositorio como *domain.ForeignKeyError.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" || !input.Present(in.CompanyID) {
		return nil, domain.NewValidationError("Nombre, Email y Empresa son campos obligatorios")
	}
	if !input.Email(email) {
		return nil, domain.NewValidationError("Por favor ingrese un email válido")
	}
	companyID, ok := input.Reference(in.CompanyID)
	if !ok {
		return nil, domain.NewValidationError("Empresa_ID debe ser un número válido")
	}
	client := &entity.Client{
		Name:      name,
		Email:     email,
		Phone:     input.Text(in.Phone),
		CompanyID: companyID,
	}
	if err := uc.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	resp := toClientResponse(client)
	return &resp, nil
}

// Delete elimina el cliente si existe y no tiene negociaciones ni ventas.
func (uc *ClientUseCase) Delete(ctx context.Context, rawID string) (int64, error) {
	id, ok := input.ID(rawID)
	if !ok {
		return 0, domain.NewValidationError("ID de cliente no válido")
	}
	exists, err := uc.repo.Exists(ctx, id)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, domain.ErrNotFound
	}
	hasDependents, err := uc.repo.HasDependents(ctx, id)
	if err != nil {
		return 0, err
	}
	if hasDependents {
		return 0, domain.ErrHasDependents
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return 0, domain.DeleteFailed(err)
	}
	return id, nil
}

func toClientResponse(c *entity.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		CompanyID: c.CompanyID,
	}
}
