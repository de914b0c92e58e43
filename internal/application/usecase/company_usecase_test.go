package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-ventas-api/internal/application/dto"
	"github.com/jhoicas/crm-ventas-api/internal/application/usecase"
	"github.com/jhoicas/crm-ventas-api/internal/domain"
	"github.com/jhoicas/crm-ventas-api/internal/domain/entity"
	"github.com/jhoicas/crm-ventas-api/internal/testutil/fakes"
)

func TestCompanyCreate_SinCamposObligatorios(t *testing.T) {
	store := fakes.NewStore()
	uc := usecase.NewCompanyUseCase(store.CompanyRepo())

	_, err := uc.Create(context.Background(), dto.CreateCompanyRequest{Name: "Acme"})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Nombre y Dirección son campos obligatorios", verr.Message)
	assert.Zero(t, store.Calls, "no debe consultarse la base de datos")
}

func TestCompanyCreate_NumeroComoNumero(t *testing.T) {
	store := fakes.NewStore()
	uc := usecase.NewCompanyUseCase(store.CompanyRepo())

	resp, err := uc.Create(context.Background(), dto.CreateCompanyRequest{
		Name: "Acme", Number: float64(3001234567), Address: "Calle 1",
	})

	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	require.NotNil(t, resp.Number)
	assert.Equal(t, "3001234567", *resp.Number)
}

func TestCompanyDelete_ConClientesNoElimina(t *testing.T) {
	store := fakes.NewStore()
	companyID := store.AddCompany(entity.Company{Name: "Acme", Address: "Calle 1"})
	store.AddClient(entity.Client{Name: "Ana", Email: "ana@acme.com", CompanyID: companyID})
	uc := usecase.NewCompanyUseCase(store.CompanyRepo())

	_, err := uc.Delete(context.Background(), idString(companyID))

	assert.ErrorIs(t, err, domain.ErrHasDependents)
	assert.Zero(t, store.Deletes)
	assert.Contains(t, store.Companies, companyID)
}

func TestCompanyDelete_Inexistente(t *testing.T) {
	store := fakes.NewStore()
	uc := usecase.NewCompanyUseCase(store.CompanyRepo())

	_, err := uc.Delete(context.Background(), "99")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 1, store.Calls, "solo se consulta la existencia")
	assert.Zero(t, store.Deletes)
}

func TestCompanyDelete_OK(t *testing.T) {
	store := fakes.NewStore()
	companyID := store.AddCompany(entity.Company{Name: "Acme", Address: "Calle 1"})
	uc := usecase.NewCompanyUseCase(store.CompanyRepo())

	deleted, err := uc.Delete(context.Background(), idString(companyID))

	require.NoError(t, err)
	assert.Equal(t, companyID, deleted)
	assert.Equal(t, 3, store.Calls)
	assert.NotContains(t, store.Companies, companyID)
}

func TestCompanyDelete_IDInvalido(t *testing.T) {
	store := fakes.NewStore()
	uc := usecase.NewCompanyUseCase(store.CompanyRepo())

	_, err := uc.Delete(context.Background(), "abc")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, store.Calls)
}

func TestCompanyList_ErrorDeBaseDeDatos(t *testing.T) {
	store := fakes.NewStore()
	store.Err = errors.New("conexión rechazada")
	uc := usecase.NewCompanyUseCase(store.CompanyRepo())

	_, err := uc.List(context.Background())

	assert.Error(t, err)
}
