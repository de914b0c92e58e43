package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-ventas-api/internal/application/auth"
	"github.com/jhoicas/crm-ventas-api/internal/application/dto"
	"github.com/jhoicas/crm-ventas-api/internal/domain"
	"github.com/jhoicas/crm-ventas-api/internal/testutil/fakes"
	pkgjwt "github.com/jhoicas/crm-ventas-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func newStore() *fakes.Store {
	store := fakes.NewStore()
	store.Accounts["a@b.com"] = "x"
	return store
}

func TestLogin_CredencialesCorrectas(t *testing.T) {
	uc := auth.NewAuthUseCase(newStore().AccountRepo(), auth.JWTConfig{})

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Email: "a@b.com", Password: "x"})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Token, "sin secreto no se emite token")
}

func TestLogin_CredencialesIncorrectas(t *testing.T) {
	uc := auth.NewAuthUseCase(newStore().AccountRepo(), auth.JWTConfig{Secret: testSecret})

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Email: "a@b.com", Password: "y"})

	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "Credenciales incorrectas", resp.Message)
	assert.Empty(t, resp.Token)
}

func TestLogin_CamposRequeridos(t *testing.T) {
	store := newStore()
	uc := auth.NewAuthUseCase(store.AccountRepo(), auth.JWTConfig{})

	for _, in := range []dto.LoginRequest{{Email: "a@b.com"}, {Password: "x"}, {}} {
		_, err := uc.Login(context.Background(), in)
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Email y contraseña son requeridos", verr.Message)
	}
	assert.Zero(t, store.Calls)
}

func TestLogin_ConSecretoEmiteToken(t *testing.T) {
	uc := auth.NewAuthUseCase(newStore().AccountRepo(), auth.JWTConfig{Secret: testSecret, ExpMinutes: 5, Issuer: "crm-test"})

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Email: "a@b.com", Password: "x"})

	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	email, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", email)
}

func TestLogin_ErrorDeBaseDeDatos(t *testing.T) {
	store := newStore()
	store.Err = errors.New("conexión cerrada")
	uc := auth.NewAuthUseCase(store.AccountRepo(), auth.JWTConfig{})

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "a@b.com", Password: "x"})

	assert.Error(t, err)
}
