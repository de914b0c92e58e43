package auth

import (
	"context"
	"strings"

	"github.com/jhoicas/crm-ventas-api/internal/application/dto"
	"github.com/jhoicas/crm-ventas-api/internal/domain"
	"github.com/jhoicas/crm-ventas-api/internal/domain/repository"
	"github.com/jhoicas/crm-ventas-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens. Secret vacío desactiva el token.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de login contra Cuenta_Valida.
type AuthUseCase struct {
	accountRepo repository.AccountRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(accountRepo repository.AccountRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{accountRepo: accountRepo, jwtCfg: jwtCfg}
}

// Login compara email y password por igualdad exacta. Credenciales incorrectas no son
// un error: se devuelve Success=false con el mensaje para el cliente.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return nil, domain.NewValidationError("Email y contraseña son requeridos")
	}
	ok, err := uc.accountRepo.MatchCredentials(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &dto.LoginResponse{Success: false, Message: "Credenciales incorrectas"}, nil
	}
	resp := &dto.LoginResponse{Success: true}
	if uc.jwtCfg.Secret != "" {
		token, err := jwt.Generate(uc.jwtCfg.Secret, in.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
		if err != nil {
			return nil, err
		}
		resp.Token = token
	}
	return resp, nil
}
