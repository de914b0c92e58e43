package dto

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse resultado del login. Token solo viaja cuando hay secreto JWT configurado.
type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Token   string `json:"token,omitempty"`
}
