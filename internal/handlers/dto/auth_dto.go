package dto

// AuthenticateRequest representa a requisição de autenticação
type AuthenticateRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthenticateResponse carrega o token de acesso emitido
type AuthenticateResponse struct {
	Token string `json:"token"`
}
