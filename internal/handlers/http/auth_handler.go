package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flexilease/flexilease-backend/internal/handlers/dto"
	"github.com/flexilease/flexilease-backend/internal/services"
)

// AuthHandler lida com autenticação de usuários
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Authenticate valida as credenciais e devolve um token JWT
func (h *AuthHandler) Authenticate(c *gin.Context) {
	var req dto.AuthenticateRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.ValidationErrorsFromBinding(err))
		c.JSON(http.StatusBadRequest, response)
		return
	}

	token, err := h.authService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthenticateResponse{Token: token})
}
