package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/flexilease/flexilease-backend/internal/domain/errors"
	"github.com/flexilease/flexilease-backend/internal/handlers/dto"
	"github.com/flexilease/flexilease-backend/internal/services"
)

// UserHandler lida com requisições HTTP relacionadas a usuários
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Register cadastra um novo usuário
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.ValidationErrorsFromBinding(err))
		c.JSON(http.StatusBadRequest, response)
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req.ToRegisterInput())
	if err != nil {
		if errs.Is(err, errors.ErrCEPNotFound) {
			response := dto.BadRequestErrorResponseI18n(c, "error.cep_not_found",
				map[string]interface{}{"CEP": req.CEP})
			c.JSON(http.StatusBadRequest, response)
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// GetUser busca um usuário por ID
func (h *UserHandler) GetUser(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		respondError(c, errors.ErrInvalidID)
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// ListUsers lista usuários com filtros e paginação
func (h *UserHandler) ListUsers(c *gin.Context) {
	filters, err := dto.ParseUserFilters(c)
	if err != nil {
		respondError(c, err)
		return
	}

	users, total, err := h.userService.ListUsers(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListUsersResponse(users, total, filters.Page, filters.Limit))
}

// UpdateUser atualiza parcialmente os dados de um usuário
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		respondError(c, errors.ErrInvalidID)
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.ValidationErrorsFromBinding(err))
		c.JSON(http.StatusBadRequest, response)
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), id, req.ToUpdateInput())
	if err != nil {
		if errs.Is(err, errors.ErrCEPNotFound) && req.CEP != nil {
			response := dto.BadRequestErrorResponseI18n(c, "error.cep_not_found",
				map[string]interface{}{"CEP": *req.CEP})
			c.JSON(http.StatusBadRequest, response)
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// DeleteUser remove um usuário
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		respondError(c, errors.ErrInvalidID)
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
