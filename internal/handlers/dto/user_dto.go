package dto

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/flexilease/flexilease-backend/internal/dateutil"
	"github.com/flexilease/flexilease-backend/internal/domain/entities"
	"github.com/flexilease/flexilease-backend/internal/domain/errors"
	"github.com/flexilease/flexilease-backend/internal/domain/repositories"
	"github.com/flexilease/flexilease-backend/internal/services"
)

// RegisterUserRequest representa a requisição de cadastro de usuário
type RegisterUserRequest struct {
	Name      string `json:"name" binding:"required,min=2,max=100"`
	CPF       string `json:"cpf" binding:"required,cpf"`
	Birth     string `json:"birth" binding:"required,brdate"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6,max=72"`
	CEP       string `json:"cep" binding:"required"`
	Qualified string `json:"qualified" binding:"required,qualified"`
}

// ToRegisterInput converte a requisição para o input do serviço
func (r *RegisterUserRequest) ToRegisterInput() services.RegisterUserInput {
	return services.RegisterUserInput{
		Name:      r.Name,
		CPF:       r.CPF,
		Birth:     r.Birth,
		Email:     r.Email,
		Password:  r.Password,
		CEP:       r.CEP,
		Qualified: r.Qualified,
	}
}

// UpdateUserRequest representa uma atualização parcial de usuário
type UpdateUserRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=2,max=100"`
	CPF       *string `json:"cpf" binding:"omitempty,cpf"`
	Birth     *string `json:"birth" binding:"omitempty,brdate"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Password  *string `json:"password" binding:"omitempty,min=6,max=72"`
	CEP       *string `json:"cep" binding:"omitempty"`
	Qualified *string `json:"qualified" binding:"omitempty,qualified"`
}

// ToUpdateInput converte a requisição para o input do serviço
func (r *UpdateUserRequest) ToUpdateInput() services.UpdateUserInput {
	return services.UpdateUserInput{
		Name:      r.Name,
		CPF:       r.CPF,
		Birth:     r.Birth,
		Email:     r.Email,
		Password:  r.Password,
		CEP:       r.CEP,
		Qualified: r.Qualified,
	}
}

// UserResponse representa a resposta de um usuário; a senha nunca sai
type UserResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	CPF          string `json:"cpf"`
	Birth        string `json:"birth"`
	Email        string `json:"email"`
	CEP          string `json:"cep"`
	Qualified    string `json:"qualified"`
	Patio        string `json:"patio"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	Locality     string `json:"locality"`
	UF           string `json:"uf"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:           user.ID,
		Name:         user.Name,
		CPF:          user.CPF.String(),
		Birth:        dateutil.Format(user.Birth),
		Email:        user.Email.String(),
		CEP:          user.CEP,
		Qualified:    string(user.Qualified),
		Patio:        user.Patio,
		Complement:   user.Complement,
		Neighborhood: user.Neighborhood,
		Locality:     user.Locality,
		UF:           user.UF,
	}
}

// ListUsersResponse representa uma página de usuários
type ListUsersResponse struct {
	Users      []UserResponse `json:"users"`
	Total      int64          `json:"total"`
	Limit      int            `json:"limit"`
	Page       int            `json:"page"`
	TotalPages int64          `json:"totalPages"`
}

// ToListUsersResponse monta a resposta paginada
func ToListUsersResponse(users []*entities.User, total int64, page, limit int) ListUsersResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return ListUsersResponse{
		Users:      responses,
		Total:      total,
		Limit:      limit,
		Page:       page,
		TotalPages: totalPages(total, limit),
	}
}

// ParseUserFilters monta os filtros tipados da listagem de usuários a
// partir da query string; campos fora da lista permitida são rejeitados
func ParseUserFilters(c *gin.Context) (repositories.UserFilters, error) {
	filters := repositories.UserFilters{}

	for key, values := range c.Request.URL.Query() {
		if len(values) == 0 || values[0] == "" {
			continue
		}
		value := values[0]

		switch key {
		case "page", "limit", "lang":
			// paginação e idioma não são filtros
		case "name":
			filters.Name = &value
		case "cpf":
			filters.CPF = &value
		case "email":
			filters.Email = &value
		case "qualified":
			filters.Qualified = &value
		case "uf":
			filters.UF = &value
		default:
			return filters, errors.ErrInvalidFilter
		}
	}

	filters.Page, filters.Limit = parsePagination(c, 10)
	return filters, nil
}

// parsePagination lê page/limit da query string com defaults
func parsePagination(c *gin.Context, defaultLimit int) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}

	return page, limit
}

// totalPages calcula o número de páginas da listagem
func totalPages(total int64, limit int) int64 {
	if limit < 1 {
		return 0
	}
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return pages
}
