package dto

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/flexilease/flexilease-backend/internal/domain/entities"
	"github.com/flexilease/flexilease-backend/internal/domain/errors"
	"github.com/flexilease/flexilease-backend/internal/domain/repositories"
	"github.com/flexilease/flexilease-backend/internal/services"
)

// AccessoryRequest representa um acessório no corpo da requisição
type AccessoryRequest struct {
	Description string `json:"description" binding:"required"`
}

// CarRequest representa a criação ou substituição de um carro.
// Os nomes de campo seguem o contrato público da API.
type CarRequest struct {
	ModelName          string             `json:"modelName" binding:"required"`
	Color              string             `json:"color" binding:"required"`
	Year               int                `json:"year" binding:"required,min=1950,max=2023"`
	ValuePerDay        float64            `json:"value_per_day" binding:"required,gt=0"`
	Accessories        []AccessoryRequest `json:"accessories" binding:"required,min=1,dive"`
	NumberOfPassengers int                `json:"number_of_passengers" binding:"required,gt=0"`
}

// ToCarInput converte a requisição para o input do serviço
func (r *CarRequest) ToCarInput() services.CarInput {
	accessories := make([]string, len(r.Accessories))
	for i, acc := range r.Accessories {
		accessories[i] = acc.Description
	}
	return services.CarInput{
		Model:              r.ModelName,
		Color:              r.Color,
		Year:               r.Year,
		ValuePerDay:        r.ValuePerDay,
		Accessories:        accessories,
		NumberOfPassengers: r.NumberOfPassengers,
	}
}

// UpsertAccessoryRequest representa a atualização de um acessório
type UpsertAccessoryRequest struct {
	Description string `json:"description" binding:"required"`
}

// AccessoryResponse representa um acessório na resposta
type AccessoryResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// CarResponse representa a resposta de um carro
type CarResponse struct {
	ID                 string              `json:"id"`
	ModelName          string              `json:"modelName"`
	Color              string              `json:"color"`
	Year               int                 `json:"year"`
	ValuePerDay        float64             `json:"value_per_day"`
	Accessories        []AccessoryResponse `json:"accessories"`
	NumberOfPassengers int                 `json:"number_of_passengers"`
}

// ToCarResponse converte uma entidade Car para CarResponse
func ToCarResponse(car *entities.Car) CarResponse {
	accessories := make([]AccessoryResponse, len(car.Accessories))
	for i, acc := range car.Accessories {
		accessories[i] = AccessoryResponse{
			ID:          acc.ID,
			Description: acc.Description,
		}
	}
	return CarResponse{
		ID:                 car.ID,
		ModelName:          car.Model,
		Color:              car.Color,
		Year:               car.Year,
		ValuePerDay:        car.ValuePerDay,
		Accessories:        accessories,
		NumberOfPassengers: car.NumberOfPassengers,
	}
}

// ListCarsResponse representa uma página de carros
type ListCarsResponse struct {
	Cars    []CarResponse `json:"cars"`
	Total   int64         `json:"total"`
	Limit   int           `json:"limit"`
	Offset  int           `json:"offset"`
	Offsets int64         `json:"offsets"`
}

// ToListCarsResponse monta a resposta paginada
func ToListCarsResponse(cars []*entities.Car, total int64, page, limit int) ListCarsResponse {
	responses := make([]CarResponse, len(cars))
	for i, car := range cars {
		responses[i] = ToCarResponse(car)
	}
	return ListCarsResponse{
		Cars:    responses,
		Total:   total,
		Limit:   limit,
		Offset:  (page - 1) * limit,
		Offsets: totalPages(total, limit),
	}
}

// ParseCarFilters monta os filtros tipados da listagem de carros a
// partir da query string; campos fora da lista permitida são rejeitados
func ParseCarFilters(c *gin.Context) (repositories.CarFilters, error) {
	filters := repositories.CarFilters{}

	for key, values := range c.Request.URL.Query() {
		if len(values) == 0 || values[0] == "" {
			continue
		}
		value := values[0]

		switch key {
		case "page", "limit", "lang":
			// paginação e idioma não são filtros
		case "modelName":
			filters.Model = &value
		case "color":
			filters.Color = &value
		case "year":
			year, err := strconv.Atoi(value)
			if err != nil {
				return filters, errors.ErrInvalidFilter
			}
			filters.Year = &year
		case "value_per_day":
			v, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return filters, errors.ErrInvalidFilter
			}
			filters.ValuePerDay = &v
		case "number_of_passengers":
			n, err := strconv.Atoi(value)
			if err != nil {
				return filters, errors.ErrInvalidFilter
			}
			filters.NumberOfPassengers = &n
		default:
			return filters, errors.ErrInvalidFilter
		}
	}

	filters.Page, filters.Limit = parsePagination(c, 100)
	return filters, nil
}
