package dto

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/flexilease/flexilease-backend/internal/dateutil"
	"github.com/flexilease/flexilease-backend/internal/domain/entities"
	"github.com/flexilease/flexilease-backend/internal/domain/errors"
	"github.com/flexilease/flexilease-backend/internal/domain/repositories"
	"github.com/flexilease/flexilease-backend/internal/services"
)

// CreateReservationRequest representa o pedido de criação de reserva
type CreateReservationRequest struct {
	IDUser    string `json:"id_user" binding:"required,uuid"`
	IDCar     string `json:"id_car" binding:"required,uuid"`
	StartDate string `json:"start_date" binding:"required,brdate"`
	EndDate   string `json:"end_date" binding:"required,brdate"`
}

// ToCreateInput converte a requisição para o input do serviço
func (r *CreateReservationRequest) ToCreateInput() services.CreateReservationInput {
	return services.CreateReservationInput{
		UserID:    r.IDUser,
		CarID:     r.IDCar,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}
}

// UpdateReservationRequest representa a troca de período de uma reserva
type UpdateReservationRequest struct {
	StartDate string `json:"start_date" binding:"required,brdate"`
	EndDate   string `json:"end_date" binding:"required,brdate"`
}

// ReservationResponse representa a resposta de uma reserva. O valor
// final sai formatado com duas casas decimais.
type ReservationResponse struct {
	IDReserve  string `json:"id_reserve"`
	IDUser     string `json:"id_user"`
	IDCar      string `json:"id_car"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	FinalValue string `json:"final_value"`
}

// ToReservationResponse converte uma reserva com datas em dd/mm/aaaa
func ToReservationResponse(r *entities.Reservation) ReservationResponse {
	return ReservationResponse{
		IDReserve:  r.ID,
		IDUser:     r.UserID,
		IDCar:      r.CarID,
		StartDate:  dateutil.Format(r.StartDate),
		EndDate:    dateutil.Format(r.EndDate),
		FinalValue: strconv.FormatFloat(r.FinalValue, 'f', 2, 64),
	}
}

// ToReservationCreatedResponse converte uma reserva recém-criada, com
// datas em formato ISO conforme o contrato de criação
func ToReservationCreatedResponse(r *entities.Reservation) ReservationResponse {
	response := ToReservationResponse(r)
	response.StartDate = dateutil.FormatISO(r.StartDate)
	response.EndDate = dateutil.FormatISO(r.EndDate)
	return response
}

// ListReservationsResponse representa uma página de reservas
type ListReservationsResponse struct {
	Reserves   []ReservationResponse `json:"reserves"`
	Total      int64                 `json:"total"`
	Limit      int                   `json:"limit"`
	Page       int                   `json:"page"`
	TotalPages int64                 `json:"totalPages"`
}

// ToListReservationsResponse monta a resposta paginada
func ToListReservationsResponse(reservations []*entities.Reservation, total int64, page, limit int) ListReservationsResponse {
	responses := make([]ReservationResponse, len(reservations))
	for i, r := range reservations {
		responses[i] = ToReservationResponse(r)
	}
	return ListReservationsResponse{
		Reserves:   responses,
		Total:      total,
		Limit:      limit,
		Page:       page,
		TotalPages: totalPages(total, limit),
	}
}

// ParseReservationFilters monta os filtros tipados da listagem de
// reservas: ids, datas exatas e valor final. Cada campo tem seu parser
// e campos fora da lista são rejeitados.
func ParseReservationFilters(c *gin.Context) (repositories.ReservationFilters, error) {
	filters := repositories.ReservationFilters{}

	for key, values := range c.Request.URL.Query() {
		if len(values) == 0 || values[0] == "" {
			continue
		}
		value := values[0]

		switch key {
		case "page", "limit", "lang":
			// paginação e idioma não são filtros
		case "id_reserve":
			if _, err := uuid.Parse(value); err != nil {
				return filters, errors.ErrInvalidID
			}
			filters.ID = &value
		case "id_user":
			if _, err := uuid.Parse(value); err != nil {
				return filters, errors.ErrInvalidID
			}
			filters.UserID = &value
		case "id_car":
			if _, err := uuid.Parse(value); err != nil {
				return filters, errors.ErrInvalidID
			}
			filters.CarID = &value
		case "start_date":
			date, err := dateutil.Parse(value)
			if err != nil {
				return filters, errors.ErrInvalidDate
			}
			filters.StartDate = &date
		case "end_date":
			date, err := dateutil.Parse(value)
			if err != nil {
				return filters, errors.ErrInvalidDate
			}
			filters.EndDate = &date
		case "final_value":
			v, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return filters, errors.ErrInvalidFilter
			}
			filters.FinalValue = &v
		default:
			return filters, errors.ErrInvalidFilter
		}
	}

	filters.Page, filters.Limit = parsePagination(c, 10)
	return filters, nil
}
