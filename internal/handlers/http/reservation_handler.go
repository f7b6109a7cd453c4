package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/flexilease/flexilease-backend/internal/domain/errors"
	"github.com/flexilease/flexilease-backend/internal/handlers/dto"
	"github.com/flexilease/flexilease-backend/internal/services"
)

// ReservationHandler lida com requisições HTTP relacionadas a reservas
type ReservationHandler struct {
	reservationService *services.ReservationService
}

// NewReservationHandler cria um novo ReservationHandler
func NewReservationHandler(reservationService *services.ReservationService) *ReservationHandler {
	return &ReservationHandler{
		reservationService: reservationService,
	}
}

// CreateReservation cria uma nova reserva para um usuário habilitado,
// recusando períodos que conflitem com reservas existentes
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req dto.CreateReservationRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.ValidationErrorsFromBinding(err))
		c.JSON(http.StatusBadRequest, response)
		return
	}

	reservation, err := h.reservationService.CreateReservation(c.Request.Context(), req.ToCreateInput())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationCreatedResponse(reservation))
}

// GetReservation busca uma reserva por ID
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		respondError(c, errors.ErrInvalidID)
		return
	}

	reservation, err := h.reservationService.GetReservation(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

// ListReservations lista reservas com filtros e paginação
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	filters, err := dto.ParseReservationFilters(c)
	if err != nil {
		respondError(c, err)
		return
	}

	reservations, total, err := h.reservationService.ListReservations(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListReservationsResponse(reservations, total, filters.Page, filters.Limit))
}

// UpdateReservation substitui o período de uma reserva
func (h *ReservationHandler) UpdateReservation(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		respondError(c, errors.ErrInvalidID)
		return
	}

	var req dto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.ValidationErrorsFromBinding(err))
		c.JSON(http.StatusBadRequest, response)
		return
	}

	reservation, err := h.reservationService.UpdateReservation(c.Request.Context(), id, req.StartDate, req.EndDate)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

// DeleteReservation cancela uma reserva
func (h *ReservationHandler) DeleteReservation(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		respondError(c, errors.ErrInvalidID)
		return
	}

	if err := h.reservationService.DeleteReservation(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
