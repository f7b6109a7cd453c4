package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/flexilease/flexilease-backend/internal/domain/errors"
	"github.com/flexilease/flexilease-backend/internal/handlers/dto"
	"github.com/flexilease/flexilease-backend/internal/services"
)

// CarHandler lida com requisições HTTP relacionadas a carros
type CarHandler struct {
	carService *services.CarService
}

// NewCarHandler cria um novo CarHandler
func NewCarHandler(carService *services.CarService) *CarHandler {
	return &CarHandler{
		carService: carService,
	}
}

// CreateCar cadastra um novo carro com seus acessórios
func (h *CarHandler) CreateCar(c *gin.Context) {
	var req dto.CarRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.ValidationErrorsFromBinding(err))
		c.JSON(http.StatusBadRequest, response)
		return
	}

	car, err := h.carService.CreateCar(c.Request.Context(), req.ToCarInput())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCarResponse(car))
}

// GetCar busca um carro por ID
func (h *CarHandler) GetCar(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		respondError(c, errors.ErrInvalidID)
		return
	}

	car, err := h.carService.GetCar(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCarResponse(car))
}

// ListCars lista carros com filtros e paginação
func (h *CarHandler) ListCars(c *gin.Context) {
	filters, err := dto.ParseCarFilters(c)
	if err != nil {
		respondError(c, err)
		return
	}

	cars, total, err := h.carService.ListCars(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListCarsResponse(cars, total, filters.Page, filters.Limit))
}

// UpdateCar substitui integralmente os dados de um carro
func (h *CarHandler) UpdateCar(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		respondError(c, errors.ErrInvalidID)
		return
	}

	var req dto.CarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.ValidationErrorsFromBinding(err))
		c.JSON(http.StatusBadRequest, response)
		return
	}

	car, err := h.carService.UpdateCar(c.Request.Context(), id, req.ToCarInput())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCarResponse(car))
}

// DeleteCar remove um carro e seus acessórios
func (h *CarHandler) DeleteCar(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		respondError(c, errors.ErrInvalidID)
		return
	}

	if err := h.carService.DeleteCar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UpsertAccessory atualiza a descrição de um acessório existente ou
// anexa um novo acessório ao carro
func (h *CarHandler) UpsertAccessory(c *gin.Context) {
	carID := c.Param("id")
	accessoryID := c.Param("accessoryId")
	if _, err := uuid.Parse(carID); err != nil {
		respondError(c, errors.ErrInvalidID)
		return
	}
	if _, err := uuid.Parse(accessoryID); err != nil {
		respondError(c, errors.ErrInvalidID)
		return
	}

	var req dto.UpsertAccessoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.ValidationErrorsFromBinding(err))
		c.JSON(http.StatusBadRequest, response)
		return
	}

	car, err := h.carService.UpsertAccessory(c.Request.Context(), carID, accessoryID, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCarResponse(car))
}
