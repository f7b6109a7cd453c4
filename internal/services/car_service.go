package services

import (
	"context"
	errs "errors"
	"time"

	"github.com/google/uuid"

	"github.com/flexilease/flexilease-backend/internal/domain/entities"
	"github.com/flexilease/flexilease-backend/internal/domain/errors"
	"github.com/flexilease/flexilease-backend/internal/domain/ports"
	"github.com/flexilease/flexilease-backend/internal/domain/repositories"
)

// CarService contém a lógica de negócio para o catálogo de carros
type CarService struct {
	carRepo repositories.CarRepository
	logger  ports.Logger
}

// NewCarService cria um novo CarService
func NewCarService(carRepo repositories.CarRepository, logger ports.Logger) *CarService {
	return &CarService{
		carRepo: carRepo,
		logger:  logger,
	}
}

// CarInput representa os dados de criação ou substituição de um carro
type CarInput struct {
	Model              string
	Color              string
	Year               int
	ValuePerDay        float64
	Accessories        []string
	NumberOfPassengers int
}

// CreateCar valida e persiste um novo carro com seus acessórios
func (s *CarService) CreateCar(ctx context.Context, input CarInput) (*entities.Car, error) {
	car := s.buildCar(input)

	if err := car.Validate(); err != nil {
		return nil, validationError(err)
	}

	if err := s.carRepo.Create(ctx, car); err != nil {
		return nil, err
	}

	s.logger.Info("car created", "car_id", car.ID, "model", car.Model)
	return car, nil
}

// GetCar busca um carro por ID
func (s *CarService) GetCar(ctx context.Context, id string) (*entities.Car, error) {
	car, err := s.carRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, errors.ErrCarNotFound
	}
	return car, nil
}

// ListCars lista carros com filtros e paginação
func (s *CarService) ListCars(ctx context.Context, filters repositories.CarFilters) ([]*entities.Car, int64, error) {
	return s.carRepo.List(ctx, filters)
}

// UpdateCar substitui um carro inteiro, acessórios inclusive
func (s *CarService) UpdateCar(ctx context.Context, id string, input CarInput) (*entities.Car, error) {
	existing, err := s.carRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.ErrCarNotFound
	}

	car := s.buildCar(input)
	car.ID = id
	car.CreatedAt = existing.CreatedAt
	car.UpdatedAt = time.Now().UTC()

	if err := car.Validate(); err != nil {
		return nil, validationError(err)
	}

	if err := s.carRepo.Update(ctx, car); err != nil {
		return nil, err
	}

	return car, nil
}

// DeleteCar remove um carro e seus acessórios. Reservas que referem o
// carro não são afetadas.
func (s *CarService) DeleteCar(ctx context.Context, id string) error {
	car, err := s.carRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if car == nil {
		return errors.ErrCarNotFound
	}

	return s.carRepo.Delete(ctx, id)
}

// UpsertAccessory atualiza a descrição do acessório indicado ou anexa
// um novo acessório com o id informado pelo chamador
func (s *CarService) UpsertAccessory(ctx context.Context, carID, accessoryID, description string) (*entities.Car, error) {
	car, err := s.carRepo.FindByID(ctx, carID)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, errors.ErrCarNotFound
	}

	if err := car.UpsertAccessory(accessoryID, description); err != nil {
		if errs.Is(err, entities.ErrDuplicateAccessory) {
			return nil, errors.ErrDuplicateAccessory
		}
		return nil, validationError(err)
	}

	car.UpdatedAt = time.Now().UTC()
	if err := s.carRepo.Update(ctx, car); err != nil {
		return nil, err
	}

	return car, nil
}

func (s *CarService) buildCar(input CarInput) *entities.Car {
	accessories := make([]entities.Accessory, len(input.Accessories))
	for i, description := range input.Accessories {
		accessories[i] = entities.Accessory{
			ID:          uuid.NewString(),
			Description: description,
		}
	}

	now := time.Now().UTC()
	return &entities.Car{
		Model:              input.Model,
		Color:              input.Color,
		Year:               input.Year,
		ValuePerDay:        input.ValuePerDay,
		Accessories:        accessories,
		NumberOfPassengers: input.NumberOfPassengers,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// validationError embrulha uma falha de regra de negócio como erro de
// validação para a camada HTTP
func validationError(err error) error {
	return &errors.DomainError{
		Type:    errors.ProblemTypeValidation,
		Message: err.Error(),
		Err:     err,
	}
}
