package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/flexilease/flexilease-backend/internal/domain/entities"
	"github.com/flexilease/flexilease-backend/internal/domain/repositories"
)

// CarRepository implementa repositories.CarRepository
type CarRepository struct {
	db *gorm.DB
}

// NewCarRepository cria um novo CarRepository
func NewCarRepository(db *gorm.DB) repositories.CarRepository {
	return &CarRepository{db: db}
}

func (r *CarRepository) Create(ctx context.Context, car *entities.Car) error {
	model := r.toModel(car)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	car.ID = model.ID
	for i := range model.Accessories {
		car.Accessories[i].ID = model.Accessories[i].ID
	}
	return nil
}

func (r *CarRepository) FindByID(ctx context.Context, id string) (*entities.Car, error) {
	var model CarModel

	db := dbFromContext(ctx, r.db)
	if err := db.Preload("Accessories").Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

// Update substitui o carro inteiro, acessórios inclusive. A troca dos
// acessórios roda na mesma transação para não deixar o carro sem a
// sub-lista em caso de falha.
func (r *CarRepository) Update(ctx context.Context, car *entities.Car) error {
	model := r.toModel(car)

	db := dbFromContext(ctx, r.db)
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("car_id = ?", car.ID).Delete(&AccessoryModel{}).Error; err != nil {
			return err
		}
		return tx.Save(model).Error
	})
}

func (r *CarRepository) Delete(ctx context.Context, id string) error {
	db := dbFromContext(ctx, r.db)
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("car_id = ?", id).Delete(&AccessoryModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&CarModel{}).Error
	})
}

func (r *CarRepository) List(ctx context.Context, filters repositories.CarFilters) ([]*entities.Car, int64, error) {
	var models []*CarModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&CarModel{})

	if filters.Model != nil {
		query = query.Where("model ILIKE ?", "%"+*filters.Model+"%")
	}
	if filters.Color != nil {
		query = query.Where("color ILIKE ?", "%"+*filters.Color+"%")
	}
	if filters.Year != nil {
		query = query.Where("year = ?", *filters.Year)
	}
	if filters.ValuePerDay != nil {
		query = query.Where("value_per_day = ?", *filters.ValuePerDay)
	}
	if filters.NumberOfPassengers != nil {
		query = query.Where("number_of_passengers = ?", *filters.NumberOfPassengers)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, limit := normalizePage(filters.Page, filters.Limit, 100)
	if err := query.Preload("Accessories").Limit(limit).Offset((page - 1) * limit).Find(&models).Error; err != nil {
		return nil, 0, err
	}

	cars := make([]*entities.Car, 0, len(models))
	for _, model := range models {
		cars = append(cars, r.toEntity(model))
	}
	return cars, total, nil
}

// Conversores
func (r *CarRepository) toModel(car *entities.Car) *CarModel {
	accessories := make([]AccessoryModel, len(car.Accessories))
	for i, acc := range car.Accessories {
		accessories[i] = AccessoryModel{
			ID:          acc.ID,
			CarID:       car.ID,
			Description: acc.Description,
		}
	}

	return &CarModel{
		ID:                 car.ID,
		Model:              car.Model,
		Color:              car.Color,
		Year:               car.Year,
		ValuePerDay:        car.ValuePerDay,
		NumberOfPassengers: car.NumberOfPassengers,
		Accessories:        accessories,
		CreatedAt:          car.CreatedAt.Unix(),
		UpdatedAt:          car.UpdatedAt.Unix(),
	}
}

func (r *CarRepository) toEntity(model *CarModel) *entities.Car {
	accessories := make([]entities.Accessory, len(model.Accessories))
	for i, acc := range model.Accessories {
		accessories[i] = entities.Accessory{
			ID:          acc.ID,
			Description: acc.Description,
		}
	}

	return &entities.Car{
		ID:                 model.ID,
		Model:              model.Model,
		Color:              model.Color,
		Year:               model.Year,
		ValuePerDay:        model.ValuePerDay,
		NumberOfPassengers: model.NumberOfPassengers,
		Accessories:        accessories,
		CreatedAt:          time.Unix(model.CreatedAt, 0),
		UpdatedAt:          time.Unix(model.UpdatedAt, 0),
	}
}
