package entities

import (
	"errors"
	"time"
)

// Limites de ano de fabricação aceitos pelo catálogo
const (
	MinCarYear = 1950
	MaxCarYear = 2023
)

var (
	ErrNoAccessories        = errors.New("car must have at least one accessory")
	ErrDuplicateAccessory   = errors.New("accessory description already exists for this car")
	ErrEmptyAccessoryDesc   = errors.New("accessory description is required")
	ErrCarYearOutOfRange    = errors.New("car year must be between 1950 and 2023")
	ErrNonPositiveDailyRate = errors.New("value per day must be positive")
)

// Accessory é um opcional do carro, endereçável individualmente por id
type Accessory struct {
	ID          string
	Description string
}

// Car representa um veículo disponível para locação
type Car struct {
	ID                 string
	Model              string
	Color              string
	Year               int
	ValuePerDay        float64
	Accessories        []Accessory
	NumberOfPassengers int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Validate valida regras de negócio da entidade Car
func (c *Car) Validate() error {
	if c.Model == "" {
		return errors.New("model is required")
	}

	if c.Color == "" {
		return errors.New("color is required")
	}

	if c.Year < MinCarYear || c.Year > MaxCarYear {
		return ErrCarYearOutOfRange
	}

	if c.ValuePerDay <= 0 {
		return ErrNonPositiveDailyRate
	}

	if len(c.Accessories) == 0 {
		return ErrNoAccessories
	}

	for _, acc := range c.Accessories {
		if acc.Description == "" {
			return ErrEmptyAccessoryDesc
		}
	}

	if c.NumberOfPassengers <= 0 {
		return errors.New("number of passengers must be positive")
	}

	return nil
}

// UpsertAccessory atualiza a descrição do acessório com o id informado,
// ou anexa um novo acessório com esse id quando nenhum corresponde.
// Descrições repetidas dentro do mesmo carro são rejeitadas.
func (c *Car) UpsertAccessory(id, description string) error {
	if description == "" {
		return ErrEmptyAccessoryDesc
	}

	for _, acc := range c.Accessories {
		if acc.ID != id && acc.Description == description {
			return ErrDuplicateAccessory
		}
	}

	for i := range c.Accessories {
		if c.Accessories[i].ID == id {
			c.Accessories[i].Description = description
			return nil
		}
	}

	c.Accessories = append(c.Accessories, Accessory{ID: id, Description: description})
	return nil
}
