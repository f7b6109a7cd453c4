package repositories

import (
	"context"

	"github.com/flexilease/flexilease-backend/internal/domain/entities"
)

// CarRepository define a interface para persistência de carros.
// Accessories são sub-entidades exclusivas do carro e viajam junto com
// a entidade em todas as operações.
type CarRepository interface {
	Create(ctx context.Context, car *entities.Car) error
	FindByID(ctx context.Context, id string) (*entities.Car, error)
	Update(ctx context.Context, car *entities.Car) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filters CarFilters) ([]*entities.Car, int64, error)
}

// CarFilters contém os filtros permitidos na listagem de carros
type CarFilters struct {
	Model              *string
	Color              *string
	Year               *int
	ValuePerDay        *float64
	NumberOfPassengers *int
	Page               int
	Limit              int
}
