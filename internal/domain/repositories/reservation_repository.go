package repositories

import (
	"context"
	"time"

	"github.com/flexilease/flexilease-backend/internal/domain/entities"
)

// ReservationRepository define a interface para persistência de reservas
type ReservationRepository interface {
	Create(ctx context.Context, reservation *entities.Reservation) error
	FindByID(ctx context.Context, id string) (*entities.Reservation, error)
	Update(ctx context.Context, reservation *entities.Reservation) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filters ReservationFilters) ([]*entities.Reservation, int64, error)
	FindOverlapping(ctx context.Context, query OverlapQuery) (*entities.Reservation, error)
}

// OverlapQuery descreve uma busca por reservas que cruzam o intervalo
// fechado [Start, End]. UserID e CarID restringem o escopo da busca
// (pelo menos um deve ser informado); ExcludeID deixa de fora a
// própria reserva em atualizações.
type OverlapQuery struct {
	UserID    string
	CarID     string
	Start     time.Time
	End       time.Time
	ExcludeID string
}

// ReservationFilters contém os filtros permitidos na listagem de
// reservas. Datas são comparações exatas; ids e valor final também.
type ReservationFilters struct {
	ID         *string
	UserID     *string
	CarID      *string
	StartDate  *time.Time
	EndDate    *time.Time
	FinalValue *float64
	Page       int
	Limit      int
}
