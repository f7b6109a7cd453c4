package entities

import (
	"errors"
	"time"
)

var (
	ErrEndBeforeStart = errors.New("end date must not be before start date")
)

// Reservation representa a locação de um carro por um usuário em um
// intervalo fechado de datas. Guarda referências não-proprietárias:
// apagar usuário ou carro não remove reservas existentes.
type Reservation struct {
	ID         string
	UserID     string
	CarID      string
	StartDate  time.Time
	EndDate    time.Time
	FinalValue float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate valida regras de negócio da entidade Reservation
func (r *Reservation) Validate() error {
	if r.UserID == "" {
		return errors.New("user reference is required")
	}

	if r.CarID == "" {
		return errors.New("car reference is required")
	}

	if r.StartDate.IsZero() || r.EndDate.IsZero() {
		return errors.New("start and end dates are required")
	}

	if r.EndDate.Before(r.StartDate) {
		return ErrEndBeforeStart
	}

	return nil
}

// Overlaps aplica o teste de interseção inclusiva entre o período da
// reserva e [start, end]: dois intervalos se cruzam quando o início de
// cada um é <= o fim do outro.
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return !r.StartDate.After(end) && !r.EndDate.Before(start)
}
