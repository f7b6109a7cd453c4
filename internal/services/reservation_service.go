package services

import (
	"context"
	"time"

	"github.com/flexilease/flexilease-backend/internal/dateutil"
	"github.com/flexilease/flexilease-backend/internal/domain/entities"
	"github.com/flexilease/flexilease-backend/internal/domain/errors"
	"github.com/flexilease/flexilease-backend/internal/domain/ports"
	"github.com/flexilease/flexilease-backend/internal/domain/repositories"
)

// ReservationService decide se uma reserva pode ser criada ou alterada
// e calcula seu preço. Regras:
//   - só usuários habilitados ("sim") reservam;
//   - o período fechado [start, end] não pode cruzar outra reserva do
//     mesmo usuário nem do mesmo carro, na criação e na atualização;
//   - final_value = dias(start, end) * value_per_day do carro, com a
//     mesma fórmula de contagem nos dois caminhos.
type ReservationService struct {
	reservationRepo repositories.ReservationRepository
	userRepo        repositories.UserRepository
	carRepo         repositories.CarRepository
	uow             ports.UnitOfWork
	logger          ports.Logger
}

// NewReservationService cria um novo ReservationService
func NewReservationService(
	reservationRepo repositories.ReservationRepository,
	userRepo repositories.UserRepository,
	carRepo repositories.CarRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		userRepo:        userRepo,
		carRepo:         carRepo,
		uow:             uow,
		logger:          logger,
	}
}

// CreateReservationInput representa o pedido de criação de reserva,
// com datas em dd/mm/aaaa
type CreateReservationInput struct {
	UserID    string
	CarID     string
	StartDate string
	EndDate   string
}

// CreateReservation valida o pedido e persiste a reserva. A checagem
// de conflito e a escrita rodam na mesma transação, o que estreita a
// janela do check-then-act mas não a elimina sem constraint de
// exclusão no banco.
func (s *ReservationService) CreateReservation(ctx context.Context, input CreateReservationInput) (*entities.Reservation, error) {
	start, end, err := s.parsePeriod(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	if !user.CanReserve() {
		return nil, errors.ErrUserNotQualified
	}

	car, err := s.carRepo.FindByID(ctx, input.CarID)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, errors.ErrCarNotFound
	}

	reservation := &entities.Reservation{
		UserID:     user.ID,
		CarID:      car.ID,
		StartDate:  start,
		EndDate:    end,
		FinalValue: Price(start, end, car.ValuePerDay),
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.checkConflicts(txCtx, reservation, ""); err != nil {
			return err
		}
		return s.reservationRepo.Create(txCtx, reservation)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("reservation created",
		"reservation_id", reservation.ID,
		"user_id", user.ID,
		"car_id", car.ID,
		"final_value", reservation.FinalValue,
	)
	return reservation, nil
}

// UpdateReservation substitui o período de uma reserva, reconferindo
// conflitos (fora a própria reserva) e recalculando o preço
func (s *ReservationService) UpdateReservation(ctx context.Context, id, startDate, endDate string) (*entities.Reservation, error) {
	reservation, err := s.reservationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reservation == nil {
		return nil, errors.ErrReservationNotFound
	}

	start, end, err := s.parsePeriod(startDate, endDate)
	if err != nil {
		return nil, err
	}

	// Carro ausente aqui é violação de integridade: a reserva guarda
	// uma referência pendente
	car, err := s.carRepo.FindByID(ctx, reservation.CarID)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, errors.ErrCarNotFound
	}

	reservation.StartDate = start
	reservation.EndDate = end
	reservation.FinalValue = Price(start, end, car.ValuePerDay)
	reservation.UpdatedAt = time.Now().UTC()

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.checkConflicts(txCtx, reservation, reservation.ID); err != nil {
			return err
		}
		return s.reservationRepo.Update(txCtx, reservation)
	})
	if err != nil {
		return nil, err
	}

	return reservation, nil
}

// GetReservation busca uma reserva por ID
func (s *ReservationService) GetReservation(ctx context.Context, id string) (*entities.Reservation, error) {
	reservation, err := s.reservationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reservation == nil {
		return nil, errors.ErrReservationNotFound
	}
	return reservation, nil
}

// ListReservations lista reservas com filtros tipados e paginação
func (s *ReservationService) ListReservations(ctx context.Context, filters repositories.ReservationFilters) ([]*entities.Reservation, int64, error) {
	return s.reservationRepo.List(ctx, filters)
}

// DeleteReservation remove uma reserva por ID, sem efeitos em cascata
func (s *ReservationService) DeleteReservation(ctx context.Context, id string) error {
	reservation, err := s.reservationRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if reservation == nil {
		return errors.ErrReservationNotFound
	}

	return s.reservationRepo.Delete(ctx, id)
}

// parsePeriod converte e ordena o par de datas do pedido
func (s *ReservationService) parsePeriod(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := dateutil.Parse(startDate)
	if err != nil {
		return time.Time{}, time.Time{}, errors.ErrInvalidDate
	}

	end, err := dateutil.Parse(endDate)
	if err != nil {
		return time.Time{}, time.Time{}, errors.ErrInvalidDate
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, errors.ErrEndBeforeStart
	}

	return start, end, nil
}

// checkConflicts aplica o teste de interseção inclusiva no nível do
// usuário e do carro; excludeID deixa a própria reserva de fora em
// atualizações
func (s *ReservationService) checkConflicts(ctx context.Context, r *entities.Reservation, excludeID string) error {
	conflict, err := s.reservationRepo.FindOverlapping(ctx, repositories.OverlapQuery{
		UserID:    r.UserID,
		Start:     r.StartDate,
		End:       r.EndDate,
		ExcludeID: excludeID,
	})
	if err != nil {
		return err
	}
	if conflict != nil {
		return errors.ErrUserDateConflict
	}

	conflict, err = s.reservationRepo.FindOverlapping(ctx, repositories.OverlapQuery{
		CarID:     r.CarID,
		Start:     r.StartDate,
		End:       r.EndDate,
		ExcludeID: excludeID,
	})
	if err != nil {
		return err
	}
	if conflict != nil {
		return errors.ErrCarDateConflict
	}

	return nil
}

// Price calcula o valor final de uma reserva: dias inteiros entre as
// datas vezes a diária do carro
func Price(start, end time.Time, valuePerDay float64) float64 {
	return float64(dateutil.DaysBetween(start, end)) * valuePerDay
}
