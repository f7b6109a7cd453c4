package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/flexilease/flexilease-backend/internal/domain/entities"
	"github.com/flexilease/flexilease-backend/internal/domain/repositories"
)

// ReservationRepository implementa repositories.ReservationRepository
type ReservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository cria um novo ReservationRepository
func NewReservationRepository(db *gorm.DB) repositories.ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Create(ctx context.Context, reservation *entities.Reservation) error {
	model := r.toModel(reservation)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	reservation.ID = model.ID
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id string) (*entities.Reservation, error) {
	var model ReservationModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *ReservationRepository) Update(ctx context.Context, reservation *entities.Reservation) error {
	model := r.toModel(reservation)

	db := dbFromContext(ctx, r.db)
	return db.Save(model).Error
}

func (r *ReservationRepository) Delete(ctx context.Context, id string) error {
	db := dbFromContext(ctx, r.db)
	return db.Where("id = ?", id).Delete(&ReservationModel{}).Error
}

func (r *ReservationRepository) List(ctx context.Context, filters repositories.ReservationFilters) ([]*entities.Reservation, int64, error) {
	var models []*ReservationModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&ReservationModel{})

	if filters.ID != nil {
		query = query.Where("id = ?", *filters.ID)
	}
	if filters.UserID != nil {
		query = query.Where("user_id = ?", *filters.UserID)
	}
	if filters.CarID != nil {
		query = query.Where("car_id = ?", *filters.CarID)
	}
	if filters.StartDate != nil {
		query = query.Where("start_date = ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("end_date = ?", *filters.EndDate)
	}
	if filters.FinalValue != nil {
		query = query.Where("final_value = ?", *filters.FinalValue)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, limit := normalizePage(filters.Page, filters.Limit, 10)
	if err := query.Limit(limit).Offset((page - 1) * limit).Find(&models).Error; err != nil {
		return nil, 0, err
	}

	reservations := make([]*entities.Reservation, 0, len(models))
	for _, model := range models {
		reservations = append(reservations, r.toEntity(model))
	}
	return reservations, total, nil
}

// FindOverlapping busca a primeira reserva que cruza o intervalo
// fechado da consulta: existing.start <= end AND existing.end >= start
func (r *ReservationRepository) FindOverlapping(ctx context.Context, query repositories.OverlapQuery) (*entities.Reservation, error) {
	var model ReservationModel

	db := dbFromContext(ctx, r.db)
	q := db.Model(&ReservationModel{}).
		Where("start_date <= ? AND end_date >= ?", query.End, query.Start)

	if query.UserID != "" {
		q = q.Where("user_id = ?", query.UserID)
	}
	if query.CarID != "" {
		q = q.Where("car_id = ?", query.CarID)
	}
	if query.ExcludeID != "" {
		q = q.Where("id <> ?", query.ExcludeID)
	}

	if err := q.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

// Conversores
func (r *ReservationRepository) toModel(reservation *entities.Reservation) *ReservationModel {
	return &ReservationModel{
		ID:         reservation.ID,
		UserID:     reservation.UserID,
		CarID:      reservation.CarID,
		StartDate:  reservation.StartDate,
		EndDate:    reservation.EndDate,
		FinalValue: reservation.FinalValue,
		CreatedAt:  reservation.CreatedAt.Unix(),
		UpdatedAt:  reservation.UpdatedAt.Unix(),
	}
}

func (r *ReservationRepository) toEntity(model *ReservationModel) *entities.Reservation {
	return &entities.Reservation{
		ID:         model.ID,
		UserID:     model.UserID,
		CarID:      model.CarID,
		StartDate:  model.StartDate.UTC(),
		EndDate:    model.EndDate.UTC(),
		FinalValue: model.FinalValue,
		CreatedAt:  time.Unix(model.CreatedAt, 0),
		UpdatedAt:  time.Unix(model.UpdatedAt, 0),
	}
}
