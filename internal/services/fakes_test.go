package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/flexilease/flexilease-backend/internal/domain/entities"
	"github.com/flexilease/flexilease-backend/internal/domain/ports"
	"github.com/flexilease/flexilease-backend/internal/domain/repositories"
)

// Dublês em memória dos ports de persistência, usados por todos os
// testes de serviço deste pacote.

type fakeUserRepo struct {
	users map[string]*entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entities.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entities.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*entities.User, error) {
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Email.String() == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByCPF(_ context.Context, cpf string) (*entities.User, error) {
	for _, u := range f.users {
		if u.CPF.String() == cpf {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entities.User) error {
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) List(_ context.Context, _ repositories.UserFilters) ([]*entities.User, int64, error) {
	out := make([]*entities.User, 0, len(f.users))
	for _, u := range f.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

type fakeCarRepo struct {
	cars map[string]*entities.Car
}

func newFakeCarRepo() *fakeCarRepo {
	return &fakeCarRepo{cars: make(map[string]*entities.Car)}
}

func (f *fakeCarRepo) Create(_ context.Context, car *entities.Car) error {
	if car.ID == "" {
		car.ID = uuid.NewString()
	}
	cp := *car
	cp.Accessories = append([]entities.Accessory(nil), car.Accessories...)
	f.cars[car.ID] = &cp
	return nil
}

func (f *fakeCarRepo) FindByID(_ context.Context, id string) (*entities.Car, error) {
	if c, ok := f.cars[id]; ok {
		cp := *c
		cp.Accessories = append([]entities.Accessory(nil), c.Accessories...)
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeCarRepo) Update(_ context.Context, car *entities.Car) error {
	cp := *car
	cp.Accessories = append([]entities.Accessory(nil), car.Accessories...)
	f.cars[car.ID] = &cp
	return nil
}

func (f *fakeCarRepo) Delete(_ context.Context, id string) error {
	delete(f.cars, id)
	return nil
}

func (f *fakeCarRepo) List(_ context.Context, _ repositories.CarFilters) ([]*entities.Car, int64, error) {
	out := make([]*entities.Car, 0, len(f.cars))
	for _, c := range f.cars {
		cp := *c
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

type fakeReservationRepo struct {
	reservations map[string]*entities.Reservation
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{reservations: make(map[string]*entities.Reservation)}
}

func (f *fakeReservationRepo) Create(_ context.Context, r *entities.Reservation) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	cp := *r
	f.reservations[r.ID] = &cp
	return nil
}

func (f *fakeReservationRepo) FindByID(_ context.Context, id string) (*entities.Reservation, error) {
	if r, ok := f.reservations[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeReservationRepo) Update(_ context.Context, r *entities.Reservation) error {
	cp := *r
	f.reservations[r.ID] = &cp
	return nil
}

func (f *fakeReservationRepo) Delete(_ context.Context, id string) error {
	delete(f.reservations, id)
	return nil
}

func (f *fakeReservationRepo) List(_ context.Context, filters repositories.ReservationFilters) ([]*entities.Reservation, int64, error) {
	out := make([]*entities.Reservation, 0, len(f.reservations))
	for _, r := range f.reservations {
		if filters.UserID != nil && r.UserID != *filters.UserID {
			continue
		}
		if filters.CarID != nil && r.CarID != *filters.CarID {
			continue
		}
		cp := *r
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

func (f *fakeReservationRepo) FindOverlapping(_ context.Context, query repositories.OverlapQuery) (*entities.Reservation, error) {
	for _, r := range f.reservations {
		if query.ExcludeID != "" && r.ID == query.ExcludeID {
			continue
		}
		if query.UserID != "" && r.UserID != query.UserID {
			continue
		}
		if query.CarID != "" && r.CarID != query.CarID {
			continue
		}
		if r.Overlaps(query.Start, query.End) {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

type fakeUnitOfWork struct{}

func (fakeUnitOfWork) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (fakeUnitOfWork) Commit(context.Context) error                       { return nil }
func (fakeUnitOfWork) Rollback(context.Context) error                     { return nil }
func (fakeUnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

type fakePostalLookup struct {
	address *ports.PostalAddress
	err     error
}

func (f *fakePostalLookup) Lookup(context.Context, string) (*ports.PostalAddress, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.address, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...any)        {}
func (noopLogger) Error(string, ...any)       {}
func (noopLogger) Debug(string, ...any)       {}
func (noopLogger) Warn(string, ...any)        {}
func (l noopLogger) With(...any) ports.Logger { return l }
