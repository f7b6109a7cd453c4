package services

import (
	"context"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/flexilease/flexilease-backend/internal/dateutil"
	"github.com/flexilease/flexilease-backend/internal/domain/entities"
	"github.com/flexilease/flexilease-backend/internal/domain/errors"
	"github.com/flexilease/flexilease-backend/internal/domain/valueobjects"
)

var _ = Describe("ReservationService", func() {
	var (
		ctx             context.Context
		userRepo        *fakeUserRepo
		carRepo         *fakeCarRepo
		reservationRepo *fakeReservationRepo
		service         *ReservationService
		driver          *entities.User
		car             *entities.Car
	)

	newUser := func(qualified entities.Qualification, emailAddr, cpfNum string) *entities.User {
		email, err := valueobjects.NewEmail(emailAddr)
		Expect(err).NotTo(HaveOccurred())
		cpf, err := valueobjects.NewCPF(cpfNum)
		Expect(err).NotTo(HaveOccurred())

		birth, err := dateutil.Parse("10/05/1990")
		Expect(err).NotTo(HaveOccurred())

		user := &entities.User{
			Name:      "Maria Santos",
			CPF:       cpf,
			Birth:     birth,
			Email:     email,
			CEP:       "01001-000",
			Qualified: qualified,
		}
		Expect(userRepo.Create(ctx, user)).To(Succeed())
		return user
	}

	newCar := func(rate float64) *entities.Car {
		c := &entities.Car{
			Model:              "Fiat Uno",
			Color:              "vermelho",
			Year:               2020,
			ValuePerDay:        rate,
			Accessories:        []entities.Accessory{{ID: "acc-1", Description: "Ar condicionado"}},
			NumberOfPassengers: 5,
		}
		Expect(carRepo.Create(ctx, c)).To(Succeed())
		return c
	}

	BeforeEach(func() {
		ctx = context.Background()
		userRepo = newFakeUserRepo()
		carRepo = newFakeCarRepo()
		reservationRepo = newFakeReservationRepo()
		service = NewReservationService(reservationRepo, userRepo, carRepo, fakeUnitOfWork{}, noopLogger{})

		driver = newUser(entities.QualifiedYes, "maria@example.com", "123.456.789-00")
		car = newCar(100)
	})

	Describe("CreateReservation", func() {
		It("cria a reserva e calcula o preço por dias inteiros", func() {
			reservation, err := service.CreateReservation(ctx, CreateReservationInput{
				UserID:    driver.ID,
				CarID:     car.ID,
				StartDate: "01/01/2023",
				EndDate:   "10/01/2023",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(reservation.ID).NotTo(BeEmpty())
			Expect(reservation.FinalValue).To(Equal(900.0))
			Expect(fmt.Sprintf("%.2f", reservation.FinalValue)).To(Equal("900.00"))
		})

		It("preserva ids e preço no round-trip de consulta", func() {
			created, err := service.CreateReservation(ctx, CreateReservationInput{
				UserID:    driver.ID,
				CarID:     car.ID,
				StartDate: "01/01/2023",
				EndDate:   "10/01/2023",
			})
			Expect(err).NotTo(HaveOccurred())

			fetched, err := service.GetReservation(ctx, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(fetched.UserID).To(Equal(created.UserID))
			Expect(fetched.CarID).To(Equal(created.CarID))
			Expect(fetched.FinalValue).To(Equal(created.FinalValue))
		})

		It("rejeita datas em formato inválido", func() {
			_, err := service.CreateReservation(ctx, CreateReservationInput{
				UserID:    driver.ID,
				CarID:     car.ID,
				StartDate: "2023-01-01",
				EndDate:   "10/01/2023",
			})
			Expect(err).To(MatchError(errors.ErrInvalidDate))
		})

		It("rejeita período com fim antes do início", func() {
			_, err := service.CreateReservation(ctx, CreateReservationInput{
				UserID:    driver.ID,
				CarID:     car.ID,
				StartDate: "10/01/2023",
				EndDate:   "01/01/2023",
			})
			Expect(err).To(MatchError(errors.ErrEndBeforeStart))
		})

		It("rejeita usuário inexistente", func() {
			_, err := service.CreateReservation(ctx, CreateReservationInput{
				UserID:    "missing",
				CarID:     car.ID,
				StartDate: "01/01/2023",
				EndDate:   "10/01/2023",
			})
			Expect(err).To(MatchError(errors.ErrUserNotFound))
		})

		It("rejeita usuário não habilitado mesmo com datas válidas", func() {
			unqualified := newUser(entities.QualifiedNo, "joao@example.com", "987.654.321-00")

			_, err := service.CreateReservation(ctx, CreateReservationInput{
				UserID:    unqualified.ID,
				CarID:     car.ID,
				StartDate: "01/01/2023",
				EndDate:   "10/01/2023",
			})
			Expect(err).To(MatchError(errors.ErrUserNotQualified))
		})

		It("rejeita carro inexistente", func() {
			_, err := service.CreateReservation(ctx, CreateReservationInput{
				UserID:    driver.ID,
				CarID:     "missing",
				StartDate: "01/01/2023",
				EndDate:   "10/01/2023",
			})
			Expect(err).To(MatchError(errors.ErrCarNotFound))
		})

		Context("conflito de datas do mesmo usuário", func() {
			BeforeEach(func() {
				_, err := service.CreateReservation(ctx, CreateReservationInput{
					UserID:    driver.ID,
					CarID:     car.ID,
					StartDate: "10/01/2023",
					EndDate:   "20/01/2023",
				})
				Expect(err).NotTo(HaveOccurred())
			})

			DescribeTable("aplica o teste de interseção inclusiva",
				func(start, end string, conflicts bool) {
					_, err := service.CreateReservation(ctx, CreateReservationInput{
						UserID:    driver.ID,
						CarID:     newCar(50).ID,
						StartDate: start,
						EndDate:   end,
					})
					if conflicts {
						Expect(err).To(MatchError(errors.ErrUserDateConflict))
					} else {
						Expect(err).NotTo(HaveOccurred())
					}
				},
				Entry("contido no período existente", "12/01/2023", "15/01/2023", true),
				Entry("contém o período existente", "05/01/2023", "25/01/2023", true),
				Entry("cruza apenas o início", "05/01/2023", "10/01/2023", true),
				Entry("cruza apenas o fim", "20/01/2023", "25/01/2023", true),
				Entry("termina um dia antes", "05/01/2023", "09/01/2023", false),
				Entry("começa um dia depois", "21/01/2023", "25/01/2023", false),
			)
		})

		It("rejeita conflito de datas do mesmo carro com outro usuário", func() {
			_, err := service.CreateReservation(ctx, CreateReservationInput{
				UserID:    driver.ID,
				CarID:     car.ID,
				StartDate: "10/01/2023",
				EndDate:   "20/01/2023",
			})
			Expect(err).NotTo(HaveOccurred())

			other := newUser(entities.QualifiedYes, "pedro@example.com", "111.222.333-44")
			_, err = service.CreateReservation(ctx, CreateReservationInput{
				UserID:    other.ID,
				CarID:     car.ID,
				StartDate: "15/01/2023",
				EndDate:   "18/01/2023",
			})
			Expect(err).To(MatchError(errors.ErrCarDateConflict))
		})
	})

	Describe("UpdateReservation", func() {
		var existing *entities.Reservation

		BeforeEach(func() {
			var err error
			existing, err = service.CreateReservation(ctx, CreateReservationInput{
				UserID:    driver.ID,
				CarID:     car.ID,
				StartDate: "01/01/2023",
				EndDate:   "05/01/2023",
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("rejeita reserva inexistente", func() {
			_, err := service.UpdateReservation(ctx, "missing", "01/02/2023", "05/02/2023")
			Expect(err).To(MatchError(errors.ErrReservationNotFound))
		})

		It("rejeita sobreposição com outra reserva do mesmo carro", func() {
			other := newUser(entities.QualifiedYes, "ana@example.com", "555.666.777-88")
			_, err := service.CreateReservation(ctx, CreateReservationInput{
				UserID:    other.ID,
				CarID:     car.ID,
				StartDate: "10/02/2023",
				EndDate:   "20/02/2023",
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.UpdateReservation(ctx, existing.ID, "15/02/2023", "18/02/2023")
			Expect(err).To(MatchError(errors.ErrCarDateConflict))
		})

		It("aceita período disjunto e recalcula o preço", func() {
			updated, err := service.UpdateReservation(ctx, existing.ID, "01/03/2023", "11/03/2023")
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.FinalValue).To(Equal(1000.0))

			fetched, err := service.GetReservation(ctx, existing.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(fetched.FinalValue).To(Equal(1000.0))
			Expect(dateutil.Format(fetched.StartDate)).To(Equal("01/03/2023"))
		})

		It("ignora a própria reserva no teste de conflito", func() {
			updated, err := service.UpdateReservation(ctx, existing.ID, "02/01/2023", "06/01/2023")
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.FinalValue).To(Equal(400.0))
		})

		It("rejeita datas inválidas", func() {
			_, err := service.UpdateReservation(ctx, existing.ID, "bogus", "05/02/2023")
			Expect(err).To(MatchError(errors.ErrInvalidDate))
		})
	})

	Describe("DeleteReservation", func() {
		It("remove uma reserva existente", func() {
			created, err := service.CreateReservation(ctx, CreateReservationInput{
				UserID:    driver.ID,
				CarID:     car.ID,
				StartDate: "01/01/2023",
				EndDate:   "05/01/2023",
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(service.DeleteReservation(ctx, created.ID)).To(Succeed())

			_, err = service.GetReservation(ctx, created.ID)
			Expect(err).To(MatchError(errors.ErrReservationNotFound))
		})

		It("retorna not found para id inexistente", func() {
			err := service.DeleteReservation(ctx, "missing")
			Expect(err).To(MatchError(errors.ErrReservationNotFound))
		})
	})
})
