package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/postoverde/cashback-backend/internal/domain/entities"
	"github.com/postoverde/cashback-backend/internal/domain/errors"
	"github.com/postoverde/cashback-backend/internal/domain/valueobjects"
)

var _ = Describe("WalletService", func() {
	var (
		ctx      context.Context
		userRepo *fakeUserRepo
		codeRepo *fakeCodeRepo
		service  *WalletService
		clock    time.Time

		customer *entities.User
		employee *entities.User
	)

	BeforeEach(func() {
		ctx = context.Background()
		userRepo = newFakeUserRepo()
		codeRepo = newFakeCodeRepo()
		service = NewWalletService(userRepo, codeRepo, fakeUnitOfWork{}, noopLogger{})

		clock = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		service.now = func() time.Time { return clock }

		customer = &entities.User{
			ID:      uuid.NewString(),
			Name:    "Maria da Silva",
			CPF:     valueobjects.CPFFromTrusted("12345678901"),
			Role:    entities.RoleCustomer,
			Balance: 20.00,
			Points:  250,
			Active:  true,
		}
		employee = &entities.User{
			ID:     uuid.NewString(),
			Name:   "Carlos Atendente",
			CPF:    valueobjects.CPFFromTrusted("98765432100"),
			Role:   entities.RoleEmployee,
			Active: true,
		}
		userRepo.put(customer)
		userRepo.put(employee)
	})

	Describe("ConvertPoints", func() {
		It("converte pontos em saldo à taxa de 100 por real", func() {
			result, err := service.ConvertPoints(ctx, customer.ID, 200)
			Expect(err).NotTo(HaveOccurred())

			Expect(result.PointsConverted).To(Equal(200))
			Expect(result.CashbackEarned).To(Equal(2.00))
			Expect(result.NewBalance).To(Equal(22.00))
			Expect(result.NewPoints).To(Equal(50))

			stored := userRepo.get(customer.ID)
			Expect(stored.Balance).To(Equal(22.00))
			Expect(stored.Points).To(Equal(50))
		})

		It("rejeita quantidade abaixo do mínimo de 100 pontos", func() {
			_, err := service.ConvertPoints(ctx, customer.ID, 99)
			Expect(err).To(MatchError(errors.ErrBelowMinimumConversion))
		})

		It("rejeita conversão maior que o total de pontos", func() {
			_, err := service.ConvertPoints(ctx, customer.ID, 300)
			Expect(err).To(MatchError(errors.ErrInsufficientPoints))

			Expect(userRepo.get(customer.ID).Points).To(Equal(250))
		})

		It("rejeita usuário inexistente", func() {
			_, err := service.ConvertPoints(ctx, "nao-existe", 100)
			Expect(err).To(MatchError(errors.ErrUserNotFound))
		})
	})

	Describe("CreateCode", func() {
		It("gera um código de 8 caracteres com validade de 30 minutos", func() {
			code, err := service.CreateCode(ctx, customer.ID, 15.00)
			Expect(err).NotTo(HaveOccurred())

			Expect(code.Code).To(HaveLen(entities.CodeLength))
			Expect(code.Code).To(MatchRegexp(`^[A-Z0-9]{8}$`))
			Expect(code.Value).To(Equal(15.00))
			Expect(code.Used).To(BeFalse())
			Expect(code.ExpiresAt).To(Equal(clock.Add(30 * time.Minute)))
		})

		It("não debita o saldo na criação", func() {
			_, err := service.CreateCode(ctx, customer.ID, 15.00)
			Expect(err).NotTo(HaveOccurred())

			Expect(userRepo.get(customer.ID).Balance).To(Equal(20.00))
		})

		It("rejeita valor abaixo de R$ 5,00", func() {
			_, err := service.CreateCode(ctx, customer.ID, 4.99)
			Expect(err).To(MatchError(errors.ErrBelowMinimumCode))
		})

		It("rejeita valor acima do saldo atual", func() {
			_, err := service.CreateCode(ctx, customer.ID, 20.01)
			Expect(err).To(MatchError(errors.ErrInsufficientBalance))
		})
	})

	Describe("RedeemCode", func() {
		var code *entities.CashbackCode

		BeforeEach(func() {
			var err error
			code, err = service.CreateCode(ctx, customer.ID, 15.00)
			Expect(err).NotTo(HaveOccurred())
		})

		It("debita o dono e marca o código como usado", func() {
			result, err := service.RedeemCode(ctx, employee.ID, code.Code)
			Expect(err).NotTo(HaveOccurred())

			Expect(result.Value).To(Equal(15.00))
			Expect(result.CustomerName).To(Equal("Maria da Silva"))
			Expect(result.NewBalance).To(Equal(5.00))

			Expect(userRepo.get(customer.ID).Balance).To(Equal(5.00))

			stored := codeRepo.get(code.ID)
			Expect(stored.Used).To(BeTrue())
			Expect(stored.EmployeeID).To(HaveValue(Equal(employee.ID)))
		})

		It("recusa a segunda validação do mesmo código", func() {
			_, err := service.RedeemCode(ctx, employee.ID, code.Code)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.RedeemCode(ctx, employee.ID, code.Code)
			Expect(err).To(MatchError(errors.ErrCodeNotRedeemable))

			// O saldo foi debitado uma única vez
			Expect(userRepo.get(customer.ID).Balance).To(Equal(5.00))
		})

		It("recusa código expirado", func() {
			clock = clock.Add(31 * time.Minute)

			_, err := service.RedeemCode(ctx, employee.ID, code.Code)
			Expect(err).To(MatchError(errors.ErrCodeNotRedeemable))
		})

		It("aceita código a um segundo da expiração", func() {
			clock = clock.Add(30*time.Minute - time.Second)

			_, err := service.RedeemCode(ctx, employee.ID, code.Code)
			Expect(err).NotTo(HaveOccurred())
		})

		It("recusa código desconhecido com o mesmo erro de expirado e usado", func() {
			_, err := service.RedeemCode(ctx, employee.ID, "XXXXXXXX")
			Expect(err).To(MatchError(errors.ErrCodeNotRedeemable))
		})

		It("reavalia o saldo do dono no momento do resgate", func() {
			// O saldo caiu abaixo do valor do código depois da criação
			newBalance := 10.00
			Expect(userRepo.UpdateBalanceAndPoints(ctx, customer.ID, &newBalance, nil)).To(Succeed())

			_, err := service.RedeemCode(ctx, employee.ID, code.Code)
			Expect(err).To(MatchError(errors.ErrInsufficientBalance))

			// Nada foi debitado
			Expect(userRepo.get(customer.ID).Balance).To(Equal(10.00))
		})

		It("recusa chamador que não é funcionário", func() {
			_, err := service.RedeemCode(ctx, customer.ID, code.Code)
			Expect(err).To(MatchError(errors.ErrEmployeeOnly))
		})
	})
})
