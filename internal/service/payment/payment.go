package payment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"parcel-service/internal/entities"
	"parcel-service/internal/pkg/metrics"
)

const (
	DefaultCurrency = "usd"
	methodCard      = "card"
)

type Service struct {
	repo       Repository
	parcelRepo ParcelRepository
	gateway    Gateway
	txManager  TxManager
	currency   string
}

func New(repo Repository, parcelRepo ParcelRepository, gateway Gateway, txManager TxManager, currency string) *Service {
	currency = strings.ToLower(strings.TrimSpace(currency))
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Service{
		repo:       repo,
		parcelRepo: parcelRepo,
		gateway:    gateway,
		txManager:  txManager,
		currency:   currency,
	}
}

// RecordPayment запись оплаты и перевод посылки в paid одной транзакцией.
// Повторная доставка того же сигнала получает ErrAlreadyPaid и ничего не пишет.
func (s *Service) RecordPayment(ctx context.Context, p entities.Payment) (entities.PaymentRecord, error) {
	if err := validatePayment(&p); err != nil {
		return entities.PaymentRecord{}, err
	}

	now := time.Now().UTC()
	p.ID = ""
	p.PaidAt = now
	p.PaidAtString = now.Format(time.RFC3339)

	var record entities.PaymentRecord
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		parcel, err := s.parcelRepo.GetByID(ctx, p.ParcelID)
		if err != nil {
			return fmt.Errorf("get parcel: %w", err)
		}
		if parcel == nil {
			return ErrParcelNotFound
		}

		if _, err := entities.Transition(parcel.Phase(), entities.EventPay); err != nil {
			if errors.Is(err, entities.ErrAlreadyInPhase) {
				return ErrAlreadyPaid
			}
			return fmt.Errorf("%w: %w", ErrInvalidTransition, err)
		}

		id, err := s.repo.Create(ctx, p)
		if err != nil {
			if errors.Is(err, ErrAlreadyPaid) {
				return ErrAlreadyPaid
			}
			return fmt.Errorf("create payment: %w", err)
		}

		unpaid := entities.PaymentUnpaid
		paid := entities.PaymentPaid
		res, err := s.parcelRepo.UpdateIf(ctx, p.ParcelID,
			entities.ParcelCondition{PaymentStatus: &unpaid},
			entities.ParcelModify{PaymentStatus: &paid},
		)
		if err != nil {
			return fmt.Errorf("mark parcel paid: %w", err)
		}
		if res.Modified == 0 {
			return ErrAlreadyPaid
		}

		record = entities.PaymentRecord{InsertedID: id, UpdatedCount: res.Modified}
		return nil
	})

	metrics.ObserveTransition(entities.EventPay.String(), record.UpdatedCount, err)
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	return record, nil
}

// GetPaymentsByEmail история оплат плательщика, новые первыми.
func (s *Service) GetPaymentsByEmail(ctx context.Context, email string) ([]entities.Payment, error) {
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	payments, err := s.repo.ListByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}

func (s *Service) CreatePaymentIntent(ctx context.Context, amount float64) (*entities.PaymentIntent, error) {
	if !isValidAmount(amount) {
		return nil, ErrInvalidAmount
	}

	intent := entities.PaymentIntent{
		Amount:      amount,
		AmountCents: int64(math.Round(amount * 100)),
		Currency:    s.currency,
		Method:      methodCard,
	}

	secret, err := s.gateway.CreatePaymentIntent(ctx, intent)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGatewayFailed, err)
	}
	intent.ClientSecret = secret

	return &intent, nil
}
