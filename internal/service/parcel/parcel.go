package parcel

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"parcel-service/internal/entities"
	"parcel-service/internal/pkg/metrics"
	"parcel-service/pkg/tx"
)

type Service struct {
	repo              Repository
	riderRepo         RiderRepository
	roleChecker       RoleChecker
	trackingIDFactory TrackingIDFactory
	txManager         TxManager
}

func New(
	repo Repository,
	riderRepo RiderRepository,
	roleChecker RoleChecker,
	trackingIDFactory TrackingIDFactory,
	txManager TxManager,
) *Service {
	return &Service{
		repo:              repo,
		riderRepo:         riderRepo,
		roleChecker:       roleChecker,
		trackingIDFactory: trackingIDFactory,
		txManager:         txManager,
	}
}

// CreateParcel статусы и поля райдера всегда стартовые, из запроса берутся только данные посылки.
func (s *Service) CreateParcel(ctx context.Context, p entities.Parcel) (*entities.Parcel, error) {
	p.OwnerEmail = strings.TrimSpace(p.OwnerEmail)
	if p.Type == "" {
		p.Type = entities.ParcelDocument
	}
	if err := validateNewParcel(&p); err != nil {
		return nil, err
	}

	if strings.TrimSpace(p.TrackingID) == "" {
		p.TrackingID = s.trackingIDFactory.NewTrackingID()
	}
	p.ID = ""
	p.CreatedAt = time.Now()
	p.PaymentStatus = entities.PaymentUnpaid
	p.DeliveryStatus = entities.DeliveryNotCollected
	p.CashOutStatus = entities.CashOutNone
	p.AssignedRider = nil
	p.RiderEmail = nil
	p.AssignedAt = nil
	p.PickedUpAt = nil
	p.DeliveredAt = nil
	p.CashedOutAt = nil

	id, err := s.repo.Create(ctx, p)
	if err != nil {
		if errors.Is(err, ErrConflict) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("create parcel: %w", err)
	}
	p.ID = id

	return &p, nil
}

func (s *Service) GetParcel(ctx context.Context, id string) (*entities.Parcel, error) {
	if !isValidParcelID(id) {
		return nil, ErrInvalidParcelID
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get parcel: %w", err)
	}
	if p == nil {
		return nil, ErrParcelNotFound
	}
	return p, nil
}

func (s *Service) TrackParcel(ctx context.Context, trackingID string) (*entities.Parcel, error) {
	if strings.TrimSpace(trackingID) == "" {
		return nil, ErrInvalidParcelID
	}

	p, err := s.repo.GetByTrackingID(ctx, trackingID)
	if err != nil {
		return nil, fmt.Errorf("track parcel: %w", err)
	}
	if p == nil {
		return nil, ErrParcelNotFound
	}
	return p, nil
}

// GetParcelsByOwner посылки владельца, новые первыми.
func (s *Service) GetParcelsByOwner(ctx context.Context, email string) ([]entities.Parcel, error) {
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	parcels, err := s.repo.List(ctx, entities.ParcelFilter{OwnerEmail: &email})
	if err != nil {
		return nil, fmt.Errorf("list owner parcels: %w", err)
	}
	return parcels, nil
}

// DeleteParcel неоплаченную посылку удалить может кто угодно, оплаченную только admin.
func (s *Service) DeleteParcel(ctx context.Context, caller *entities.Identity, id string) (int64, error) {
	if !isValidParcelID(id) {
		return 0, ErrInvalidParcelID
	}

	var deleted int64
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		p, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get parcel: %w", err)
		}
		if p == nil {
			return ErrParcelNotFound
		}

		if p.PaymentStatus == entities.PaymentPaid {
			if caller == nil {
				return fmt.Errorf("%w: paid parcel can only be deleted by admin", ErrForbidden)
			}
			isAdmin, err := s.roleChecker.HasRole(ctx, caller.Email, entities.RoleAdmin)
			if err != nil {
				return fmt.Errorf("check admin role: %w", err)
			}
			if !isAdmin {
				return fmt.Errorf("%w: paid parcel can only be deleted by admin", ErrForbidden)
			}
		}

		deleted, err = s.repo.Delete(ctx, id)
		if err != nil {
			return fmt.Errorf("delete parcel: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return deleted, nil
}

// MarkPickedUp только назначенный райдер может забрать посылку.
func (s *Service) MarkPickedUp(ctx context.Context, caller *entities.Identity, id string) (entities.UpdateResult, error) {
	if caller == nil {
		return entities.UpdateResult{}, ErrForbidden
	}

	now := time.Now()
	status := entities.DeliveryPickedUp

	return s.transition(ctx, id, entities.EventPickUp,
		func(p *entities.Parcel) error {
			if p.RiderEmail == nil || *p.RiderEmail != caller.Email {
				return fmt.Errorf("%w: parcel is assigned to another rider", ErrForbidden)
			}
			return nil
		},
		entities.ParcelCondition{
			DeliveryStatuses: []entities.DeliveryStatusType{entities.DeliveryInTransition},
			RiderEmail:       &caller.Email,
		},
		entities.ParcelModify{
			DeliveryStatus: &status,
			PickedUpAt:     &now,
		},
		nil,
	)
}

// MarkDelivered повтор не меняет первый deliveredAt. В той же транзакции райдер
// освобождается, если у него не осталось активных посылок.
func (s *Service) MarkDelivered(ctx context.Context, id string) (entities.UpdateResult, error) {
	now := time.Now()
	status := entities.DeliveryDelivered

	return s.transition(ctx, id, entities.EventDeliver,
		nil,
		entities.ParcelCondition{
			DeliveryStatuses: entities.ActiveDeliveryStatuses,
		},
		entities.ParcelModify{
			DeliveryStatus: &status,
			DeliveredAt:    &now,
		},
		func(ctx context.Context, p *entities.Parcel) error {
			if p.RiderEmail == nil {
				return nil
			}
			if _, err := s.riderRepo.ReleaseIdle(ctx, *p.RiderEmail); err != nil {
				return fmt.Errorf("release rider: %w", err)
			}
			return nil
		},
	)
}

// CashOut повторная выплата успешна и ничего не меняет.
func (s *Service) CashOut(ctx context.Context, id string) (entities.UpdateResult, error) {
	now := time.Now()
	delivered := entities.DeliveryDelivered
	none := entities.CashOutNone
	cashedOut := entities.CashOutCashedOut

	return s.transition(ctx, id, entities.EventCashOut,
		nil,
		entities.ParcelCondition{
			DeliveryStatuses: []entities.DeliveryStatusType{delivered},
			CashOutStatus:    &none,
		},
		entities.ParcelModify{
			CashOutStatus: &cashedOut,
			CashedOutAt:   &now,
		},
		nil,
	)
}

// transition общий шаг автомата: чтение, проверка перехода, условное обновление
// и побочный эффект в одной транзакции.
func (s *Service) transition(
	ctx context.Context,
	id string,
	event entities.Event,
	guard func(p *entities.Parcel) error,
	cond entities.ParcelCondition,
	modify entities.ParcelModify,
	after func(ctx context.Context, p *entities.Parcel) error,
) (entities.UpdateResult, error) {
	if !isValidParcelID(id) {
		return entities.UpdateResult{}, ErrInvalidParcelID
	}

	var res entities.UpdateResult
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		p, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get parcel: %w", err)
		}
		if p == nil {
			return ErrParcelNotFound
		}

		if guard != nil {
			if err := guard(p); err != nil {
				return err
			}
		}

		if _, err := entities.Transition(p.Phase(), event); err != nil {
			if errors.Is(err, entities.ErrAlreadyInPhase) {
				res = entities.UpdateResult{Matched: 1}
				return nil
			}
			return fmt.Errorf("%w: %w", ErrInvalidTransition, err)
		}

		res, err = s.repo.UpdateIf(ctx, id, cond, modify)
		if err != nil {
			return fmt.Errorf("update parcel: %w", err)
		}
		if res.Modified == 0 {
			return fmt.Errorf("%w: parcel changed concurrently", ErrInvalidTransition)
		}

		if after != nil {
			return after(ctx, p)
		}
		return nil
	})

	if errors.Is(err, tx.ErrSerialization) {
		err = fmt.Errorf("%w: %w", ErrInvalidTransition, err)
	}

	metrics.ObserveTransition(event.String(), res.Modified, err)
	if err != nil {
		return entities.UpdateResult{}, err
	}
	return res, nil
}

func (s *Service) PendingDeliveries(ctx context.Context, riderEmail string) ([]entities.Parcel, error) {
	return s.riderParcels(ctx, riderEmail, entities.ParcelFilter{
		DeliveryStatuses: entities.ActiveDeliveryStatuses,
	})
}

// CompletedDeliveries доставленные или уже выплаченные.
func (s *Service) CompletedDeliveries(ctx context.Context, riderEmail string) ([]entities.Parcel, error) {
	return s.riderParcels(ctx, riderEmail, entities.ParcelFilter{
		DeliveryStatuses: []entities.DeliveryStatusType{entities.DeliveryDelivered},
		CashOutStatuses:  []entities.CashOutStatusType{entities.CashOutCashedOut},
	})
}

func (s *Service) Earnings(ctx context.Context, riderEmail string) ([]entities.Parcel, error) {
	return s.riderParcels(ctx, riderEmail, entities.ParcelFilter{
		DeliveryStatuses: []entities.DeliveryStatusType{entities.DeliveryDelivered},
	})
}

func (s *Service) riderParcels(ctx context.Context, riderEmail string, filter entities.ParcelFilter) ([]entities.Parcel, error) {
	if !isValidEmail(riderEmail) {
		return nil, ErrInvalidEmail
	}
	filter.RiderEmail = &riderEmail

	parcels, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list rider parcels: %w", err)
	}
	return parcels, nil
}
