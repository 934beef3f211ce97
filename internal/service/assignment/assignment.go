package assignment

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
	parcelRepo ParcelRepository
	riderRepo  RiderRepository
	txManager  TxManager
}

func New(parcelRepo ParcelRepository, riderRepo RiderRepository, txManager TxManager) *Service {
	return &Service{
		parcelRepo: parcelRepo,
		riderRepo:  riderRepo,
		txManager:  txManager,
	}
}

// Assign связывает посылку и райдера. Обе записи идут в одной serializable
// транзакции: если любая не сработала, откатываются обе.
// Имя и email райдера берутся из его записи, значения из запроса не доверяются.
func (s *Service) Assign(ctx context.Context, req entities.AssignmentRequest) (*entities.Assignment, error) {
	if strings.TrimSpace(req.ParcelID) == "" {
		return nil, ErrInvalidParcelID
	}
	if strings.TrimSpace(req.RiderID) == "" {
		return nil, ErrInvalidRiderID
	}

	var assignment *entities.Assignment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		rider, err := s.riderRepo.GetByID(ctx, req.RiderID)
		if err != nil {
			return fmt.Errorf("get rider: %w", err)
		}
		if rider == nil || rider.Status != entities.RiderApproved {
			return ErrRiderNotAssignable
		}

		parcel, err := s.parcelRepo.GetByID(ctx, req.ParcelID)
		if err != nil {
			return fmt.Errorf("get parcel: %w", err)
		}
		if parcel == nil {
			return ErrParcelNotFound
		}
		if _, err := entities.Transition(parcel.Phase(), entities.EventAssign); err != nil {
			return fmt.Errorf("%w: %w", ErrParcelNotAssignable, err)
		}

		now := time.Now()
		paid := entities.PaymentPaid
		inTransition := entities.DeliveryInTransition

		parcelRes, err := s.parcelRepo.UpdateIf(ctx, req.ParcelID,
			entities.ParcelCondition{
				PaymentStatus:    &paid,
				DeliveryStatuses: []entities.DeliveryStatusType{entities.DeliveryNotCollected},
			},
			entities.ParcelModify{
				DeliveryStatus: &inTransition,
				AssignedRider:  &entities.RiderRef{ID: rider.ID, Name: rider.Name},
				RiderEmail:     &rider.Email,
				AssignedAt:     &now,
			},
		)
		if err != nil {
			return fmt.Errorf("update parcel: %w", err)
		}
		if parcelRes.Modified == 0 {
			return fmt.Errorf("%w: parcel update matched nothing", ErrAssignmentFailed)
		}

		inDelivery := entities.RiderInDelivery
		riderRes, err := s.riderRepo.Update(ctx, rider.ID, entities.RiderModify{WorkingStatus: &inDelivery})
		if err != nil {
			return fmt.Errorf("update rider: %w", err)
		}
		// райдер с другими активными посылками уже in-delivery, важно только совпадение
		if riderRes.Matched == 0 {
			return fmt.Errorf("%w: rider update matched nothing", ErrAssignmentFailed)
		}

		assignment = &entities.Assignment{
			ParcelID:   req.ParcelID,
			RiderID:    rider.ID,
			RiderEmail: rider.Email,
			AssignedAt: now,
		}
		return nil
	})

	if errors.Is(err, tx.ErrSerialization) {
		err = fmt.Errorf("%w: %w", ErrAssignmentFailed, err)
	}

	var modified int64
	if assignment != nil {
		modified = 1
	}
	metrics.ObserveTransition(entities.EventAssign.String(), modified, err)

	if err != nil {
		return nil, err
	}
	return assignment, nil
}

// AssignableParcels оплаченные и еще не забранные.
func (s *Service) AssignableParcels(ctx context.Context) ([]entities.Parcel, error) {
	paid := entities.PaymentPaid
	parcels, err := s.parcelRepo.List(ctx, entities.ParcelFilter{
		PaymentStatus:    &paid,
		DeliveryStatuses: []entities.DeliveryStatusType{entities.DeliveryNotCollected},
	})
	if err != nil {
		return nil, fmt.Errorf("list assignable parcels: %w", err)
	}
	return parcels, nil
}

// ApprovedRiders пустой region не фильтрует.
func (s *Service) ApprovedRiders(ctx context.Context, region string) ([]entities.Rider, error) {
	approved := entities.RiderApproved
	filter := entities.RiderFilter{Status: &approved}
	if region = strings.TrimSpace(region); region != "" {
		filter.Region = &region
	}

	riders, err := s.riderRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list approved riders: %w", err)
	}
	return riders, nil
}
