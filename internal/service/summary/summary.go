package summary

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
	"parcel-service/internal/entities"
)

type Service struct {
	parcelRepo ParcelRepository
	riderRepo  RiderRepository
	userRepo   UserRepository
}

func New(parcelRepo ParcelRepository, riderRepo RiderRepository, userRepo UserRepository) *Service {
	return &Service{
		parcelRepo: parcelRepo,
		riderRepo:  riderRepo,
		userRepo:   userRepo,
	}
}

// AdminSummary каждая цифра отдельный запрос. Запросы идут параллельно и не
// согласованы между собой, кэша нет.
func (s *Service) AdminSummary(ctx context.Context) (*entities.AdminSummary, error) {
	var summary entities.AdminSummary

	paid := entities.PaymentPaid
	pending := entities.RiderPending

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.userRepo.Count(gctx)
		if err != nil {
			return fmt.Errorf("count users: %w", err)
		}
		summary.TotalUsers = n
		return nil
	})
	g.Go(func() error {
		n, err := s.riderRepo.Count(gctx, entities.RiderFilter{})
		if err != nil {
			return fmt.Errorf("count riders: %w", err)
		}
		summary.TotalRiders = n
		return nil
	})
	g.Go(func() error {
		n, err := s.riderRepo.Count(gctx, entities.RiderFilter{Status: &pending})
		if err != nil {
			return fmt.Errorf("count pending riders: %w", err)
		}
		summary.PendingRiderRequests = n
		return nil
	})
	g.Go(func() error {
		n, err := s.parcelRepo.Count(gctx, entities.ParcelFilter{})
		if err != nil {
			return fmt.Errorf("count parcels: %w", err)
		}
		summary.TotalParcels = n
		return nil
	})
	g.Go(func() error {
		sum, err := s.parcelRepo.SumCost(gctx, entities.ParcelFilter{PaymentStatus: &paid})
		if err != nil {
			return fmt.Errorf("sum payments: %w", err)
		}
		summary.TotalPayments = sum
		return nil
	})

	byStatus := []struct {
		status entities.DeliveryStatusType
		dst    *int64
	}{
		{entities.DeliveryPickedUp, &summary.PendingParcels},
		{entities.DeliveryInTransition, &summary.InTransition},
		{entities.DeliveryDelivered, &summary.DeliveredParcels},
	}
	for _, c := range byStatus {
		g.Go(func() error {
			n, err := s.parcelRepo.Count(gctx, entities.ParcelFilter{
				DeliveryStatuses: []entities.DeliveryStatusType{c.status},
			})
			if err != nil {
				return fmt.Errorf("count %s parcels: %w", c.status, err)
			}
			*c.dst = n
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &summary, nil
}

// RiderSummary группировка посылок райдера по deliveryStatus, отсутствующие статусы дают ноль.
func (s *Service) RiderSummary(ctx context.Context, email string) (*entities.RiderSummary, error) {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return nil, ErrInvalidEmail
	}

	counts, err := s.parcelRepo.CountByDeliveryStatus(ctx, entities.ParcelFilter{RiderEmail: &email})
	if err != nil {
		return nil, fmt.Errorf("group rider parcels: %w", err)
	}

	var summary entities.RiderSummary
	for _, c := range counts {
		summary.TotalParcels += c.Count
		switch c.Status {
		case entities.DeliveryDelivered:
			summary.DeliveredParcels = c.Count
		case entities.DeliveryInTransition:
			summary.InTransition = c.Count
		}
	}
	return &summary, nil
}
