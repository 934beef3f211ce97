package rider

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"parcel-service/internal/entities"
)

type Service struct {
	repo      Repository
	userRepo  UserRepository
	txManager TxManager
}

func New(repo Repository, userRepo UserRepository, txManager TxManager) *Service {
	return &Service{
		repo:      repo,
		userRepo:  userRepo,
		txManager: txManager,
	}
}

// RegisterRider новая заявка всегда pending/available, что бы ни пришло в запросе.
func (s *Service) RegisterRider(ctx context.Context, rd entities.Rider) (*entities.Rider, error) {
	rd.Email = strings.TrimSpace(rd.Email)
	if err := validateRegistration(&rd); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByEmail(ctx, rd.Email)
	if err != nil {
		return nil, fmt.Errorf("check existing rider: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyExists
	}

	rd.Status = entities.DefaultRiderStatus
	rd.WorkingStatus = entities.DefaultWorkingStatus
	rd.CreatedAt = time.Now()

	id, err := s.repo.Create(ctx, rd)
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("create rider: %w", err)
	}
	rd.ID = id

	return &rd, nil
}

// GetRidersByStatus новые заявки первыми.
func (s *Service) GetRidersByStatus(ctx context.Context, status entities.RiderStatusType) ([]entities.Rider, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	riders, err := s.repo.List(ctx, entities.RiderFilter{Status: &status})
	if err != nil {
		return nil, fmt.Errorf("list riders: %w", err)
	}
	return riders, nil
}

// SetRiderStatus при одобрении в той же транзакции выдает пользователю роль rider.
// Email для каскада берется из заявки райдера, а не из запроса.
func (s *Service) SetRiderStatus(ctx context.Context, id string, status entities.RiderStatusType) (entities.UpdateResult, error) {
	if !isValidRiderID(id) {
		return entities.UpdateResult{}, ErrInvalidRiderID
	}
	if !status.IsValid() {
		return entities.UpdateResult{}, ErrInvalidStatus
	}

	var res entities.UpdateResult
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		rd, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get rider: %w", err)
		}
		if rd == nil {
			return ErrRiderNotFound
		}

		res, err = s.repo.Update(ctx, id, entities.RiderModify{Status: &status})
		if err != nil {
			return fmt.Errorf("update rider status: %w", err)
		}

		if status != entities.RiderApproved {
			return nil
		}

		role := entities.RoleRider
		if _, err := s.userRepo.UpdateByEmail(ctx, rd.Email, entities.UserModify{Role: &role}); err != nil {
			return fmt.Errorf("promote rider user: %w", err)
		}
		return nil
	})
	if err != nil {
		return entities.UpdateResult{}, err
	}

	return res, nil
}

func (s *Service) DeleteRider(ctx context.Context, id string) (int64, error) {
	if !isValidRiderID(id) {
		return 0, ErrInvalidRiderID
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("delete rider: %w", err)
	}
	if deleted == 0 {
		return 0, ErrRiderNotFound
	}
	return deleted, nil
}

// ReleaseIdleRiders возвращает в available всех райдеров без активных посылок.
func (s *Service) ReleaseIdleRiders(ctx context.Context) (int64, error) {
	released, err := s.repo.ReleaseIdle(ctx, "")
	if err != nil {
		return 0, fmt.Errorf("release idle riders: %w", err)
	}
	return released, nil
}
