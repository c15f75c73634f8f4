package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/availability"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/availability/models"
)

// Service сервис для работы с расписаниями вендоров
type Service struct {
	availabilityRepo AvailabilityRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(availabilityRepo AvailabilityRepository, logger Logger) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		logger:           logger,
	}
}

// GetByVendorID получает расписание вендора. Доступно без авторизации:
// по расписанию клиенты видят дни и часы, доступные для записи.
func (s *Service) GetByVendorID(ctx context.Context, vendorID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("GetByVendorID: fetching schedule for vendor=%d", vendorID)

	if vendorID <= 0 {
		return nil, fmt.Errorf("%w: vendorID must be positive", ErrInvalidInput)
	}

	avail, err := s.availabilityRepo.GetByVendorID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
			s.logger.Warn("GetByVendorID: vendor=%d has no schedule", vendorID)
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("GetByVendorID: repository error for vendor=%d: %v", vendorID, err)
		return nil, fmt.Errorf("%w: GetByVendorID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByVendorID: successfully fetched schedule for vendor=%d", vendorID)
	return models.FromDomainAvailability(avail), nil
}

// Update создаёт или обновляет расписание вендора.
// Вендор управляет только своим расписанием, админ - любым.
func (s *Service) Update(ctx context.Context, req *models.UpdateScheduleRequest, userID int64, role domain.ActorRole) (*models.ScheduleResponse, error) {
	s.logger.Info("Update: updating schedule for vendor=%d by user=%d role=%s", req.VendorID, userID, role)

	if req.VendorID <= 0 {
		return nil, fmt.Errorf("%w: vendorID must be positive", ErrInvalidInput)
	}

	if role != domain.RoleAdmin {
		if role != domain.RoleVendor || req.VendorID != userID {
			s.logger.Warn("Update: access denied for user=%d to vendor=%d schedule", userID, req.VendorID)
			return nil, ErrAccessDenied
		}
	}

	avail, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Update: invalid working hours for vendor=%d: %v", req.VendorID, err)
		return nil, fmt.Errorf("%w: working hours must be in HH:MM format", ErrInvalidInput)
	}

	if !avail.HasValidHours() {
		s.logger.Warn("Update: work_start %s is not before work_end %s for vendor=%d",
			req.WorkStart, req.WorkEnd, req.VendorID)
		return nil, fmt.Errorf("%w: work_start must be before work_end", ErrInvalidInput)
	}

	if avail.ResponseTimeMinutes < 0 {
		return nil, fmt.Errorf("%w: responseTimeMinutes must not be negative", ErrInvalidInput)
	}

	updated, err := s.availabilityRepo.Upsert(ctx, avail)
	if err != nil {
		s.logger.Error("Update: repository error for vendor=%d: %v", req.VendorID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated schedule for vendor=%d", req.VendorID)
	return models.FromDomainAvailability(updated), nil
}
