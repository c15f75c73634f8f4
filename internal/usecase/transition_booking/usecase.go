package transition_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/booking"
)

// UseCase use case для перевода бронирования по жизненному циклу
type UseCase struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	notifier    Notifier
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		notifier:    notifier,
		logger:      logger,
	}
}

// Execute выполняет use case перехода статуса
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("TransitionBooking: booking=%d, action=%s, actor=%d role=%s",
		req.BookingID, req.Action, req.ActorID, req.ActorRole)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("TransitionBooking: validation failed: %v", err)
		return nil, err
	}

	action, _ := domain.ParseAction(req.Action)
	role, _ := domain.ParseRole(req.ActorRole)

	var updated *domain.Booking
	err := uc.txManager.Do(ctx, func(ctx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to load booking: %v", ErrInternal, err)
		}

		if err := authorize(booking, action, role, req.ActorID); err != nil {
			return err
		}

		// Переход разрешает только таблица переходов: ребро из терминального
		// статуса или незнакомое действие дают ErrInvalidTransition
		next, ok := domain.NextStatus(booking.Status, action)
		if !ok {
			return fmt.Errorf("%w: cannot %s booking in status %s",
				ErrInvalidTransition, action, booking.Status)
		}

		// Сравнение со status на момент чтения защищает от гонки
		// двух параллельных переходов
		if action == domain.ActionCancel {
			err = uc.bookingRepo.CancelFrom(ctx, booking.ID, booking.Status, req.Reason)
		} else {
			err = uc.bookingRepo.UpdateStatusFrom(ctx, booking.ID, booking.Status, next)
		}
		if err != nil {
			if errors.Is(err, bookingRepo.ErrStatusChanged) {
				return fmt.Errorf("%w: booking status changed concurrently", ErrInvalidTransition)
			}
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		updated, err = uc.bookingRepo.GetByID(ctx, booking.ID)
		if err != nil {
			return fmt.Errorf("%w: failed to reload booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) ||
			errors.Is(err, ErrPermissionDenied) ||
			errors.Is(err, ErrInvalidTransition) {
			uc.logger.Warn("TransitionBooking: booking=%d, action=%s rejected: %v",
				req.BookingID, req.Action, err)
			return nil, err
		}
		uc.logger.Error("TransitionBooking: booking=%d, action=%s failed: %v",
			req.BookingID, req.Action, err)
		return nil, err
	}

	if err := uc.notifier.NotifyBookingStatusChanged(ctx, updated, action); err != nil {
		uc.logger.Warn("TransitionBooking: failed to publish event for booking id=%d: %v",
			updated.ID, err)
	}

	uc.logger.Info("TransitionBooking: booking id=%d moved to status=%s",
		updated.ID, updated.Status)

	return toResponse(updated), nil
}

// authorize проверяет, что актор имеет право на действие над бронированием.
// Вендорские действия требуют владения услугой, отмена - владения
// бронированием. Админ проходит любую проверку владельца.
func authorize(booking *domain.Booking, action domain.BookingAction, role domain.ActorRole, actorID int64) error {
	if role == domain.RoleAdmin {
		return nil
	}

	required, ok := domain.RequiredRole(action)
	if !ok {
		return fmt.Errorf("%w: unknown action %s", ErrInvalidInput, action)
	}
	if role != required {
		return fmt.Errorf("%w: action %s requires role %s", ErrPermissionDenied, action, required)
	}

	switch required {
	case domain.RoleVendor:
		if booking.VendorID != actorID {
			return fmt.Errorf("%w: booking belongs to another vendor", ErrPermissionDenied)
		}
	case domain.RoleCustomer:
		if booking.CustomerID != actorID {
			return fmt.Errorf("%w: booking belongs to another customer", ErrPermissionDenied)
		}
	}

	return nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if _, ok := domain.ParseAction(req.Action); !ok {
		return fmt.Errorf("%w: unknown action %q", ErrInvalidInput, req.Action)
	}

	if req.ActorID <= 0 {
		return fmt.Errorf("%w: actorID must be positive", ErrInvalidInput)
	}

	if _, ok := domain.ParseRole(req.ActorRole); !ok {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, req.ActorRole)
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: reason exceeds %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	return nil
}
