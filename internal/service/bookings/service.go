package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/reservly/booking-engine/internal/domain"
	bookingStorage "github.com/reservly/booking-engine/internal/infra/storage/booking"
)

// Service обслуживает терминальные переходы жизненного цикла, не
// требующие проверки правил: неявка и завершение. Отмена и перенос
// идут через валидатор и живут в соответствующих юзкейсах
type Service struct {
	bookingRepo BookingRepository
	recorder    AuditRecorder
	logger      Logger
}

// NewService создает новый экземпляр сервиса жизненного цикла
func NewService(bookingRepo BookingRepository, recorder AuditRecorder, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		recorder:    recorder,
		logger:      logger,
	}
}

// GetForTenant возвращает бронирование с проверкой принадлежности тенанту
func (s *Service) GetForTenant(ctx context.Context, bookingID, tenantID int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingStorage.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetForTenant: failed to get booking %d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}
	if booking.TenantID != tenantID {
		return nil, ErrForbidden
	}
	return booking, nil
}

// MarkNoShow помечает бронирование как неявку. Переход разрешен из
// pending и confirmed и не зависит от каталога правил: решение о неявке
// принимает персонал на месте
func (s *Service) MarkNoShow(ctx context.Context, bookingID, tenantID int64, actor domain.ActorRole) (*domain.Booking, error) {
	return s.transition(ctx, bookingID, tenantID, actor, domain.OpNoShow, domain.StatusNoShow,
		func(b *domain.Booking) bool { return b.CanBeMarkedNoShow() })
}

// Complete помечает бронирование как состоявшееся
func (s *Service) Complete(ctx context.Context, bookingID, tenantID int64, actor domain.ActorRole) (*domain.Booking, error) {
	return s.transition(ctx, bookingID, tenantID, actor, domain.OpComplete, domain.StatusCompleted,
		func(b *domain.Booking) bool { return b.CanBeCompleted() })
}

func (s *Service) transition(
	ctx context.Context,
	bookingID, tenantID int64,
	actor domain.ActorRole,
	op domain.OperationType,
	target domain.BookingStatus,
	allowed func(*domain.Booking) bool,
) (*domain.Booking, error) {
	booking, err := s.GetForTenant(ctx, bookingID, tenantID)
	if err != nil {
		return nil, err
	}

	prevStatus := booking.Status
	if !allowed(booking) {
		s.audit(ctx, booking, prevStatus, op, actor, false)
		return nil, fmt.Errorf("%w: cannot move booking from %s to %s", ErrInvalidTransition, booking.Status, target)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, target); err != nil {
		s.logger.Error("transition: failed to update booking %d to %s: %v", bookingID, target, err)
		return nil, fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
	}

	s.logger.Info("transition: booking %d moved %s -> %s by %s", bookingID, prevStatus, target, actor)

	booking.Status = target
	booking.UpdatedAt = time.Now()
	s.audit(ctx, booking, prevStatus, op, actor, true)

	return booking, nil
}

func (s *Service) audit(ctx context.Context, booking *domain.Booking, prevStatus domain.BookingStatus, op domain.OperationType, actor domain.ActorRole, passed bool) {
	s.recorder.Record(ctx, &domain.OperationAuditRecord{
		BookingID: &booking.ID,
		TenantID:  booking.TenantID,
		Operation: op,
		ActorRole: actor,
		Payload: map[string]interface{}{
			"previousStatus": string(prevStatus),
		},
		Passed: passed,
	})
}
