package slots

import (
	"fmt"

	"github.com/reservly/booking-engine/internal/domain"
	"github.com/reservly/booking-engine/pkg/types"
)

// Generator генератор бронируемых слотов
// Слоты — производные данные: генерируются по требованию из рабочего окна
// ресурса и активных бронирований, никогда не кэшируются между вызовами.
// Авторитетная проверка конфликтов — всегда по активным бронированиям
type Generator struct{}

// NewGenerator создает генератор слотов
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate генерирует упорядоченный список слотов ресурса на день
//
// Кандидаты идут от начала рабочего окна с фиксированным шагом granularity
// (независимо от длительности услуги), пока candidateStart + duration
// помещается до конца окна. Кандидат, пересекающий перерыв, помечается
// blocked; кандидат, конфликтующий (с учётом буфера) с активным
// бронированием — booked. Конфликтующие кандидаты не выбрасываются,
// чтобы вызывающий мог отличить "всё занято" от "вне рабочих часов"
func (g *Generator) Generate(
	window *domain.WorkingWindow,
	durationMinutes int,
	granularityMinutes int,
	bufferMinutes int,
	bookings []*domain.Booking,
) ([]domain.Slot, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", ErrInvalidParams)
	}
	if granularityMinutes <= 0 {
		return nil, fmt.Errorf("%w: granularity must be positive", ErrInvalidParams)
	}

	// Нет рабочего окна — ресурс не работает в этот день
	if window == nil || window.IsEmpty() {
		return []domain.Slot{}, nil
	}

	open, err := window.Start.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid window start: %v", ErrInvalidParams, err)
	}
	closing, err := window.End.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid window end: %v", ErrInvalidParams, err)
	}

	slots := make([]domain.Slot, 0)

	for start := open; start+durationMinutes <= closing; start += granularityMinutes {
		end := start + durationMinutes

		status := domain.SlotAvailable
		switch {
		case window.IntersectsBreak(start, end):
			status = domain.SlotBlocked
		case ConflictExists(bookings, start, end, bufferMinutes):
			status = domain.SlotBooked
		}

		startTime, err := types.NewTimeStringFromMinutes(start)
		if err != nil {
			return nil, fmt.Errorf("%w: slot start out of range: %v", ErrInvalidParams, err)
		}

		slots = append(slots, domain.Slot{
			StartTime:       startTime,
			DurationMinutes: durationMinutes,
			Status:          status,
		})
	}

	return slots, nil
}

// ConflictExists проверяет, пересекается ли окно-кандидат [startMin, endMin),
// расширенное на bufferMin, с буферизованным окном любого активного бронирования
//
// Пересечение строгое: интервалы, граничащие ровно в одной точке,
// конфликтом не считаются
func ConflictExists(bookings []*domain.Booking, startMin, endMin, bufferMin int) bool {
	candStart := startMin - bufferMin
	if candStart < 0 {
		candStart = 0
	}
	candEnd := endMin + bufferMin

	for _, b := range bookings {
		if !b.OccupiesWindow() {
			continue
		}

		bStart, err := b.BufferedStartMinutes()
		if err != nil {
			// Бронирование с нечитаемым временем не участвует в проверке
			continue
		}
		bEnd, err := b.BufferedEndMinutes()
		if err != nil {
			continue
		}

		if bStart < candEnd && bEnd > candStart {
			return true
		}
	}

	return false
}
