package constraints

import (
	"time"

	"github.com/reservly/booking-engine/internal/domain"
	"github.com/reservly/booking-engine/pkg/types"
)

// OperationKind вид проверяемой операции: каждое правило объявляет,
// к каким операциям оно применимо
type OperationKind string

const (
	OpCreate     OperationKind = "create"
	OpCancel     OperationKind = "cancel"
	OpReschedule OperationKind = "reschedule"
)

// Operation — снимок всех фактов, нужных правилам для проверки одной
// операции. Валидатор не ходит в хранилище сам: вызывающий код собирает
// снимок (внутри транзакции, если требуется защита от гонок) и передает
// его целиком
type Operation struct {
	Kind     OperationKind
	Now      time.Time
	TenantID int64

	// Целевой ресурс и его рабочее окно на дату; nil окно означает,
	// что ресурс в этот день не работает
	Resource *domain.BookableResource
	Window   *domain.WorkingWindow

	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	PartySize       int

	// Активные бронирования ресурса на дату; при переносе — уже без
	// самого переносимого бронирования
	ActiveBookings []*domain.Booking

	// Существующее бронирование для cancel/reschedule
	Target *domain.Booking

	PreferredUnavailable bool
	NoResourceAvailable  bool
}

// windowMinutes возвращает запрошенный интервал в минутах от полуночи
func (op *Operation) windowMinutes() (int, int, error) {
	start, err := op.StartTime.Minutes()
	if err != nil {
		return 0, 0, err
	}
	return start, start + op.DurationMinutes, nil
}

// startsAt возвращает момент начала запрошенного окна как time.Time
// в часовом поясе op.Now
func (op *Operation) startsAt() (time.Time, error) {
	startMin, err := op.StartTime.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := op.Date.Date()
	return time.Date(y, m, d, startMin/60, startMin%60, 0, 0, op.Now.Location()), nil
}

// targetStartsAt возвращает момент начала существующего бронирования
func (op *Operation) targetStartsAt() (time.Time, error) {
	if op.Target == nil {
		return time.Time{}, errNoTarget
	}
	startMin, err := op.Target.StartTime.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := op.Target.BookingDate.Date()
	return time.Date(y, m, d, startMin/60, startMin%60, 0, 0, op.Now.Location()), nil
}
