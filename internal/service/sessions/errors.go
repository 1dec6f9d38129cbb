package sessions

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или уже завершена
	ErrSessionNotFound = errors.New("sessions: session not found")

	// ErrServiceNotFound возвращается, когда услуги нет в каталоге
	ErrServiceNotFound = errors.New("sessions: service not found in catalog")

	// ErrStylistNotFound возвращается, когда мастера нет в каталоге
	ErrStylistNotFound = errors.New("sessions: stylist not found in catalog")

	// ErrDayNotOffered возвращается, когда день не входит в период бронирования
	ErrDayNotOffered = errors.New("sessions: day is not offered")

	// ErrSlotNotOffered возвращается, когда временного слота нет в каталоге
	ErrSlotNotOffered = errors.New("sessions: time slot is not offered")

	// ErrPickRejected возвращается, когда выбор невозможен на текущем шаге
	// (другой шаг, идет переход или время выбрано раньше даты)
	ErrPickRejected = errors.New("sessions: pick is not available on the current stage")

	// ErrConfirmUnavailable возвращается при подтверждении вне последнего шага
	ErrConfirmUnavailable = errors.New("sessions: confirmation is only available on the last stage")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("sessions: invalid input data")
)
