package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidRange возвращается, когда интервал некорректен:
	// start >= end, не кратен часу или вне рабочих часов
	ErrInvalidRange = errors.New("create_booking: invalid time range")

	// ErrInvalidDate возвращается при дате бронирования в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrFieldNotFound возвращается, когда поле не найдено
	ErrFieldNotFound = errors.New("create_booking: field not found")

	// ErrFieldUnavailable возвращается, когда поле выключено администратором.
	// Ручной флаг поля и занятость слота — независимые проверки.
	ErrFieldUnavailable = errors.New("create_booking: field is disabled")

	// ErrSlotConflict возвращается при пересечении с активным бронированием.
	// Единственная ошибка, которую может породить гонка: workflow по ней
	// возвращает пользователя к выбору поля, а не считает ввод ошибочным.
	ErrSlotConflict = errors.New("create_booking: slot conflicts with an existing booking")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
