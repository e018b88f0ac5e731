package get_available_fields

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_fields: invalid input data")

	// ErrInvalidRange возвращается, когда интервал некорректен:
	// start >= end, не кратен часу или вне рабочих часов
	ErrInvalidRange = errors.New("get_available_fields: invalid time range")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("get_available_fields: invalid date")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_fields: internal error")
)
