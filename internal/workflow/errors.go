package workflow

import "errors"

var (
	// ErrInvalidTransition возвращается при недопустимом переходе между этапами:
	// назад с первого этапа или вперед с последнего
	ErrInvalidTransition = errors.New("workflow: invalid stage transition")

	// ErrStageIncomplete возвращается при попытке перейти вперед
	// с незаполненным текущим этапом
	ErrStageIncomplete = errors.New("workflow: current stage is incomplete")

	// ErrInvalidSelection возвращается, когда выбор не проходит проверку этапа:
	// дата в прошлом, слот вне рабочих часов, неизвестный способ оплаты
	ErrInvalidSelection = errors.New("workflow: invalid selection")

	// ErrFieldNotOffered возвращается при выборе поля не из списка,
	// предложенного проверкой занятости для выбранных даты и времени
	ErrFieldNotOffered = errors.New("workflow: field is not in the offered list")

	// ErrNotAuthenticated возвращается при попытке подтвердить бронирование
	// без аутентифицированного пользователя
	ErrNotAuthenticated = errors.New("workflow: authentication required to submit")

	// ErrNotReady возвращается при вызове Submit не на этапе подтверждения
	ErrNotReady = errors.New("workflow: submit is only allowed on the confirmation stage")
)
