package workflow

// Stage этап мастера бронирования
type Stage string

const (
	StageDateSelection    Stage = "date_selection"
	StageTimeSelection    Stage = "time_selection"
	StageFieldSelection   Stage = "field_selection"
	StagePaymentSelection Stage = "payment_selection"
	StageConfirmation     Stage = "confirmation"
)

// Event событие навигации мастера
type Event string

const (
	EventNext Event = "next"
	EventBack Event = "back"
)

// stageOrder задает линейный порядок этапов
var stageOrder = []Stage{
	StageDateSelection,
	StageTimeSelection,
	StageFieldSelection,
	StagePaymentSelection,
	StageConfirmation,
}

// Transition чистая функция перехода (этап, событие) -> этап.
// Проверяет только границы маршрута; заполненность этапа проверяет Wizard.
func Transition(stage Stage, event Event) (Stage, error) {
	idx := stageIndex(stage)
	if idx < 0 {
		return stage, ErrInvalidTransition
	}

	switch event {
	case EventNext:
		if idx == len(stageOrder)-1 {
			return stage, ErrInvalidTransition
		}
		return stageOrder[idx+1], nil
	case EventBack:
		if idx == 0 {
			return stage, ErrInvalidTransition
		}
		return stageOrder[idx-1], nil
	default:
		return stage, ErrInvalidTransition
	}
}

func stageIndex(stage Stage) int {
	for i, s := range stageOrder {
		if s == stage {
			return i
		}
	}
	return -1
}
