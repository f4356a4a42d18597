package create_order

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_order: invalid input data")

	// ErrInvalidPreorder возвращается, когда дата или время предзаказа не проходят проверку по расписанию
	ErrInvalidPreorder = errors.New("create_order: pre-order selection rejected")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_order: internal error")
)

// PreorderError сообщения для клиента по полям предзаказа.
// errors.Is(err, ErrInvalidPreorder) == true.
type PreorderError struct {
	Date string
	Time string
}

func (e *PreorderError) Error() string {
	msgs := make([]string, 0, 2)
	if e.Date != "" {
		msgs = append(msgs, "date: "+e.Date)
	}
	if e.Time != "" {
		msgs = append(msgs, "time: "+e.Time)
	}
	return ErrInvalidPreorder.Error() + ": " + strings.Join(msgs, "; ")
}

func (e *PreorderError) Is(target error) bool {
	return target == ErrInvalidPreorder
}
