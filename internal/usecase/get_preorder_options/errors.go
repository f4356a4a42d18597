package get_preorder_options

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных параметрах пикера
	ErrInvalidInput = errors.New("get_preorder_options: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_preorder_options: internal error")
)
