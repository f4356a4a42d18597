package get_preorder_options

import (
	"context"

	getPreorderOptions "github.com/m04kA/SMC-OrderingService/internal/usecase/get_preorder_options"
)

type GetPreorderOptionsUseCase interface {
	Execute(ctx context.Context, req *getPreorderOptions.Request) (*getPreorderOptions.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
