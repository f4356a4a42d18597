package schedule

import "github.com/m04kA/SMC-OrderingService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
