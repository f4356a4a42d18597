package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxScheduleDates      = 366
	MaxOrderItems         = 100
	MaxItemQuantity       = 99
	MaxNotesLength        = 500
	MaxDenialReasonLength = 500
	MaxAddressLength      = 300
)

// AllStatuses все известные статусы заказа
var AllStatuses = []OrderStatus{
	StatusPending,
	StatusAccepted,
	StatusDenied,
	StatusPreparing,
	StatusReady,
	StatusCompleted,
	StatusCancelled,
}

// ActiveStatuses статусы, в которых заказ ещё обрабатывается
var ActiveStatuses = []OrderStatus{
	StatusPending,
	StatusAccepted,
	StatusPreparing,
	StatusReady,
}
