package create_order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-OrderingService/internal/domain"
	"github.com/m04kA/SMC-OrderingService/internal/schedule"
	"github.com/m04kA/SMC-OrderingService/pkg/ptr"
	"github.com/m04kA/SMC-OrderingService/pkg/types"
)

// UseCase use case для оформления заказа
type UseCase struct {
	orderRepo    OrderRepository
	schedule     ScheduleProvider
	metrics      Metrics
	timeProvider TimeProvider
	loc          *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// loc определяет "сегодня" для предзаказа без даты.
func NewUseCase(
	orderRepo OrderRepository,
	scheduleProvider ScheduleProvider,
	metrics Metrics,
	loc *time.Location,
	logger Logger,
) *UseCase {
	if loc == nil {
		loc = time.Local
	}
	return &UseCase{
		orderRepo:    orderRepo,
		schedule:     scheduleProvider,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		loc:          loc,
		logger:       logger,
	}
}

// Execute выполняет use case создания заказа
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateOrder: customer=%s, type=%s, items=%d", req.CustomerID, req.OrderType, len(req.Items))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateOrder: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	order := buildOrder(req, now)

	// 2. Для предзаказа подставляем значения по умолчанию и проверяем по расписанию
	if order.IsPreOrder() {
		if err := uc.checkPreorder(ctx, order, now); err != nil {
			return nil, err
		}
	}

	// 3. Сохраняем
	created, err := uc.orderRepo.Create(ctx, order)
	if err != nil {
		uc.logger.Error("CreateOrder: repository error: %v", err)
		return nil, fmt.Errorf("%w: failed to create order: %v", ErrInternal, err)
	}

	if uc.metrics != nil {
		uc.metrics.IncOrderCreated(string(created.OrderType))
	}

	uc.logger.Info("CreateOrder: created order id=%s for customer=%s", created.ID, created.CustomerID)
	return &Response{Order: created}, nil
}

func (uc *UseCase) checkPreorder(ctx context.Context, order *domain.Order, now time.Time) error {
	date := schedule.ClampPreOrderDate(ptr.Deref(order.PreorderDate, ""), now.In(uc.loc))
	if _, err := time.ParseInLocation(domain.DateFormat, date, uc.loc); err != nil {
		uc.logger.Warn("CreateOrder: malformed pre-order date %q", date)
		return fmt.Errorf("%w: pre-order date must be YYYY-MM-DD", ErrInvalidInput)
	}

	timeRaw := schedule.ClampPreOrderTime(ptr.Deref(order.PreorderTime, ""))
	time24, err := types.NewTimeStringFromString(timeRaw)
	if err != nil {
		uc.logger.Warn("CreateOrder: malformed pre-order time %q", timeRaw)
		uc.reject("time")
		return &PreorderError{Time: schedule.MsgInvalidTimeFormat}
	}

	sched, err := uc.schedule.Load(ctx)
	if err != nil {
		uc.logger.Error("CreateOrder: failed to load schedule: %v", err)
		return fmt.Errorf("%w: failed to load schedule: %v", ErrInternal, err)
	}

	errs := schedule.ValidateSelection(domain.TimeSelection{Date: date, Time: time24.String()}, *sched)
	if !errs.Valid() {
		uc.logger.Warn("CreateOrder: pre-order %s %s rejected: date=%q time=%q", date, time24, errs.Date, errs.Time)
		if errs.Date != "" {
			uc.reject("date")
		}
		if errs.Time != "" {
			uc.reject("time")
		}
		return &PreorderError{Date: errs.Date, Time: errs.Time}
	}

	order.PreorderDate = &date
	order.PreorderTime = ptr.Ptr(time24.String())
	return nil
}

func (uc *UseCase) reject(field string) {
	if uc.metrics != nil {
		uc.metrics.IncPreorderRejection(field)
	}
}

func buildOrder(req *Request, now time.Time) *domain.Order {
	items := make([]domain.OrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = domain.OrderItem{
			MenuItemID: strings.TrimSpace(item.MenuItemID),
			Name:       strings.TrimSpace(item.Name),
			Price:      item.Price,
			Quantity:   item.Quantity,
		}
	}

	order := &domain.Order{
		ID:              uuid.NewString(),
		CustomerID:      req.CustomerID,
		OrderType:       domain.OrderType(req.OrderType),
		Status:          domain.StatusPending,
		Items:           items,
		DeliveryAddress: req.DeliveryAddress,
		PreorderDate:    req.PreorderDate,
		PreorderTime:    req.PreorderTime,
		Notes:           req.Notes,
		PaymentProofURL: req.PaymentProofURL,
		CreationTime:    ptr.Ptr(float64(now.UnixMilli())),
	}
	order.Total = order.CalculateTotal()

	return order
}
