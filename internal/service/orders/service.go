package orders

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/m04kA/SMC-OrderingService/internal/domain"
	orderRepo "github.com/m04kA/SMC-OrderingService/internal/infra/storage/order"
	"github.com/m04kA/SMC-OrderingService/internal/orderfilter"
	"github.com/m04kA/SMC-OrderingService/internal/service/orders/models"
)

// Service сервис для работы с заказами
type Service struct {
	orderRepo OrderRepository
	owners    OwnerChecker
	exporter  OrdersExporter
	loc       *time.Location
	logger    Logger
}

// NewService создает новый экземпляр сервиса заказов.
// loc задаёт границы календарных дней в фильтрах from/to.
func NewService(
	orderRepo OrderRepository,
	owners OwnerChecker,
	exporter OrdersExporter,
	loc *time.Location,
	logger Logger,
) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		orderRepo: orderRepo,
		owners:    owners,
		exporter:  exporter,
		loc:       loc,
		logger:    logger,
	}
}

// GetByID получает заказ по ID
// Видят заказ его автор и владелец ресторана
func (s *Service) GetByID(ctx context.Context, orderID string, userID string) (*models.OrderResponse, error) {
	s.logger.Info("GetByID: fetching order id=%s for user=%s", orderID, userID)

	order, err := s.getOrder(ctx, "GetByID", orderID)
	if err != nil {
		return nil, err
	}

	if order.CustomerID != userID && !s.owners.IsOwner(userID) {
		s.logger.Warn("GetByID: access denied for user=%s to order id=%s", userID, orderID)
		return nil, ErrAccessDenied
	}

	return models.FromDomainOrder(order), nil
}

// GetCustomerOrders история заказов клиента, новые сверху
// Клиент видит только свои заказы, владелец - заказы любого клиента
func (s *Service) GetCustomerOrders(ctx context.Context, req *models.ListOrdersRequest) (*models.OrderListResponse, error) {
	s.logger.Info("GetCustomerOrders: fetching orders of customer=%s for user=%s (status=%q, type=%q, from=%q, to=%q)",
		req.CustomerID, req.UserID, req.Status, req.Type, req.From, req.To)

	if req.CustomerID == "" {
		return nil, fmt.Errorf("%w: customer id is required", ErrInvalidInput)
	}
	if req.CustomerID != req.UserID && !s.owners.IsOwner(req.UserID) {
		s.logger.Warn("GetCustomerOrders: user=%s cannot read orders of customer=%s", req.UserID, req.CustomerID)
		return nil, ErrAccessDenied
	}

	orders, err := s.list(ctx, "GetCustomerOrders", req)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetCustomerOrders: returning %d orders for customer=%s", len(orders), req.CustomerID)
	return models.FromDomainOrderList(orders), nil
}

// GetOwnerOrders все заказы ресторана для владельца, новые сверху
// CustomerID в запросе необязателен
func (s *Service) GetOwnerOrders(ctx context.Context, req *models.ListOrdersRequest) (*models.OrderListResponse, error) {
	orders, err := s.ownerOrders(ctx, "GetOwnerOrders", req)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetOwnerOrders: returning %d orders", len(orders))
	return models.FromDomainOrderList(orders), nil
}

// ExportOwnerOrders выгружает те же заказы, что и GetOwnerOrders, в xlsx
func (s *Service) ExportOwnerOrders(ctx context.Context, req *models.ListOrdersRequest, out io.Writer) error {
	orders, err := s.ownerOrders(ctx, "ExportOwnerOrders", req)
	if err != nil {
		return err
	}

	if err := s.exporter.Write(out, orders); err != nil {
		s.logger.Error("ExportOwnerOrders: failed to write %d orders: %v", len(orders), err)
		return fmt.Errorf("%w: ExportOwnerOrders - export error: %v", ErrInternal, err)
	}

	s.logger.Info("ExportOwnerOrders: exported %d orders", len(orders))
	return nil
}

// UpdateStatus меняет статус заказа по таблице переходов. Только владелец.
// Для отказа (denied) обязательна причина.
func (s *Service) UpdateStatus(ctx context.Context, req *models.UpdateStatusRequest) (*models.OrderResponse, error) {
	s.logger.Info("UpdateStatus: order id=%s -> %s by user=%s", req.OrderID, req.Status, req.UserID)

	if !s.owners.IsOwner(req.UserID) {
		s.logger.Warn("UpdateStatus: user=%s is not an owner", req.UserID)
		return nil, ErrAccessDenied
	}

	next := domain.OrderStatus(req.Status)
	if !next.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}

	var reason *string
	if next == domain.StatusDenied {
		if req.DenialReason == nil || strings.TrimSpace(*req.DenialReason) == "" {
			return nil, fmt.Errorf("%w: denial reason is required", ErrInvalidInput)
		}
		trimmed := strings.TrimSpace(*req.DenialReason)
		if len(trimmed) > domain.MaxDenialReasonLength {
			return nil, fmt.Errorf("%w: denial reason exceeds %d characters", ErrInvalidInput, domain.MaxDenialReasonLength)
		}
		reason = &trimmed
	}

	order, err := s.getOrder(ctx, "UpdateStatus", req.OrderID)
	if err != nil {
		return nil, err
	}

	if (next == domain.StatusAccepted || next == domain.StatusDenied) && !order.CanBeDecided() {
		s.logger.Warn("UpdateStatus: order id=%s is already decided (%s)", order.ID, order.Status)
		return nil, fmt.Errorf("%w: order is already %s", ErrInvalidTransition, order.Status)
	}

	if !order.Status.CanTransitionTo(next) {
		s.logger.Warn("UpdateStatus: transition %s -> %s is not allowed for order id=%s", order.Status, next, order.ID)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, next)
	}

	if err := s.orderRepo.UpdateStatus(ctx, order.ID, order.Status, next, reason); err != nil {
		if errors.Is(err, orderRepo.ErrStatusConflict) {
			s.logger.Warn("UpdateStatus: order id=%s changed concurrently", order.ID)
			return nil, ErrStatusConflict
		}
		s.logger.Error("UpdateStatus: repository error for order id=%s: %v", order.ID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	order.Status = next
	if reason != nil {
		order.DenialReason = reason
	}

	s.logger.Info("UpdateStatus: order id=%s is now %s", order.ID, next)
	return models.FromDomainOrder(order), nil
}

// Cancel отменяет заказ клиентом, пока владелец его не рассмотрел
func (s *Service) Cancel(ctx context.Context, orderID string, userID string) (*models.OrderResponse, error) {
	s.logger.Info("Cancel: cancelling order id=%s by user=%s", orderID, userID)

	order, err := s.getOrder(ctx, "Cancel", orderID)
	if err != nil {
		return nil, err
	}

	if order.CustomerID != userID {
		s.logger.Warn("Cancel: user=%s does not own order id=%s", userID, orderID)
		return nil, ErrAccessDenied
	}

	if !order.CanBeCancelled() {
		s.logger.Warn("Cancel: order id=%s is %s and cannot be cancelled", orderID, order.Status)
		return nil, ErrCannotCancel
	}

	if err := s.orderRepo.Cancel(ctx, orderID); err != nil {
		if errors.Is(err, orderRepo.ErrCannotCancel) {
			return nil, ErrCannotCancel
		}
		s.logger.Error("Cancel: repository error for order id=%s: %v", orderID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	order.Status = domain.StatusCancelled

	s.logger.Info("Cancel: order id=%s cancelled", orderID)
	return models.FromDomainOrder(order), nil
}

func (s *Service) ownerOrders(ctx context.Context, op string, req *models.ListOrdersRequest) ([]*domain.Order, error) {
	s.logger.Info("%s: user=%s (customer=%q, status=%q, type=%q, from=%q, to=%q)",
		op, req.UserID, req.CustomerID, req.Status, req.Type, req.From, req.To)

	if !s.owners.IsOwner(req.UserID) {
		s.logger.Warn("%s: user=%s is not an owner", op, req.UserID)
		return nil, ErrAccessDenied
	}

	return s.list(ctx, op, req)
}

// list грубая выборка по индексу в БД, затем точная фильтрация и сортировка в памяти
func (s *Service) list(ctx context.Context, op string, req *models.ListOrdersRequest) ([]*domain.Order, error) {
	if err := s.validateFilters(req); err != nil {
		s.logger.Warn("%s: invalid filters: %v", op, err)
		return nil, err
	}

	query := domain.OrdersQuery{}
	if req.CustomerID != "" {
		customerID := req.CustomerID
		query.CustomerID = &customerID
	}
	if status := domain.OrderStatus(req.Status); status.IsValid() {
		query.Status = &status
	}
	if req.From != "" {
		since, _ := time.ParseInLocation(domain.DateFormat, req.From, s.loc)
		query.Since = &since
	}

	candidates, err := s.orderRepo.List(ctx, query)
	if err != nil {
		s.logger.Error("%s: repository error: %v", op, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	return orderfilter.FilterAndSort(candidates, orderfilter.Config{
		CustomerID:          req.CustomerID,
		FromDate:            req.From,
		ToDate:              req.To,
		StatusFilter:        req.Status,
		OrderTypeScope:      req.Type,
		CustomStatusMatcher: orderfilter.ActiveStatusMatcher,
		Location:            s.loc,
	}), nil
}

func (s *Service) validateFilters(req *models.ListOrdersRequest) error {
	switch req.Status {
	case "", orderfilter.StatusAll, orderfilter.StatusActive:
	default:
		if !domain.OrderStatus(req.Status).IsValid() {
			return fmt.Errorf("%w: unknown status filter %q", ErrInvalidInput, req.Status)
		}
	}

	switch req.Type {
	case "", orderfilter.TypeScopeAll, orderfilter.TypeScopePreOrder, orderfilter.TypeScopeRegular:
	default:
		return fmt.Errorf("%w: unknown type filter %q", ErrInvalidInput, req.Type)
	}

	var from, to time.Time
	var err error
	if req.From != "" {
		if from, err = time.ParseInLocation(domain.DateFormat, req.From, s.loc); err != nil {
			return fmt.Errorf("%w: from must be YYYY-MM-DD", ErrInvalidInput)
		}
	}
	if req.To != "" {
		if to, err = time.ParseInLocation(domain.DateFormat, req.To, s.loc); err != nil {
			return fmt.Errorf("%w: to must be YYYY-MM-DD", ErrInvalidInput)
		}
	}
	if req.From != "" && req.To != "" && from.After(to) {
		return fmt.Errorf("%w: from is after to", ErrInvalidInput)
	}

	return nil
}

func (s *Service) getOrder(ctx context.Context, op string, orderID string) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			s.logger.Warn("%s: order id=%s not found", op, orderID)
			return nil, ErrOrderNotFound
		}
		s.logger.Error("%s: repository error for order id=%s: %v", op, orderID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return order, nil
}
