package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Digga-coder/POS-FRECUENZY/internal/dto"
	"github.com/Digga-coder/POS-FRECUENZY/internal/model"
	"github.com/Digga-coder/POS-FRECUENZY/internal/repository"
	"github.com/Digga-coder/POS-FRECUENZY/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ErrEmptyCart rejects a checkout against an empty cart.
var ErrEmptyCart = errors.New("cart is empty")

// WaiterIdentity is the authenticated waiter taken from the access token.
// The name is denormalized into the order and every sale log it produces.
type WaiterIdentity struct {
	ID   uuid.UUID
	Name string
}

// CheckoutService turns a completed cart into a durable order and applies
// stock effects.
//
// The transaction is deliberately non-atomic past the order insert: the order
// row is the source of truth for revenue, while each stock decrement and sale
// log is an independent best-effort write. A failed decrement is logged and
// skipped — stock figures may drift from the order history, which is the
// accepted trade-off for keeping the sales flow available.
type CheckoutService interface {
	// Preview resolves the amount and the method-specific confirmation
	// prompt without any side effects.
	Preview(ctx context.Context, waiter WaiterIdentity, method string) (*dto.CheckoutPrompt, error)
	// Checkout runs the full transaction: persist order (fail-fast), apply
	// stock effects (best-effort), clear the cart, re-read recent logs.
	Checkout(ctx context.Context, waiter WaiterIdentity, method string) (*dto.CheckoutResponse, error)
}

type checkoutService struct {
	carts      repository.CartStore
	products   repository.ProductRepository
	orders     repository.OrderRepository
	stockLogs  repository.StockLogRepository
	dispatcher *worker.Dispatcher
}

func NewCheckoutService(
	carts repository.CartStore,
	products repository.ProductRepository,
	orders repository.OrderRepository,
	stockLogs repository.StockLogRepository,
	dispatcher *worker.Dispatcher,
) CheckoutService {
	return &checkoutService{
		carts:      carts,
		products:   products,
		orders:     orders,
		stockLogs:  stockLogs,
		dispatcher: dispatcher,
	}
}

// resolveAmount applies the payment-method rule: cash charges the cart total,
// every ticket/invitation method records 0 while still consuming stock.
func resolveAmount(cart *model.Cart, method string) decimal.Decimal {
	if model.ZeroAmountMethod(method) {
		return decimal.Zero
	}
	return cart.Total()
}

func confirmationPrompt(method string, amount decimal.Decimal) string {
	switch method {
	case model.PaymentTicketNormal:
		return "¿Canjear 1 CONSUMICIÓN (Entrada)?"
	case model.PaymentTicketVIP:
		return "¿Canjear CONSUMICIÓN VIP (2 Copas)?"
	case model.PaymentInvitation:
		return "¿Registrar INVITACIÓN STAFF (Gratis)?"
	default:
		return fmt.Sprintf("¿Cobrar %s€ en Efectivo/Tarjeta?", amount.StringFixed(2))
	}
}

func (s *checkoutService) Preview(ctx context.Context, waiter WaiterIdentity, method string) (*dto.CheckoutPrompt, error) {
	cart, err := s.carts.Get(ctx, waiter.ID.String())
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}
	amount := resolveAmount(cart, method)
	return &dto.CheckoutPrompt{
		ConfirmationRequired: true,
		Prompt:               confirmationPrompt(method, cart.Total()),
		Amount:               amount,
	}, nil
}

func (s *checkoutService) Checkout(ctx context.Context, waiter WaiterIdentity, method string) (*dto.CheckoutResponse, error) {
	cart, err := s.carts.Get(ctx, waiter.ID.String())
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	order := &model.Order{
		ID:            uuid.New(),
		WaiterID:      waiter.ID,
		WaiterName:    waiter.Name,
		TotalAmount:   resolveAmount(cart, method),
		PaymentMethod: method,
		Items:         model.OrderItems(cart.Items),
		CreatedAt:     time.Now().UTC(),
	}

	// Fail-fast: if the order insert fails the whole checkout aborts, the
	// cart stays intact for retry and no stock is touched.
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}

	// Stock application. One decrement of exactly 1 unit per line (and per
	// mixer), regardless of the quantity field. Failures here do not roll
	// anything back.
	for _, item := range order.Items {
		s.applySaleDecrement(ctx, item.Product, waiter.Name)
		if item.Mixer != nil {
			s.applySaleDecrement(ctx, *item.Mixer, waiter.Name)
		}
	}

	if err := s.carts.Clear(ctx, waiter.ID.String()); err != nil {
		log.Warn().Err(err).Str("waiter", waiter.Name).Msg("failed to clear cart after checkout")
	}

	// Re-read the most recent movements instead of appending locally, so
	// concurrent changes from other terminals show up.
	recent, err := s.stockLogs.List(ctx, repository.StockLogFilter{Limit: 50})
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh stock logs after checkout")
		recent = nil
	}

	return &dto.CheckoutResponse{
		Order:      orderToResponse(order),
		RecentLogs: stockLogsToResponses(recent),
	}, nil
}

// applySaleDecrement decrements one unit and appends a sale log. Both writes
// are best-effort: errors go to the diagnostic log only.
func (s *checkoutService) applySaleDecrement(ctx context.Context, snap model.ProductSnapshot, waiterName string) {
	if err := s.products.DecrementStock(ctx, snap.ID, 1); err != nil {
		log.Warn().Err(err).Int("product_id", snap.ID).Str("product", snap.Name).
			Msg("sale stock decrement failed; order kept, stock may drift")
		return
	}

	saleLog := &model.StockLog{
		ID:             uuid.New(),
		Date:           time.Now().UTC(),
		ProductName:    snap.Name,
		QuantityChange: -1,
		Reason:         model.ReasonSale,
		User:           waiterName,
	}
	if err := s.stockLogs.Create(ctx, saleLog); err != nil {
		log.Warn().Err(err).Str("product", snap.Name).Msg("sale stock log insert failed")
	}

	s.maybeAlertLowStock(ctx, snap.ID)
}

// maybeAlertLowStock enqueues an async operator alert when the product has
// dropped to its minimum. Purely advisory.
func (s *checkoutService) maybeAlertLowStock(ctx context.Context, productID int) {
	if s.dispatcher == nil {
		return
	}
	p, err := s.products.FindByID(ctx, productID)
	if err != nil || p.StockCurrent > p.StockMinimum {
		return
	}
	payload := worker.LowStockPayload{
		ProductID:    p.ID,
		ProductName:  p.Name,
		StockCurrent: p.StockCurrent,
		StockMinimum: p.StockMinimum,
	}
	if err := s.dispatcher.EnqueueLowStockAlert(ctx, payload); err != nil {
		log.Warn().Err(err).Str("product", p.Name).Msg("failed to enqueue low stock alert")
	}
}

func orderToResponse(o *model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:            o.ID.String(),
		WaiterID:      o.WaiterID.String(),
		WaiterName:    o.WaiterName,
		TotalAmount:   o.TotalAmount,
		PaymentMethod: o.PaymentMethod,
		Items:         o.Items,
		CreatedAt:     o.CreatedAt.Format(time.RFC3339),
	}
}

func stockLogsToResponses(logs []model.StockLog) []dto.StockLogResponse {
	resp := make([]dto.StockLogResponse, 0, len(logs))
	for _, l := range logs {
		resp = append(resp, dto.StockLogResponse{
			ID:             l.ID.String(),
			Date:           l.Date.Format(time.RFC3339),
			ProductName:    l.ProductName,
			QuantityChange: l.QuantityChange,
			Reason:         l.Reason,
			User:           l.User,
		})
	}
	return resp
}
