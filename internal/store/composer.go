package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shivanshrider/HROne-Backend-Intern-Hiring-Task/internal/database"
	"github.com/shivanshrider/HROne-Backend-Intern-Hiring-Task/internal/models"
)

// ProductFinder is the part of the product store the composer needs.
type ProductFinder interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// OrderInserter is the part of the order store the composer needs.
type OrderInserter interface {
	Insert(ctx context.Context, order models.Order) (*models.Order, error)
}

// OrderComposer validates and prices a proposed order before persisting it.
// Every referenced product must exist at call time; the total is the sum of
// the caller-supplied unit prices times quantities, in item order. Unit
// prices are deliberately not cross-checked against the stored product price.
type OrderComposer struct {
	products ProductFinder
	orders   OrderInserter
}

func NewOrderComposer(products ProductFinder, orders OrderInserter) *OrderComposer {
	return &OrderComposer{products: products, orders: orders}
}

type CreateOrderRequest struct {
	UserID          string
	Items           []OrderItemRequest
	ShippingAddress string
	PaymentMethod   string
}

type OrderItemRequest struct {
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
}

func (r CreateOrderRequest) Validate() error {
	if r.UserID == "" {
		return errors.New("user_id is required")
	}
	if len(r.Items) == 0 {
		return errors.New("order must contain at least one item")
	}
	for i, item := range r.Items {
		if item.ProductID == "" {
			return fmt.Errorf("item %d: product_id is required", i)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("item %d: quantity must be positive", i)
		}
		if item.UnitPrice.IsNegative() {
			return fmt.Errorf("item %d: price must not be negative", i)
		}
	}
	return nil
}

func generateOrderNumber() string {
	return "ORD-" + uuid.NewString()
}

// CreateOrder checks each item's product in input order, aborting on the
// first missing one with nothing written, then computes the total and
// performs a single insert. Persistence failures surface as-is; there are
// no retries.
func (c *OrderComposer) CreateOrder(ctx context.Context, req CreateOrderRequest) (*models.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	for _, item := range req.Items {
		exists, err := c.products.Exists(ctx, item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("validate order items: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("product with ID %s: %w", item.ProductID, database.ErrProductNotFound)
		}
	}

	var total decimal.Decimal
	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
		items = append(items, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	now := time.Now().UTC()
	order := models.Order{
		UserID:          req.UserID,
		OrderNumber:     generateOrderNumber(),
		Items:           items,
		TotalAmount:     total,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		Status:          models.OrderStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := c.orders.Insert(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}

	return created, nil
}
