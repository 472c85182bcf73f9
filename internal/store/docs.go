package store

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shivanshrider/HROne-Backend-Intern-Hiring-Task/internal/models"
)

// BSON shapes of the persisted documents. Prices are stored as Decimal128
// and converted to shopspring decimals at this boundary; the raw ObjectID is
// never exposed past the store, only its hex form.

type productDoc struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	Name        string               `bson:"name"`
	Description string               `bson:"description"`
	Price       primitive.Decimal128 `bson:"price"`
	Category    string               `bson:"category"`
	Size        string               `bson:"size"`
	Color       string               `bson:"color"`
	Brand       string               `bson:"brand"`
	Stock       int                  `bson:"stock"`
	CreatedAt   time.Time            `bson:"created_at"`
	UpdatedAt   time.Time            `bson:"updated_at"`
}

type orderDoc struct {
	ID              primitive.ObjectID   `bson:"_id,omitempty"`
	UserID          string               `bson:"user_id"`
	OrderNumber     string               `bson:"order_number"`
	Items           []orderItemDoc       `bson:"items"`
	TotalAmount     primitive.Decimal128 `bson:"total_amount"`
	ShippingAddress string               `bson:"shipping_address"`
	PaymentMethod   string               `bson:"payment_method"`
	Status          string               `bson:"status"`
	CreatedAt       time.Time            `bson:"created_at"`
	UpdatedAt       time.Time            `bson:"updated_at"`
}

type orderItemDoc struct {
	ProductID string               `bson:"product_id"`
	Quantity  int                  `bson:"quantity"`
	UnitPrice primitive.Decimal128 `bson:"price"`
}

func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	v, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.Decimal128{}, fmt.Errorf("encode decimal %q: %w", d.String(), err)
	}
	return v, nil
}

func fromDecimal128(v primitive.Decimal128) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(v.String())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("decode decimal %q: %w", v.String(), err)
	}
	return d, nil
}

func newProductDoc(p models.Product) (productDoc, error) {
	price, err := toDecimal128(p.Price)
	if err != nil {
		return productDoc{}, err
	}
	return productDoc{
		Name:        p.Name,
		Description: p.Description,
		Price:       price,
		Category:    p.Category,
		Size:        p.Size,
		Color:       p.Color,
		Brand:       p.Brand,
		Stock:       p.Stock,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}, nil
}

func (d productDoc) toModel() (models.Product, error) {
	price, err := fromDecimal128(d.Price)
	if err != nil {
		return models.Product{}, err
	}
	return models.Product{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		Price:       price,
		Category:    d.Category,
		Size:        d.Size,
		Color:       d.Color,
		Brand:       d.Brand,
		Stock:       d.Stock,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}, nil
}

func newOrderDoc(o models.Order) (orderDoc, error) {
	total, err := toDecimal128(o.TotalAmount)
	if err != nil {
		return orderDoc{}, err
	}

	items := make([]orderItemDoc, 0, len(o.Items))
	for _, item := range o.Items {
		unitPrice, err := toDecimal128(item.UnitPrice)
		if err != nil {
			return orderDoc{}, err
		}
		items = append(items, orderItemDoc{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: unitPrice,
		})
	}

	return orderDoc{
		UserID:          o.UserID,
		OrderNumber:     o.OrderNumber,
		Items:           items,
		TotalAmount:     total,
		ShippingAddress: o.ShippingAddress,
		PaymentMethod:   o.PaymentMethod,
		Status:          o.Status,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}, nil
}

func (d orderDoc) toModel() (models.Order, error) {
	total, err := fromDecimal128(d.TotalAmount)
	if err != nil {
		return models.Order{}, err
	}

	items := make([]models.OrderItem, 0, len(d.Items))
	for _, item := range d.Items {
		unitPrice, err := fromDecimal128(item.UnitPrice)
		if err != nil {
			return models.Order{}, err
		}
		items = append(items, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: unitPrice,
		})
	}

	return models.Order{
		ID:              d.ID.Hex(),
		UserID:          d.UserID,
		OrderNumber:     d.OrderNumber,
		Items:           items,
		TotalAmount:     total,
		ShippingAddress: d.ShippingAddress,
		PaymentMethod:   d.PaymentMethod,
		Status:          d.Status,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}, nil
}
