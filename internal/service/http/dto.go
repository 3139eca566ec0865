package httpsvc

import (
	"time"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// CreateCustomerRequest — тело POST /customers.
type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required" validate:"required,min=1,max=200"`
	Email string `json:"email" binding:"required" validate:"required,email"`
}

// CustomerResponse — представление клиента в ответах API.
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateProductRequest — тело POST /products.
type CreateProductRequest struct {
	Name string `json:"name" binding:"required" validate:"required,min=1,max=200"`
	// Цена в минимальных денежных единицах.
	PriceMinor int64 `json:"price_minor" validate:"gte=0"`
	Quantity   int32 `json:"quantity" validate:"gte=0"`
}

// ProductResponse — представление товара в ответах API.
type ProductResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	PriceMinor int64     `json:"price_minor"`
	Quantity   int32     `json:"quantity"`
	CreatedAt  time.Time `json:"created_at"`
}

// OrderProductRequest — одна запрошенная позиция в POST /orders.
type OrderProductRequest struct {
	ID       string `json:"id" binding:"required" validate:"required"`
	Quantity int32  `json:"quantity" binding:"required" validate:"required,gt=0"`
}

// CreateOrderRequest — тело POST /orders.
type CreateOrderRequest struct {
	CustomerID string                `json:"customer_id" binding:"required" validate:"required"`
	Products   []OrderProductRequest `json:"products" binding:"required" validate:"required,min=1,dive"`
}

// OrderLineResponse — позиция заказа с зафиксированной ценой.
type OrderLineResponse struct {
	ProductID  string `json:"product_id"`
	PriceMinor int64  `json:"price_minor"`
	Quantity   int32  `json:"quantity"`
}

// OrderResponse — представление заказа в ответах API.
type OrderResponse struct {
	ID          string              `json:"id"`
	CustomerID  string              `json:"customer_id"`
	AmountMinor int64               `json:"amount_minor"`
	Lines       []OrderLineResponse `json:"lines"`
	CreatedAt   time.Time           `json:"created_at"`
}

func toCustomerResponse(customer domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        customer.ID,
		Name:      customer.Name,
		Email:     customer.Email,
		CreatedAt: customer.CreatedAt,
	}
}

func toProductResponse(product domain.Product) ProductResponse {
	return ProductResponse{
		ID:         product.ID,
		Name:       product.Name,
		PriceMinor: product.PriceMinor,
		Quantity:   product.Quantity,
		CreatedAt:  product.CreatedAt,
	}
}

func toOrderResponse(order domain.Order) OrderResponse {
	lines := make([]OrderLineResponse, 0, len(order.Lines))
	for _, line := range order.Lines {
		lines = append(lines, OrderLineResponse{
			ProductID:  line.ProductID,
			PriceMinor: line.PriceMinor,
			Quantity:   line.Qty,
		})
	}
	return OrderResponse{
		ID:          order.ID,
		CustomerID:  order.CustomerID,
		AmountMinor: order.AmountMinor,
		Lines:       lines,
		CreatedAt:   order.CreatedAt,
	}
}
