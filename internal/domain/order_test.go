package domain_test

import (
	"testing"
	"time"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// helper для создания базового заказа с одной позицией.
func makeOrder() domain.Order {
	return domain.Order{
		ID:          "order-1",
		CustomerID:  "customer-1",
		AmountMinor: 3000,
		Lines: []domain.OrderLine{
			{ProductID: "product-1", PriceMinor: 1000, Qty: 3},
		},
		CreatedAt: time.Now().UTC(),
	}
}

func TestOrderValidateInvariants_Ok(t *testing.T) {
	order := makeOrder()
	if errs := order.ValidateInvariants(); len(errs) != 0 {
		t.Fatalf("expected no validation errors, got %v", errs)
	}
}

func TestOrderValidateInvariants_Errors(t *testing.T) {
	cases := []struct {
		name string
		mut  func(o *domain.Order)
	}{
		{
			name: "no customer",
			mut: func(o *domain.Order) {
				o.CustomerID = ""
			},
		},
		{
			name: "no lines",
			mut: func(o *domain.Order) {
				o.Lines = nil
			},
		},
		{
			name: "qty invalid",
			mut: func(o *domain.Order) {
				o.Lines[0].Qty = 0
			},
		},
		{
			name: "price invalid",
			mut: func(o *domain.Order) {
				o.Lines[0].PriceMinor = -5
			},
		},
		{
			name: "amount mismatch",
			mut: func(o *domain.Order) {
				o.AmountMinor = 999
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order := makeOrder()
			// Изменяем состояние согласно сценарию.
			tc.mut(&order)

			if len(order.ValidateInvariants()) == 0 {
				t.Fatalf("expected validation errors for case %s", tc.name)
			}
		})
	}
}

func TestOrderLinesAmount(t *testing.T) {
	order := domain.Order{
		Lines: []domain.OrderLine{
			{ProductID: "p1", PriceMinor: 1000, Qty: 3},
			{ProductID: "p2", PriceMinor: 250, Qty: 2},
		},
	}
	if got := order.LinesAmount(); got != 3500 {
		t.Fatalf("expected amount 3500, got %d", got)
	}
}
