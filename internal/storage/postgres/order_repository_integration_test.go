package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

func TestOrderRepository_PostgresCreateGetList(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	ctx := context.Background()

	customer := seedCustomerRow(t, store, "Alice", "alice@example.com")
	product := seedProductRow(t, store, "keyboard", 1000, 5)

	repo := NewOrderRepository(store)

	now := time.Now().UTC().Round(time.Microsecond)
	order1 := sampleOrder(customer.ID, product, now.Add(-2*time.Minute))
	order2 := sampleOrder(customer.ID, product, now.Add(-time.Minute))

	if err := repo.Create(ctx, order1); err != nil {
		t.Fatalf("create order1: %v", err)
	}
	if err := repo.Create(ctx, order2); err != nil {
		t.Fatalf("create order2: %v", err)
	}

	got, err := repo.Get(ctx, order1.ID)
	if err != nil {
		t.Fatalf("get order1: %v", err)
	}
	if got.ID != order1.ID || got.CustomerID != order1.CustomerID || got.AmountMinor != order1.AmountMinor {
		t.Fatalf("unexpected order payload: %+v", got)
	}
	if len(got.Lines) != len(order1.Lines) {
		t.Fatalf("unexpected lines count: got=%d want=%d", len(got.Lines), len(order1.Lines))
	}
	if got.Lines[0].ProductID != product.ID || got.Lines[0].PriceMinor != 1000 {
		t.Fatalf("unexpected first line: %+v", got.Lines[0])
	}

	listed, err := repo.ListByCustomer(ctx, customer.ID, 1)
	if err != nil {
		t.Fatalf("list by customer with limit: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != order2.ID {
		t.Fatalf("unexpected list result with limit: %+v", listed)
	}

	all, err := repo.ListByCustomer(ctx, customer.ID, 0)
	if err != nil {
		t.Fatalf("list by customer without limit: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(all))
	}
}

func TestOrderRepository_PostgresErrors(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	ctx := context.Background()

	customer := seedCustomerRow(t, store, "Bob", "bob@example.com")
	product := seedProductRow(t, store, "mouse", 250, 3)

	repo := NewOrderRepository(store)

	if _, err := repo.Get(ctx, uuid.NewString()); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}

	now := time.Now().UTC().Round(time.Microsecond)
	base := sampleOrder(customer.ID, product, now)
	if err := repo.Create(ctx, base); err != nil {
		t.Fatalf("create base order: %v", err)
	}
	if err := repo.Create(ctx, base); !errors.Is(err, domain.ErrOrderExists) {
		t.Fatalf("expected ErrOrderExists on duplicate create, got %v", err)
	}
}

func TestStore_WithinTxRollsBackOrderAndStock(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	ctx := context.Background()

	customer := seedCustomerRow(t, store, "Carol", "carol@example.com")
	product := seedProductRow(t, store, "monitor", 15000, 4)

	orders := NewOrderRepository(store)
	products := NewProductRepository(store)

	now := time.Now().UTC().Round(time.Microsecond)
	order := sampleOrder(customer.ID, product, now)

	expected := errors.New("forced failure")
	err := store.WithinTx(ctx, func(ctx context.Context) error {
		if err := orders.Create(ctx, order); err != nil {
			return err
		}
		if err := products.UpdateQuantities(ctx, []domain.ProductQuantity{
			{ProductID: product.ID, Quantity: 1},
		}); err != nil {
			return err
		}
		return expected
	})
	if !errors.Is(err, expected) {
		t.Fatalf("expected forced failure, got %v", err)
	}

	// Оба эффекта должны откатиться целиком.
	if _, err := orders.Get(ctx, order.ID); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected order rolled back, got %v", err)
	}
	stored, err := products.FindByID(ctx, product.ID)
	if err != nil {
		t.Fatalf("find product: %v", err)
	}
	if stored.Quantity != 4 {
		t.Fatalf("expected quantity 4 after rollback, got %d", stored.Quantity)
	}
}

func TestStore_WithinTxCommitsOrderAndStock(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	ctx := context.Background()

	customer := seedCustomerRow(t, store, "Dave", "dave@example.com")
	product := seedProductRow(t, store, "webcam", 4500, 6)

	orders := NewOrderRepository(store)
	products := NewProductRepository(store)

	now := time.Now().UTC().Round(time.Microsecond)
	order := sampleOrder(customer.ID, product, now)

	err := store.WithinTx(ctx, func(ctx context.Context) error {
		if err := orders.Create(ctx, order); err != nil {
			return err
		}
		return products.UpdateQuantities(ctx, []domain.ProductQuantity{
			{ProductID: product.ID, Quantity: 4},
		})
	})
	if err != nil {
		t.Fatalf("within tx: %v", err)
	}

	if _, err := orders.Get(ctx, order.ID); err != nil {
		t.Fatalf("expected order committed, got %v", err)
	}
	stored, err := products.FindByID(ctx, product.ID)
	if err != nil {
		t.Fatalf("find product: %v", err)
	}
	if stored.Quantity != 4 {
		t.Fatalf("expected quantity 4 after commit, got %d", stored.Quantity)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if !isUniqueViolation(&pgconn.PgError{Code: "23505"}) {
		t.Fatal("expected unique violation for code 23505")
	}
	if isUniqueViolation(&pgconn.PgError{Code: "22001"}) {
		t.Fatal("unexpected unique violation for non-unique code")
	}
	if isUniqueViolation(errors.New("plain error")) {
		t.Fatal("plain error must not be unique violation")
	}
}

func seedCustomerRow(t *testing.T, store *Store, name, email string) domain.Customer {
	t.Helper()

	now := time.Now().UTC().Round(time.Microsecond)
	customer := domain.Customer{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := NewCustomerRepository(store).Create(context.Background(), customer); err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return customer
}

func seedProductRow(t *testing.T, store *Store, name string, priceMinor int64, qty int32) domain.Product {
	t.Helper()

	now := time.Now().UTC().Round(time.Microsecond)
	product := domain.Product{
		ID:         uuid.NewString(),
		Name:       name,
		PriceMinor: priceMinor,
		Quantity:   qty,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := NewProductRepository(store).Create(context.Background(), product); err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return product
}

func sampleOrder(customerID string, product domain.Product, createdAt time.Time) domain.Order {
	lines := []domain.OrderLine{
		{
			ProductID:  product.ID,
			PriceMinor: product.PriceMinor,
			Qty:        2,
		},
	}

	return domain.Order{
		ID:          uuid.NewString(),
		CustomerID:  customerID,
		AmountMinor: product.PriceMinor * 2,
		Lines:       lines,
		CreatedAt:   createdAt,
	}
}
