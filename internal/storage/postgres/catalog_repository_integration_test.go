package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

func TestCustomerRepository_Postgres(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	ctx := context.Background()

	repo := NewCustomerRepository(store)
	customer := seedCustomerRow(t, store, "Alice", "alice@example.com")

	got, err := repo.FindByID(ctx, customer.ID)
	if err != nil {
		t.Fatalf("find by id: %v", err)
	}
	if got.Email != customer.Email || got.Name != customer.Name {
		t.Fatalf("unexpected customer payload: %+v", got)
	}

	// Поиск по email нечувствителен к регистру.
	byEmail, err := repo.FindByEmail(ctx, "ALICE@EXAMPLE.COM")
	if err != nil {
		t.Fatalf("find by email: %v", err)
	}
	if byEmail.ID != customer.ID {
		t.Fatalf("unexpected customer by email: %+v", byEmail)
	}

	if _, err := repo.FindByID(ctx, uuid.NewString()); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}

	dup := customer
	dup.ID = uuid.NewString()
	dup.Email = "Alice@Example.com"
	if err := repo.Create(ctx, dup); !errors.Is(err, domain.ErrCustomerEmailTaken) {
		t.Fatalf("expected ErrCustomerEmailTaken, got %v", err)
	}
}

func TestProductRepository_Postgres(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	ctx := context.Background()

	repo := NewProductRepository(store)
	first := seedProductRow(t, store, "keyboard", 1000, 5)
	second := seedProductRow(t, store, "mouse", 250, 3)

	got, err := repo.FindByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("find by id: %v", err)
	}
	if got.PriceMinor != 1000 || got.Quantity != 5 {
		t.Fatalf("unexpected product payload: %+v", got)
	}

	// FindAllByID пропускает несуществующие идентификаторы.
	found, err := repo.FindAllByID(ctx, []string{second.ID, uuid.NewString(), first.ID})
	if err != nil {
		t.Fatalf("find all by id: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("expected 2 products, got %d", len(found))
	}

	dup := first
	dup.ID = uuid.NewString()
	dup.Name = "Keyboard"
	if err := repo.Create(ctx, dup); !errors.Is(err, domain.ErrProductNameTaken) {
		t.Fatalf("expected ErrProductNameTaken, got %v", err)
	}

	if err := repo.UpdateQuantities(ctx, []domain.ProductQuantity{
		{ProductID: first.ID, Quantity: 2},
	}); err != nil {
		t.Fatalf("update quantities: %v", err)
	}
	updated, err := repo.FindByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("find updated product: %v", err)
	}
	if updated.Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", updated.Quantity)
	}

	if err := repo.UpdateQuantities(ctx, []domain.ProductQuantity{
		{ProductID: uuid.NewString(), Quantity: 1},
	}); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound on unknown product, got %v", err)
	}
}
