package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/storage/memory"
)

func newCustomer(id, name, email string) domain.Customer {
	now := time.Now().UTC()
	return domain.Customer{
		ID:        id,
		Name:      name,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCustomerRepository_CreateFind(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCustomerRepository()

	if err := repo.Create(ctx, newCustomer("c1", "Alice", "alice@example.com")); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	stored, err := repo.FindByID(ctx, "c1")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if stored.Email != "alice@example.com" {
		t.Fatalf("unexpected customer: %+v", stored)
	}
}

func TestCustomerRepository_FindByIDMissing(t *testing.T) {
	repo := memory.NewCustomerRepository()

	_, err := repo.FindByID(context.Background(), "absent")
	if !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestCustomerRepository_EmailTaken(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCustomerRepository()

	if err := repo.Create(ctx, newCustomer("c1", "Alice", "alice@example.com")); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	err := repo.Create(ctx, newCustomer("c2", "Другая Alice", "Alice@Example.com"))
	if !errors.Is(err, domain.ErrCustomerEmailTaken) {
		t.Fatalf("expected ErrCustomerEmailTaken, got %v", err)
	}
}

func TestCustomerRepository_FindByEmail(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCustomerRepository()

	if err := repo.Create(ctx, newCustomer("c1", "Alice", "alice@example.com")); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	stored, err := repo.FindByEmail(ctx, "ALICE@example.com")
	if err != nil {
		t.Fatalf("find by email failed: %v", err)
	}
	if stored.ID != "c1" {
		t.Fatalf("expected customer c1, got %s", stored.ID)
	}
}
