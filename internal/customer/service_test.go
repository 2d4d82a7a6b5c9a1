package customer_test

import (
	"context"
	"errors"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"winsbygroup.com/custbook/internal/apperr"
	"winsbygroup.com/custbook/internal/customer"
	"winsbygroup.com/custbook/internal/testutil"
)

func TestCustomerLifecycle(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)

	svc := customer.NewService(db)

	// Create
	created, err := svc.Create(ctx, &customer.Customer{
		FirstName:   "Arjun",
		LastName:    "Sharma",
		PhoneNumber: "+91 98765 43210",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected assigned id")
	}

	// Get
	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.FirstName != "Arjun" || got.LastName != "Sharma" || got.PhoneNumber != "+91 98765 43210" {
		t.Errorf("round trip mismatch: %+v", got)
	}

	// Update (full overwrite)
	got.LastName = "Mehta"
	updated, err := svc.Update(ctx, got)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.LastName != "Mehta" {
		t.Errorf("expected updated last name %q, got %q", "Mehta", updated.LastName)
	}
	if updated.FirstName != "Arjun" || updated.PhoneNumber != "+91 98765 43210" {
		t.Errorf("unrelated fields changed: %+v", updated)
	}

	// Delete
	if err := svc.Delete(ctx, updated.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	_, err = svc.Get(ctx, updated.ID)
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestCustomerDuplicatePhone(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)

	svc := customer.NewService(db)

	_, err := svc.Create(ctx, &customer.Customer{
		FirstName:   "Priya",
		LastName:    "Patel",
		PhoneNumber: "+91 87654 32109",
	})
	if err != nil {
		t.Fatalf("create first customer: %v", err)
	}

	t.Run("create with duplicate phone", func(t *testing.T) {
		_, err := svc.Create(ctx, &customer.Customer{
			FirstName:   "Someone",
			LastName:    "Else",
			PhoneNumber: "+91 87654 32109",
		})
		if !errors.Is(err, apperr.ErrConflict) {
			t.Errorf("expected conflict, got %v", err)
		}
	})

	t.Run("update onto duplicate phone", func(t *testing.T) {
		second, err := svc.Create(ctx, &customer.Customer{
			FirstName:   "Raj",
			LastName:    "Kumar",
			PhoneNumber: "+91 76543 21098",
		})
		if err != nil {
			t.Fatalf("create second customer: %v", err)
		}

		second.PhoneNumber = "+91 87654 32109"
		_, err = svc.Update(ctx, second)
		if !errors.Is(err, apperr.ErrConflict) {
			t.Errorf("expected conflict, got %v", err)
		}
	})
}

func TestCustomerValidation(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)

	svc := customer.NewService(db)

	cases := []customer.Customer{
		{LastName: "Sharma", PhoneNumber: "+91 1"},
		{FirstName: "Arjun", PhoneNumber: "+91 1"},
		{FirstName: "Arjun", LastName: "Sharma"},
		{},
	}
	for _, c := range cases {
		if _, err := svc.Create(ctx, &c); !errors.Is(err, apperr.ErrValidation) {
			t.Errorf("expected validation error for %+v, got %v", c, err)
		}
	}
}

func TestCustomerNotFound(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)

	svc := customer.NewService(db)

	// Reads, updates and deletes on a nonexistent id are all not-found,
	// regardless of call order.
	if _, err := svc.Get(ctx, 42); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("get: expected not found, got %v", err)
	}

	_, err := svc.Update(ctx, &customer.Customer{
		ID:          42,
		FirstName:   "A",
		LastName:    "B",
		PhoneNumber: "+91 11111 11111",
	})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("update: expected not found, got %v", err)
	}

	if err := svc.Delete(ctx, 42); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("delete: expected not found, got %v", err)
	}

	if _, err := svc.Get(ctx, 42); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("get after delete attempt: expected not found, got %v", err)
	}
}
