package sqlite_test

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"winsbygroup.com/custbook/internal/address"
	"winsbygroup.com/custbook/internal/customer"
	"winsbygroup.com/custbook/internal/testutil"
)

// countWhere returns the count from a query with args
func countWhere(t *testing.T, db *sqlx.DB, query string, args ...interface{}) int {
	t.Helper()
	var count int
	if err := db.Get(&count, query, args...); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	return count
}

// insertTestData executes SQL statements to set up test data
func insertTestData(t *testing.T, db *sqlx.DB, sql string) {
	t.Helper()
	if _, err := db.Exec(sql); err != nil {
		t.Fatalf("insert test data: %v", err)
	}
}

// TestCascadeDeleteCustomer verifies that deleting a customer removes all
// of its addresses through the FK cascade, while other customers' rows
// are untouched.
func TestCascadeDeleteCustomer(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	// Customer 1 has two addresses; customer 2 has one (to verify it survives)
	insertTestData(t, db, `
		INSERT INTO customers (id, first_name, last_name, phone_number) VALUES
			(1, 'Arjun', 'Sharma', '+91 98765 43210'),
			(2, 'Priya', 'Patel', '+91 87654 32109');

		INSERT INTO addresses (id, customer_id, address_details, city, state, pin_code) VALUES
			(1, 1, '123 MG Road', 'Mumbai', 'Maharashtra', '400001'),
			(2, 1, '456 Linking Road', 'Mumbai', 'Maharashtra', '400050'),
			(3, 2, '789 SG Highway', 'Ahmedabad', 'Gujarat', '380015');
	`)

	if got := countWhere(t, db, "SELECT COUNT(*) FROM addresses WHERE customer_id = 1"); got != 2 {
		t.Fatalf("expected 2 addresses for customer 1, got %d", got)
	}

	custSvc := customer.NewService(db)
	if err := custSvc.Delete(ctx, 1); err != nil {
		t.Fatalf("delete customer: %v", err)
	}

	if got := countWhere(t, db, "SELECT COUNT(*) FROM addresses WHERE customer_id = 1"); got != 0 {
		t.Errorf("expected 0 addresses after delete, got %d", got)
	}

	// Customer 2's data is intact
	if got := countWhere(t, db, "SELECT COUNT(*) FROM customers WHERE id = 2"); got != 1 {
		t.Errorf("expected customer 2 to remain, got %d", got)
	}
	if got := countWhere(t, db, "SELECT COUNT(*) FROM addresses WHERE customer_id = 2"); got != 1 {
		t.Errorf("expected customer 2's address to remain, got %d", got)
	}
}

// TestDeleteAddressKeepsCustomer verifies that deleting a single address
// never touches the owning customer.
func TestDeleteAddressKeepsCustomer(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	insertTestData(t, db, `
		INSERT INTO customers (id, first_name, last_name, phone_number) VALUES
			(1, 'Raj', 'Kumar', '+91 76543 21098');

		INSERT INTO addresses (id, customer_id, address_details, city, state, pin_code) VALUES
			(1, 1, '321 Rajouri Garden', 'Delhi', 'Delhi', '110027');
	`)

	custSvc := customer.NewService(db)
	addrSvc := address.NewService(db, custSvc)

	if err := addrSvc.Delete(ctx, 1); err != nil {
		t.Fatalf("delete address: %v", err)
	}

	if got := countWhere(t, db, "SELECT COUNT(*) FROM addresses"); got != 0 {
		t.Errorf("expected 0 addresses, got %d", got)
	}
	if got := countWhere(t, db, "SELECT COUNT(*) FROM customers WHERE id = 1"); got != 1 {
		t.Errorf("expected customer to remain, got %d", got)
	}
}

// TestForeignKeyRejectsOrphanAddress verifies the FK constraint blocks
// addresses referencing a customer that does not exist.
func TestForeignKeyRejectsOrphanAddress(t *testing.T) {
	db := testutil.NewTestDB(t)

	_, err := db.Exec(`
		INSERT INTO addresses (customer_id, address_details, city, state, pin_code)
		VALUES (999, 'Nowhere Lane', 'Mumbai', 'Maharashtra', '400001')
	`)
	if err == nil {
		t.Fatal("expected foreign key violation, got none")
	}
}
