package backup_test

import (
	"compress/gzip"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"winsbygroup.com/custbook/internal/address"
	"winsbygroup.com/custbook/internal/backup"
	"winsbygroup.com/custbook/internal/customer"
	"winsbygroup.com/custbook/internal/testutil"
)

func TestBackupService(t *testing.T) {
	ctx := context.Background()

	// Create a temp directory for the database
	tmpDir, err := os.MkdirTemp("", "backup_test")
	if err != nil {
		t.Fatalf("create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	dbPath := filepath.Join(tmpDir, "test.db")
	db := testutil.NewTestDBAt(t, dbPath)

	// Add some test data
	custSvc := customer.NewService(db)
	addrSvc := address.NewService(db, custSvc)

	c, err := custSvc.Create(ctx, &customer.Customer{
		FirstName:   "Arjun",
		LastName:    "Sharma",
		PhoneNumber: "+91 98765 43210",
	})
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}

	_, err = addrSvc.Create(ctx, &address.Address{
		CustomerID:     c.ID,
		AddressDetails: "123 MG Road, Near City Mall",
		City:           "Mumbai",
		State:          "Maharashtra",
		PinCode:        "400001",
		IsDefault:      true,
	})
	if err != nil {
		t.Fatalf("create address: %v", err)
	}

	// Create backup
	backupSvc := backup.NewService(db, dbPath)
	result, err := backupSvc.CreateBackup(ctx)
	if err != nil {
		t.Fatalf("CreateBackup: %v", err)
	}

	// Verify result
	if result.Filename == "" {
		t.Error("expected filename to be set")
	}
	if result.Size == 0 {
		t.Error("expected size > 0")
	}
	if !strings.HasSuffix(result.Filename, "_custdump.sql.gz") {
		t.Errorf("expected filename to end with _custdump.sql.gz, got %s", result.Filename)
	}

	// Verify backup file exists and decompress to check content
	file, err := os.Open(result.Path)
	if err != nil {
		t.Fatalf("open backup file: %v", err)
	}
	defer file.Close()

	gzReader, err := gzip.NewReader(file)
	if err != nil {
		t.Fatalf("create gzip reader: %v", err)
	}
	defer gzReader.Close()

	content, err := io.ReadAll(gzReader)
	if err != nil {
		t.Fatalf("read dump: %v", err)
	}
	dump := string(content)

	for _, want := range []string{
		"CREATE TABLE",
		"customers",
		"addresses",
		"Arjun",
		"123 MG Road, Near City Mall",
	} {
		if !strings.Contains(dump, want) {
			t.Errorf("expected dump to contain %q", want)
		}
	}
}
