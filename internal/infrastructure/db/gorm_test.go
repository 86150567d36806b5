package db

import (
	"testing"

	"loantrust/internal/domain/client"
)

func TestOpenSQLiteAndMigrate(t *testing.T) {
	gdb, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("OpenSQLite err: %v", err)
	}
	if err := Migrate(gdb); err != nil {
		t.Fatalf("Migrate err: %v", err)
	}

	// all three tables must exist after migration
	for _, table := range []string{"clients", "loan_records", "payments"} {
		if !gdb.Migrator().HasTable(table) {
			t.Fatalf("table %s missing after migrate", table)
		}
	}

	// the single-connection pool serves reads and writes on the same store
	c := client.Client{ClientID: "c1", Name: "Someone", TrustRating: 75}
	if err := gdb.Create(&c).Error; err != nil {
		t.Fatalf("insert: %v", err)
	}
	var count int64
	if err := gdb.Model(&client.Client{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
}

func TestOpenSQLite_BadPath(t *testing.T) {
	if _, err := OpenSQLite("/definitely/missing/dir/store.db"); err == nil {
		t.Fatal("expected open failure for unreachable path")
	}
}
