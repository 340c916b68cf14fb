package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/warehousehq/warehouse-backend/pkg/migrate"
)

func TestInitMigrationCreatesAllTables(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_init_warehouse.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no init migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	tables := []string{
		"users", "shelves", "shelf_categories", "product_details",
		"placements", "inbounds", "outbounds", "user_logs",
		"user_daily_details", "fire_events",
	}
	for _, table := range tables {
		if !strings.Contains(content, "CREATE TABLE IF NOT EXISTS "+table) {
			t.Errorf("missing table %q", table)
		}
		if !strings.Contains(content, "DROP TABLE IF EXISTS "+table) {
			t.Errorf("missing drop for table %q", table)
		}
	}

	// Referential integrity lives in the service layer so deletes never cascade.
	if strings.Contains(content, "REFERENCES") {
		t.Errorf("init migration should not declare foreign keys")
	}
	if !strings.Contains(content, "idx_users_email") {
		t.Errorf("missing unique email index")
	}
}

func TestValidateDirAcceptsBundledMigrations(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("bundled migrations should validate: %v", err)
	}
}
