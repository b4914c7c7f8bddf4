package db

import (
	"context"
	"testing"
)

func TestRebind(t *testing.T) {
	cases := []struct {
		dialect Dialect
		in      string
		want    string
	}{
		{SQLite, "SELECT * FROM t WHERE a = ? AND b = ?", "SELECT * FROM t WHERE a = ? AND b = ?"},
		{MySQL, "INSERT INTO t (a) VALUES (?)", "INSERT INTO t (a) VALUES (?)"},
		{Postgres, "INSERT INTO t (a, b) VALUES (?, ?)", "INSERT INTO t (a, b) VALUES ($1, $2)"},
		{Postgres, "SELECT '?' FROM t WHERE a = ?", "SELECT '?' FROM t WHERE a = $1"},
	}
	for _, tc := range cases {
		if got := tc.dialect.Rebind(tc.in); got != tc.want {
			t.Errorf("%s.Rebind(%q) = %q, want %q", tc.dialect, tc.in, got, tc.want)
		}
	}
}

func TestDialectFor(t *testing.T) {
	cases := map[string]Dialect{
		"sqlite":   SQLite,
		"postgres": Postgres,
		"pgx":      Postgres,
		"mysql":    MySQL,
	}
	for driver, want := range cases {
		got, err := DialectFor(driver)
		if err != nil {
			t.Fatalf("DialectFor(%q): %v", driver, err)
		}
		if got != want {
			t.Errorf("DialectFor(%q) = %q, want %q", driver, got, want)
		}
	}
}

func TestSchemaPerDialect(t *testing.T) {
	for _, d := range []Dialect{SQLite, Postgres, MySQL} {
		if n := len(d.Schema()); n != 3 {
			t.Errorf("%s: expected 3 tables, got %d", d, n)
		}
	}
}

func TestInsertIDSQLite(t *testing.T) {
	ctx := context.Background()
	store, err := Open(ctx, "sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	first, err := store.Dialect.InsertID(ctx, store.DB, `INSERT INTO customers (name, email, phone, address) VALUES (?, ?, ?, ?)`, "a", "b", "c", "d")
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	second, err := store.Dialect.InsertID(ctx, store.DB, `INSERT INTO customers (name, email, phone, address) VALUES (?, ?, ?, ?)`, "a", "b", "c", "d")
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if first != 1 || second != 2 {
		t.Errorf("expected ids 1 and 2, got %d and %d", first, second)
	}
}
