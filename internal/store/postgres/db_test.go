package postgres

import (
	"database/sql"
	"log/slog"
	"testing"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
)

func TestPoolStats_ReportsConfiguredLimit(t *testing.T) {
	// sql.Open does not dial, so a bogus URL is fine here.
	sqlDB, err := sql.Open("pgx", "postgres://tokenline@127.0.0.1:1/tokenline")
	if err != nil {
		t.Fatalf("sql.Open error: %v", err)
	}
	sqlDB.SetMaxOpenConns(7)
	db := bun.NewDB(sqlDB, pgdialect.New())
	t.Cleanup(func() {
		_ = Close(db)
	})

	var maxOpen int64 = -1
	for _, arg := range PoolStats(db) {
		attr, ok := arg.(slog.Attr)
		if !ok {
			t.Fatalf("arg %v is not a slog.Attr", arg)
		}
		if attr.Key == "db_max_open_conns" {
			maxOpen = attr.Value.Int64()
		}
	}
	if maxOpen != 7 {
		t.Fatalf("db_max_open_conns = %d, want 7", maxOpen)
	}
}
