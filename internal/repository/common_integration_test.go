//go:build integration

package repository

import (
	"context"
	"log"
	"os"
	"testing"

	"go-gin-parking/internal/testutil"

	"github.com/jackc/pgx/v5/pgxpool"
)

// testDB 是測試用的資料庫連接池
var testDB *pgxpool.Pool

func TestMain(m *testing.M) {
	pool, _, cleanup, err := testutil.Setup()
	if err != nil {
		log.Fatalf("Failed to setup test environment: %v", err)
	}
	testDB = pool

	log.Println("Running repository tests...")
	code := m.Run()
	cleanup()

	os.Exit(code)
}

func setupTestWithTruncate(t *testing.T) {
	t.Helper()
	if err := testutil.ResetParking(context.Background(), testDB); err != nil {
		t.Fatalf("Failed to reset tables: %v", err)
	}
}
