package planner

import (
	"context"
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

type sequentialIDGenerator struct {
	next int
}

func (g *sequentialIDGenerator) NewID() (string, error) {
	g.next++
	return fmt.Sprintf("id-%d", g.next), nil
}

func testClock() time.Time {
	return time.Date(2026, time.May, 1, 12, 0, 0, 0, time.UTC)
}

func newTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:tavinote_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&DocumentRecord{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func newTestRepository(t *testing.T) (*Repository, *gorm.DB) {
	t.Helper()

	db := newTestDatabase(t)
	store, err := NewStore(StoreConfig{Database: db, Slot: "test", Clock: testClock})
	if err != nil {
		t.Fatalf("failed to construct store: %v", err)
	}
	repository, err := NewRepository(context.Background(), RepositoryConfig{
		Store:      store,
		Clock:      testClock,
		IDProvider: &sequentialIDGenerator{},
	})
	if err != nil {
		t.Fatalf("failed to construct repository: %v", err)
	}
	return repository, db
}

func mustCreateTrip(t *testing.T, repository *Repository, params CreateTripParams) Trip {
	t.Helper()
	trip, err := repository.CreateTrip(context.Background(), params)
	if err != nil {
		t.Fatalf("unexpected create trip error: %v", err)
	}
	return trip
}
