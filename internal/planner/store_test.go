package planner

import (
	"context"
	"testing"
)

func TestStoreLoadSubstitutesDefaultWhenAbsent(t *testing.T) {
	db := newTestDatabase(t)
	store, err := NewStore(StoreConfig{Database: db, Slot: "test", Clock: testClock})
	if err != nil {
		t.Fatalf("failed to construct store: %v", err)
	}

	data, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if data.Trips == nil || len(data.Trips) != 0 {
		t.Fatalf("absent document must load as the empty default: %#v", data)
	}
	if data.Memos == nil || data.DarkMode || data.SearchMemo != "" {
		t.Fatalf("unexpected default document: %#v", data)
	}
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	db := newTestDatabase(t)
	store, err := NewStore(StoreConfig{Database: db, Slot: "test", Clock: testClock})
	if err != nil {
		t.Fatalf("failed to construct store: %v", err)
	}

	data := DefaultAppData()
	data.SearchMemo = "onsen"
	data.Trips = append(data.Trips, Trip{ID: "trip-1", Name: "Kyoto", Todos: []Todo{}})

	if err := store.Save(context.Background(), data); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	loaded, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if len(loaded.Trips) != 1 || loaded.Trips[0].Name != "Kyoto" {
		t.Fatalf("unexpected round trip result: %#v", loaded)
	}
	if loaded.SearchMemo != "onsen" {
		t.Fatalf("search memo must round trip")
	}
}

func TestStoreSaveOverwritesSlot(t *testing.T) {
	db := newTestDatabase(t)
	store, err := NewStore(StoreConfig{Database: db, Slot: "test", Clock: testClock})
	if err != nil {
		t.Fatalf("failed to construct store: %v", err)
	}

	first := DefaultAppData()
	first.SearchMemo = "first"
	if err := store.Save(context.Background(), first); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}
	second := DefaultAppData()
	second.SearchMemo = "second"
	if err := store.Save(context.Background(), second); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	var count int64
	if err := db.Model(&DocumentRecord{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count records: %v", err)
	}
	if count != 1 {
		t.Fatalf("slot writes must upsert a single row, got %d", count)
	}

	loaded, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if loaded.SearchMemo != "second" {
		t.Fatalf("latest write must win, got %q", loaded.SearchMemo)
	}
}

func TestStoreLoadSubstitutesDefaultOnCorruption(t *testing.T) {
	db := newTestDatabase(t)
	record := DocumentRecord{Slot: "test", PayloadJSON: "{not json", UpdatedAtSeconds: 1}
	if err := db.Create(&record).Error; err != nil {
		t.Fatalf("failed to seed corrupt record: %v", err)
	}

	store, err := NewStore(StoreConfig{Database: db, Slot: "test", Clock: testClock})
	if err != nil {
		t.Fatalf("failed to construct store: %v", err)
	}

	data, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("corrupt payload must not error, got %v", err)
	}
	if len(data.Trips) != 0 || data.SearchMemo != "" {
		t.Fatalf("corrupt payload must load as the default document: %#v", data)
	}
}

func TestStoreSlotsAreIndependent(t *testing.T) {
	db := newTestDatabase(t)
	first, err := NewStore(StoreConfig{Database: db, Slot: "one", Clock: testClock})
	if err != nil {
		t.Fatalf("failed to construct store: %v", err)
	}
	second, err := NewStore(StoreConfig{Database: db, Slot: "two", Clock: testClock})
	if err != nil {
		t.Fatalf("failed to construct store: %v", err)
	}

	data := DefaultAppData()
	data.SearchMemo = "slot one"
	if err := first.Save(context.Background(), data); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	other, err := second.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if other.SearchMemo != "" {
		t.Fatalf("slots must not leak into each other: %#v", other)
	}
}
