package planner

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	errMissingStore      = errors.New("planner: store is required")
	errMissingIDProvider = errors.New("planner: id provider is required")
)

// RepositoryError wraps a failed repository operation with a stable code.
type RepositoryError struct {
	code string
	err  error
}

func (e *RepositoryError) Error() string {
	if e.err == nil {
		return e.code
	}
	return fmt.Sprintf("%s: %v", e.code, e.err)
}

func (e *RepositoryError) Unwrap() error {
	return e.err
}

// Code returns the operation.reason identifier for the failure.
func (e *RepositoryError) Code() string {
	return e.code
}

func newRepositoryError(operation, reason string, cause error) error {
	return &RepositoryError{code: fmt.Sprintf("%s.%s", operation, reason), err: cause}
}

const (
	opRepositoryNew = "planner.repository.new"
	opCreateTrip    = "planner.create_trip"
	opUpdateTrip    = "planner.update_trip"
	opDeleteTrip    = "planner.delete_trip"
	opAddMemo       = "planner.add_memo"
	opDeleteMemo    = "planner.delete_memo"
	opSetSearchMemo = "planner.set_search_memo"
	opSetDarkMode   = "planner.set_dark_mode"
)

// RepositoryConfig bundles the dependencies of a Repository.
type RepositoryConfig struct {
	Store      *Store
	Clock      func() time.Time
	IDProvider IDProvider
	Logger     *zap.Logger
}

// Repository owns the in-memory root document and is the single source of
// truth for every mutation. A read-write lock guards the document so the
// HTTP layer can call in from concurrent request goroutines; every mutation
// runs to completion under the lock and writes the whole document through
// the store before returning.
type Repository struct {
	mu     sync.RWMutex
	store  *Store
	data   AppData
	clock  func() time.Time
	ids    IDProvider
	logger *zap.Logger
}

// NewRepository loads the persisted document and returns a repository over it.
func NewRepository(ctx context.Context, cfg RepositoryConfig) (*Repository, error) {
	if cfg.Store == nil {
		return nil, newRepositoryError(opRepositoryNew, "missing_store", errMissingStore)
	}
	if cfg.IDProvider == nil {
		return nil, newRepositoryError(opRepositoryNew, "missing_id_provider", errMissingIDProvider)
	}

	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	data, err := cfg.Store.Load(ctx)
	if err != nil {
		return nil, newRepositoryError(opRepositoryNew, "load_failed", err)
	}

	return &Repository{
		store:  cfg.Store,
		data:   data,
		clock:  clock,
		ids:    cfg.IDProvider,
		logger: logger,
	}, nil
}

// Snapshot returns the current document state.
func (r *Repository) Snapshot() AppData {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.data
}

// Trips returns every trip in creation order.
func (r *Repository) Trips() []Trip {
	r.mu.RLock()
	defer r.mu.RUnlock()

	trips := make([]Trip, len(r.data.Trips))
	copy(trips, r.data.Trips)
	return trips
}

// TripByID returns the trip with the given id, reporting ok=false when it
// does not exist.
func (r *Repository) TripByID(tripID string) (Trip, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	trip := r.findTrip(tripID)
	if trip == nil {
		return Trip{}, false
	}
	return *trip, true
}

// CreateTripParams describes the inputs of CreateTrip.
type CreateTripParams struct {
	Name     string
	Date     string
	EndDate  string
	Members  string
	Budget   string
	Template string
}

// CreateTrip appends a new trip with empty sub-collections, optionally
// pre-populating todos from a named template.
func (r *Repository) CreateTrip(ctx context.Context, params CreateTripParams) (Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := strings.TrimSpace(params.Name)
	if name == "" {
		return Trip{}, ErrEmptyTripName
	}
	if params.Date != "" && params.EndDate != "" && params.EndDate < params.Date {
		return Trip{}, ErrEndDateBeforeDate
	}

	tripID, err := r.ids.NewID()
	if err != nil {
		r.logError(opCreateTrip, "id_generation_failed", err)
		return Trip{}, newRepositoryError(opCreateTrip, "id_generation_failed", err)
	}

	trip := Trip{
		ID:        tripID,
		Name:      name,
		Date:      params.Date,
		EndDate:   params.EndDate,
		Members:   strings.TrimSpace(params.Members),
		Budget:    strings.TrimSpace(params.Budget),
		CreatedAt: r.clock().UTC().Format(time.RFC3339),
		Todos:     []Todo{},
		Places:    []Place{},
		Diary:     []DiaryEntry{},
		Schedule:  []ScheduleItem{},
		Tickets:   []Ticket{},
		Packing:   []PackingItem{},
		Expenses:  []Expense{},
		Polls:     []Poll{},
		Reminders: []Reminder{},
	}

	if params.Template != "" && params.Template != TemplateNone {
		if items, ok := TodoTemplate(params.Template); ok {
			for _, item := range items {
				todoID, err := r.ids.NewID()
				if err != nil {
					r.logError(opCreateTrip, "id_generation_failed", err)
					return Trip{}, newRepositoryError(opCreateTrip, "id_generation_failed", err)
				}
				trip.Todos = append(trip.Todos, Todo{
					ID:       todoID,
					Text:     item.Text,
					Priority: item.Priority,
					Done:     false,
				})
			}
		}
	}

	r.data.Trips = append(r.data.Trips, trip)
	if err := r.persist(ctx, opCreateTrip); err != nil {
		return Trip{}, err
	}
	return trip, nil
}

// TripUpdate carries the fields UpdateTrip should merge; nil fields stay
// unchanged.
type TripUpdate struct {
	Name    *string
	Date    *string
	EndDate *string
	Members *string
	Budget  *string
}

// UpdateTrip merges the provided fields into the trip. A missing trip id is
// a silent no-op. An empty replacement name keeps the current one.
func (r *Repository) UpdateTrip(ctx context.Context, tripID string, update TripUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	trip := r.findTrip(tripID)
	if trip == nil {
		r.logMiss(opUpdateTrip, tripID)
		return nil
	}

	// Merge into locals first so a rejected update leaves the live
	// document untouched.
	name, date, endDate := trip.Name, trip.Date, trip.EndDate
	if update.Name != nil {
		if trimmed := strings.TrimSpace(*update.Name); trimmed != "" {
			name = trimmed
		}
	}
	if update.Date != nil {
		date = *update.Date
	}
	if update.EndDate != nil {
		endDate = *update.EndDate
	}
	if date != "" && endDate != "" && endDate < date {
		return ErrEndDateBeforeDate
	}

	trip.Name = name
	trip.Date = date
	trip.EndDate = endDate
	if update.Members != nil {
		trip.Members = strings.TrimSpace(*update.Members)
	}
	if update.Budget != nil {
		trip.Budget = strings.TrimSpace(*update.Budget)
	}

	return r.persist(ctx, opUpdateTrip)
}

// DeleteTrip removes the trip and, with it, every owned sub-entity. Missing
// ids are silent no-ops.
func (r *Repository) DeleteTrip(ctx context.Context, tripID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.data.Trips[:0]
	found := false
	for _, trip := range r.data.Trips {
		if trip.ID == tripID {
			found = true
			continue
		}
		kept = append(kept, trip)
	}
	if !found {
		r.logMiss(opDeleteTrip, tripID)
		return nil
	}
	r.data.Trips = kept
	return r.persist(ctx, opDeleteTrip)
}

// Memos returns the global sticky memos in creation order.
func (r *Repository) Memos() []StickyMemo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	memos := make([]StickyMemo, len(r.data.Memos))
	copy(memos, r.data.Memos)
	return memos
}

// AddMemo appends a sticky memo to the global board.
func (r *Repository) AddMemo(ctx context.Context, text, color string) (StickyMemo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return StickyMemo{}, ErrEmptyMemoText
	}
	if color == "" {
		color = "yellow"
	}

	memoID, err := r.ids.NewID()
	if err != nil {
		r.logError(opAddMemo, "id_generation_failed", err)
		return StickyMemo{}, newRepositoryError(opAddMemo, "id_generation_failed", err)
	}

	memo := StickyMemo{
		ID:        memoID,
		Text:      trimmed,
		Color:     color,
		CreatedAt: r.clock().UTC().Format(time.RFC3339),
	}
	r.data.Memos = append(r.data.Memos, memo)
	if err := r.persist(ctx, opAddMemo); err != nil {
		return StickyMemo{}, err
	}
	return memo, nil
}

// DeleteMemo removes a sticky memo by id, silently ignoring unknown ids.
func (r *Repository) DeleteMemo(ctx context.Context, memoID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.data.Memos[:0]
	found := false
	for _, memo := range r.data.Memos {
		if memo.ID == memoID {
			found = true
			continue
		}
		kept = append(kept, memo)
	}
	if !found {
		r.logMiss(opDeleteMemo, memoID)
		return nil
	}
	r.data.Memos = kept
	return r.persist(ctx, opDeleteMemo)
}

// SearchMemo returns the global free-text search memo.
func (r *Repository) SearchMemo() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.data.SearchMemo
}

// SetSearchMemo replaces the global search memo.
func (r *Repository) SetSearchMemo(ctx context.Context, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data.SearchMemo = text
	return r.persist(ctx, opSetSearchMemo)
}

// DarkMode returns the stored display preference.
func (r *Repository) DarkMode() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.data.DarkMode
}

// SetDarkMode stores the display preference.
func (r *Repository) SetDarkMode(ctx context.Context, enabled bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data.DarkMode = enabled
	return r.persist(ctx, opSetDarkMode)
}

func (r *Repository) findTrip(tripID string) *Trip {
	for i := range r.data.Trips {
		if r.data.Trips[i].ID == tripID {
			return &r.data.Trips[i]
		}
	}
	return nil
}

func (r *Repository) persist(ctx context.Context, operation string) error {
	if err := r.store.Save(ctx, r.data); err != nil {
		r.logError(operation, "save_failed", err)
		return newRepositoryError(operation, "save_failed", err)
	}
	return nil
}

func (r *Repository) logMiss(operation, id string) {
	r.logger.Debug("repository no-op for unknown id",
		zap.String("operation", operation),
		zap.String("id", id))
}

func (r *Repository) logError(operation, reason string, err error, fields ...zap.Field) {
	attrs := []zap.Field{
		zap.String("operation", operation),
		zap.String("reason", reason),
	}
	if err != nil {
		attrs = append(attrs, zap.Error(err))
	}
	attrs = append(attrs, fields...)
	r.logger.Error("planner repository error", attrs...)
}
