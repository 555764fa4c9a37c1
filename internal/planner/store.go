package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultDocumentSlot names the storage slot used when no slot is configured.
const DefaultDocumentSlot = "tavinote"

var errMissingStoreDatabase = errors.New("planner: store requires a database handle")

// DocumentRecord holds one serialized AppData snapshot per named slot.
type DocumentRecord struct {
	Slot             string `gorm:"column:slot;primaryKey;size:190;not null"`
	PayloadJSON      string `gorm:"column:payload_json;type:text;not null"`
	UpdatedAtSeconds int64  `gorm:"column:updated_at_s;not null"`
}

// TableName provides the explicit table binding for GORM.
func (DocumentRecord) TableName() string {
	return "planner_documents"
}

// StoreConfig bundles the dependencies of a Store.
type StoreConfig struct {
	Database *gorm.DB
	Slot     string
	Clock    func() time.Time
	Logger   *zap.Logger
}

// Store is the persistence gateway: it loads and saves the root document as
// a whole-snapshot write, and substitutes the default document when the
// stored payload is absent or unreadable.
type Store struct {
	db     *gorm.DB
	slot   string
	clock  func() time.Time
	logger *zap.Logger
}

// NewStore constructs a Store with validated configuration.
func NewStore(cfg StoreConfig) (*Store, error) {
	if cfg.Database == nil {
		return nil, errMissingStoreDatabase
	}

	slot := cfg.Slot
	if slot == "" {
		slot = DefaultDocumentSlot
	}

	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Store{db: cfg.Database, slot: slot, clock: clock, logger: logger}, nil
}

// Load reads the document for the configured slot. Absence and corruption
// both yield the default empty document; only database failures error.
func (s *Store) Load(ctx context.Context) (AppData, error) {
	var record DocumentRecord
	err := s.db.WithContext(ctx).
		Where("slot = ?", s.slot).
		Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return DefaultAppData(), nil
	}
	if err != nil {
		return AppData{}, fmt.Errorf("planner: load document: %w", err)
	}

	data := DefaultAppData()
	if err := json.Unmarshal([]byte(record.PayloadJSON), &data); err != nil {
		s.logger.Warn("stored document is unreadable, substituting default",
			zap.String("slot", s.slot),
			zap.Error(err))
		return DefaultAppData(), nil
	}
	if data.Trips == nil {
		data.Trips = []Trip{}
	}
	if data.Memos == nil {
		data.Memos = []StickyMemo{}
	}
	return data, nil
}

// Save serializes the whole document and upserts it into the slot.
func (s *Store) Save(ctx context.Context, data AppData) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("planner: encode document: %w", err)
	}

	record := DocumentRecord{
		Slot:             s.slot,
		PayloadJSON:      string(payload),
		UpdatedAtSeconds: s.clock().UTC().Unix(),
	}
	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slot"}},
			UpdateAll: true,
		}).
		Create(&record).Error
	if err != nil {
		return fmt.Errorf("planner: save document: %w", err)
	}
	return nil
}
