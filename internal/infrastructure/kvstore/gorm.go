package kvstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nexus-desk/nexus/internal/infrastructure/database"
	"github.com/nexus-desk/nexus/internal/infrastructure/persistence/models"
)

// GormStore keeps entries in the kv_entries table and writes each batch in
// one transaction.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(ctx context.Context, key string) (string, bool, error) {
	var model models.KVEntryModel
	err := s.db.WithContext(ctx).Where("entry_key = ?", key).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("kvstore: sql get %s: %w", key, err)
	}
	return string(model.EntryValue), true, nil
}

func (s *GormStore) Set(ctx context.Context, key, value string) error {
	return s.SetMany(ctx, []Entry{{Key: key, Value: value}})
}

func (s *GormStore) SetMany(ctx context.Context, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}

	rows := make([]models.KVEntryModel, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, models.KVEntryModel{
			EntryKey:   e.Key,
			EntryValue: datatypes.JSON(e.Value),
		})
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "entry_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"entry_value", "updated_at"}),
		}).Create(&rows).Error
	})
	if err != nil {
		return fmt.Errorf("kvstore: sql batch write: %w", err)
	}
	return nil
}

// Close closes the underlying connection pool.
func (s *GormStore) Close() error {
	return database.Close(s.db)
}
