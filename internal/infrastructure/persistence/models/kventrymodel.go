package models

import "gorm.io/datatypes"

// KVEntryModel is the GORM model for the kv_entries table. Every value is a
// JSON document.
type KVEntryModel struct {
	EntryKey   string         `gorm:"column:entry_key;type:varchar(191);primaryKey"`
	EntryValue datatypes.JSON `gorm:"column:entry_value;type:text;not null"`
	UpdatedAt  int64          `gorm:"column:updated_at;not null;autoUpdateTime:milli"`
}

// TableName returns the table name for GORM
func (KVEntryModel) TableName() string {
	return "kv_entries"
}
