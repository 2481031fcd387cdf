package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVRecord is the table backing GormStore: one JSON blob per storage key.
type KVRecord struct {
	Key   string `gorm:"primarykey;column:key"`
	Value string `gorm:"type:text;not null"`
}

func (KVRecord) TableName() string {
	return "kv_records"
}

type gormStore struct {
	db *gorm.DB
}

// NewGormStore returns a Store persisting each key as a row in kv_records.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Get(key string, into any) error {
	var record KVRecord
	if err := s.db.First(&record, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrKeyNotFound
		}
		return fmt.Errorf("storage: reading %q: %w", key, err)
	}
	if err := json.Unmarshal([]byte(record.Value), into); err != nil {
		return fmt.Errorf("storage: decoding %q: %w", key, err)
	}
	return nil
}

func (s *gormStore) Set(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("storage: encoding %q: %w", key, err)
	}
	record := KVRecord{Key: key, Value: string(data)}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("storage: writing %q: %w", key, err)
	}
	return nil
}

func (s *gormStore) Delete(key string) error {
	if err := s.db.Delete(&KVRecord{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("storage: deleting %q: %w", key, err)
	}
	return nil
}
