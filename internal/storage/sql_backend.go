package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is one row of the secondary store. ExpiresAt plays the role of a cookie's expiry.
type Entry struct {
	Key       string     `gorm:"column:entry_key;primaryKey;size:255"`
	Value     string     `gorm:"column:value;type:text;not null"`
	ExpiresAt *time.Time `gorm:"column:expires_at;index"`
	UpdatedAt time.Time  `gorm:"column:updated_at"`
}

func (Entry) TableName() string {
	return "storage_entries"
}

// SQLBackend is the secondary store backed by Postgres through gorm.
// The table is created by database.RunMigrations.
type SQLBackend struct {
	db  *gorm.DB
	now func() time.Time
}

func NewSQLBackend(db *gorm.DB, now func() time.Time) *SQLBackend {
	if now == nil {
		now = time.Now
	}
	return &SQLBackend{db: db, now: now}
}

func (s *SQLBackend) Name() string { return "postgres" }

func (s *SQLBackend) Read(ctx context.Context, key string) (string, error) {
	var e Entry
	err := s.db.WithContext(ctx).
		Where("entry_key = ? AND (expires_at IS NULL OR expires_at > ?)", key, s.now()).
		First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read entry %s: %w", key, err)
	}
	return e.Value, nil
}

func (s *SQLBackend) Write(ctx context.Context, key, value string, ttl time.Duration) error {
	if ttl < 0 {
		return s.Delete(ctx, key)
	}

	now := s.now()
	e := Entry{Key: key, Value: value, UpdatedAt: now}
	if ttl > 0 {
		exp := now.Add(ttl)
		e.ExpiresAt = &exp
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "entry_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "expires_at", "updated_at"}),
		}).
		Create(&e).Error
	if err != nil {
		return fmt.Errorf("upsert entry %s: %w", key, err)
	}
	return nil
}

func (s *SQLBackend) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Where("entry_key = ?", key).Delete(&Entry{}).Error; err != nil {
		return fmt.Errorf("delete entry %s: %w", key, err)
	}
	return nil
}

// PurgeExpired removes rows whose horizon has passed and reports how many went away
func (s *SQLBackend) PurgeExpired(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("expires_at IS NOT NULL AND expires_at <= ?", s.now()).
		Delete(&Entry{})
	if res.Error != nil {
		return 0, fmt.Errorf("purge expired entries: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (s *SQLBackend) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
