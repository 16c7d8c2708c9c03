package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"tipjar/internal/models"
)

// GormStore persists tip pages in a relational database, one row per token.
// It implements the same contract as FileStore so deployments can switch
// backends without touching any other component. The database must be opened
// with gorm.Config{TranslateError: true} so primary key conflicts surface as
// gorm.ErrDuplicatedKey.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore returns a store backed by the given database.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Put inserts the record. An existing row at the same token is never
// touched; the conflict is reported as ErrTokenExists.
func (s *GormStore) Put(page *models.TipPage) error {
	if err := s.db.Create(page).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrTokenExists
		}
		return fmt.Errorf("failed to insert record: %w", err)
	}
	return nil
}

// Get returns the row stored under token.
func (s *GormStore) Get(tok string) (*models.TipPage, error) {
	var page models.TipPage
	if err := s.db.Where("token = ?", tok).First(&page).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read record: %w", err)
	}
	return &page, nil
}
