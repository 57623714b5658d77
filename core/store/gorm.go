package store

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore is a Store backed by a gorm table.
//
// M is the model struct and PT its pointer type, which is what callers hold.
// The primary key column is expected to be "id".
type GormStore[ID comparable, M any, PT interface {
	*M
	Keyed[ID]
}] struct {
	db  *gorm.DB
	hub *hub
}

// NewGormStore migrates the model table and returns a store over it.
func NewGormStore[ID comparable, M any, PT interface {
	*M
	Keyed[ID]
}](db *gorm.DB, logger *zap.Logger) (*GormStore[ID, M, PT], error) {
	if err := db.AutoMigrate(PT(new(M))); err != nil {
		return nil, fmt.Errorf("failed to migrate %T: %w", new(M), err)
	}

	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(PT(new(M))); err != nil {
		return nil, fmt.Errorf("failed to parse %T: %w", new(M), err)
	}

	return &GormStore[ID, M, PT]{
		db:  db,
		hub: newHub(stmt.Schema.Table, logger),
	}, nil
}

// Query watches the record with the given id.
func (s *GormStore[ID, M, PT]) Query(id ID) Live[PT] {
	return watch(s.hub, fmt.Sprintf("id=%v", id), func(ctx context.Context) (PT, error) {
		var m M
		err := s.db.WithContext(ctx).Where("id = ?", id).Take(PT(&m)).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return PT(&m), nil
	})
}

// QueryAll watches the whole table.
func (s *GormStore[ID, M, PT]) QueryAll() Live[[]PT] {
	return watch(s.hub, "all", func(ctx context.Context) ([]PT, error) {
		items := make([]PT, 0)
		if err := s.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
			return nil, err
		}
		return items, nil
	})
}

// Insert upserts the given records.
func (s *GormStore[ID, M, PT]) Insert(ctx context.Context, items ...PT) error {
	if len(items) == 0 {
		return nil
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&items).Error
	if err != nil {
		return fmt.Errorf("failed to insert into %s: %w", s.hub.name, err)
	}

	s.hub.notify()
	return nil
}

// Update saves the given records, inserting the ones that do not exist yet.
func (s *GormStore[ID, M, PT]) Update(ctx context.Context, items ...PT) error {
	if len(items) == 0 {
		return nil
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			if err := tx.Save(item).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", s.hub.name, err)
	}

	s.hub.notify()
	return nil
}

// Delete removes the given records by primary key.
func (s *GormStore[ID, M, PT]) Delete(ctx context.Context, items ...PT) error {
	if len(items) == 0 {
		return nil
	}

	ids := make([]ID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.GetID())
	}

	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Delete(PT(new(M))).Error; err != nil {
		return fmt.Errorf("failed to delete from %s: %w", s.hub.name, err)
	}

	s.hub.notify()
	return nil
}

// Watchers returns the number of open live queries.
func (s *GormStore[ID, M, PT]) Watchers() int {
	return s.hub.Watchers()
}
