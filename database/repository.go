package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Filter column-value equality conditions
type Filter map[string]interface{}

// BaseRepository generic repository over one entity type
type BaseRepository[T any] struct {
	db *gorm.DB
}

// NewBaseRepository creates a repository bound to a database instance
func NewBaseRepository[T any](db *gorm.DB) *BaseRepository[T] {
	return &BaseRepository[T]{db: db}
}

// DB returns the underlying database handle
func (r *BaseRepository[T]) DB() *gorm.DB {
	return r.db
}

// Find queries records matching the filter, preloading the given relations,
// ordered by the orderBy clause (empty means store order)
func (r *BaseRepository[T]) Find(ctx context.Context, filter Filter, relations []string, orderBy string) ([]T, error) {
	var entities []T
	tx := r.db.WithContext(ctx)
	for _, rel := range relations {
		tx = tx.Preload(rel)
	}
	if len(filter) > 0 {
		tx = tx.Where(map[string]interface{}(filter))
	}
	if orderBy != "" {
		tx = tx.Order(orderBy)
	}
	if err := tx.Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("find records: %w", err)
	}
	return entities, nil
}

// FindOne queries a single record matching the filter
// Returns ErrRecordNotFound when no row matches
func (r *BaseRepository[T]) FindOne(ctx context.Context, filter Filter, relations ...string) (*T, error) {
	var entity T
	tx := r.db.WithContext(ctx)
	for _, rel := range relations {
		tx = tx.Preload(rel)
	}
	result := tx.Where(map[string]interface{}(filter)).First(&entity)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, ErrRecordNotFound
	}
	if result.Error != nil {
		return nil, fmt.Errorf("find record: %w", result.Error)
	}
	return &entity, nil
}

// Exists reports whether any record matches the filter
func (r *BaseRepository[T]) Exists(ctx context.Context, filter Filter) (bool, error) {
	var count int64
	var entity T
	tx := r.db.WithContext(ctx).Model(&entity)
	if len(filter) > 0 {
		tx = tx.Where(map[string]interface{}(filter))
	}
	if err := tx.Count(&count).Error; err != nil {
		return false, fmt.Errorf("check record exists: %w", err)
	}
	return count > 0, nil
}

// Create inserts the entity, honoring an explicitly set primary key
// Unique constraint violations map to ErrDuplicateKey
func (r *BaseRepository[T]) Create(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("create record: %w", err)
	}
	return nil
}

// Save inserts or updates the entity and populates server-assigned fields
// A set primary key always updates; use Create to insert with an explicit key
// Unique constraint violations map to ErrDuplicateKey
func (r *BaseRepository[T]) Save(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Save(entity).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("save record: %w", err)
	}
	return nil
}

// Delete removes the record with the given id, returning the affected row count
func (r *BaseRepository[T]) Delete(ctx context.Context, id interface{}) (int64, error) {
	var entity T
	result := r.db.WithContext(ctx).Delete(&entity, id)
	if result.Error != nil {
		return 0, fmt.Errorf("delete record (id=%v): %w", id, result.Error)
	}
	return result.RowsAffected, nil
}

// DeleteWhere removes all records matching the filter, returning the affected row count
func (r *BaseRepository[T]) DeleteWhere(ctx context.Context, filter Filter) (int64, error) {
	var entity T
	result := r.db.WithContext(ctx).Where(map[string]interface{}(filter)).Delete(&entity)
	if result.Error != nil {
		return 0, fmt.Errorf("delete records: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// Transaction runs fn inside a database transaction
func (r *BaseRepository[T]) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}
