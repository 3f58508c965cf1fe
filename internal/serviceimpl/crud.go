package serviceimpl

import (
	"context"
	"fmt"

	"github.com/PayRam/go-storefront/request"
	"github.com/PayRam/go-storefront/service"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// The helpers below hold one pooled connection for a single statement, or for
// one transaction in updateRow, and give it back on every return path.

func listRows[T any](ctx context.Context, db *gorm.DB, entity, sortBy string, conditions request.PaginationConditions) ([]T, int64, error) {
	if err := validateRequest(conditions); err != nil {
		return nil, 0, err
	}

	var rows []T
	var count int64

	query := db.WithContext(ctx).Model(new(T)).Session(&gorm.Session{})

	// Calculate total count before applying pagination
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, translateError(db, err, entity)
	}

	query = request.ApplyPaginationConditions(query, conditions, sortBy, request.OrderAsc)
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, translateError(db, err, entity)
	}

	return rows, count, nil
}

func getRow[T any](ctx context.Context, db *gorm.DB, entity string, key uint) (*T, error) {
	var row T
	if err := db.WithContext(ctx).First(&row, key).Error; err != nil {
		return nil, translateError(db, err, fmt.Sprintf("%s %d", entity, key))
	}
	return &row, nil
}

func createRow[T any](ctx context.Context, db *gorm.DB, entity string, row *T) (*T, error) {
	if err := db.WithContext(ctx).Omit(clause.Associations).Create(row).Error; err != nil {
		return nil, translateError(db, err, entity)
	}
	return row, nil
}

// updateRow applies updates, keyed by column name, to the row with the given
// key and returns the stored row.
func updateRow[T any](ctx context.Context, db *gorm.DB, entity string, key uint, updates map[string]interface{}) (*T, error) {
	var row T
	what := fmt.Sprintf("%s %d", entity, key)

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&row, key).Error; err != nil {
			return err
		}

		if len(updates) == 0 {
			return nil
		}

		if err := tx.Model(&row).Omit(clause.Associations).Updates(updates).Error; err != nil {
			return err
		}

		// Reload so defaults and conversions done by the database are visible.
		return tx.First(&row, key).Error
	})
	if err != nil {
		return nil, translateError(db, err, what)
	}

	return &row, nil
}

func deleteRow[T any](ctx context.Context, db *gorm.DB, entity string, key uint) error {
	what := fmt.Sprintf("%s %d", entity, key)

	result := db.WithContext(ctx).Delete(new(T), key)
	if result.Error != nil {
		return translateError(db, result.Error, what)
	}
	if result.RowsAffected == 0 {
		return service.NotFound("%s not found", what)
	}
	return nil
}

// getColumn reads one column of the row with the given key into dest.
func getColumn[T any](ctx context.Context, db *gorm.DB, entity string, key uint, column string, dest interface{}) error {
	what := fmt.Sprintf("%s %d", entity, key)

	var model T
	result := db.WithContext(ctx).Model(&model).Where(clause.Eq{Column: clause.PrimaryColumn, Value: key}).Limit(1).Pluck(column, dest)
	if result.Error != nil {
		return translateError(db, result.Error, what)
	}
	if result.RowsAffected == 0 {
		return service.NotFound("%s not found", what)
	}
	return nil
}

// updateColumn sets one column of the row with the given key.
func updateColumn[T any](ctx context.Context, db *gorm.DB, entity string, key uint, column string, value interface{}) error {
	what := fmt.Sprintf("%s %d", entity, key)

	var model T
	result := db.WithContext(ctx).Model(&model).Where(clause.Eq{Column: clause.PrimaryColumn, Value: key}).Update(column, value)
	if result.Error != nil {
		return translateError(db, result.Error, what)
	}
	if result.RowsAffected == 0 {
		return service.NotFound("%s not found", what)
	}
	return nil
}
