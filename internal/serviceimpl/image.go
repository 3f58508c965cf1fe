package serviceimpl

import (
	"context"

	"github.com/PayRam/go-storefront/service"
	"gorm.io/gorm"
)

// getImage reads a BLOB column. A row without an image is NotFound.
func getImage[T any](ctx context.Context, db *gorm.DB, entity string, key uint, column string) ([]byte, error) {
	var images [][]byte
	if err := getColumn[T](ctx, db, entity, key, column, &images); err != nil {
		return nil, err
	}
	if len(images) == 0 || len(images[0]) == 0 {
		return nil, service.NotFound("%s %d has no image", entity, key)
	}
	return images[0], nil
}

func updateImage[T any](ctx context.Context, db *gorm.DB, entity string, key uint, column string, image []byte) error {
	if len(image) == 0 {
		return service.Validation("image must not be empty")
	}
	return updateColumn[T](ctx, db, entity, key, column, image)
}
