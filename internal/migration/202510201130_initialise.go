package migration

import (
	"github.com/PayRam/go-storefront/models"
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

var Initialise = &gormigrate.Migration{
	ID: "202510201130-sf-118204",
	Migrate: func(db *gorm.DB) error {
		return db.AutoMigrate(models.All()...)
	},
	Rollback: func(db *gorm.DB) error {
		tables := models.All()
		// Drop dependents first.
		for i, j := 0, len(tables)-1; i < j; i, j = i+1, j-1 {
			tables[i], tables[j] = tables[j], tables[i]
		}
		return db.Migrator().DropTable(tables...)
	},
}
