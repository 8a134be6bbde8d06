package postgres

import (
	"bakery/internal/adapters/out/postgres/catalogrepo"
	"bakery/internal/adapters/out/postgres/orderrepo"
	"bakery/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the repositories use.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userrepo.UserDTO{},
		&catalogrepo.ProductDTO{},
		&catalogrepo.PickupLocationDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.HistoryEntryDTO{},
	)
}
