// Package catalogrepo persists products and pickup locations.
package catalogrepo

import (
	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting products.
// Price is stored in minor units.
type ProductDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"type:varchar(255);not null"`
	Price int       `gorm:"type:int;not null"`
}

func (ProductDTO) TableName() string {
	return "products"
}

// PickupLocationDTO represents the database structure for persisting pickup locations.
type PickupLocationDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(255);not null;uniqueIndex"`
}

func (PickupLocationDTO) TableName() string {
	return "pickup_locations"
}

func productFromDomain(p *catalog.Product) ProductDTO {
	return ProductDTO{
		ID:    p.ID().Raw(),
		Name:  p.Name(),
		Price: p.Price(),
	}
}

func productToDomain(dto ProductDTO) (*catalog.Product, error) {
	id, err := kernel.UUIDFromRaw(dto.ID)
	if err != nil {
		return nil, err
	}
	return catalog.RestoreProduct(id, dto.Name, dto.Price)
}

func locationFromDomain(l *catalog.PickupLocation) PickupLocationDTO {
	return PickupLocationDTO{
		ID:   l.ID().Raw(),
		Name: l.Name(),
	}
}

func locationToDomain(dto PickupLocationDTO) (*catalog.PickupLocation, error) {
	id, err := kernel.UUIDFromRaw(dto.ID)
	if err != nil {
		return nil, err
	}
	return catalog.RestorePickupLocation(id, dto.Name)
}
