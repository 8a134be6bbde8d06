package catalogrepo

import (
	"context"
	"errors"

	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{db: db, tracker: tracker}
}

func (r *GormProductRepository) Add(ctx context.Context, product *catalog.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	dto := productFromDomain(product)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(product.ID(), product)
	return nil
}

func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Raw()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return productToDomain(dto)
}

// GormPickupLocationRepository implements PickupLocationRepository using GORM.
type GormPickupLocationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormPickupLocationRepository(db *gorm.DB, tracker aggregateTracker) *GormPickupLocationRepository {
	return &GormPickupLocationRepository{db: db, tracker: tracker}
}

func (r *GormPickupLocationRepository) Add(ctx context.Context, location *catalog.PickupLocation) error {
	if err := location.Validate(); err != nil {
		return err
	}

	dto := locationFromDomain(location)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(location.ID(), location)
	return nil
}

func (r *GormPickupLocationRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.PickupLocation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PickupLocationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Raw()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pickup location", id.String())
		}
		return nil, err
	}

	return locationToDomain(dto)
}
